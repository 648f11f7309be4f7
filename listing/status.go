package listing

import (
	"context"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Status describes how far through the publish sequence a wallet's
// teller listing got. StatusRegistered means the registration leg
// landed but the stake leg did not: an interrupted publish that the
// owner should finish with AddFunds or abandon with Withdraw.
type Status int

const (
	StatusAbsent Status = iota
	StatusRegistered
	StatusFunded
)

func (s Status) String() string {
	switch s {
	case StatusRegistered:
		return "registered"
	case StatusFunded:
		return "funded"
	default:
		return "absent"
	}
}

// TellerStatus reports the publish state of addr's listing.
func (s *Service) TellerStatus(ctx context.Context, addr ethcommon.Address) (Status, error) {
	teller, err := s.GetTeller(ctx, addr)
	if err != nil {
		return StatusAbsent, err
	}
	if teller == nil {
		return StatusAbsent, nil
	}
	if teller.Record.EscrowBalance.Sign() > 0 {
		return StatusFunded, nil
	}
	return StatusRegistered, nil
}
