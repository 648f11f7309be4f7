package swap

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Phase is where a swap session currently stands in its transaction
// ladder. Phases only ever move forward, or sideways into PhaseFailed.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseFundingTempWallet
	PhaseEscrowReleased
	PhaseSwapped
	PhaseRefunded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseFundingTempWallet:
		return "funding temp wallet"
	case PhaseEscrowReleased:
		return "escrow released"
	case PhaseSwapped:
		return "swapped"
	case PhaseRefunded:
		return "refunded"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// next is the only legal forward transition out of each phase.
var next = map[Phase]Phase{
	PhaseInit:              PhaseFundingTempWallet,
	PhaseFundingTempWallet: PhaseEscrowReleased,
	PhaseEscrowReleased:    PhaseSwapped,
	PhaseSwapped:           PhaseRefunded,
}

// Session is the full state of one swap: identity, the asset being
// moved, the throwaway wallet, and the hash of every transaction that
// has gone out. It is safe to serialize everything except TempKey,
// which is a live bearer credential until the session is refunded.
type Session struct {
	ID          uuid.UUID
	Pair        Pair
	Venue       Venue
	Amount      decimal.Decimal
	Buyer       ethcommon.Address
	Seller      ethcommon.Address
	GasPriceWei *big.Int
	MinRate     *big.Int

	TempAddress ethcommon.Address
	TempKey     *ecdsa.PrivateKey

	Phase       Phase
	FundingHash ethcommon.Hash
	ReleaseHash ethcommon.Hash
	TradeHash   ethcommon.Hash
	RefundHash  ethcommon.Hash
}

// advance moves the session to the given phase, enforcing the ladder:
// only the single legal successor, or PhaseFailed from anywhere not yet
// terminal.
func (s *Session) advance(to Phase) error {
	if s.Phase == PhaseFailed || s.Phase == PhaseRefunded {
		return fmt.Errorf("session %s is terminal at %s", s.ID, s.Phase)
	}
	if to == PhaseFailed {
		s.Phase = PhaseFailed
		return nil
	}
	if next[s.Phase] != to {
		return fmt.Errorf("session %s can't go from %s to %s", s.ID, s.Phase, to)
	}
	s.Phase = to
	return nil
}

// Hashes returns the transactions broadcast so far, in ladder order.
func (s *Session) Hashes() []ethcommon.Hash {
	out := []ethcommon.Hash{}
	for _, h := range []ethcommon.Hash{s.FundingHash, s.ReleaseHash, s.TradeHash, s.RefundHash} {
		if h != (ethcommon.Hash{}) {
			out = append(out, h)
		}
	}
	return out
}
