package networks

import (
	"fmt"
	"strings"
)

var supportedNetworks = []Network{
	EthereumMainnet,
	Ropsten,
	Rinkeby,
	Kovan,
}

func GetSupportedNetworks() []Network {
	return supportedNetworks
}

// GetNetwork looks a network up by name or alternative name,
// case-insensitively.
func GetNetwork(name string) (Network, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range supportedNetworks {
		if n.GetName() == name {
			return n, nil
		}
		for _, alt := range n.GetAlternativeNames() {
			if alt == name {
				return n, nil
			}
		}
	}
	return nil, fmt.Errorf("unsupported network: %s", name)
}
