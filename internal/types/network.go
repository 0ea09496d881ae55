package types

import "fmt"

// Network is the name of an EVM network supported by the account tracker.
type Network string

const (
	NetworkEthereum Network = "ethereum"
	NetworkPolygon  Network = "polygon"
	NetworkOptimism Network = "optimism"
	NetworkArbitrum Network = "arbitrum"
)

func (n Network) String() string {
	return string(n)
}

func ParseNetwork(name string) (Network, error) {
	switch name {
	case NetworkEthereum.String():
		return NetworkEthereum, nil
	case NetworkPolygon.String():
		return NetworkPolygon, nil
	case NetworkOptimism.String():
		return NetworkOptimism, nil
	case NetworkArbitrum.String():
		return NetworkArbitrum, nil
	}
	return "", fmt.Errorf("network with name %s does not exist. should be one of {%s, %s, %s, %s}",
		name, NetworkEthereum, NetworkPolygon, NetworkOptimism, NetworkArbitrum)
}

func GetValidNetworks() map[string]bool {
	return map[string]bool{
		NetworkEthereum.String(): true,
		NetworkPolygon.String():  true,
		NetworkOptimism.String(): true,
		NetworkArbitrum.String(): true,
	}
}
