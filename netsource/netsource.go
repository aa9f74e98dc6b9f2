// Package netsource produces the wireless networks shown by the selector.
// Networks come from a Source; MockSource fabricates them, and Scanner tracks
// the scan in flight and the latest result set.
package netsource

import (
	"context"

	"wifisim/logging"
)

// Signal strength bounds, in bars.
const (
	MinSignal = 1
	MaxSignal = 4
)

// Network is one access point from a scan. SSID is unique within a result set.
type Network struct {
	SSID           string
	SignalStrength int
	IsSecure       bool
}

// Security returns a short label for the network's security.
func (n Network) Security() string {
	if n.IsSecure {
		return "Secured"
	}
	return "Open"
}

// Source reports the networks currently in range.
type Source interface {
	Scan(ctx context.Context) ([]Network, error)
}

// DefaultPool is the candidate SSID pool used by MockSource.
var DefaultPool = []string{
	"CoffeeShop_FreeWiFi",
	"City_Public_Access",
	"Library Guest",
	"MySecretLair_5G",
	"NeighborNet_2.4",
	"xfinitywifi",
	"QuantumFiber-5G",
	"MainframeLink",
	"TheLanBeforeTime",
	"PrettyFlyForAWiFi",
}

func l() *logging.Logger {
	return logging.Component("netsource")
}
