// Package connection holds the simulated connection state machine.
package connection

import (
	"fmt"

	"wifisim/netsource"
)

// Phase is the tag of a State.
type Phase int

const (
	Disconnected Phase = iota
	Connecting
	Connected
	Failed
)

func (p Phase) String() string {
	switch p {
	case Disconnected:
		return "Disconnected"
	case Connecting:
		return "Connecting"
	case Connected:
		return "Connected"
	case Failed:
		return "Failed"
	}
	return fmt.Sprintf("Unknown(%d)", int(p))
}

// State is a snapshot of the connection. Target is set while Connecting or
// Connected; Reason and Err are set while Failed.
type State struct {
	Phase  Phase
	Target netsource.Network
	Reason string
	Err    error
}

// Busy reports whether a connection attempt is in progress.
func (s State) Busy() bool { return s.Phase == Connecting }

// ConnectedTo reports whether ssid is the connected network.
func (s State) ConnectedTo(ssid string) bool {
	return s.Phase == Connected && s.Target.SSID == ssid
}

// ConnectingTo reports whether ssid is being connected.
func (s State) ConnectingTo(ssid string) bool {
	return s.Phase == Connecting && s.Target.SSID == ssid
}

func (s State) String() string {
	switch s.Phase {
	case Connecting, Connected:
		return fmt.Sprintf("%s(%s)", s.Phase, s.Target.SSID)
	case Failed:
		return fmt.Sprintf("%s(%s)", s.Phase, s.Reason)
	}
	return s.Phase.String()
}
