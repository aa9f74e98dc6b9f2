package connection

import (
	"time"

	"github.com/pkg/errors"

	"wifisim/logging"
	"wifisim/netsource"
)

// Default transition delays.
const (
	DefaultConnectDelay = 2500 * time.Millisecond
	DefaultFailureDelay = 3 * time.Second
)

// ReasonPasswordRequired is the Failed reason for secure networks.
const ReasonPasswordRequired = "Password required for secure networks"

var (
	// ErrSecureNetworkRejected is the Err of the Failed state entered when
	// connecting to a secure network.
	ErrSecureNetworkRejected = errors.New("secure network rejected: no credentials")

	// ErrConnectInProgress is returned by Connect while another attempt is
	// still Connecting. The state is left untouched.
	ErrConnectInProgress = errors.New("connection attempt already in progress")
)

// Delays configures the deferred transitions.
type Delays struct {
	// Connect is the time from Connecting to Connected.
	Connect time.Duration
	// FailureClear is the time a Failed state is shown before reverting.
	FailureClear time.Duration
}

// DefaultDelays returns the stock delays.
func DefaultDelays() Delays {
	return Delays{Connect: DefaultConnectDelay, FailureClear: DefaultFailureDelay}
}

// TimerKind names the transition a Timer completes.
type TimerKind int

const (
	CompleteConnect TimerKind = iota + 1
	ClearFailure
)

func (k TimerKind) String() string {
	switch k {
	case CompleteConnect:
		return "complete-connect"
	case ClearFailure:
		return "clear-failure"
	}
	return "unknown"
}

// Timer is a deferred transition. The owner of the Controller must call
// Fire(Token) once Delay has elapsed.
type Timer struct {
	Token uint64
	Delay time.Duration
	Kind  TimerKind
}

// Controller owns the single connection State. It is not safe for concurrent
// use; all calls are expected from the UI loop.
type Controller struct {
	delays Delays
	state  State

	// Only the timer carrying pending may fire; zero means none.
	pending Timer
	next    uint64
}

// NewController returns a Controller in the Disconnected state.
func NewController(d Delays) *Controller {
	return &Controller{delays: d}
}

// State returns the current snapshot.
func (c *Controller) State() State { return c.state }

// Pending returns the live timer, if any.
func (c *Controller) Pending() (Timer, bool) {
	return c.pending, c.pending.Token != 0
}

// Connect starts an attempt on n. Secure networks go straight to Failed;
// open ones go to Connecting. The returned timer, when non-nil, must be
// scheduled. Connecting to the already connected network is a no-op, and any
// call while Connecting fails with ErrConnectInProgress.
func (c *Controller) Connect(n netsource.Network) (*Timer, error) {
	switch {
	case c.state.Phase == Connecting:
		l().Debugw("connect rejected", "ssid", n.SSID, "state", c.state.String())
		return nil, ErrConnectInProgress
	case c.state.ConnectedTo(n.SSID):
		l().Debugw("already connected", "ssid", n.SSID)
		return nil, nil
	}

	if c.state.Phase == Connected {
		l().Infow("dropping connection for new attempt", "from", c.state.Target.SSID, "to", n.SSID)
	}

	if n.IsSecure {
		c.transition(State{Phase: Failed, Reason: ReasonPasswordRequired, Err: ErrSecureNetworkRejected})
		return c.schedule(ClearFailure, c.delays.FailureClear), nil
	}

	c.transition(State{Phase: Connecting, Target: n})
	return c.schedule(CompleteConnect, c.delays.Connect), nil
}

// Disconnect drops the connected network and reports whether anything
// changed. It is a no-op in every other phase.
func (c *Controller) Disconnect() bool {
	if c.state.Phase != Connected {
		return false
	}
	c.transition(State{Phase: Disconnected})
	return true
}

// Fire delivers an elapsed timer. Stale tokens are ignored; the return value
// reports whether a transition happened.
func (c *Controller) Fire(token uint64) bool {
	if token == 0 || token != c.pending.Token {
		l().Debugw("stale timer ignored", "token", token, "live", c.pending.Token)
		return false
	}
	kind := c.pending.Kind
	c.pending = Timer{}

	switch {
	case kind == CompleteConnect && c.state.Phase == Connecting:
		c.transition(State{Phase: Connected, Target: c.state.Target})
	case kind == ClearFailure && c.state.Phase == Failed:
		c.transition(State{Phase: Disconnected})
	default:
		return false
	}
	return true
}

// Cancel invalidates the live timer, freezing the current state.
func (c *Controller) Cancel() {
	if c.pending.Token != 0 {
		l().Debugw("timer cancelled", "token", c.pending.Token, "kind", c.pending.Kind.String())
	}
	c.pending = Timer{}
}

func (c *Controller) schedule(kind TimerKind, d time.Duration) *Timer {
	c.next++
	c.pending = Timer{Token: c.next, Delay: d, Kind: kind}
	t := c.pending
	return &t
}

func (c *Controller) transition(next State) {
	l().Infow("connection state", "from", c.state.String(), "to", next.String())
	c.state = next
	c.pending = Timer{}
}

func l() *logging.Logger {
	return logging.Component("connection")
}
