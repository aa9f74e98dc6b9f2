package connection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wifisim/netsource"
)

var (
	openNet   = netsource.Network{SSID: "Library Guest", SignalStrength: 3}
	otherOpen = netsource.Network{SSID: "MainframeLink", SignalStrength: 1}
	secureNet = netsource.Network{SSID: "xfinitywifi", SignalStrength: 4, IsSecure: true}
)

func newTestController() *Controller {
	return NewController(Delays{Connect: 25 * time.Millisecond, FailureClear: 30 * time.Millisecond})
}

func connectOK(t *testing.T, c *Controller, n netsource.Network) *Timer {
	t.Helper()
	timer, err := c.Connect(n)
	require.NoError(t, err)
	require.NotNil(t, timer)
	return timer
}

func TestInitialStateIsDisconnected(t *testing.T) {
	c := newTestController()
	assert.Equal(t, Disconnected, c.State().Phase)
	_, ok := c.Pending()
	assert.False(t, ok)
}

func TestConnectOpenNetwork(t *testing.T) {
	c := newTestController()
	timer := connectOK(t, c, openNet)

	st := c.State()
	require.Equal(t, Connecting, st.Phase)
	require.Equal(t, openNet, st.Target)
	assert.True(t, st.Busy())
	assert.True(t, st.ConnectingTo(openNet.SSID))
	assert.Equal(t, CompleteConnect, timer.Kind)
	assert.Equal(t, 25*time.Millisecond, timer.Delay)

	require.True(t, c.Fire(timer.Token))
	st = c.State()
	assert.Equal(t, Connected, st.Phase)
	assert.True(t, st.ConnectedTo(openNet.SSID))
	assert.False(t, st.Busy())

	// Stays connected: the used token cannot fire again.
	assert.False(t, c.Fire(timer.Token))
	assert.Equal(t, Connected, c.State().Phase)
}

func TestConnectSecureNetworkFails(t *testing.T) {
	c := newTestController()
	timer := connectOK(t, c, secureNet)

	st := c.State()
	require.Equal(t, Failed, st.Phase)
	assert.ErrorIs(t, st.Err, ErrSecureNetworkRejected)
	assert.Equal(t, ReasonPasswordRequired, st.Reason)
	assert.Equal(t, ClearFailure, timer.Kind)
	assert.Equal(t, 30*time.Millisecond, timer.Delay)

	require.True(t, c.Fire(timer.Token))
	st = c.State()
	assert.Equal(t, Disconnected, st.Phase)
	assert.Empty(t, st.Reason)
	assert.NoError(t, st.Err)
}

func TestConnectWhileConnectingIsRejected(t *testing.T) {
	c := newTestController()
	timer := connectOK(t, c, openNet)

	for _, n := range []netsource.Network{otherOpen, secureNet, openNet} {
		next, err := c.Connect(n)
		require.ErrorIs(t, err, ErrConnectInProgress)
		require.Nil(t, next)
		require.Equal(t, Connecting, c.State().Phase)
		require.Equal(t, openNet.SSID, c.State().Target.SSID)
	}

	// The original timer is still live.
	pending, ok := c.Pending()
	require.True(t, ok)
	assert.Equal(t, timer.Token, pending.Token)
	require.True(t, c.Fire(timer.Token))
	assert.True(t, c.State().ConnectedTo(openNet.SSID))
}

func TestConnectToConnectedNetworkIsNoop(t *testing.T) {
	c := newTestController()
	c.Fire(connectOK(t, c, openNet).Token)

	timer, err := c.Connect(openNet)
	require.NoError(t, err)
	assert.Nil(t, timer)
	assert.True(t, c.State().ConnectedTo(openNet.SSID))
}

func TestConnectWhileConnectedSwitchesTarget(t *testing.T) {
	c := newTestController()
	c.Fire(connectOK(t, c, openNet).Token)

	timer := connectOK(t, c, otherOpen)
	assert.True(t, c.State().ConnectingTo(otherOpen.SSID))
	require.True(t, c.Fire(timer.Token))
	assert.True(t, c.State().ConnectedTo(otherOpen.SSID))
	assert.False(t, c.State().ConnectedTo(openNet.SSID))
}

func TestConnectFromFailedInvalidatesClearTimer(t *testing.T) {
	c := newTestController()
	clearTimer := connectOK(t, c, secureNet)
	connect := connectOK(t, c, openNet)
	require.NotEqual(t, clearTimer.Token, connect.Token)

	assert.False(t, c.Fire(clearTimer.Token))
	assert.Equal(t, Connecting, c.State().Phase)

	require.True(t, c.Fire(connect.Token))
	assert.True(t, c.State().ConnectedTo(openNet.SSID))
}

func TestDisconnect(t *testing.T) {
	c := newTestController()
	c.Fire(connectOK(t, c, openNet).Token)

	require.True(t, c.Disconnect())
	st := c.State()
	assert.Equal(t, Disconnected, st.Phase)
	assert.Empty(t, st.Target.SSID)

	assert.False(t, c.Disconnect())
	assert.Equal(t, Disconnected, c.State().Phase)
}

func TestDisconnectOutsideConnectedIsNoop(t *testing.T) {
	c := newTestController()
	connectOK(t, c, openNet)
	assert.False(t, c.Disconnect())
	assert.Equal(t, Connecting, c.State().Phase)

	c = newTestController()
	connectOK(t, c, secureNet)
	assert.False(t, c.Disconnect())
	assert.Equal(t, Failed, c.State().Phase)
}

func TestCancelFreezesState(t *testing.T) {
	c := newTestController()
	timer := connectOK(t, c, openNet)

	c.Cancel()
	_, ok := c.Pending()
	require.False(t, ok)
	assert.False(t, c.Fire(timer.Token))
	assert.Equal(t, Connecting, c.State().Phase)
}

func TestFireUnknownToken(t *testing.T) {
	c := newTestController()
	assert.False(t, c.Fire(0))
	assert.False(t, c.Fire(12345))
	assert.Equal(t, Disconnected, c.State().Phase)
}

func TestTokensAreUnique(t *testing.T) {
	c := newTestController()
	seen := map[uint64]bool{}
	for i := 0; i < 5; i++ {
		timer := connectOK(t, c, secureNet)
		require.False(t, seen[timer.Token])
		seen[timer.Token] = true
		require.True(t, c.Fire(timer.Token))
	}
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "Disconnected", State{}.String())
	assert.Equal(t, "Connecting(Library Guest)", State{Phase: Connecting, Target: openNet}.String())
	assert.Equal(t, "Failed(boom)", State{Phase: Failed, Reason: "boom"}.String())
	assert.Equal(t, "Unknown(9)", Phase(9).String())
	assert.Equal(t, "clear-failure", ClearFailure.String())
}

func TestDefaultDelays(t *testing.T) {
	d := DefaultDelays()
	assert.Equal(t, 2500*time.Millisecond, d.Connect)
	assert.Equal(t, 3*time.Second, d.FailureClear)
}
