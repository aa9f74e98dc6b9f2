package tui

import (
	"fmt"

	"wifisim/connection"
)

// statusText is the plain status line for st.
func statusText(st connection.State) string {
	switch st.Phase {
	case connection.Connected:
		return fmt.Sprintf("Connected to %s", st.Target.SSID)
	case connection.Connecting:
		return fmt.Sprintf("Connecting to %s...", st.Target.SSID)
	case connection.Failed:
		return fmt.Sprintf("Connection Failed: %s.", st.Reason)
	}
	return "Not Connected"
}

// renderStatus styles the status line. spin is the current spinner frame,
// shown while connecting.
func renderStatus(st connection.State, spin string) string {
	text := statusText(st)
	switch st.Phase {
	case connection.Connected:
		return signalBars(4) + " " + statusConnectedStyle.Render(text)
	case connection.Connecting:
		return statusConnectingStyle.Render(spin + " " + text)
	case connection.Failed:
		return statusFailedStyle.Render(text)
	}
	return statusDisconnectedStyle.Render(text)
}
