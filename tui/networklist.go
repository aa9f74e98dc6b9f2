package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wifisim/connection"
	"wifisim/netsource"
)

const (
	signalGlyphs = "▂▄▆█"
	lockGlyph    = "🔒"
)

// action is the affordance a row offers for the current connection state.
type action int

const (
	actionConnect action = iota
	actionConnectDisabled
	actionConnecting
	actionDisconnect
)

func actionFor(n netsource.Network, st connection.State) action {
	switch {
	case st.ConnectedTo(n.SSID):
		return actionDisconnect
	case st.ConnectingTo(n.SSID):
		return actionConnecting
	case st.Busy():
		return actionConnectDisabled
	}
	return actionConnect
}

func (a action) label() string {
	switch a {
	case actionConnecting:
		return "Connecting…"
	case actionDisconnect:
		return "[ Disconnect ]"
	}
	return "[ Connect ]"
}

func (a action) render() string {
	switch a {
	case actionConnectDisabled:
		return actionDisabledStyle.Render(a.label())
	case actionConnecting:
		return actionConnectingStyle.Render(a.label())
	case actionDisconnect:
		return actionDisconnectStyle.Render(a.label())
	}
	return actionConnectStyle.Render(a.label())
}

// =============================================================================
// List Item
// =============================================================================

type networkItem struct {
	netsource.Network
}

func (i networkItem) FilterValue() string { return i.SSID }

func toItems(nets []netsource.Network) []list.Item {
	items := make([]list.Item, len(nets))
	for i, n := range nets {
		items[i] = networkItem{n}
	}
	return items
}

// signalBars lights the first level glyphs and dims the rest.
func signalBars(level int) string {
	glyphs := []rune(signalGlyphs)
	if level < 0 {
		level = 0
	}
	if level > len(glyphs) {
		level = len(glyphs)
	}

	var lit lipgloss.Style
	switch {
	case level >= netsource.MaxSignal:
		lit = signalExcellentStyle
	case level >= 2:
		lit = signalGoodStyle
	default:
		lit = signalWeakStyle
	}
	return lit.Render(string(glyphs[:level])) + signalUnlitStyle.Render(string(glyphs[level:]))
}

// =============================================================================
// List Item Delegate
// =============================================================================

// itemDelegate renders rows. It reads the connection state on every render
// and keeps none of its own.
type itemDelegate struct {
	state func() connection.State
}

func (d itemDelegate) Height() int                             { return 2 }
func (d itemDelegate) Spacing() int                            { return 1 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(networkItem)
	if !ok {
		return
	}

	name := item.SSID
	if item.IsSecure {
		name += " " + lockStyle.Render(lockGlyph)
	}
	left := signalBars(item.SignalStrength) + " " + name
	right := actionFor(item.Network, d.state()).render()
	desc := fmt.Sprintf("Signal %d/%d │ %s", item.SignalStrength, netsource.MaxSignal, item.Security())

	// Leave room for the cursor column.
	row := spread(left, right, m.Width()-4)

	if index == m.Index() {
		fmt.Fprintf(w, "%s\n%s", selectedItemStyle.Render("▸ "+row), selectedDescStyle.Render("  "+desc))
		return
	}
	fmt.Fprintf(w, "%s\n%s", itemStyle.Render("  "+row), descStyle.Render("  "+desc))
}

// spread places left and right at opposite ends of width cells.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func newNetworkList(state func() connection.State) list.Model {
	networks := list.New([]list.Item{}, itemDelegate{state: state}, 0, 0)
	networks.SetShowTitle(false)
	networks.SetShowStatusBar(false)
	networks.SetShowHelp(false)
	networks.SetFilteringEnabled(false)
	networks.DisableQuitKeybindings()
	return networks
}
