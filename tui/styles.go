package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Margin(1, 2)

	// ANSI colours for broad terminal support.
	colorPrimary   = lipgloss.Color("5")
	colorSecondary = lipgloss.Color("4")
	colorAccent    = lipgloss.Color("6")
	colorSuccess   = lipgloss.Color("2")
	colorError     = lipgloss.Color("1")
	colorWarning   = lipgloss.Color("3")
	colorFaint     = lipgloss.Color("8")
	colorText      = lipgloss.Color("7")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1)
	headerStyle   = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(colorFaint).MarginBottom(1)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true).Padding(0, 1)
	faintStyle    = lipgloss.NewStyle().Foreground(colorFaint)
	helpStyle     = lipgloss.NewStyle().Foreground(colorFaint).MarginTop(1)

	itemStyle         = lipgloss.NewStyle().PaddingLeft(2).Foreground(colorText)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(colorPrimary).Bold(true)
	descStyle         = lipgloss.NewStyle().PaddingLeft(2).Foreground(colorFaint)
	selectedDescStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(colorPrimary)
	emptyStyle        = lipgloss.NewStyle().Foreground(colorFaint).Align(lipgloss.Center)

	// Connection status line.
	statusConnectedStyle    = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	statusConnectingStyle   = lipgloss.NewStyle().Foreground(colorAccent)
	statusFailedStyle       = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	statusDisconnectedStyle = lipgloss.NewStyle().Foreground(colorFaint)

	// Per-row action affordances.
	actionConnectStyle    = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	actionDisabledStyle   = lipgloss.NewStyle().Foreground(colorFaint)
	actionConnectingStyle = lipgloss.NewStyle().Foreground(colorAccent)
	actionDisconnectStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	// Signal strength.
	signalExcellentStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	signalGoodStyle      = lipgloss.NewStyle().Foreground(colorWarning)
	signalWeakStyle      = lipgloss.NewStyle().Foreground(colorError)
	signalUnlitStyle     = lipgloss.NewStyle().Foreground(colorFaint)
	lockStyle            = lipgloss.NewStyle().Foreground(colorFaint)
)
