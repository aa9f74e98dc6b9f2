package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	availableWidth := m.width - appStyle.GetHorizontalFrameSize()

	header := m.headerView(availableWidth)
	toolbar := m.toolbarView(availableWidth)
	footer := m.footerView(availableWidth)

	contentHeight := m.height - appStyle.GetVerticalFrameSize() -
		lipgloss.Height(header) - lipgloss.Height(toolbar) - lipgloss.Height(footer)
	if contentHeight < minListHeight {
		contentHeight = minListHeight
	}

	var content string
	switch {
	case m.scanner.Scanning():
		content = m.renderScanning(availableWidth, contentHeight)
	case len(m.list.Items()) == 0:
		content = m.renderEmpty(availableWidth, contentHeight)
	default:
		content = m.list.View()
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, toolbar, content, footer))
}

// headerView shows the title on the left and the connection status on the
// right.
func (m Model) headerView(width int) string {
	title := titleStyle.Render(appName)
	status := renderStatus(m.conn.State(), m.spinner.View())

	gap := width - lipgloss.Width(title) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", gap), status))
}

// toolbarView shows the section label and the scan control, which is
// disabled while a scan is running.
func (m Model) toolbarView(width int) string {
	label := subtitleStyle.Render("Available Networks")

	var scan string
	if m.scanner.Scanning() {
		scan = statusConnectingStyle.Render(m.spinner.View() + " Scanning...")
	} else {
		scan = faintStyle.Render("(r) Scan")
	}

	gap := width - lipgloss.Width(label) - lipgloss.Width(scan)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, label, strings.Repeat(" ", gap), scan)
}

func (m Model) footerView(width int) string {
	helpText := m.help.View(m.keys)
	if width <= 0 {
		return helpStyle.Render(helpText)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, helpStyle.Render(helpText))
}

func (m Model) renderScanning(width, height int) string {
	content := statusConnectingStyle.Render(m.spinner.View() + " Scanning for networks...")
	return place(width, height, content)
}

func (m Model) renderEmpty(width, height int) string {
	content := emptyStyle.Render("No networks found.\nTry scanning again.")
	return place(width, height, content)
}

func place(width, height int, content string) string {
	if width <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
