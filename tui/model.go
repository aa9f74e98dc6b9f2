// Package tui implements the terminal front end of the simulated Wi-Fi
// selector: a network list with per-row connect/disconnect actions, a status
// line and a scan control, all driven by a netsource.Scanner and a
// connection.Controller.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wifisim/connection"
	"wifisim/logging"
	"wifisim/netsource"
)

const (
	appName         = "Wi-Fi Networks"
	helpBarMaxWidth = 80
	minListHeight   = 4
)

// Model is the Bubble Tea model of the selector. All state it renders lives
// in the scanner and the controller; the model only holds widgets.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	scanner *netsource.Scanner
	conn    *connection.Controller

	list    list.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	width  int
	height int
}

// New builds a Model. Scanning starts when the program calls Init.
func New(scanner *netsource.Scanner, conn *connection.Controller) Model {
	ctx, cancel := context.WithCancel(context.Background())

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = statusConnectingStyle

	h := help.New()
	subtle := lipgloss.NewStyle().Foreground(colorFaint)
	h.Styles = help.Styles{
		ShortKey:       subtle,
		ShortDesc:      subtle,
		ShortSeparator: subtle,
		FullKey:        subtle,
		FullDesc:       subtle,
		FullSeparator:  subtle,
		Ellipsis:       subtle,
	}

	return Model{
		ctx:     ctx,
		cancel:  cancel,
		scanner: scanner,
		conn:    conn,
		list:    newNetworkList(conn.State),
		spinner: s,
		help:    h,
		keys:    defaultKeyBindings,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startScan(), m.spinner.Tick)
}

// =============================================================================
// Update
// =============================================================================

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeComponents()
		return m, nil

	case spinner.TickMsg:
		if m.busy() {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case scanResultMsg:
		if m.scanner.Complete(msg.result) {
			cmds = append(cmds, m.syncList())
		}

	case connectionTimerMsg:
		if m.conn.Fire(msg.token) {
			l().Debugw("timer applied", "state", m.conn.State().String())
		}

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyPress(msg)...)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) []tea.Cmd {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shutdown()
		return []tea.Cmd{tea.Quit}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeComponents()
		return nil

	case key.Matches(msg, m.keys.Scan):
		cmd = m.startScan()
		if cmd == nil {
			return nil
		}
		return []tea.Cmd{m.syncList(), cmd, m.spinner.Tick}

	case key.Matches(msg, m.keys.Disconnect):
		m.disconnect()
		return nil

	case key.Matches(msg, m.keys.Connect):
		return m.activateSelected()
	}

	m.list, cmd = m.list.Update(msg)
	return []tea.Cmd{cmd}
}

// startScan begins a scan unless one is already running.
func (m *Model) startScan() tea.Cmd {
	req, ok := m.scanner.Begin()
	if !ok {
		return nil
	}
	return scanCmd(m.ctx, m.scanner, req)
}

// syncList mirrors the scanner's current results into the list widget.
func (m *Model) syncList() tea.Cmd {
	return m.list.SetItems(toItems(m.scanner.Results()))
}

// activateSelected runs the affordance shown on the selected row.
func (m *Model) activateSelected() []tea.Cmd {
	item, ok := m.list.SelectedItem().(networkItem)
	if !ok {
		return nil
	}
	n, ok := m.scanner.Lookup(item.SSID)
	if !ok {
		return nil
	}

	switch actionFor(n, m.conn.State()) {
	case actionDisconnect:
		m.disconnect()
		return nil
	case actionConnecting, actionConnectDisabled:
		return nil
	}
	return m.connect(n)
}

func (m *Model) connect(n netsource.Network) []tea.Cmd {
	timer, err := m.conn.Connect(n)
	if errors.Is(err, connection.ErrConnectInProgress) {
		l().Debugw("connect ignored", "ssid", n.SSID)
		return nil
	}
	if timer == nil {
		return nil
	}

	cmds := []tea.Cmd{connectionTimerCmd(*timer)}
	if m.conn.State().Busy() {
		cmds = append(cmds, m.spinner.Tick)
	}
	return cmds
}

func (m *Model) disconnect() {
	if !m.conn.Disconnect() {
		l().Debugw("disconnect ignored", "state", m.conn.State().String())
	}
}

// shutdown stops pending work before the program exits.
func (m *Model) shutdown() {
	m.conn.Cancel()
	m.cancel()
}

func (m Model) busy() bool {
	return m.scanner.Scanning() || m.conn.State().Busy()
}

func (m *Model) resizeComponents() {
	availableWidth := m.width - appStyle.GetHorizontalFrameSize()
	availableHeight := m.height - appStyle.GetVerticalFrameSize()

	helpWidth := availableWidth
	if helpWidth > helpBarMaxWidth {
		helpWidth = helpBarMaxWidth
	}
	m.help.Width = helpWidth

	chrome := lipgloss.Height(m.headerView(availableWidth)) +
		lipgloss.Height(m.toolbarView(availableWidth)) +
		lipgloss.Height(m.footerView(availableWidth))
	listHeight := availableHeight - chrome
	if listHeight < minListHeight {
		listHeight = minListHeight
	}
	m.list.SetSize(availableWidth, listHeight)
}

func l() *logging.Logger {
	return logging.Component("tui")
}
