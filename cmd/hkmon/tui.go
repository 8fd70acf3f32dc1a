package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	hotkey "github.com/uncrumpled2/jai-system-hotkey"
)

// TUI message types
type eventMsg hotkey.Event
type regMsg struct {
	combo hotkey.Hotkey
	err   error
}
type tickMsg time.Time

const (
	leftWidth  = 34
	maxEvents  = 64
	flashDecay = 400 * time.Millisecond
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	listenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	comboStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	flashStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	countStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	eventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

type comboStatus struct {
	hk      hotkey.Hotkey
	err     error
	count   int
	lastHit time.Time
}

type tuiModel struct {
	combos        []comboStatus
	events        []hotkey.Event // newest first
	total         int
	width, height int
}

func newModel(combos []hotkey.Hotkey) tuiModel {
	m := tuiModel{combos: make([]comboStatus, len(combos))}
	for i, hk := range combos {
		m.combos[i] = comboStatus{hk: hk}
	}
	return m
}

func tuiTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m tuiModel) Init() tea.Cmd {
	return tuiTick()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case tickMsg:
		return m, tuiTick()

	case regMsg:
		for i := range m.combos {
			if m.combos[i].hk == msg.combo {
				m.combos[i].err = msg.err
			}
		}

	case eventMsg:
		m.total++
		for i := range m.combos {
			if m.combos[i].hk == msg.Hotkey {
				m.combos[i].count++
				m.combos[i].lastHit = msg.Time
			}
		}
		m.events = append([]hotkey.Event{hotkey.Event(msg)}, m.events...)
		if len(m.events) > maxEvents {
			m.events = m.events[:maxEvents]
		}
	}
	return m, nil
}

func (m tuiModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var left []string
	left = append(left, titleStyle.Render("hkmon")+dimStyle.Render(" "+version))
	left = append(left, "")
	left = append(left, listenStyle.Render("● LISTENING"))
	left = append(left, "")

	for _, c := range m.combos {
		switch {
		case c.err != nil:
			left = append(left, failStyle.Render("✗ "+c.hk.String()))
			left = append(left, failStyle.Render("  "+c.err.Error()))
		case time.Since(c.lastHit) < flashDecay:
			left = append(left, flashStyle.Render("▶ "+c.hk.String())+countStyle.Render(fmt.Sprintf(" ×%d", c.count)))
		case c.count > 0:
			left = append(left, comboStyle.Render("  "+c.hk.String())+countStyle.Render(fmt.Sprintf(" ×%d", c.count)))
		default:
			left = append(left, comboStyle.Render("  "+c.hk.String()))
		}
	}

	left = append(left, "")
	left = append(left, helpStyle.Render("q or Ctrl+C to quit"))

	rightWidth := m.width - leftWidth - 1
	if rightWidth < 20 {
		rightWidth = 20
	}

	var right strings.Builder
	right.WriteString(dimStyle.Render(fmt.Sprintf("Events (%d)", m.total)) + "\n\n")
	if len(m.events) == 0 {
		right.WriteString(dimStyle.Render("No presses yet"))
	} else {
		shown := m.events
		if max := m.height - 3; max > 0 && len(shown) > max {
			shown = shown[:max]
		}
		for _, ev := range shown {
			right.WriteString(timeStyle.Render(ev.Time.Format("15:04:05.000")))
			right.WriteString("  ")
			right.WriteString(eventStyle.Render(ev.Hotkey.String()))
			right.WriteString("\n")
		}
	}

	leftPanel := lipgloss.NewStyle().
		Width(leftWidth).
		Height(m.height).
		PaddingLeft(1).
		Render(strings.Join(left, "\n"))

	rightPanel := lipgloss.NewStyle().
		Width(rightWidth).
		Height(m.height).
		PaddingLeft(1).
		Render(right.String())

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)
}
