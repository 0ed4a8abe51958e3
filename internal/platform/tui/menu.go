package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	MenuPlay MenuChoice = iota
	MenuScores
	MenuQuit
)

// String returns the menu label.
func (c MenuChoice) String() string {
	switch c {
	case MenuPlay:
		return "Play"
	case MenuScores:
		return "High Scores"
	case MenuQuit:
		return "Quit"
	}
	return "?"
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
	menuSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items    []MenuChoice
	cursor   int
	width    int
	height   int
	variant  string // Board variant shown under the title, e.g. "snake-20x20"
	best     int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	selected *MenuChoice
}

// NewMenuModel creates a new menu model. best is the high score shown for
// the current board variant.
func NewMenuModel(cfg core.RuntimeConfig, variant string, best int) MenuModel {
	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:   []MenuChoice{MenuPlay, MenuScores, MenuQuit},
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		variant: variant,
		best:    best,
		config:  cfg,
		keys:    DefaultMenuKeyMap(),
		help:    h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		choice := m.items[m.cursor]
		if choice == MenuQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &choice
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  S N A K E  "), m.width))
	b.WriteString("\n\n")

	subtitle := fmt.Sprintf("%s  |  Best: %d", m.variant, m.best)
	b.WriteString(centerText(menuSubtitleStyle.Render(subtitle), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.String()
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + item.String())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu entry, or nil if none selected.
func (m MenuModel) Selected() *MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
