package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/usmanser71/runner-game-pro/internal/runner"
	"github.com/usmanser71/runner-game-pro/internal/shop"
)

// Screen identifies one of the top-level views.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenGame
	ScreenShop
	ScreenScores
)

// MenuItem represents a selectable entry in the main menu.
type MenuItem struct {
	Title  string
	Target Screen
	Quit   bool
}

var defaultMenuItems = []MenuItem{
	{Title: "Play", Target: ScreenGame},
	{Title: "Skin Shop", Target: ScreenShop},
	{Title: "High Scores", Target: ScreenScores},
	{Title: "Quit", Quit: true},
}

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	profile   runner.Profile
	catalog   *shop.Catalog
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when user picks an entry
}

// NewMenuModel creates a new menu model showing the player's profile.
func NewMenuModel(profile runner.Profile, catalog *shop.Catalog, width, height int) MenuModel {
	return MenuModel{
		items:     defaultMenuItems,
		width:     width,
		height:    height,
		profile:   profile,
		catalog:   catalog,
		keyMapper: NewKeyMapper(),
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
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
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
		item := m.items[m.cursor]
		if item.Quit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &item
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
	b.WriteString(centerText(titleStyle.Render("T I M E   R U N N E R"), m.width))
	b.WriteString("\n\n")

	status := fmt.Sprintf("Best %d  |  Coins %d  |  Skin %s",
		m.profile.BestScore, m.profile.TotalCoins, m.catalog.NameOf(m.profile.SkinID))
	b.WriteString(centerText(status, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
