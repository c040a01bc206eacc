package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/usmanser71/runner-game-pro/internal/core"
	"github.com/usmanser71/runner-game-pro/internal/session"
	"github.com/usmanser71/runner-game-pro/internal/shop"
	"github.com/usmanser71/runner-game-pro/internal/storage"
)

// Options wires the front end to one player's session.
type Options struct {
	Host    *session.Host
	Catalog *shop.Catalog
	History History // nil hides run history
	Player  string
	Config  core.RuntimeConfig
}

// Model is the top-level Bubble Tea model: menu -> game / shop / scores -> menu.
// The same model serves local play and SSH sessions.
type Model struct {
	opts     Options
	config   core.RuntimeConfig
	current  Screen
	menu     MenuModel
	game     *GameModel
	shop     ShopModel
	scores   ScoreboardModel
	ticking  bool // a TickMsg is in flight
	quitting bool
	err      error
}

// NewModel creates the top-level model, starting at the menu.
func NewModel(opts Options) Model {
	if opts.Player == "" {
		opts.Player = storage.LocalPlayer
	}
	if opts.Config.TickRate <= 0 {
		opts.Config.TickRate = core.DefaultConfig().TickRate
	}
	m := Model{
		opts:   opts,
		config: opts.Config,
	}
	m, _ = m.enter(ScreenMenu)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update routes messages to the active screen and handles transitions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	case TickMsg:
		if m.current != ScreenGame {
			m.ticking = false
			return m, nil
		}
	}

	switch m.current {
	case ScreenGame:
		return m.updateGame(msg)
	case ScreenShop:
		return m.updateShop(msg)
	case ScreenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// enter switches to screen s, building a fresh model for it.
func (m Model) enter(s Screen) (Model, tea.Cmd) {
	w, h := m.config.ScreenW, m.config.ScreenH
	m.current = s

	switch s {
	case ScreenGame:
		g, err := NewGameModel(m.opts.Host, m.opts.Catalog, m.config)
		if err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.game = &g
		if m.ticking {
			return m, nil
		}
		m.ticking = true
		return m, g.Init()

	case ScreenShop:
		m.shop = NewShopModel(m.opts.Catalog, m.opts.Host, w, h)

	case ScreenScores:
		m.scores = NewScoreboardModel(m.opts.History, m.opts.Player, w, h)

	default:
		m.current = ScreenMenu
		m.menu = NewMenuModel(m.opts.Host.Profile(), m.opts.Catalog, w, h)
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menu, ok := newMenu.(MenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if sel := m.menu.Selected(); sel != nil {
		return m.enter(sel.Target)
	}
	return m, cmd
}

func (m Model) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newGame, cmd := m.game.Update(msg)
	if game, ok := newGame.(GameModel); ok {
		m.game = &game
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		m.game = nil
		return m.enter(ScreenMenu)
	case m.game.WantsShop():
		m.game = nil
		return m.enter(ScreenShop)
	}
	return m, cmd
}

func (m Model) updateShop(msg tea.Msg) (tea.Model, tea.Cmd) {
	newShop, cmd := m.shop.Update(msg)
	if s, ok := newShop.(ShopModel); ok {
		m.shop = s
	}

	if m.shop.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.shop.IsGoingBack() {
		return m.enter(ScreenMenu)
	}
	return m, cmd
}

func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if s, ok := newScores.(ScoreboardModel); ok {
		m.scores = s
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.enter(ScreenMenu)
	}
	return m, cmd
}

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case ScreenGame:
		return m.game.View()
	case ScreenShop:
		return m.shop.View()
	case ScreenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Current returns the active screen.
func (m Model) Current() Screen {
	return m.current
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for local play.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse press/release for swipe input
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
