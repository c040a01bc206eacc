package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/usmanser71/runner-game-pro/internal/core"
	"github.com/usmanser71/runner-game-pro/internal/runner"
	"github.com/usmanser71/runner-game-pro/internal/session"
	"github.com/usmanser71/runner-game-pro/internal/shop"
)

// Rows reserved around the playfield: HUD above, help below.
const chromeRows = 2

var (
	hudStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	coinStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(string(core.ColorCoin))).Bold(true)
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(string(core.ColorBrightRed)))
)

// pointerPress is an in-progress mouse gesture.
type pointerPress struct {
	x, y int
	at   time.Time
}

// GameModel plays runs on a session.Host.
type GameModel struct {
	host      *session.Host
	catalog   *shop.Catalog
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	input     core.InputFrame
	score     *scoreCounter
	press     *pointerPress
	lastTick  time.Time
	now       func() time.Time

	quitting   bool
	backToMenu bool
	wantShop   bool
}

// NewGameModel creates a game screen and starts a run on host.
func NewGameModel(host *session.Host, catalog *shop.Catalog, cfg core.RuntimeConfig) (GameModel, error) {
	m := GameModel{
		host:      host,
		catalog:   catalog,
		screen:    core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		input:     core.NewInputFrame(),
		score:     &scoreCounter{},
		now:       time.Now,
	}
	if err := host.Start(); err != nil {
		return m, err
	}
	return m, nil
}

func playHeight(screenH int) int {
	return core.Max(1, screenH-chromeRows)
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}

	over := m.host.State() == runner.StateOver
	switch {
	case m.input.Has(core.ActionBack):
		m.input.Clear()
		if over || m.host.State() == runner.StatePaused {
			m.backToMenu = true
			return m, nil
		}
		m.host.TogglePause()
	case m.input.Has(core.ActionShop) && over:
		m.input.Clear()
		m.wantShop = true
	}
	return m, nil
}

// handleMouse classifies a press/release pair as a swipe or a tap.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.press = &pointerPress{x: msg.X, y: msg.Y, at: m.now()}
		}
	case tea.MouseActionRelease:
		if m.press == nil {
			return m, nil
		}
		sx, sy := m.scale()
		dx := float64(msg.X-m.press.x) / sx
		dy := float64(msg.Y-m.press.y) / sy
		m.input.Set(core.ClassifySwipe(dx, dy, m.now().Sub(m.press.at)))
		m.press = nil
	}
	return m, nil
}

// handleTick applies buffered input and advances the run.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	m.applyInput()
	m.host.Tick(dt)

	m.score.Set(m.host.Session().Score)
	m.score.Update(dt)

	return m, tickCmd(m.config.TickRate)
}

func (m *GameModel) applyInput() {
	defer m.input.Clear()

	if m.input.Has(core.ActionRestart) && m.host.State() == runner.StateOver {
		if err := m.host.Start(); err == nil {
			m.score.Reset(0)
			m.host.ClearErr()
		}
		return
	}
	if m.input.Has(core.ActionPause) {
		m.host.TogglePause()
	}
	if m.input.Has(core.ActionJump) {
		m.host.Jump()
	}
	if m.input.Has(core.ActionSlide) {
		m.host.Slide()
	}
}

// scale returns cells per world pixel on each axis.
func (m GameModel) scale() (sx, sy float64) {
	world := m.host.Config().World
	return float64(m.screen.Width()) / world.Width, float64(m.screen.Height()) / world.Height
}

// View renders the HUD, the playfield and the help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	rs := m.host.Snapshot()
	m.draw(rs)

	var b strings.Builder
	b.WriteString(m.hud(rs))
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.footer(rs))
	return b.String()
}

func (m GameModel) hud(rs runner.RenderState) string {
	parts := []string{
		coinStyle.Render(fmt.Sprintf("● %d", rs.TotalCoins)),
		hudStyle.Render(fmt.Sprintf("Best %d", rs.Best)),
		scoreStyle.Render(fmt.Sprintf("Score %d", m.score.Value())),
		hudStyle.Render(fmt.Sprintf("Speed %.0f", rs.Speed)),
	}
	return " " + strings.Join(parts, "   ")
}

func (m GameModel) footer(rs runner.RenderState) string {
	if err := m.host.Err(); err != nil {
		return errStyle.Render(" " + err.Error())
	}
	if rs.State == runner.StateOver {
		return helpStyle.Render(" r restart  tab shop  esc menu  q quit")
	}
	return helpStyle.Render(" space/↑ jump  ↓ slide  p pause  esc menu  q quit")
}

// draw paints the render state onto the screen buffer.
func (m GameModel) draw(rs runner.RenderState) {
	s := m.screen
	s.Clear()

	sx, sy := m.scale()
	groundY := int(m.host.Config().World.GroundY * sy)
	s.FillRect(0, groundY+1, s.Width(), s.Height()-groundY-1, '░', core.ColorGround)
	s.DrawHLine(0, groundY, s.Width(), '▀', core.ColorGray)

	for _, c := range rs.Coins {
		x, y, w, h := c.Scale(sx, sy)
		s.FillRect(x, y, w, h, '●', core.ColorCoin)
	}
	for _, o := range rs.Obstacles {
		x, y, w, h := o.Scale(sx, sy)
		s.FillRect(x, y, w, h, '█', core.ColorObstacle)
	}

	body := '█'
	if rs.Sliding {
		body = '▄'
	}
	x, y, w, h := rs.Player.Scale(sx, sy)
	s.FillRect(x, y, w, h, body, core.Color(m.catalog.ColorOf(rs.Skin)))

	switch rs.State {
	case runner.StatePaused:
		m.overlay([]string{"PAUSED", "p to resume"}, core.ColorWhite)
	case runner.StateOver:
		over := m.host.LastGameOver()
		lines := []string{"GAME OVER", fmt.Sprintf("Score %d   Best %d", over.FinalScore, over.Best)}
		if over.NewBest {
			lines = append(lines, "New best!")
		}
		m.overlay(lines, core.ColorBrightRed)
	}
}

// overlay draws a centered box with the given lines.
func (m GameModel) overlay(lines []string, c core.Color) {
	s := m.screen
	width := 0
	for _, l := range lines {
		width = core.Max(width, utf8.RuneCountInString(l))
	}
	w, h := width+4, len(lines)+2
	x, y := (s.Width()-w)/2, (s.Height()-h)/2

	s.FillRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h)
	for i, l := range lines {
		s.DrawTextColored(x+(w-utf8.RuneCountInString(l))/2, y+1+i, l, c)
	}
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// WantsShop returns true if user asked for the shop after a run.
func (m GameModel) WantsShop() bool {
	return m.wantShop
}
