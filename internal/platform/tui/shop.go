package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/usmanser71/runner-game-pro/internal/shop"
)

// ShopKeyMap defines the key bindings for the skin shop.
type ShopKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Buy  key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ShopKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Buy, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ShopKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Buy}, {k.Back, k.Quit}}
}

// DefaultShopKeyMap returns default key bindings.
func DefaultShopKeyMap() ShopKeyMap {
	return ShopKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
		Buy:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "buy / equip")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Shopper is the part of session.Host the shop needs.
type Shopper interface {
	shop.Buyer
	Balance() int
	Equipped() string
}

// ShopModel lists skins and buys the highlighted one.
type ShopModel struct {
	catalog   *shop.Catalog
	buyer     Shopper
	table     table.Model
	help      help.Model
	keys      ShopKeyMap
	message   string
	width     int
	quitting  bool
	goingBack bool
}

// NewShopModel creates a shop screen for buyer.
func NewShopModel(catalog *shop.Catalog, buyer Shopper, width, height int) ShopModel {
	m := ShopModel{
		catalog: catalog,
		buyer:   buyer,
		help:    help.New(),
		keys:    DefaultShopKeyMap(),
		width:   width,
	}
	m.table = newShopTable(height)
	m.updateRows()
	return m
}

func newShopTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Skin", Width: 16},
			{Title: "Price", Width: 8},
			{Title: "", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, height-8)),
	)
	t.SetStyles(tableStyles())
	return t
}

// tableStyles is shared by the shop and the scoreboard.
func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}

func (m *ShopModel) updateRows() {
	items := m.catalog.Items()
	rows := make([]table.Row, len(items))
	for i, it := range items {
		status := ""
		if it.ID == m.buyer.Equipped() {
			status = "equipped"
		}
		rows[i] = table.Row{it.Name, fmt.Sprintf("%d", it.Price), status}
	}
	m.table.SetRows(rows)
}

// Init initializes the shop model.
func (m ShopModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the shop.
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Buy):
			m.buySelected()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.table.SetHeight(max(3, msg.Height-8))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ShopModel) buySelected() {
	items := m.catalog.Items()
	i := m.table.Cursor()
	if i < 0 || i >= len(items) {
		return
	}
	it, err := m.catalog.Buy(m.buyer, items[i].ID)
	m.message = shop.Message(it, err)
	m.updateRows()
}

// View renders the shop.
func (m ShopModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SKIN SHOP"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(coinStyle.Render(fmt.Sprintf("● %d coins", m.buyer.Balance())), m.width))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(box.Render(m.table.View()))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString(" " + scoreStyle.Render(m.message))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Message returns the result line of the last purchase.
func (m ShopModel) Message() string {
	return m.message
}

// IsGoingBack returns true if user wants to go back.
func (m ShopModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ShopModel) IsQuitting() bool {
	return m.quitting
}
