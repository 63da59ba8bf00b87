package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/levelsmith/internal/storage"
)

// Catalog layout constants
const (
	minWidthForDetails = 80 // Minimum width to show the details panel
	detailsWidth       = 28 // Width of the details panel
)

// CatalogKeyMap defines the key bindings for the catalog browser.
type CatalogKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k CatalogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k CatalogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Refresh},
		{k.Back, k.Quit},
	}
}

// DefaultCatalogKeyMap returns default key bindings.
func DefaultCatalogKeyMap() CatalogKeyMap {
	return CatalogKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// CatalogModel is the Bubble Tea model for the level catalog browser.
type CatalogModel struct {
	store       *storage.Store // Catalog storage
	records     []storage.LevelRecord
	table       table.Model
	help        help.Model
	keys        CatalogKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showDetails bool // Whether to show the details panel
}

// NewCatalogModel creates a new catalog browser model.
func NewCatalogModel(store *storage.Store, width, height int) CatalogModel {
	keys := DefaultCatalogKeyMap()
	h := help.New()
	h.ShowAll = false

	m := CatalogModel{
		store:       store,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showDetails: width >= minWidthForDetails,
	}

	// Initialize table
	m.table = m.createTable()
	m.loadCatalog()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *CatalogModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 8},
		{Title: "Size", Width: 9},
		{Title: "Diff", Width: 5},
		{Title: "Jump", Width: 5},
		{Title: "Gap", Width: 4},
		{Title: "Drop", Width: 5},
		{Title: "Att", Width: 4},
		{Title: "Created", Width: 13},
	}

	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showDetails {
		tableWidth -= detailsWidth + 3 // Panel + border + gap
	}

	// Give the date column more room when we have the space
	if tableWidth > 66 {
		columns[7].Width = 18
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	// Table styles
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
	t.SetStyles(s)

	return t
}

// loadCatalog loads all catalog rows from storage.
func (m *CatalogModel) loadCatalog() {
	if m.store == nil {
		m.records = nil
		m.updateTableRows()
		return
	}

	records, err := m.store.Levels()
	if err != nil {
		m.records = nil
	} else {
		m.records = records
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current catalog rows.
func (m *CatalogModel) updateTableRows() {
	rows := make([]table.Row, len(m.records))
	for i, rec := range m.records {
		rows[i] = table.Row{
			fmt.Sprintf("level%d", rec.Index),
			fmt.Sprintf("%dx%d", rec.Width, rec.Height),
			fmt.Sprintf("%.2f", rec.Difficulty),
			fmt.Sprintf("%d", rec.MaxJumpUp),
			fmt.Sprintf("%d", rec.MaxGap),
			fmt.Sprintf("%d", rec.MaxDrop),
			fmt.Sprintf("%d", rec.Attempts),
			rec.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the catalog model.
func (m CatalogModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the catalog browser.
func (m CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			m.loadCatalog()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showDetails = m.width >= minWidthForDetails
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the catalog browser.
func (m CatalogModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "LEVEL CATALOG"
	if len(m.records) > 0 {
		title = fmt.Sprintf("LEVEL CATALOG - %d levels", len(m.records))
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showDetails {
		// Wide layout: table + details panel
		b.WriteString(m.renderWideLayout())
	} else {
		// Narrow layout: table only
		b.WriteString(m.renderNarrowLayout())
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the table with a details panel for the selection.
func (m CatalogModel) renderWideLayout() string {
	// Table
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := tableStyle.Render(m.renderTableContent())

	// Details panel for the selected level
	detailsStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(detailsWidth).
		Padding(0, 1)

	detailsRendered := detailsStyle.Render(m.renderDetails())

	// Join horizontally
	return lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", detailsRendered)
}

// renderNarrowLayout renders the table alone, centered.
func (m CatalogModel) renderNarrowLayout() string {
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return centerText(tableStyle.Render(m.renderTableContent()), m.width)
}

// renderTableContent renders the table or empty message.
func (m CatalogModel) renderTableContent() string {
	if len(m.records) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No levels cataloged yet.\nRun the generator to fill it!")
	}

	return m.table.View()
}

// renderDetails renders the full record for the selected table row.
func (m CatalogModel) renderDetails() string {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.records) {
		return "Selection\n" + strings.Repeat("-", detailsWidth-4)
	}
	rec := m.records[cursor]

	var b strings.Builder
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(headerStyle.Render(fmt.Sprintf("level%d", rec.Index)))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", detailsWidth-4))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("size       %dx%d\n", rec.Width, rec.Height))
	b.WriteString(fmt.Sprintf("difficulty %.2f\n", rec.Difficulty))
	b.WriteString(fmt.Sprintf("jump up    %d\n", rec.MaxJumpUp))
	b.WriteString(fmt.Sprintf("gap        %d\n", rec.MaxGap))
	b.WriteString(fmt.Sprintf("drop       %d\n", rec.MaxDrop))
	b.WriteString(fmt.Sprintf("attempts   %d\n", rec.Attempts))
	b.WriteString(fmt.Sprintf("gen time   %dms\n", rec.GenMillis))
	b.WriteString(fmt.Sprintf("created    %s\n", rec.CreatedAt.Format("Jan 02 15:04")))
	b.WriteString(fmt.Sprintf("seed\n%d\n", rec.Seed))

	return b.String()
}

// IsGoingBack returns true if user wants to go back.
func (m CatalogModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m CatalogModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunCatalog runs the catalog browser in the local terminal.
// Returns true if user backed out, false if quitting.
func RunCatalog(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewCatalogModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(CatalogModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
