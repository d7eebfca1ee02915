package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chocodye/internal/catalog"
	"github.com/vovakirdan/chocodye/internal/meal"
)

// Result layout constants
const (
	minWidthForSidebar = 70 // Minimum width to show the fruit totals beside the table
	sidebarWidth       = 26 // Width of the fruit totals sidebar
	resultChrome       = 10 // Lines used by title, summary and help
)

// ResultKeyMap defines the key bindings for the result screen.
type ResultKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
	Help key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k ResultKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit, k.Help},
	}
}

// DefaultResultKeyMap returns default key bindings.
func DefaultResultKeyMap() ResultKeyMap {
	return ResultKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "pick another target"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// ResultModel shows one meal: the feeding order in a table, the fruit
// totals and the cost.
type ResultModel struct {
	menu        meal.Menu
	start       catalog.Color
	target      catalog.Color
	err         error
	palette     Palette
	table       table.Model
	help        help.Model
	keys        ResultKeyMap
	width       int
	height      int
	showSidebar bool
}

// NewResultModel creates the result screen for a meal from start to target.
// A non-nil err is shown instead of the meal.
func NewResultModel(cat *catalog.Catalog, m meal.Meal, err error, palette Palette, width, height int) ResultModel {
	start, _ := cat.Color(m.Start)
	target, _ := cat.Color(m.Target)

	h := help.New()
	h.ShowAll = false
	h.Width = width

	r := ResultModel{
		start:       start,
		target:      target,
		err:         err,
		palette:     palette,
		help:        h,
		keys:        DefaultResultKeyMap(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	if err == nil {
		r.menu = meal.Format(cat, m)
	}

	r.table = r.createTable()
	r.updateTableRows()
	return r
}

// createTable creates a new table with appropriate columns.
func (r *ResultModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Fruit", Width: 22},
		{Title: "Qty", Width: 5},
	}

	height := r.height - resultChrome
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// updateTableRows fills the table with the feeding order.
func (r *ResultModel) updateTableRows() {
	rows := make([]table.Row, len(r.menu.Lines))
	for i, line := range r.menu.Lines {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			line.Name,
			strconv.Itoa(line.Quantity),
		}
	}
	r.table.SetRows(rows)
	r.table.GotoTop()
}

// Init initializes the result model.
func (r ResultModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the result screen. Back and quit are left
// to the enclosing menu.
func (r ResultModel) Update(msg tea.Msg) (ResultModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, r.keys.Help) {
			r.help.ShowAll = !r.help.ShowAll
			return r, nil
		}

	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.showSidebar = r.width >= minWidthForSidebar
		r.table = r.createTable()
		r.updateTableRows()
		r.help.Width = msg.Width
		return r, nil
	}

	r.table, cmd = r.table.Update(msg)
	return r, cmd
}

// View renders the result screen.
func (r ResultModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("%s -> %s",
		r.palette.Swatch(r.start.RGB, " "+catalog.DisplayName(r.start.Name)+" "),
		r.palette.Swatch(r.target.RGB, " "+catalog.DisplayName(r.target.Name)+" "))
	b.WriteString(centerText(titleStyle.Render(title), r.width))
	b.WriteString("\n\n")

	if r.err != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Padding(1, 4)
		b.WriteString(errStyle.Render("No meal found: " + r.err.Error()))
	} else {
		b.WriteString(r.renderBody())
		b.WriteString("\n")
		b.WriteString(r.renderSummary())
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(r.help.View(r.keys)))

	return b.String()
}

// renderBody renders the table and, on wide terminals, the fruit totals.
func (r ResultModel) renderBody() string {
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(r.menu.Lines) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("Nothing to feed.\nThe chocobo already has this color.")
	}

	tableRendered := tableStyle.Render(r.table.View())
	if !r.showSidebar {
		return tableRendered
	}

	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Shopping list\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")
	for _, line := range r.menu.Required {
		fmt.Fprintf(&sidebar, "%3d  %s\n", line.Quantity, line.Name)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", sidebarStyle.Render(sidebar.String()))
}

// renderSummary renders the total and the discount note.
func (r ResultModel) renderSummary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Fruit: %d   Cost: %s", r.menu.Quantity, r.menu.Cost)
	if r.menu.Savings > 0 {
		noteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		b.WriteString("\n")
		b.WriteString(noteStyle.Render(fmt.Sprintf(
			"The %s discount saves %d%% of the fruit.", catalog.FruitLemon.DisplayName(), r.menu.Savings)))
	}
	return b.String()
}

// Menu returns the formatted meal.
func (r ResultModel) Menu() meal.Menu {
	return r.menu
}

// Err returns the search error shown, if any.
func (r ResultModel) Err() error {
	return r.err
}
