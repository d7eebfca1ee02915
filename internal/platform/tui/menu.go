package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chocodye/internal/catalog"
	"github.com/vovakirdan/chocodye/internal/meal"
	"github.com/vovakirdan/chocodye/internal/search"
)

// Stage is the current screen of the menu.
type Stage int

const (
	StagePickStart Stage = iota
	StagePickTarget
	StageResult
)

// menuChrome is the number of lines around the color list.
const menuChrome = 9

// MenuModel is the Bubble Tea model for the dye picker: pick the current
// plumage color, then the wanted one, then read the meal.
type MenuModel struct {
	engine    *search.Engine
	cat       *catalog.Catalog
	palette   Palette
	keyMapper *KeyMapper
	colors    []catalog.Color // grouped by category
	cursor    int
	width     int
	height    int
	stage     Stage
	start     catalog.Color
	target    catalog.Color
	result    ResultModel
	meal      *meal.Meal
	quitting  bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(engine *search.Engine, palette Palette, width, height int) MenuModel {
	cat := engine.Graph().Catalog()

	colors := make([]catalog.Color, 0, cat.Len())
	for _, category := range catalog.Categories() {
		colors = append(colors, cat.ColorsIn(category)...)
	}

	m := MenuModel{
		engine:    engine,
		cat:       cat,
		palette:   palette,
		keyMapper: NewKeyMapper(),
		colors:    colors,
		width:     width,
		height:    height,
	}
	m.moveTo(cat.DefaultColor().ID)
	return m
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
		if m.stage == StageResult {
			var cmd tea.Cmd
			m.result, cmd = m.result.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.stage == StageResult {
		if action == MenuActionBack {
			m.stage = StagePickTarget
			m.meal = nil
			return m, nil
		}
		var cmd tea.Cmd
		m.result, cmd = m.result.Update(msg)
		return m, cmd
	}

	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.colors)-1 {
			m.cursor++
		}

	case MenuActionPageUp:
		m.cursor = max(0, m.cursor-m.listHeight())

	case MenuActionPageDown:
		m.cursor = min(len(m.colors)-1, m.cursor+m.listHeight())

	case MenuActionNextCategory:
		m.jumpCategory(1)

	case MenuActionPrevCategory:
		m.jumpCategory(-1)

	case MenuActionSelect:
		if len(m.colors) == 0 {
			return m, nil
		}
		picked := m.colors[m.cursor]
		if m.stage == StagePickStart {
			m.start = picked
			m.stage = StagePickTarget
			return m, nil
		}
		m.target = picked
		m.showResult()

	case MenuActionBack:
		if m.stage == StagePickTarget {
			m.stage = StagePickStart
			m.moveTo(m.start.ID)
		}
	}

	return m, nil
}

// showResult runs the search and switches to the result screen.
func (m *MenuModel) showResult() {
	found, err := m.engine.SearchIDs(m.start.ID, m.target.ID)
	if err != nil {
		found = meal.Meal{Start: m.start.ID, Target: m.target.ID}
		m.meal = nil
	} else {
		m.meal = &found
	}
	m.result = NewResultModel(m.cat, found, err, m.palette, m.width, m.height)
	m.stage = StageResult
}

// jumpCategory moves the cursor to the first color of the next or
// previous non-empty category.
func (m *MenuModel) jumpCategory(dir int) {
	if len(m.colors) == 0 {
		return
	}
	current := m.colors[m.cursor].Category
	i := m.cursor
	for {
		i += dir
		if i < 0 || i >= len(m.colors) {
			return
		}
		if m.colors[i].Category != current {
			break
		}
	}
	// Walking backwards lands on the last color; rewind to the first.
	target := m.colors[i].Category
	for i > 0 && m.colors[i-1].Category == target {
		i--
	}
	m.cursor = i
}

// moveTo places the cursor on a color.
func (m *MenuModel) moveTo(id catalog.ColorID) {
	for i, c := range m.colors {
		if c.ID == id {
			m.cursor = i
			return
		}
	}
}

// listHeight is the number of color rows that fit on screen.
func (m MenuModel) listHeight() int {
	return max(3, m.height-menuChrome)
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.stage == StageResult {
		return m.result.View()
	}

	var b strings.Builder

	// Title
	title := "  C H O C O D Y E  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	// Subtitle
	subtitle := "Select the current plumage color"
	if m.stage == StagePickTarget {
		subtitle = fmt.Sprintf("From %s, select the wanted color", catalog.DisplayName(m.start.Name))
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	// Color list, scrolled so the cursor stays visible
	height := m.listHeight()
	first := 0
	if m.cursor >= height {
		first = m.cursor - height + 1
	}
	last := min(len(m.colors), first+height)

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	prev := catalog.Category(catalog.CategoryCount)
	for i := first; i < last; i++ {
		c := m.colors[i]
		if c.Category != prev {
			b.WriteString(headerStyle.Render(strings.ToUpper(c.Category.String())))
			b.WriteString("\n")
			prev = c.Category
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s%s%s\n", cursor, m.palette.Chip(c.RGB), catalog.DisplayName(c.Name))
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Tab: Next group  |  Enter: Select  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Stage returns the current screen.
func (m MenuModel) Stage() Stage {
	return m.stage
}

// Cursor returns the color under the cursor.
func (m MenuModel) Cursor() catalog.Color {
	if len(m.colors) == 0 {
		return catalog.Color{}
	}
	return m.colors[m.cursor]
}

// Meal returns the meal on the result screen, or nil.
func (m MenuModel) Meal() *meal.Meal {
	return m.meal
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	// Meal is the last meal shown, if the user quit from the result screen.
	Meal *meal.Meal
	Quit bool
}

// RunMenu runs the menu until the user quits.
func RunMenu(engine *search.Engine, palette Palette, width, height int) (MenuResult, error) {
	model := NewMenuModel(engine, palette, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	return MenuResult{Meal: m.Meal(), Quit: m.IsQuitting()}, nil
}
