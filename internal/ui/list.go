package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tododeck/internal/api"
)

// Filter selects which part of the collection the list shows
type Filter int

const (
	FilterAll Filter = iota
	FilterOpen
	FilterCompleted
)

// String returns the stable identifier used by tests and the header
func (f Filter) String() string {
	switch f {
	case FilterOpen:
		return "open"
	case FilterCompleted:
		return "completed"
	default:
		return "all"
	}
}

// Label returns the short uppercase form for the filter bar
func (f Filter) Label() string {
	switch f {
	case FilterOpen:
		return "OPEN"
	case FilterCompleted:
		return "DONE"
	default:
		return "ALL"
	}
}

// Match reports whether a todo belongs to the filtered view
func (f Filter) Match(t api.Todo) bool {
	switch f {
	case FilterOpen:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// applyFilter returns the subset of todos matching the filter,
// preserving the collection's relative order.
func applyFilter(todos []api.Todo, f Filter) []api.Todo {
	if f == FilterAll {
		return todos
	}
	visible := make([]api.Todo, 0, len(todos))
	for _, t := range todos {
		if f.Match(t) {
			visible = append(visible, t)
		}
	}
	return visible
}

// todosLoadedMsg carries the result of a collection fetch
type todosLoadedMsg struct {
	todos []api.Todo
	err   error
}

// TodoSelectedMsg is emitted when the user picks a todo from the list.
// The parent model owns the selection; the list never tracks it.
type TodoSelectedMsg struct {
	ID int
}

// ListModel is the filterable collection view
type ListModel struct {
	fetcher TodoFetcher

	todos   []api.Todo // full set, response order
	visible []api.Todo // derived from todos + filter
	filter  Filter
	cursor  int

	loading bool
	err     error
	status  string // transient line for refresh failures

	spin   spinner.Model
	width  int
	height int
}

// NewListModel creates a list view that fetches on Init
func NewListModel(fetcher TodoFetcher) ListModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = activeTheme.SelectedStyle()

	return ListModel{
		fetcher: fetcher,
		todos:   []api.Todo{},
		visible: []api.Todo{},
		filter:  FilterAll,
		loading: true,
		spin:    sp,
	}
}

// Init starts the initial collection fetch
func (m ListModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, fetchTodos(m.fetcher))
}

// fetchTodos returns a command that loads the full collection.
// One request per activation, no retry.
func fetchTodos(fetcher TodoFetcher) tea.Cmd {
	return func() tea.Msg {
		todos, err := fetcher.FetchTodos()
		return todosLoadedMsg{todos: todos, err: err}
	}
}

// selectTodo emits the selection message for the given identifier
func selectTodo(id int) tea.Cmd {
	return func() tea.Msg {
		return TodoSelectedMsg{ID: id}
	}
}

// SetSize updates the terminal dimensions
func (m *ListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the identifier under the cursor, if any
func (m ListModel) Selected() (int, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return 0, false
	}
	return m.visible[m.cursor].ID, true
}

// Neighbor returns the identifier offset steps away from id within the
// current visible view. Used for h/l navigation from the detail view.
func (m ListModel) Neighbor(id, offset int) (int, bool) {
	for i, t := range m.visible {
		if t.ID == id {
			j := i + offset
			if j < 0 || j >= len(m.visible) {
				return 0, false
			}
			return m.visible[j].ID, true
		}
	}
	return 0, false
}

// Update handles messages for the list view
func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case todosLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			// A failed reload keeps whatever was shown before.
			if len(m.todos) > 0 {
				m.err = nil
				m.status = fmt.Sprintf("✗ Refresh failed: %v", msg.err)
			}
			return m, nil
		}
		m.status = ""
		m.todos = msg.todos
		m.visible = applyFilter(m.todos, m.filter)
		if m.cursor >= len(m.visible) {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "g":
			m.cursor = 0
		case "G":
			if len(m.visible) > 0 {
				m.cursor = len(m.visible) - 1
			}
		case "1":
			m.setFilter(FilterAll)
		case "2":
			m.setFilter(FilterOpen)
		case "3":
			m.setFilter(FilterCompleted)
		case "enter":
			if id, ok := m.Selected(); ok {
				return m, selectTodo(id)
			}
		case "r":
			// Fresh activation: restart the fetch machine at Loading.
			m.loading = true
			m.status = ""
			return m, tea.Batch(m.spin.Tick, fetchTodos(m.fetcher))
		}
	}

	return m, nil
}

// setFilter applies a selector and recomputes the visible subset.
// Pure and local: no network access.
func (m *ListModel) setFilter(f Filter) {
	m.filter = f
	m.visible = applyFilter(m.todos, f)
	m.cursor = 0
}

// View renders the list view
func (m ListModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	theme := activeTheme

	// Filter controls stay visible in every state.
	header := m.renderHeader(theme)

	var body string
	switch {
	case m.loading && len(m.todos) == 0:
		body = fmt.Sprintf("%s Loading todos...", m.spin.View())
	case m.err != nil:
		body = theme.ErrorStyle().Render(fmt.Sprintf("Error: %v", m.err))
	default:
		body = m.renderRows(theme)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		body,
		m.renderStatus(theme),
	)
}

func (m ListModel) renderHeader(theme StyleTheme) string {
	title := theme.HeaderStyle().Render(" TODODECK ")

	// Filter bar: each control keeps a stable key so tests can drive it.
	var controls []string
	for _, f := range []Filter{FilterAll, FilterOpen, FilterCompleted} {
		label := fmt.Sprintf("[%d] %s", int(f)+1, f.Label())
		if f == m.filter {
			controls = append(controls, theme.SelectedStyle().Render(label))
		} else {
			controls = append(controls, theme.MutedStyle().Render(label))
		}
	}

	var open, done int
	for _, t := range m.todos {
		if t.Completed {
			done++
		} else {
			open++
		}
	}
	counts := theme.MutedStyle().Render(
		fmt.Sprintf("%d todos · %d open · %d done · Filter: %s",
			len(m.todos), open, done, m.filter.Label()))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		strings.Join(controls, "  "),
		counts,
	)
}

func (m ListModel) renderRows(theme StyleTheme) string {
	if len(m.visible) == 0 {
		return theme.MutedStyle().Italic(true).Render("No todos match this filter.")
	}

	// Scroll a window of rows around the cursor.
	maxVisible := m.height - 7 // header, filter bar, counts, spacing, status
	if maxVisible < 1 {
		maxVisible = 1
	}
	startIdx := 0
	if m.cursor > maxVisible-2 {
		startIdx = m.cursor - maxVisible + 2
	}
	endIdx := startIdx + maxVisible
	if endIdx > len(m.visible) {
		endIdx = len(m.visible)
		if endIdx-startIdx < maxVisible {
			startIdx = max(0, endIdx-maxVisible)
		}
	}

	var lines []string
	for i := startIdx; i < endIdx; i++ {
		t := m.visible[i]

		var glyph string
		if t.Completed {
			glyph = theme.SuccessStyle().Render("✓")
		} else {
			glyph = lipgloss.NewStyle().Foreground(theme.Orange).Render("●")
		}

		selector := "  "
		titleStyle := theme.TextStyle()
		if i == m.cursor {
			selector = theme.SelectedStyle().Render("▸ ")
			titleStyle = theme.SelectedStyle()
		}

		titleText := truncate(t.Title, m.width-12)
		lines = append(lines, fmt.Sprintf("%s%s #%d %s",
			selector, glyph, t.ID, titleStyle.Render(titleText)))
	}

	return strings.Join(lines, "\n")
}

func (m ListModel) renderStatus(theme StyleTheme) string {
	if m.status != "" {
		return theme.ErrorStyle().Render(m.status)
	}
	if m.loading && len(m.todos) > 0 {
		return fmt.Sprintf("%s Refreshing...", m.spin.View())
	}
	return theme.MutedStyle().Render(
		"j/k:navigate  enter:open  1/2/3:filter  r:refresh  q:quit")
}
