package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"tododeck/internal/api"
)

// todoLoadedMsg carries the result of a single-item fetch. It is
// tagged with the identifier it was fetched for so stale replies can
// be discarded.
type todoLoadedMsg struct {
	id   int
	todo api.Todo
	err  error
}

// DetailModel displays one todo fetched by identifier
type DetailModel struct {
	fetcher TodoFetcher

	id      int
	todo    *api.Todo
	loading bool
	err     error

	spin     spinner.Model
	viewport viewport.Model
	width    int
	height   int
}

// NewDetailModel creates an empty detail view
func NewDetailModel(fetcher TodoFetcher) DetailModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = activeTheme.SelectedStyle()

	return DetailModel{
		fetcher:  fetcher,
		spin:     sp,
		viewport: viewport.New(80, 20),
	}
}

// SetID targets a new identifier and restarts the fetch machine at
// Loading. Any reply still in flight for the previous identifier will
// no longer match and gets dropped.
func (m *DetailModel) SetID(id int) tea.Cmd {
	m.id = id
	m.todo = nil
	m.err = nil
	m.loading = true
	return tea.Batch(m.spin.Tick, fetchTodo(m.fetcher, id))
}

// ID returns the identifier the view is currently targeting
func (m DetailModel) ID() int {
	return m.id
}

// fetchTodo returns a command that loads one todo. The reply carries
// the requested identifier.
func fetchTodo(fetcher TodoFetcher, id int) tea.Cmd {
	return func() tea.Msg {
		todo, err := fetcher.FetchTodo(id)
		return todoLoadedMsg{id: id, todo: todo, err: err}
	}
}

// SetSize updates the terminal dimensions
func (m *DetailModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 4
	m.viewport.Height = height - 6
	if m.todo != nil {
		m.updateContent()
	}
}

// Update handles messages for the detail view
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case todoLoadedMsg:
		// Guard against a late reply for a previous identifier
		// overwriting state for the current one.
		if msg.id != m.id {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			todo := msg.todo
			m.todo = &todo
			m.updateContent()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			m.viewport.LineDown(1)
		case "k", "up":
			m.viewport.LineUp(1)
		}
	}

	return m, nil
}

// updateContent renders the todo as markdown into the viewport
func (m *DetailModel) updateContent() {
	if m.todo == nil {
		return
	}

	md := fmt.Sprintf("# %s\n\n**Status:** %s\n\n**Owner:** User %d\n\n**ID:** %d\n",
		m.todo.Title, statusText(*m.todo), m.todo.UserID, m.todo.ID)

	width := m.viewport.Width
	if width <= 0 {
		width = 76
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(activeTheme.ToGlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.viewport.SetContent(md)
		return
	}

	out, err := renderer.Render(md)
	if err != nil {
		m.viewport.SetContent(md)
		return
	}
	m.viewport.SetContent(out)
}

// statusText is the human-readable completion state
func statusText(t api.Todo) string {
	if t.Completed {
		return "Completed"
	}
	return "Open"
}

// View renders the detail view
func (m DetailModel) View() string {
	theme := activeTheme

	header := theme.HeaderStyle().Render(fmt.Sprintf(" TODO #%d ", m.id))

	var body string
	switch {
	case m.loading:
		body = fmt.Sprintf("%s Loading todo...", m.spin.View())
	case m.err != nil:
		body = theme.ErrorStyle().Render(fmt.Sprintf("Error: %v", m.err))
	case m.todo != nil:
		body = m.viewport.View()
	default:
		body = theme.MutedStyle().Render("Nothing loaded.")
	}

	status := theme.MutedStyle().Render(
		"j/k:scroll  h/l:prev/next  esc:back  q:quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		body,
		status,
	)
}
