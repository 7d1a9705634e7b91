package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"tododeck/internal/api"
)

// TodoFetcher is the slice of the API client the views depend on
type TodoFetcher interface {
	FetchTodos() ([]api.Todo, error)
	FetchTodo(id int) (api.Todo, error)
}

// Model is the root application state: it owns the selected
// identifier and decides which of the two views is showing.
type Model struct {
	fetcher TodoFetcher
	view    string // "list", "detail"
	list    ListModel
	detail  DetailModel
	width   int
	height  int
}

// NewModel creates the root model in the list view
func NewModel(fetcher TodoFetcher) Model {
	return Model{
		fetcher: fetcher,
		view:    "list",
		list:    NewListModel(fetcher),
		detail:  NewDetailModel(fetcher),
	}
}

// Init starts the initial collection fetch
func (m Model) Init() tea.Cmd {
	return m.list.Init()
}

// Update handles messages and routes them to the active view
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
		m.detail.SetSize(msg.Width, msg.Height)
		return m, nil

	case TodoSelectedMsg:
		// The list told us which todo the user picked; the selection
		// lives here, and the detail view gets the identifier.
		m.view = "detail"
		return m, m.detail.SetID(msg.ID)

	case todosLoadedMsg:
		m.list, cmd = m.list.Update(msg)
		return m, cmd

	case todoLoadedMsg:
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		// Both views share the spinner message type; only the loading
		// one reacts.
		var listCmd, detailCmd tea.Cmd
		m.list, listCmd = m.list.Update(msg)
		m.detail, detailCmd = m.detail.Update(msg)
		return m, tea.Batch(listCmd, detailCmd)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.view == "detail" {
				m.view = "list"
				return m, nil
			}
			return m, tea.Quit
		case "esc":
			if m.view == "detail" {
				m.view = "list"
				return m, nil
			}
		case "h", "left":
			if m.view == "detail" {
				if id, ok := m.list.Neighbor(m.detail.ID(), -1); ok {
					return m, m.detail.SetID(id)
				}
				return m, nil
			}
		case "l", "right":
			if m.view == "detail" {
				if id, ok := m.list.Neighbor(m.detail.ID(), 1); ok {
					return m, m.detail.SetID(id)
				}
				return m, nil
			}
		}

		if m.view == "detail" {
			m.detail, cmd = m.detail.Update(msg)
		} else {
			m.list, cmd = m.list.Update(msg)
		}
		return m, cmd
	}

	return m, nil
}

// View renders the active view
func (m Model) View() string {
	if m.view == "detail" {
		return m.detail.View()
	}
	return m.list.View()
}
