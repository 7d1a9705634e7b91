package ui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tododeck/internal/api"
)

// fakeFetcher is an in-memory TodoFetcher for driving the views in tests
type fakeFetcher struct {
	todos    []api.Todo
	todosErr error
	todoErr  error

	listCalls int
	todoCalls []int
}

func (f *fakeFetcher) FetchTodos() ([]api.Todo, error) {
	f.listCalls++
	if f.todosErr != nil {
		return nil, f.todosErr
	}
	return f.todos, nil
}

func (f *fakeFetcher) FetchTodo(id int) (api.Todo, error) {
	f.todoCalls = append(f.todoCalls, id)
	if f.todoErr != nil {
		return api.Todo{}, f.todoErr
	}
	for _, t := range f.todos {
		if t.ID == id {
			return t, nil
		}
	}
	return api.Todo{}, fmt.Errorf("todo not found")
}

// sampleTodos is the two-item collection from the list scenarios
func sampleTodos() []api.Todo {
	return []api.Todo{
		{ID: 1, UserID: 1, Title: "A", Completed: false},
		{ID: 2, UserID: 1, Title: "B", Completed: true},
	}
}

// testListModel creates a sized, loaded list view
func testListModel(todos []api.Todo) ListModel {
	m := NewListModel(&fakeFetcher{todos: todos})
	m.SetSize(100, 40)
	m, _ = m.Update(todosLoadedMsg{todos: todos})
	return m
}

// updateRoot applies a message to the root model and re-asserts the concrete type
func updateRoot(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	root, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned unexpected model type %T", updated)
	}
	return root, cmd
}

// pressKey sends a single rune key to the root model
func pressKey(t *testing.T, m Model, r rune) (Model, tea.Cmd) {
	t.Helper()
	return updateRoot(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}
