package ui

import (
	"errors"
	"strings"
	"testing"

	"tododeck/internal/api"
)

func testDetailModel() DetailModel {
	m := NewDetailModel(&fakeFetcher{})
	m.SetSize(100, 30)
	return m
}

func TestDetailLoadSuccess(t *testing.T) {
	m := testDetailModel()
	_ = m.SetID(5)

	todo := api.Todo{ID: 5, UserID: 2, Title: "Buy milk", Completed: true}
	m, _ = m.Update(todoLoadedMsg{id: 5, todo: todo})

	if m.loading {
		t.Error("Loading should clear on success")
	}
	if m.err != nil {
		t.Errorf("Unexpected error: %v", m.err)
	}

	output := m.View()
	if !strings.Contains(output, "TODO #5") {
		t.Errorf("Header should show the identifier. Got: %s", output)
	}
	if !strings.Contains(output, "Buy milk") {
		t.Error("Title should be rendered")
	}
	if !strings.Contains(output, "Completed") {
		t.Error("Completion state should read Completed")
	}
	if !strings.Contains(output, "User 2") {
		t.Error("Owner should be rendered")
	}
}

func TestDetailOpenStatus(t *testing.T) {
	m := testDetailModel()
	_ = m.SetID(1)

	m, _ = m.Update(todoLoadedMsg{id: 1, todo: api.Todo{ID: 1, Title: "Walk dog", Completed: false}})

	output := m.View()
	if !strings.Contains(output, "Open") {
		t.Error("Incomplete todo should read Open")
	}
	if strings.Contains(output, "Completed") {
		t.Error("Incomplete todo must not read Completed")
	}
}

func TestDetailLoadError(t *testing.T) {
	m := testDetailModel()
	_ = m.SetID(5)

	m, _ = m.Update(todoLoadedMsg{id: 5, err: errors.New("API error: status 500")})

	if m.loading {
		t.Error("Loading should clear on failure")
	}
	if m.err == nil {
		t.Fatal("Expected error to be recorded")
	}

	output := m.View()
	if !strings.Contains(output, "Error") {
		t.Errorf("Error state should be rendered. Got: %s", output)
	}
}

func TestDetailLoadingView(t *testing.T) {
	m := testDetailModel()
	_ = m.SetID(5)

	output := m.View()
	if !strings.Contains(output, "Loading") {
		t.Errorf("Loading state should show an indicator. Got: %s", output)
	}
}

// A reply for a previous identifier must never overwrite state for the
// current one, regardless of arrival order.
func TestDetailStaleResponseDiscarded(t *testing.T) {
	m := testDetailModel()
	_ = m.SetID(1)
	_ = m.SetID(2)

	// The reply for id 1 arrives after the target moved to id 2.
	m, _ = m.Update(todoLoadedMsg{id: 1, todo: api.Todo{ID: 1, Title: "Stale"}})

	if !m.loading {
		t.Error("Stale reply must not clear loading for the current target")
	}
	if m.todo != nil {
		t.Error("Stale reply must not populate the todo")
	}

	m, _ = m.Update(todoLoadedMsg{id: 2, todo: api.Todo{ID: 2, Title: "Fresh"}})

	if m.loading {
		t.Error("Matching reply should clear loading")
	}
	if m.todo == nil || m.todo.ID != 2 {
		t.Fatalf("Expected todo 2 to be applied, got %+v", m.todo)
	}
	if strings.Contains(m.View(), "Stale") {
		t.Error("Stale data leaked into the view")
	}
}

func TestDetailStaleErrorDiscarded(t *testing.T) {
	m := testDetailModel()
	_ = m.SetID(1)
	_ = m.SetID(2)

	m, _ = m.Update(todoLoadedMsg{id: 1, err: errors.New("network error")})

	if m.err != nil {
		t.Error("Stale error must not be recorded for the current target")
	}
	if !m.loading {
		t.Error("Stale error must not clear loading for the current target")
	}
}

func TestSetIDRestartsAtLoading(t *testing.T) {
	m := testDetailModel()
	_ = m.SetID(1)
	m, _ = m.Update(todoLoadedMsg{id: 1, todo: api.Todo{ID: 1, Title: "First"}})

	cmd := m.SetID(2)
	if cmd == nil {
		t.Fatal("SetID should return a fetch command")
	}
	if !m.loading {
		t.Error("New identifier should restart at Loading")
	}
	if m.todo != nil {
		t.Error("Previous todo should not linger for a new identifier")
	}
	if m.id != 2 {
		t.Errorf("Expected target id 2, got %d", m.id)
	}
}

func TestFetchTodoTagsReply(t *testing.T) {
	fetcher := &fakeFetcher{todos: []api.Todo{{ID: 3, Title: "Tagged"}}}

	msg := fetchTodo(fetcher, 3)()
	loaded, ok := msg.(todoLoadedMsg)
	if !ok {
		t.Fatalf("Expected todoLoadedMsg, got %T", msg)
	}
	if loaded.id != 3 {
		t.Errorf("Reply should carry the requested id, got %d", loaded.id)
	}
	if loaded.err != nil || loaded.todo.Title != "Tagged" {
		t.Errorf("Unexpected reply: %+v", loaded)
	}
	if len(fetcher.todoCalls) != 1 || fetcher.todoCalls[0] != 3 {
		t.Errorf("Expected exactly one request for id 3, got %v", fetcher.todoCalls)
	}
}

func TestFetchTodoErrorTagged(t *testing.T) {
	fetcher := &fakeFetcher{todoErr: errors.New("API error: status 500")}

	msg := fetchTodo(fetcher, 8)()
	loaded := msg.(todoLoadedMsg)
	if loaded.id != 8 {
		t.Errorf("Failed reply should still carry the requested id, got %d", loaded.id)
	}
	if loaded.err == nil {
		t.Error("Expected the fetch error in the reply")
	}
}
