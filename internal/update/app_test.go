package update

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskpad/taskpad/internal/auth"
	"github.com/taskpad/taskpad/internal/genai"
	"github.com/taskpad/taskpad/internal/model"
	"github.com/taskpad/taskpad/internal/storage"
	"github.com/taskpad/taskpad/internal/taskstore"
)

func newTestDeps() Deps {
	kv := storage.NewMemStore()
	return Deps{
		Auth:      auth.New(kv, nil),
		Tasks:     taskstore.New(kv, nil),
		Generator: genai.NewMockGenerator(0),
		KV:        kv,
	}
}

// step feeds one message through Update and returns the typed model plus
// the produced command.
func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	typed, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want update.Model", next)
	}
	return typed, cmd
}

// runCmd executes a tea.Cmd and feeds its message back through Update.
func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	next, _ := step(t, m, cmd())
	return next
}

func loggedInModel(t *testing.T) (Model, Deps) {
	t.Helper()
	deps := newTestDeps()
	if _, err := deps.Auth.Login(context.Background(), "test@test.com", "Password123!"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	m := New(deps)
	if m.Screen != ScreenTasks {
		t.Fatalf("Screen = %q, want %q", m.Screen, ScreenTasks)
	}
	m = runCmd(t, m, m.loadTasksCmd())
	return m, deps
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewStartsOnAuthScreen(t *testing.T) {
	m := New(newTestDeps())
	if m.Screen != ScreenAuth {
		t.Fatalf("Screen = %q, want %q", m.Screen, ScreenAuth)
	}
	if m.Auth.Mode != AuthModeLogin {
		t.Fatalf("Auth.Mode = %q, want %q", m.Auth.Mode, AuthModeLogin)
	}
}

func TestLoginSuccessSwitchesToTasks(t *testing.T) {
	m := New(newTestDeps())
	m.emailInput.SetValue("test@test.com")
	m.passwordInput.SetValue("Password123!")

	next, cmd := m.submitAuth()
	m = next.(Model)
	if !m.Auth.Busy {
		t.Fatal("expected busy state while authenticating")
	}

	m = runCmd(t, m, cmd)
	if m.Screen != ScreenTasks {
		t.Fatalf("Screen = %q, want %q", m.Screen, ScreenTasks)
	}
	if m.Auth.Busy {
		t.Fatal("busy flag should clear after the result lands")
	}
}

func TestLoginFailureStaysOnAuth(t *testing.T) {
	m := New(newTestDeps())
	m.emailInput.SetValue("someone@else.com")
	m.passwordInput.SetValue("wrong")

	next, cmd := m.submitAuth()
	m = runCmd(t, next.(Model), cmd)

	if m.Screen != ScreenAuth {
		t.Fatalf("Screen = %q, want %q", m.Screen, ScreenAuth)
	}
	if !m.Status.IsError {
		t.Fatal("expected an error status after a rejected login")
	}
}

func TestRestoredSessionSkipsAuth(t *testing.T) {
	m, _ := loggedInModel(t)
	if m.Tasks.Loading {
		t.Fatal("loading flag should clear after tasks load")
	}
}

func TestFormAddsTask(t *testing.T) {
	m, _ := loggedInModel(t)

	m, _ = step(t, m, keyRune('a'))
	if !m.Form.Active {
		t.Fatal("form should open on 'a'")
	}
	m.titleInput.SetValue("Buy milk")
	m.notesArea.SetValue("2% if they have it")

	next, cmd := m.submitForm()
	m = runCmd(t, next.(Model), cmd)

	if len(m.Tasks.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(m.Tasks.Items))
	}
	if m.Tasks.Items[0].Title != "Buy milk" {
		t.Fatalf("Title = %q, want %q", m.Tasks.Items[0].Title, "Buy milk")
	}
	if m.Form.Active {
		t.Fatal("form should close after saving")
	}
}

func TestFormRejectsEmptyTitle(t *testing.T) {
	m, _ := loggedInModel(t)
	m.openForm(model.Task{})
	m.titleInput.SetValue("   ")

	next, cmd := m.submitForm()
	m = next.(Model)
	if cmd != nil {
		t.Fatal("no command should run for an empty title")
	}
	if !m.Status.IsError {
		t.Fatal("expected a validation error status")
	}
	if !m.Form.Active {
		t.Fatal("form should stay open")
	}
}

func TestEditUpdatesSelectedTask(t *testing.T) {
	m, deps := loggedInModel(t)
	if _, err := deps.Tasks.Add(model.Suggestion{Title: "Old title"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	m = runCmd(t, m, m.loadTasksCmd())

	m, _ = step(t, m, keyRune('e'))
	if m.Form.EditingID == "" {
		t.Fatal("edit should target the selected task")
	}
	m.titleInput.SetValue("New title")

	next, cmd := m.submitForm()
	m = runCmd(t, next.(Model), cmd)

	if m.Tasks.Items[0].Title != "New title" {
		t.Fatalf("Title = %q, want %q", m.Tasks.Items[0].Title, "New title")
	}
}

func TestSpaceTogglesStatus(t *testing.T) {
	m, deps := loggedInModel(t)
	if _, err := deps.Tasks.Add(model.Suggestion{Title: "Toggle me"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	m = runCmd(t, m, m.loadTasksCmd())

	next, cmd := step(t, m, keyRune(' '))
	m = runCmd(t, next, cmd)

	if m.Tasks.Items[0].Status != model.StatusCompleted {
		t.Fatalf("Status = %q, want %q", m.Tasks.Items[0].Status, model.StatusCompleted)
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	m, deps := loggedInModel(t)
	if _, err := deps.Tasks.Add(model.Suggestion{Title: "Doomed"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	m = runCmd(t, m, m.loadTasksCmd())

	m, _ = step(t, m, keyRune('d'))
	if !m.Confirm.Active {
		t.Fatal("delete should ask for confirmation first")
	}

	m, _ = step(t, m, keyRune('n'))
	if m.Confirm.Active {
		t.Fatal("'n' should dismiss the confirmation")
	}
	if len(m.Tasks.Items) != 1 {
		t.Fatalf("len(Items) = %d after cancel, want 1", len(m.Tasks.Items))
	}

	m, _ = step(t, m, keyRune('d'))
	next, cmd := step(t, m, keyRune('y'))
	m = runCmd(t, next, cmd)
	if len(m.Tasks.Items) != 0 {
		t.Fatalf("len(Items) = %d after confirm, want 0", len(m.Tasks.Items))
	}
}

func TestQuickAddSubmitsTask(t *testing.T) {
	m, _ := loggedInModel(t)

	m, _ = step(t, m, keyRune('n'))
	if !m.Tasks.QuickAddMode {
		t.Fatal("'n' should enter quick-add mode")
	}
	for _, r := range "Pay rent" {
		m, _ = step(t, m, keyRune(r))
	}
	next, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = runCmd(t, next, cmd)

	if len(m.Tasks.Items) != 1 || m.Tasks.Items[0].Title != "Pay rent" {
		t.Fatalf("Items = %+v, want one task titled %q", m.Tasks.Items, "Pay rent")
	}
	if !m.Tasks.QuickAddMode {
		t.Fatal("quick-add mode should stay active for the next entry")
	}
	if m.quickAddInput.Value() != "" {
		t.Fatalf("input = %q, want empty after submit", m.quickAddInput.Value())
	}

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Tasks.QuickAddMode {
		t.Fatal("esc should leave quick-add mode")
	}
}

func TestSummaryCountsWholeCollection(t *testing.T) {
	m, deps := loggedInModel(t)
	for _, title := range []string{"One", "Two"} {
		if _, err := deps.Tasks.Add(model.Suggestion{Title: title}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	m = runCmd(t, m, m.loadTasksCmd())
	if _, err := deps.Tasks.ToggleStatus(m.Tasks.Items[0].ID); err != nil {
		t.Fatalf("ToggleStatus: %v", err)
	}
	m = runCmd(t, m, m.loadTasksCmd())

	// hide the completed row; the summary must still cover everything
	m.Tasks.Query.Filter = model.FilterPending
	m.refreshVisible()

	data := m.taskListData()
	if data.PercentComplete != 50 {
		t.Fatalf("PercentComplete = %d, want 50", data.PercentComplete)
	}
	for _, want := range []string{"1 done", "1 pending", "2 total", "50% complete"} {
		if !strings.Contains(data.SummaryLine, want) {
			t.Fatalf("SummaryLine = %q, missing %q", data.SummaryLine, want)
		}
	}
}

func TestSummaryHiddenWhenEmpty(t *testing.T) {
	m, _ := loggedInModel(t)
	if line, percent := m.summary(); line != "" || percent != 0 {
		t.Fatalf("summary() = (%q, %d), want empty", line, percent)
	}
}

func TestSearchNarrowsVisible(t *testing.T) {
	m, deps := loggedInModel(t)
	for _, title := range []string{"Buy milk", "Walk the dog"} {
		if _, err := deps.Tasks.Add(model.Suggestion{Title: title}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	m = runCmd(t, m, m.loadTasksCmd())

	m, _ = step(t, m, keyRune('/'))
	if !m.Tasks.SearchMode {
		t.Fatal("'/' should enter search mode")
	}
	for _, r := range "milk" {
		m, _ = step(t, m, keyRune(r))
	}

	if len(m.Tasks.Visible) != 1 {
		t.Fatalf("len(Visible) = %d, want 1", len(m.Tasks.Visible))
	}
	if m.Tasks.Visible[0].Title != "Buy milk" {
		t.Fatalf("Visible[0] = %q, want %q", m.Tasks.Visible[0].Title, "Buy milk")
	}

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if len(m.Tasks.Visible) != 2 {
		t.Fatalf("len(Visible) = %d after clearing search, want 2", len(m.Tasks.Visible))
	}
}

func TestFilterCycles(t *testing.T) {
	m, _ := loggedInModel(t)

	want := []model.FilterStatus{model.FilterCompleted, model.FilterPending, model.FilterAll}
	for _, expected := range want {
		m, _ = step(t, m, keyRune('f'))
		if m.Tasks.Query.Filter != expected {
			t.Fatalf("Filter = %q, want %q", m.Tasks.Query.Filter, expected)
		}
	}
}

func TestPaletteFilterCommand(t *testing.T) {
	m, _ := loggedInModel(t)

	next, _ := m.runCommand("/filter completed")
	m = next.(Model)
	if m.Tasks.Query.Filter != model.FilterCompleted {
		t.Fatalf("Filter = %q, want %q", m.Tasks.Query.Filter, model.FilterCompleted)
	}
	if m.Status.Text == "" || m.Status.IsError {
		t.Fatalf("expected an info status, got %+v", m.Status)
	}
}

func TestPaletteUnknownCommandShowsError(t *testing.T) {
	m, _ := loggedInModel(t)

	next, cmd := m.runCommand("/frobnicate")
	m = next.(Model)
	if cmd != nil {
		t.Fatal("unknown command should not produce a tea.Cmd")
	}
	if !m.Status.IsError {
		t.Fatal("expected an error status")
	}
}

func TestPaletteAddCommand(t *testing.T) {
	m, _ := loggedInModel(t)

	next, cmd := m.runCommand("/add Water the plants")
	m = runCmd(t, next.(Model), cmd)
	if len(m.Tasks.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(m.Tasks.Items))
	}
}

func TestPaletteLangSwitch(t *testing.T) {
	m, deps := loggedInModel(t)

	next, _ := m.runCommand("/lang hi")
	m = next.(Model)
	if m.msgs.Locale() != "hi" {
		t.Fatalf("Locale = %q, want %q", m.msgs.Locale(), "hi")
	}
	if got := storageLocale(t, deps); got != "hi" {
		t.Fatalf("persisted locale = %q, want %q", got, "hi")
	}
}

func storageLocale(t *testing.T, deps Deps) string {
	t.Helper()
	raw, ok, err := deps.KV.Load(storage.LanguageKey)
	if err != nil || !ok {
		t.Fatalf("Load(LanguageKey): ok=%v err=%v", ok, err)
	}
	return string(raw)
}

func TestAIGenerateAcceptAll(t *testing.T) {
	m, _ := loggedInModel(t)

	m, _ = step(t, m, keyRune('g'))
	if !m.AI.Active {
		t.Fatal("'g' should open the goal modal")
	}
	m.goalInput.SetValue("plan a picnic")

	next, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = next
	if !m.AI.Generating {
		t.Fatal("expected generating state after submit")
	}
	m = runCmd(t, m, cmd)
	if m.AI.Generating {
		t.Fatal("generating flag should clear when suggestions arrive")
	}
	if len(m.AI.Suggestions) == 0 {
		t.Fatal("mock generator should return suggestions")
	}

	wantCount := len(m.AI.Suggestions)
	next2, accept := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = runCmd(t, next2, accept)
	if len(m.Tasks.Items) != wantCount {
		t.Fatalf("len(Items) = %d, want %d", len(m.Tasks.Items), wantCount)
	}
	if m.AI.Active {
		t.Fatal("modal should close after accepting")
	}
}

func TestAIStaleResultIgnored(t *testing.T) {
	m, _ := loggedInModel(t)

	m.openAIModal()
	m.AI.Generating = true
	m.AI.RequestID = 2

	m, _ = step(t, m, AIResultMsg{RequestID: 1, Suggestions: []model.Suggestion{{Title: "stale"}}})
	if len(m.AI.Suggestions) != 0 {
		t.Fatal("a stale response must not populate the review list")
	}
	if !m.AI.Generating {
		t.Fatal("a stale response must not clear the generating flag")
	}

	m.closeAIModal()
	m, _ = step(t, m, AIResultMsg{RequestID: 2, Suggestions: []model.Suggestion{{Title: "late"}}})
	if m.AI.Active || len(m.AI.Suggestions) != 0 {
		t.Fatal("a response after dismissal must be dropped")
	}
}

func TestAIResultAfterReopenIgnored(t *testing.T) {
	m, _ := loggedInModel(t)

	m.openAIModal()
	m.goalInput.SetValue("first goal")
	next, _ := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = next
	inFlight := m.AI.RequestID

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m.openAIModal()

	m, _ = step(t, m, AIResultMsg{RequestID: inFlight, Suggestions: []model.Suggestion{{Title: "from the first goal"}}})
	if len(m.AI.Suggestions) != 0 {
		t.Fatalf("a response for a dismissed request must not populate the reopened modal: %+v", m.AI.Suggestions)
	}
	if m.AI.Generating {
		t.Fatal("the reopened modal should still be waiting for input")
	}
}

func TestAIFailureShowsNotice(t *testing.T) {
	m, _ := loggedInModel(t)
	m.openAIModal()
	m.AI.Generating = true
	m.AI.RequestID = 1

	m, _ = step(t, m, AIResultMsg{RequestID: 1, Err: genai.ErrGenerationFailed})
	if !m.Status.IsError {
		t.Fatal("expected an error status")
	}
	if !m.AI.Active {
		t.Fatal("modal should stay open so the user can retry")
	}
}

func TestLogoutReturnsToAuth(t *testing.T) {
	m, deps := loggedInModel(t)
	if _, err := deps.Tasks.Add(model.Suggestion{Title: "Keep me"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	next, cmd := step(t, m, keyRune('L'))
	m = runCmd(t, next, cmd)

	if m.Screen != ScreenAuth {
		t.Fatalf("Screen = %q, want %q", m.Screen, ScreenAuth)
	}
	if len(m.Tasks.Items) != 0 {
		t.Fatal("in-memory task state should clear on logout")
	}

	// the persisted collection survives a default logout
	raw, ok, err := deps.KV.Load(storage.TasksKey)
	if err != nil || !ok || len(raw) == 0 {
		t.Fatalf("persisted tasks should survive logout: ok=%v err=%v", ok, err)
	}
}

func TestViewRendersWithoutPanic(t *testing.T) {
	m, deps := loggedInModel(t)
	if _, err := deps.Tasks.Add(model.Suggestion{Title: "Render me", Notes: "with *markdown*"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	m = runCmd(t, m, m.loadTasksCmd())

	if out := m.View(); out == "" {
		t.Fatal("task screen view should not be empty")
	}

	m, _ = step(t, m, keyRune('?'))
	if out := m.View(); out == "" {
		t.Fatal("help view should not be empty")
	}
}
