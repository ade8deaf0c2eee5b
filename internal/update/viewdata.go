package update

import (
	"fmt"
	"time"

	"github.com/taskpad/taskpad/internal/model"
	"github.com/taskpad/taskpad/internal/views"
)

func (m Model) headerLine() string {
	if m.Screen == ScreenAuth {
		return "taskpad"
	}
	return m.msgs.T("tasks.header", string(m.Tasks.Query.Filter))
}

func (m Model) statusLine() string {
	if m.Status.IsError {
		return "error: " + m.Status.Text
	}
	return m.Status.Text
}

func (m Model) footerLine() string {
	if m.Screen == ScreenAuth {
		return m.msgs.T("auth.submit_hint")
	}
	return m.msgs.T("footer.keys")
}

func (m Model) authPanelData() views.AuthPanelData {
	data := views.AuthPanelData{
		EmailLabel:   m.msgs.T("auth.email"),
		EmailView:    m.emailInput.View(),
		PasswordNote: m.msgs.T("auth.password"),
		PasswordView: m.passwordInput.View(),
		Busy:         m.Auth.Busy,
		BusyText:     m.msgs.T("auth.signing_in"),
		SpinnerView:  m.busySpinner.View(),
	}
	switch m.Auth.Mode {
	case AuthModeSignup:
		data.Title = m.msgs.T("auth.signup_title")
	case AuthModeReset:
		data.Title = m.msgs.T("auth.reset_title")
		// Password reset asks for the email only.
		data.PasswordNote = ""
		data.PasswordView = ""
	default:
		data.Title = m.msgs.T("auth.title")
	}
	return data
}

func (m Model) taskListData() views.TaskListPanelData {
	data := views.TaskListPanelData{
		Loading:     m.Tasks.Loading,
		SpinnerView: m.busySpinner.View(),
		LoadingText: m.msgs.T("tasks.loading"),
		CountLine:   m.msgs.T("tasks.count", len(m.Tasks.Visible), len(m.Tasks.Items)),
		FilterLine:  m.filterLine(),
	}
	if m.Tasks.QuickAddMode {
		data.QuickAddView = m.quickAddInput.View()
	}
	if m.Tasks.SearchMode || m.Tasks.Query.Search != "" {
		data.SearchView = m.searchInput.View()
	}
	data.SummaryLine, data.PercentComplete = m.summary()
	if len(m.Tasks.Items) == 0 {
		data.EmptyText = m.msgs.T("tasks.empty")
	} else {
		data.EmptyText = m.msgs.T("tasks.no_matches")
	}
	for i, t := range m.Tasks.Visible {
		data.Rows = append(data.Rows, views.TaskRowData{
			Title:     t.Title,
			Completed: t.Status == model.StatusCompleted,
			Selected:  i == m.Tasks.Cursor,
		})
	}
	return data
}

// summary condenses the whole collection, not the filtered projection, the
// way the original dashboard header did.
func (m Model) summary() (string, int) {
	total := len(m.Tasks.Items)
	if total == 0 {
		return "", 0
	}
	completed := 0
	for _, t := range m.Tasks.Items {
		if t.Status == model.StatusCompleted {
			completed++
		}
	}
	percent := completed * 100 / total
	line := m.msgs.T("dashboard.done", completed) +
		" | " + m.msgs.T("dashboard.pending", total-completed) +
		" | " + m.msgs.T("dashboard.total", total) +
		" | " + m.msgs.T("dashboard.progress", percent)
	return line, percent
}

func (m Model) filterLine() string {
	line := m.msgs.T("tasks.filter", string(m.Tasks.Query.Filter)) +
		" | " + m.msgs.T("tasks.sort", string(m.Tasks.Query.Sort))
	if m.Tasks.Query.Search != "" {
		line += " | " + m.msgs.T("tasks.search", m.Tasks.Query.Search)
	}
	return line
}

func (m Model) detailData() views.TaskDetailData {
	task, ok := m.selectedTask()
	if !ok {
		return views.TaskDetailData{EmptyText: m.msgs.T("tasks.no_matches")}
	}
	return views.TaskDetailData{
		Title:      task.Title,
		StatusLine: string(task.Status),
		CreatedAt:  task.CreatedAt.Format(time.RFC1123),
		UpdatedAt:  task.UpdatedAt.Format(time.RFC1123),
		NotesView:  views.RenderMarkdown(task.Notes),
	}
}

func (m Model) formData() views.TaskFormData {
	title := m.msgs.T("form.new_title")
	if m.Form.EditingID != "" {
		title = m.msgs.T("form.edit_title")
	}
	return views.TaskFormData{
		Title:      title,
		TitleLabel: m.msgs.T("form.title"),
		TitleView:  m.titleInput.View(),
		NotesLabel: m.msgs.T("form.notes"),
		NotesView:  m.notesArea.View(),
		Hint:       m.msgs.T("form.hint"),
	}
}

func (m Model) aiModalData() views.AIModalData {
	data := views.AIModalData{
		Title:       m.msgs.T("ai.title"),
		GoalLabel:   m.msgs.T("ai.goal"),
		GoalView:    m.goalInput.View(),
		Generating:  m.AI.Generating,
		SpinnerView: m.busySpinner.View(),
		BusyText:    m.msgs.T("ai.generating"),
		ReviewHint:  m.msgs.T("ai.review_hint"),
		Hint:        m.msgs.T("ai.hint"),
	}
	for _, s := range m.AI.Suggestions {
		line := s.Title
		if s.Notes != "" {
			line = fmt.Sprintf("%s (%s)", s.Title, s.Notes)
		}
		data.Suggestions = append(data.Suggestions, line)
	}
	return data
}

func (m Model) helpData() views.HelpData {
	return views.HelpData{
		Title: m.msgs.T("help.title"),
		Bindings: []string{
			"a        add a task",
			"n        quick add from the list",
			"e        edit the selected task",
			"d        delete the selected task",
			"space    toggle completed",
			"/        search",
			"f        cycle status filter",
			"s        toggle sort order",
			"g        generate tasks from a goal",
			":        command palette",
			"L        log out",
			"?        toggle this help",
			"q        quit",
		},
	}
}
