package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/taskpad/taskpad/internal/model"
	"github.com/taskpad/taskpad/internal/notify"
)

func (m Model) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.deps.Auth.Login(context.Background(), email, password)
		return LoginResultMsg{User: user, Err: err}
	}
}

func (m Model) signupCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.deps.Auth.Signup(context.Background(), email, password)
		return SignupResultMsg{User: user, Err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return LogoutDoneMsg{Err: m.deps.Auth.Logout(context.Background())}
	}
}

func (m Model) resetCmd(email string) tea.Cmd {
	return func() tea.Msg {
		return ResetSentMsg{Email: email, Err: m.deps.Auth.SendPasswordReset(context.Background(), email)}
	}
}

func (m Model) loadTasksCmd() tea.Cmd {
	return func() tea.Msg {
		user, ok := m.deps.Auth.CurrentUser()
		if !ok {
			return TasksLoadedMsg{}
		}
		tasks, err := m.deps.Tasks.Load(user.ID)
		return TasksLoadedMsg{Tasks: tasks, Err: err}
	}
}

func (m Model) addCmd(in model.Suggestion) tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.deps.Tasks.Add(in)
		return TasksMutatedMsg{Tasks: tasks, NoticeKey: "tasks.added", Err: err}
	}
}

func (m Model) addManyCmd(in []model.Suggestion) tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.deps.Tasks.AddMany(in)
		return TasksMutatedMsg{Tasks: tasks, NoticeKey: "ai.accepted", NoticeArg: len(in), Err: err}
	}
}

func (m Model) updateCmd(id string, patch model.TaskPatch) tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.deps.Tasks.Update(id, patch)
		return TasksMutatedMsg{Tasks: tasks, NoticeKey: "tasks.updated", Err: err}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.deps.Tasks.Delete(id)
		return TasksMutatedMsg{Tasks: tasks, NoticeKey: "tasks.deleted", Err: err}
	}
}

func (m Model) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.deps.Tasks.ToggleStatus(id)
		return TasksMutatedMsg{Tasks: tasks, NoticeKey: "tasks.updated", Err: err}
	}
}

func (m Model) generateCmd(requestID int, goal string) tea.Cmd {
	return func() tea.Msg {
		suggestions, err := m.deps.Generator.Generate(context.Background(), goal)
		return AIResultMsg{RequestID: requestID, Suggestions: suggestions, Err: err}
	}
}

// listenNotices blocks on the engine's output channel and converts each
// fired notice into a message. The loop handler re-arms it.
func (m Model) listenNotices() tea.Cmd {
	if m.deps.Notices == nil {
		return nil
	}
	return func() tea.Msg {
		notice, ok := <-m.deps.Notices.C()
		if !ok {
			return nil
		}
		return NoticeExpiredMsg{Notice: notice}
	}
}

// showNotice puts text on the status bar and schedules its expiry. The
// status stays visible until the engine fires the matching notice.
func (m *Model) showNotice(text string, isErr bool) {
	m.Status = StatusBar{Text: text, IsError: isErr}
	if m.deps.Notices == nil {
		return
	}
	m.noticeSeq++
	id := fmt.Sprintf("notice-%d", m.noticeSeq)
	m.noticeID = id

	level := notify.LevelInfo
	if isErr {
		level = notify.LevelError
	}
	err := m.deps.Notices.Schedule(notify.Notice{
		ID:        id,
		Text:      text,
		Level:     level,
		ExpiresAt: time.Now().Add(m.deps.NoticeTTL),
	})
	if err != nil {
		m.deps.Log.Warn("failed to schedule notice expiry", zap.Error(err))
	}
}
