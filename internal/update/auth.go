package update

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/taskpad/taskpad/internal/auth"
)

func (m Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Auth.Busy {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab:
		if m.Auth.Mode != AuthModeReset {
			m.setAuthFocus(1 - m.authFocus)
		}
		return m, nil
	case tea.KeyCtrlS:
		m.switchAuthMode(AuthModeSignup)
		return m, nil
	case tea.KeyCtrlR:
		m.switchAuthMode(AuthModeReset)
		return m, nil
	case tea.KeyEsc:
		m.switchAuthMode(AuthModeLogin)
		return m, nil
	case tea.KeyEnter:
		return m.submitAuth()
	}

	var cmd tea.Cmd
	if m.authFocus == 0 || m.Auth.Mode == AuthModeReset {
		m.emailInput, cmd = m.emailInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) switchAuthMode(mode AuthMode) {
	if m.Auth.Mode == mode {
		mode = AuthModeLogin
	}
	m.Auth.Mode = mode
	m.setAuthFocus(0)
}

func (m *Model) setAuthFocus(focus int) {
	m.authFocus = focus
	if focus == 0 {
		m.emailInput.Focus()
		m.passwordInput.Blur()
	} else {
		m.emailInput.Blur()
		m.passwordInput.Focus()
	}
}

func (m Model) submitAuth() (tea.Model, tea.Cmd) {
	email := strings.TrimSpace(m.emailInput.Value())
	password := m.passwordInput.Value()

	m.Auth.Busy = true
	switch m.Auth.Mode {
	case AuthModeReset:
		return m, m.resetCmd(email)
	case AuthModeSignup:
		return m, m.signupCmd(email, password)
	default:
		return m, m.loginCmd(email, password)
	}
}

func (m Model) handleLoginResult(msg LoginResultMsg) (tea.Model, tea.Cmd) {
	m.Auth.Busy = false
	if msg.Err != nil {
		text := msg.Err.Error()
		if errors.Is(msg.Err, auth.ErrInvalidCredentials) {
			text = m.msgs.T("auth.invalid")
		}
		m.showNotice(text, true)
		return m, nil
	}
	return m.enterTasksScreen(msg.User.Email)
}

func (m Model) handleSignupResult(msg SignupResultMsg) (tea.Model, tea.Cmd) {
	m.Auth.Busy = false
	if msg.Err != nil {
		m.showNotice(msg.Err.Error(), true)
		return m, nil
	}
	return m.enterTasksScreen(msg.User.Email)
}

func (m Model) enterTasksScreen(email string) (tea.Model, tea.Cmd) {
	m.Screen = ScreenTasks
	m.Tasks = TasksState{Query: m.Tasks.Query, Loading: true}
	m.passwordInput.Reset()
	m.showNotice(m.msgs.T("auth.welcome", email), false)
	return m, m.loadTasksCmd()
}

func (m Model) handleLogoutDone(msg LogoutDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.deps.Log.Warn("logout failed", zap.Error(msg.Err))
	}
	m.deps.Tasks.Reset()
	m.Screen = ScreenAuth
	m.Auth = AuthState{Mode: AuthModeLogin}
	m.Tasks = TasksState{Query: m.Tasks.Query}
	m.Form = FormState{}
	m.AI = AIState{RequestID: m.AI.RequestID}
	m.Confirm = ConfirmDeleteState{}
	m.Palette = PaletteState{}
	m.emailInput.Reset()
	m.passwordInput.Reset()
	m.setAuthFocus(0)
	m.showNotice(m.msgs.T("logout.done"), false)
	return m, nil
}

func (m Model) handleResetSent(msg ResetSentMsg) (tea.Model, tea.Cmd) {
	m.Auth.Busy = false
	if msg.Err != nil {
		m.showNotice(msg.Err.Error(), true)
		return m, nil
	}
	m.Auth.Mode = AuthModeLogin
	m.showNotice(m.msgs.T("auth.reset_sent", msg.Email), false)
	return m, nil
}
