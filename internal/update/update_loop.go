package update

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskpad/taskpad/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.busySpinner.Tick, m.listenNotices()}
	if m.Screen == ScreenTasks {
		cmds = append(cmds, m.loadTasksCmd())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.busySpinner, cmd = m.busySpinner.Update(msg)
		return m, cmd

	case LoginResultMsg:
		return m.handleLoginResult(msg)
	case SignupResultMsg:
		return m.handleSignupResult(msg)
	case LogoutDoneMsg:
		return m.handleLogoutDone(msg)
	case ResetSentMsg:
		return m.handleResetSent(msg)

	case TasksLoadedMsg:
		return m.handleTasksLoaded(msg)
	case TasksMutatedMsg:
		return m.handleTasksMutated(msg)

	case AIResultMsg:
		return m.handleAIResult(msg)

	case NoticeExpiredMsg:
		if msg.Notice.ID == m.noticeID {
			m.Status = StatusBar{}
		}
		return m, m.listenNotices()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.Quitting = true
		return m, tea.Quit
	}

	switch {
	case m.Palette.Active:
		return m.handlePaletteKey(msg)
	case m.Confirm.Active:
		return m.handleConfirmKey(msg)
	case m.AI.Active:
		return m.handleAIKey(msg)
	case m.Form.Active:
		return m.handleFormKey(msg)
	}

	switch m.Screen {
	case ScreenAuth:
		return m.handleAuthKey(msg)
	default:
		return m.handleTasksKey(msg)
	}
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	data := views.AppData{
		Header:     m.headerLine(),
		StatusLine: m.statusLine(),
		Footer:     m.footerLine(),
	}

	if m.Screen == ScreenAuth {
		data.LeftPane = views.RenderAuth(m.authPanelData())
	} else {
		data.LeftPane = views.RenderTaskList(m.taskListData())
		data.RightPane = m.rightPane()
	}

	if m.Palette.Active {
		data.Notification = views.RenderCommandPalette(true, m.commandInput.View(), m.msgs.T("palette.hint"))
	}
	return views.RenderApp(data)
}

// rightPane shows the active modal, falling back to the detail view of
// the selected task.
func (m Model) rightPane() string {
	switch {
	case m.Confirm.Active:
		return views.RenderConfirmDelete(m.msgs.T("confirm.delete", m.Confirm.Title))
	case m.AI.Active:
		return views.RenderAIModal(m.aiModalData())
	case m.Form.Active:
		return views.RenderTaskForm(m.formData())
	case m.HelpVisible:
		return views.RenderHelp(m.helpData())
	}
	return views.RenderTaskDetail(m.detailData())
}
