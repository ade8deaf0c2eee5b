package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskpad/taskpad/internal/model"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Tasks.QuickAddMode {
		return m.handleQuickAddKey(msg)
	}
	if m.Tasks.SearchMode {
		return m.handleSearchKey(msg)
	}
	if m.HelpVisible {
		m.HelpVisible = false
		return m, nil
	}

	switch msg.String() {
	case "q":
		m.Quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.Tasks.Cursor > 0 {
			m.Tasks.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Tasks.Cursor < len(m.Tasks.Visible)-1 {
			m.Tasks.Cursor++
		}
		return m, nil
	case "a":
		m.openForm(model.Task{})
		return m, nil
	case "n":
		m.Tasks.QuickAddMode = true
		m.quickAddInput.Reset()
		m.quickAddInput.Focus()
		return m, nil
	case "e":
		if task, ok := m.selectedTask(); ok {
			m.openForm(task)
		}
		return m, nil
	case "d":
		if task, ok := m.selectedTask(); ok {
			m.Confirm = ConfirmDeleteState{Active: true, ID: task.ID, Title: task.Title}
		}
		return m, nil
	case " ":
		if task, ok := m.selectedTask(); ok {
			return m, m.toggleCmd(task.ID)
		}
		return m, nil
	case "/":
		m.Tasks.SearchMode = true
		m.searchInput.Focus()
		return m, nil
	case "f":
		m.cycleFilter()
		return m, nil
	case "s":
		m.toggleSort()
		return m, nil
	case "g":
		m.openAIModal()
		return m, nil
	case ":":
		m.Palette.Active = true
		m.commandInput.Reset()
		m.commandInput.Focus()
		return m, nil
	case "L":
		return m, m.logoutCmd()
	case "?":
		m.HelpVisible = true
		return m, nil
	}
	return m, nil
}

// handleQuickAddKey drives the inline add input at the top of the list.
// Enter submits and clears the input so several tasks can be entered in a
// row; esc leaves the mode.
func (m Model) handleQuickAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.Tasks.QuickAddMode = false
		m.quickAddInput.Reset()
		m.quickAddInput.Blur()
		return m, nil
	case tea.KeyEnter:
		title := strings.TrimSpace(m.quickAddInput.Value())
		if title == "" {
			m.Tasks.QuickAddMode = false
			m.quickAddInput.Blur()
			return m, nil
		}
		m.quickAddInput.Reset()
		return m, m.addCmd(model.Suggestion{Title: title})
	}

	var cmd tea.Cmd
	m.quickAddInput, cmd = m.quickAddInput.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.Tasks.SearchMode = false
		m.searchInput.Blur()
		return m, nil
	case tea.KeyEsc:
		m.Tasks.SearchMode = false
		m.searchInput.Reset()
		m.searchInput.Blur()
		m.Tasks.Query.Search = ""
		m.refreshVisible()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// the projection follows every keystroke
	m.Tasks.Query.Search = m.searchInput.Value()
	m.refreshVisible()
	return m, cmd
}

func (m *Model) cycleFilter() {
	switch m.Tasks.Query.Filter {
	case model.FilterAll:
		m.Tasks.Query.Filter = model.FilterCompleted
	case model.FilterCompleted:
		m.Tasks.Query.Filter = model.FilterPending
	default:
		m.Tasks.Query.Filter = model.FilterAll
	}
	m.refreshVisible()
}

func (m *Model) toggleSort() {
	if m.Tasks.Query.Sort == model.SortLatest {
		m.Tasks.Query.Sort = model.SortOldest
	} else {
		m.Tasks.Query.Sort = model.SortLatest
	}
	m.refreshVisible()
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.Confirm.ID
		m.Confirm = ConfirmDeleteState{}
		return m, m.deleteCmd(id)
	case "n", "N", "esc":
		m.Confirm = ConfirmDeleteState{}
		return m, nil
	}
	return m, nil
}

func (m Model) handleTasksLoaded(msg TasksLoadedMsg) (tea.Model, tea.Cmd) {
	m.Tasks.Loading = false
	if msg.Err != nil {
		m.showNotice(msg.Err.Error(), true)
		return m, nil
	}
	m.Tasks.Items = msg.Tasks
	m.refreshVisible()
	return m, nil
}

func (m Model) handleTasksMutated(msg TasksMutatedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.showNotice(msg.Err.Error(), true)
		return m, nil
	}
	m.Tasks.Items = msg.Tasks
	m.refreshVisible()
	if msg.NoticeKey != "" {
		if msg.NoticeArg != nil {
			m.showNotice(m.msgs.T(msg.NoticeKey, msg.NoticeArg), false)
		} else {
			m.showNotice(m.msgs.T(msg.NoticeKey), false)
		}
	}
	return m, nil
}
