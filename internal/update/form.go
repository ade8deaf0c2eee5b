package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskpad/taskpad/internal/model"
)

// openForm prepares the task form. A zero task means a new one.
func (m *Model) openForm(task model.Task) {
	m.Form = FormState{Active: true, EditingID: task.ID}
	m.titleInput.SetValue(task.Title)
	m.notesArea.SetValue(task.Notes)
	m.setFormFocus(0)
}

func (m *Model) setFormFocus(focus int) {
	m.Form.Focus = focus
	if focus == 0 {
		m.titleInput.Focus()
		m.notesArea.Blur()
	} else {
		m.titleInput.Blur()
		m.notesArea.Focus()
	}
}

func (m *Model) closeForm() {
	m.Form = FormState{}
	m.titleInput.Reset()
	m.notesArea.Reset()
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeForm()
		return m, nil
	case tea.KeyTab, tea.KeyShiftTab:
		m.setFormFocus(1 - m.Form.Focus)
		return m, nil
	case tea.KeyEnter:
		// enter inside the notes area inserts a newline; ctrl+d or a
		// title-focused enter saves
		if m.Form.Focus == 0 {
			return m.submitForm()
		}
	case tea.KeyCtrlD:
		return m.submitForm()
	}

	var cmd tea.Cmd
	if m.Form.Focus == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.notesArea, cmd = m.notesArea.Update(msg)
	}
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.titleInput.Value())
	notes := strings.TrimSpace(m.notesArea.Value())
	if title == "" {
		m.showNotice(m.msgs.T("tasks.title_empty"), true)
		return m, nil
	}

	editingID := m.Form.EditingID
	m.closeForm()
	if editingID == "" {
		return m, m.addCmd(model.Suggestion{Title: title, Notes: notes})
	}
	return m, m.updateCmd(editingID, model.TaskPatch{Title: &title, Notes: &notes})
}
