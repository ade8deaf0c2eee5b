package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// openAIModal starts a fresh modal session. Bumping the request id here
// invalidates any generation still in flight from a previous session.
func (m *Model) openAIModal() {
	m.AI = AIState{Active: true, RequestID: m.AI.RequestID + 1}
	m.goalInput.Reset()
	m.goalInput.Focus()
}

func (m *Model) closeAIModal() {
	m.AI = AIState{RequestID: m.AI.RequestID}
	m.goalInput.Reset()
	m.goalInput.Blur()
}

func (m Model) handleAIKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		discarded := len(m.AI.Suggestions) > 0
		m.closeAIModal()
		if discarded {
			m.showNotice(m.msgs.T("ai.discarded"), false)
		}
		return m, nil
	case tea.KeyEnter:
		if m.AI.Generating {
			return m, nil
		}
		if len(m.AI.Suggestions) > 0 {
			suggestions := m.AI.Suggestions
			m.closeAIModal()
			return m, m.addManyCmd(suggestions)
		}
		goal := strings.TrimSpace(m.goalInput.Value())
		if goal == "" {
			return m, nil
		}
		m.AI.Generating = true
		m.AI.RequestID++
		return m, m.generateCmd(m.AI.RequestID, goal)
	}

	if m.AI.Generating || len(m.AI.Suggestions) > 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.goalInput, cmd = m.goalInput.Update(msg)
	return m, cmd
}

func (m Model) handleAIResult(msg AIResultMsg) (tea.Model, tea.Cmd) {
	// ignore responses for a request the user already walked away from
	if !m.AI.Active || msg.RequestID != m.AI.RequestID {
		return m, nil
	}
	m.AI.Generating = false
	if msg.Err != nil || len(msg.Suggestions) == 0 {
		m.showNotice(m.msgs.T("ai.failed"), true)
		return m, nil
	}
	m.AI.Suggestions = msg.Suggestions
	return m, nil
}
