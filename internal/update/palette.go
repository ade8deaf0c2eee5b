package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskpad/taskpad/internal/commands"
	"github.com/taskpad/taskpad/internal/i18n"
	"github.com/taskpad/taskpad/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.Palette = PaletteState{}
		m.commandInput.Reset()
		return m, nil
	case tea.KeyEnter:
		input := m.commandInput.Value()
		m.Palette = PaletteState{}
		m.commandInput.Reset()
		return m.runCommand(input)
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

// runCommand parses a palette line and applies it against the model. Some
// commands resolve in place, others kick off an async command.
func (m Model) runCommand(input string) (tea.Model, tea.Cmd) {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.showNotice(err.Error(), true)
		return m, nil
	}

	var teaCmd tea.Cmd
	handlers := commands.Handlers{
		Add: func(args commands.AddArgs) (commands.Result, error) {
			teaCmd = m.addCmd(model.Suggestion{Title: args.Title})
			return commands.Result{}, nil
		},
		Search: func(args commands.SearchArgs) (commands.Result, error) {
			m.Tasks.Query.Search = args.Term
			m.searchInput.SetValue(args.Term)
			m.refreshVisible()
			return commands.Result{}, nil
		},
		Filter: func(args commands.FilterArgs) (commands.Result, error) {
			m.Tasks.Query.Filter = args.Status
			m.refreshVisible()
			return commands.Result{Message: m.msgs.T("palette.filter", string(args.Status))}, nil
		},
		Sort: func(args commands.SortArgs) (commands.Result, error) {
			m.Tasks.Query.Sort = args.Order
			m.refreshVisible()
			return commands.Result{Message: m.msgs.T("palette.sort", string(args.Order))}, nil
		},
		AI: func(args commands.AIArgs) (commands.Result, error) {
			m.AI = AIState{Active: true, Generating: true, RequestID: m.AI.RequestID + 1}
			m.goalInput.SetValue(args.Goal)
			teaCmd = m.generateCmd(m.AI.RequestID, args.Goal)
			return commands.Result{}, nil
		},
		Lang: func(args commands.LangArgs) (commands.Result, error) {
			if err := i18n.SaveLocale(m.deps.KV, args.Locale); err != nil {
				return commands.Result{}, err
			}
			m.msgs = i18n.New(args.Locale)
			return commands.Result{Message: m.msgs.T("palette.lang", args.Locale)}, nil
		},
		Reset: func(args commands.ResetArgs) (commands.Result, error) {
			teaCmd = m.resetCmd(args.Email)
			return commands.Result{}, nil
		},
		Logout: func() (commands.Result, error) {
			teaCmd = m.logoutCmd()
			return commands.Result{}, nil
		},
	}

	result, err := commands.Execute(cmd, handlers)
	if err != nil {
		m.showNotice(err.Error(), true)
		return m, nil
	}
	if result.Message != "" {
		m.showNotice(result.Message, false)
	}
	return m, teaCmd
}
