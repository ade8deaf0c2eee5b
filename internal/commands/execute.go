package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Search func(SearchArgs) (Result, error)
	Filter func(FilterArgs) (Result, error)
	Sort   func(SortArgs) (Result, error)
	AI     func(AIArgs) (Result, error)
	Lang   func(LangArgs) (Result, error)
	Reset  func(ResetArgs) (Result, error)
	Logout func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missingHandler("add")
		}
		return handlers.Add(*cmd.Add)
	case TypeSearch:
		if handlers.Search == nil {
			return Result{}, missingHandler("search")
		}
		return handlers.Search(*cmd.Search)
	case TypeFilter:
		if handlers.Filter == nil {
			return Result{}, missingHandler("filter")
		}
		return handlers.Filter(*cmd.Filter)
	case TypeSort:
		if handlers.Sort == nil {
			return Result{}, missingHandler("sort")
		}
		return handlers.Sort(*cmd.Sort)
	case TypeAI:
		if handlers.AI == nil {
			return Result{}, missingHandler("ai")
		}
		return handlers.AI(*cmd.AI)
	case TypeLang:
		if handlers.Lang == nil {
			return Result{}, missingHandler("lang")
		}
		return handlers.Lang(*cmd.Lang)
	case TypeReset:
		if handlers.Reset == nil {
			return Result{}, missingHandler("reset")
		}
		return handlers.Reset(*cmd.Reset)
	case TypeLogout:
		if handlers.Logout == nil {
			return Result{}, missingHandler("logout")
		}
		return handlers.Logout()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missingHandler(name string) *CommandError {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: name + " handler not configured"}
}
