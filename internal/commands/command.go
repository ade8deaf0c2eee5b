package commands

import (
	"fmt"
	"strings"

	"github.com/taskpad/taskpad/internal/model"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeSearch Type = "search"
	TypeFilter Type = "filter"
	TypeSort   Type = "sort"
	TypeAI     Type = "ai"
	TypeLang   Type = "lang"
	TypeReset  Type = "reset"
	TypeLogout Type = "logout"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title string
}

type SearchArgs struct {
	Term string
}

type FilterArgs struct {
	Status model.FilterStatus
}

type SortArgs struct {
	Order model.SortOrder
}

type AIArgs struct {
	Goal string
}

type LangArgs struct {
	Locale string
}

type ResetArgs struct {
	Email string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Search *SearchArgs
	Filter *FilterArgs
	Sort   *SortArgs
	AI     *AIArgs
	Lang   *LangArgs
	Reset  *ResetArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeSearch:
		// an empty term clears the search
		return Command{Type: TypeSearch, Raw: input, Search: &SearchArgs{Term: strings.Join(args, " ")}}, nil
	case TypeFilter:
		return parseFilter(input, args)
	case TypeSort:
		return parseSort(input, args)
	case TypeAI:
		return parseAI(input, args)
	case TypeLang:
		return parseLang(input, args)
	case TypeReset:
		return parseReset(input, args)
	case TypeLogout:
		return Command{Type: TypeLogout, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires one of: all, completed, pending"}
	}
	status := model.FilterStatus(strings.ToLower(args[0]))
	if !status.IsValid() {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown filter: %s", args[0])}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Status: status}}, nil
}

func parseSort(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "sort requires one of: latest, oldest"}
	}
	order := model.SortOrder(strings.ToLower(args[0]))
	if !order.IsValid() {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown sort order: %s", args[0])}
	}
	return Command{Type: TypeSort, Raw: raw, Sort: &SortArgs{Order: order}}, nil
}

func parseAI(raw string, args []string) (Command, error) {
	goal := strings.TrimSpace(strings.Join(args, " "))
	if goal == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "ai requires a goal"}
	}
	return Command{Type: TypeAI, Raw: raw, AI: &AIArgs{Goal: goal}}, nil
}

func parseLang(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "lang requires one of: en, hi"}
	}
	locale := strings.ToLower(args[0])
	if locale != "en" && locale != "hi" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unsupported language: %s", args[0])}
	}
	return Command{Type: TypeLang, Raw: raw, Lang: &LangArgs{Locale: locale}}, nil
}

func parseReset(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "reset requires an email"}
	}
	return Command{Type: TypeReset, Raw: raw, Reset: &ResetArgs{Email: args[0]}}, nil
}
