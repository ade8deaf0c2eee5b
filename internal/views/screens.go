package views

import (
	"fmt"
	"strings"
)

type AuthPanelData struct {
	Title        string
	EmailLabel   string
	EmailView    string
	PasswordNote string
	PasswordView string
	Busy         bool
	BusyText     string
	SpinnerView  string
	Hint         string
}

func RenderAuth(data AuthPanelData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n\n")
	b.WriteString(data.EmailLabel + "\n")
	b.WriteString(data.EmailView + "\n\n")
	if data.PasswordNote != "" {
		b.WriteString(data.PasswordNote + "\n")
		b.WriteString(data.PasswordView + "\n")
	}
	if data.Busy {
		b.WriteString("\n" + data.SpinnerView + " " + data.BusyText + "\n")
	}
	if data.Hint != "" {
		b.WriteString("\n" + data.Hint)
	}
	return b.String()
}

type TaskRowData struct {
	Title     string
	Completed bool
	Selected  bool
}

type TaskListPanelData struct {
	QuickAddView    string
	SearchView      string
	SummaryLine     string
	PercentComplete int
	Rows            []TaskRowData
	CountLine       string
	FilterLine      string
	EmptyText       string
	Loading         bool
	SpinnerView     string
	LoadingText     string
}

func RenderTaskList(data TaskListPanelData) string {
	var b strings.Builder
	if data.QuickAddView != "" {
		b.WriteString(data.QuickAddView + "\n\n")
	}
	if data.SearchView != "" {
		b.WriteString(data.SearchView + "\n\n")
	}
	if data.SummaryLine != "" {
		b.WriteString(data.SummaryLine + "\n")
		b.WriteString(progressBar(data.PercentComplete, 24) + "\n\n")
	}
	if data.Loading {
		b.WriteString(data.SpinnerView + " " + data.LoadingText + "\n")
		return b.String()
	}
	if len(data.Rows) == 0 {
		b.WriteString(data.EmptyText + "\n")
	}
	for _, row := range data.Rows {
		marker := "[ ]"
		title := row.Title
		if row.Completed {
			marker = "[x]"
			title = completedStyle.Render(title)
		}
		line := fmt.Sprintf("%s %s", marker, title)
		if row.Selected {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + data.CountLine)
	if data.FilterLine != "" {
		b.WriteString("\n" + data.FilterLine)
	}
	return b.String()
}

func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := width * percent / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

type TaskDetailData struct {
	Title      string
	StatusLine string
	CreatedAt  string
	UpdatedAt  string
	NotesView  string
	EmptyText  string
}

func RenderTaskDetail(data TaskDetailData) string {
	if data.Title == "" {
		return data.EmptyText
	}
	var b strings.Builder
	b.WriteString(data.Title + "\n")
	b.WriteString(data.StatusLine + "\n")
	b.WriteString("created: " + data.CreatedAt + "\n")
	b.WriteString("updated: " + data.UpdatedAt + "\n")
	if data.NotesView != "" {
		b.WriteString("\n" + data.NotesView)
	}
	return b.String()
}

type TaskFormData struct {
	Title      string
	TitleLabel string
	TitleView  string
	NotesLabel string
	NotesView  string
	Hint       string
}

func RenderTaskForm(data TaskFormData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n\n")
	b.WriteString(data.TitleLabel + "\n")
	b.WriteString(data.TitleView + "\n\n")
	b.WriteString(data.NotesLabel + "\n")
	b.WriteString(data.NotesView + "\n")
	if data.Hint != "" {
		b.WriteString("\n" + data.Hint)
	}
	return b.String()
}

type AIModalData struct {
	Title       string
	GoalLabel   string
	GoalView    string
	Generating  bool
	SpinnerView string
	BusyText    string
	Suggestions []string
	ReviewHint  string
	Hint        string
}

func RenderAIModal(data AIModalData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n\n")
	if data.Generating {
		b.WriteString(data.SpinnerView + " " + data.BusyText + "\n")
		return b.String()
	}
	if len(data.Suggestions) > 0 {
		for _, line := range data.Suggestions {
			b.WriteString("  - " + line + "\n")
		}
		b.WriteString("\n" + data.ReviewHint)
		return b.String()
	}
	b.WriteString(data.GoalLabel + "\n")
	b.WriteString(data.GoalView + "\n")
	if data.Hint != "" {
		b.WriteString("\n" + data.Hint)
	}
	return b.String()
}

func RenderConfirmDelete(prompt string) string {
	return prompt
}

func RenderCommandPalette(active bool, inputView, hint string) string {
	if !active {
		return ""
	}
	return "\n: " + inputView + "\n" + hint
}

type HelpData struct {
	Title    string
	Bindings []string
}

func RenderHelp(data HelpData) string {
	var b strings.Builder
	b.WriteString("\n" + data.Title + "\n")
	for _, binding := range data.Bindings {
		b.WriteString("  " + binding + "\n")
	}
	return b.String()
}
