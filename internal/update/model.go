package update

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"go.uber.org/zap"

	"github.com/taskpad/taskpad/internal/auth"
	"github.com/taskpad/taskpad/internal/genai"
	"github.com/taskpad/taskpad/internal/i18n"
	"github.com/taskpad/taskpad/internal/model"
	"github.com/taskpad/taskpad/internal/notify"
	"github.com/taskpad/taskpad/internal/query"
	"github.com/taskpad/taskpad/internal/storage"
	"github.com/taskpad/taskpad/internal/taskstore"
)

type Screen string

const (
	ScreenAuth  Screen = "Auth"
	ScreenTasks Screen = "Tasks"
)

type AuthMode string

const (
	AuthModeLogin  AuthMode = "login"
	AuthModeSignup AuthMode = "signup"
	AuthModeReset  AuthMode = "reset"
)

type StatusBar struct {
	Text    string
	IsError bool
}

// Deps are the collaborators the composition root hands to the TUI. Nothing
// in this package reaches for a global.
type Deps struct {
	Auth      *auth.Service
	Tasks     *taskstore.Store
	Generator genai.Generator
	Notices   *notify.Engine
	KV        storage.Store
	Log       *zap.Logger
	// NoticeTTL is how long a transient notice stays on screen.
	NoticeTTL time.Duration
}

type AuthState struct {
	Mode AuthMode
	Busy bool
}

type TasksState struct {
	Items        []model.Task
	Visible      []model.Task
	Cursor       int
	Query        query.Params
	Loading      bool
	SearchMode   bool
	QuickAddMode bool
}

type FormState struct {
	Active    bool
	EditingID string
	// focus 0 = title, 1 = notes
	Focus int
}

type AIState struct {
	Active      bool
	Generating  bool
	Suggestions []model.Suggestion
	// RequestID guards against a response landing after the modal was
	// dismissed and reopened.
	RequestID int
}

type ConfirmDeleteState struct {
	Active bool
	ID     string
	Title  string
}

type PaletteState struct {
	Active bool
}

type Model struct {
	deps Deps
	msgs *i18n.Catalog

	Screen      Screen
	Auth        AuthState
	Tasks       TasksState
	Form        FormState
	AI          AIState
	Confirm     ConfirmDeleteState
	Palette     PaletteState
	HelpVisible bool
	Status      StatusBar
	Quitting    bool

	// bubble components
	emailInput    textinput.Model
	passwordInput textinput.Model
	searchInput   textinput.Model
	quickAddInput textinput.Model
	titleInput    textinput.Model
	notesArea     textarea.Model
	goalInput     textinput.Model
	commandInput  textinput.Model
	busySpinner   spinner.Model
	// focus index on the auth screen: 0 email, 1 password
	authFocus int

	noticeSeq int
	noticeID  string
}

type LoginResultMsg struct {
	User model.User
	Err  error
}

type SignupResultMsg struct {
	User model.User
	Err  error
}

type LogoutDoneMsg struct {
	Err error
}

type ResetSentMsg struct {
	Email string
	Err   error
}

type TasksLoadedMsg struct {
	Tasks []model.Task
	Err   error
}

// TasksMutatedMsg carries the refreshed snapshot after any mutation plus
// the notice key to show.
type TasksMutatedMsg struct {
	Tasks     []model.Task
	NoticeKey string
	NoticeArg any
	Err       error
}

type AIResultMsg struct {
	RequestID   int
	Suggestions []model.Suggestion
	Err         error
}

type NoticeExpiredMsg struct {
	Notice notify.Notice
}

func New(deps Deps) Model {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.NoticeTTL <= 0 {
		deps.NoticeTTL = 4 * time.Second
	}
	locale := i18n.LoadLocale(deps.KV)

	m := Model{
		deps:   deps,
		msgs:   i18n.New(locale),
		Screen: ScreenAuth,
		Auth:   AuthState{Mode: AuthModeLogin},
		Tasks:  TasksState{Query: query.DefaultParams()},
	}
	m.initComponents()

	// A persisted session is trusted without re-validation.
	if _, ok := deps.Auth.CurrentUser(); ok {
		m.Screen = ScreenTasks
		m.Tasks.Loading = true
	}
	return m
}

func (m *Model) initComponents() {
	m.emailInput = textinput.New()
	m.emailInput.Placeholder = "you@example.com"
	m.emailInput.CharLimit = 120
	m.emailInput.Focus()

	m.passwordInput = textinput.New()
	m.passwordInput.EchoMode = textinput.EchoPassword
	m.passwordInput.EchoCharacter = '•'
	m.passwordInput.CharLimit = 120

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "type to search"
	m.searchInput.CharLimit = 120

	m.quickAddInput = textinput.New()
	m.quickAddInput.Placeholder = "task title"
	m.quickAddInput.CharLimit = 200

	m.titleInput = textinput.New()
	m.titleInput.CharLimit = 200

	m.notesArea = textarea.New()
	m.notesArea.CharLimit = 2000
	m.notesArea.SetHeight(5)

	m.goalInput = textinput.New()
	m.goalInput.Placeholder = "e.g. plan a birthday party"
	m.goalInput.CharLimit = 300

	m.commandInput = textinput.New()
	m.commandInput.CharLimit = 200

	m.busySpinner = spinner.New(spinner.WithSpinner(spinner.Dot))
}

// refreshVisible recomputes the rendered projection from the source
// collection and the current query parameters.
func (m *Model) refreshVisible() {
	m.Tasks.Visible = query.Apply(m.Tasks.Items, m.Tasks.Query)
	if m.Tasks.Cursor >= len(m.Tasks.Visible) {
		m.Tasks.Cursor = len(m.Tasks.Visible) - 1
	}
	if m.Tasks.Cursor < 0 {
		m.Tasks.Cursor = 0
	}
}

func (m Model) selectedTask() (model.Task, bool) {
	if len(m.Tasks.Visible) == 0 || m.Tasks.Cursor < 0 || m.Tasks.Cursor >= len(m.Tasks.Visible) {
		return model.Task{}, false
	}
	return m.Tasks.Visible[m.Tasks.Cursor], true
}

func (m Model) anyModalActive() bool {
	return m.Form.Active || m.AI.Active || m.Confirm.Active || m.Palette.Active
}
