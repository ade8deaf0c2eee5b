package i18n

var enMessages = map[string]string{
	// Auth screen
	"auth.title":        "Sign in to taskpad",
	"auth.signup_title": "Create your account",
	"auth.reset_title":  "Reset your password",
	"auth.email":        "Email",
	"auth.password":     "Password",
	"auth.submit_hint":  "enter submit | tab switch field | ctrl+s signup | ctrl+r reset | ctrl+c quit",
	"auth.signing_in":   "Signing in...",
	"auth.invalid":      "Invalid credentials",
	"auth.reset_sent":   "Password reset link sent to %s",
	"auth.welcome":      "Welcome back, %s",

	// Task list
	"tasks.header":      "taskpad | %s",
	"tasks.empty":       "No tasks yet. Press a to add one, or g to generate from a goal.",
	"tasks.no_matches":  "No tasks match the current filter and search.",
	"tasks.count":       "%d of %d tasks",
	"tasks.filter":      "filter: %s",
	"tasks.sort":        "sort: %s",
	"tasks.search":      "search: %s",
	"tasks.added":       "Task added",
	"tasks.updated":     "Task updated",
	"tasks.deleted":     "Task deleted",
	"tasks.loading":     "Loading tasks...",
	"tasks.title_empty": "Title must not be empty",

	// Dashboard summary
	"dashboard.done":     "%d done",
	"dashboard.pending":  "%d pending",
	"dashboard.total":    "%d total",
	"dashboard.progress": "%d%% complete",

	// Task form
	"form.new_title":  "New task",
	"form.edit_title": "Edit task",
	"form.title":      "Title",
	"form.notes":      "Notes",
	"form.hint":       "enter save | tab switch field | esc cancel",

	// Delete confirmation
	"confirm.delete": "Delete '%s'? y confirm | n cancel",

	// AI goal modal
	"ai.title":       "Generate tasks from a goal",
	"ai.goal":        "Goal",
	"ai.hint":        "enter generate | esc cancel",
	"ai.generating":  "Generating tasks...",
	"ai.review_hint": "enter accept all | esc discard",
	"ai.accepted":    "%d generated tasks added",
	"ai.discarded":   "Suggestions discarded",
	"ai.failed":      "Failed to generate tasks. Please check your API key and try again.",

	// Command palette
	"palette.hint":   "command palette | esc close",
	"palette.lang":   "Language switched to %s",
	"palette.filter": "Filter set to %s",
	"palette.sort":   "Sort set to %s",

	// Footer
	"footer.keys": "a add | n quick add | e edit | d delete | space toggle | / search | f filter | s sort | g ai | ? help | q quit",

	// Misc
	"logout.done": "Logged out",
	"help.title":  "Key bindings",
}
