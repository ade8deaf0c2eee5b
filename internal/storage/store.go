package storage

import "errors"

var ErrNotFound = errors.New("storage: not found")

// Well-known keys. The adapter itself has no idea what lives behind them.
const (
	TasksKey    = "todo_tasks"
	SessionKey  = "todo_user"
	LanguageKey = "todo_lang"
)

// Store is a synchronous key/text store. Payloads are opaque bytes; callers
// own serialization. Writes are last-write-wins with no cross-process
// coordination.
type Store interface {
	// Load returns the payload for key. ok is false when the key is absent;
	// absence is not an error.
	Load(key string) (value []byte, ok bool, err error)
	Save(key string, value []byte) error
	Delete(key string) error
	Close() error
}
