package i18n

import (
	"testing"

	"github.com/taskpad/taskpad/internal/storage"
)

func TestTranslateWithFallback(t *testing.T) {
	en := New("en")
	if got := en.T("tasks.added"); got != "Task added" {
		t.Fatalf("unexpected english message: %q", got)
	}

	hi := New("hi")
	if got := hi.T("tasks.added"); got == "Task added" {
		t.Fatal("expected hindi overlay for tasks.added")
	}
	// Keys without a hindi entry fall back to english.
	if got := hi.T("footer.keys"); got != en.T("footer.keys") {
		t.Fatalf("expected english fallback, got %q", got)
	}
}

func TestTranslateFormatsArgs(t *testing.T) {
	c := New("en")
	if got := c.T("tasks.count", 2, 5); got != "2 of 5 tasks" {
		t.Fatalf("unexpected formatted message: %q", got)
	}
}

func TestUnknownKeyEchoes(t *testing.T) {
	if got := New("en").T("no.such.key"); got != "no.such.key" {
		t.Fatalf("expected key echo, got %q", got)
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"en":          "en",
		"EN":          "en",
		"hi":          "hi",
		"hi_IN":       "hi",
		"hi_IN.UTF-8": "hi",
		"fr":          "en",
		"":            "en",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLocalePersistenceRoundTrip(t *testing.T) {
	kv := storage.NewMemStore()
	if got := LoadLocale(kv); got != LocaleEnglish {
		t.Fatalf("expected english default, got %q", got)
	}

	if err := SaveLocale(kv, "hi_IN"); err != nil {
		t.Fatalf("save locale: %v", err)
	}
	if got := LoadLocale(kv); got != LocaleHindi {
		t.Fatalf("expected persisted hindi, got %q", got)
	}
}
