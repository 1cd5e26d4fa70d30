package i18n

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestLocaleWatcherStartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	tr, err := NewTranslator("en")
	if err != nil {
		t.Fatalf("NewTranslator failed: %v", err)
	}

	dir := t.TempDir()
	w, err := NewLocaleWatcher(dir, tr)
	if err != nil {
		t.Fatalf("NewLocaleWatcher failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	// Second Start is a no-op, not an error.
	if err := w.Start(ctx); err != nil {
		t.Fatalf("second Start failed: %v", err)
	}

	w.Stop()
	// Second Stop must not panic or block.
	w.Stop()
}

func TestLocaleWatcherReloadsOnWrite(t *testing.T) {
	tr, err := NewTranslator("en")
	if err != nil {
		t.Fatalf("NewTranslator failed: %v", err)
	}

	dir := t.TempDir()
	w, err := NewLocaleWatcher(dir, tr)
	if err != nil {
		t.Fatalf("NewLocaleWatcher failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "en.yaml")
	if err := os.WriteFile(path, []byte("guest:\n  prompt:\n    cta: Join Now\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// The reload is asynchronous; poll briefly.
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if tr.Translate("guest.prompt.cta") == "Join Now" {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("locale change was not picked up, cta = %q", tr.Translate("guest.prompt.cta"))
}
