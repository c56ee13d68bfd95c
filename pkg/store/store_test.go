package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestReadMissingKey(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if _, err := p.Read(DisciplinesKey); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	doc := []byte(`{"initialized":true}`)
	if err := p.Write(DisciplinesKey, doc); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := p.Read(DisciplinesKey)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(doc) {
		t.Fatalf("read back %q, want %q", got, doc)
	}
}

func TestWriteReplacesWholeDocument(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := p.Write(JournalKey, []byte(`{"entries":["a","b"]}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := p.Write(JournalKey, []byte(`{"entries":[]}`)); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	got, err := p.Read(JournalKey)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != `{"entries":[]}` {
		t.Fatalf("expected last write to win, got %q", got)
	}
}

func TestEraseMissingKeyIsNoop(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Erase("never-written"); err != nil {
		t.Fatalf("expected no-op erase, got %v", err)
	}
}

func TestKeys(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Write(LearnKey, []byte(`{}`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	keys := p.Keys(context.Background())
	if len(keys) != 1 || keys[0] != LearnKey {
		t.Fatalf("expected [%s], got %v", LearnKey, keys)
	}
}

func TestWatchEmitsKeyChanges(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before storing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Write(DisciplinesKey, []byte(`{}`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Key == "" || evt.Key == DisciplinesKey {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for change event")
		}
	}
}
