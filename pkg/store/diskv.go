// Package store provides the durable key-value persistence layer. Each
// domain store serializes its whole state as one JSON document under a
// single named key; writes replace the previous document in full.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Storage keys, one per domain store.
const (
	DisciplinesKey = "disciplines-storage"
	JournalKey     = "journal-storage"
	LearnKey       = "learn-storage"
)

// ErrNotFound reports that no document has been written under a key yet.
var ErrNotFound = errors.New("store: key not found")

// Persistence is the durable key-value contract the domain stores use.
type Persistence interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Erase(key string) error
	Keys(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath: basePath,
		Transform: func(string) []string {
			return []string{} // flat layout, one file per key
		},
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Read(key string) ([]byte, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (p *persistence) Write(key string, data []byte) error {
	return p.d.Write(key, data)
}

func (p *persistence) Erase(key string) error {
	if err := p.d.Erase(key); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func (p *persistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	return keys
}

// BestEffortWrite persists data under key, logging and retrying once on
// failure. Persistence is a side effect of mutations: in-memory state is
// already correct, so a failed write never surfaces to the caller.
func BestEffortWrite(p Persistence, key string, data []byte) {
	if p == nil {
		return
	}
	err := p.Write(key, data)
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "store: write %s: %v (retrying)\n", key, err)
	if err := p.Write(key, data); err != nil {
		fmt.Fprintf(os.Stderr, "store: write %s failed after retry: %v\n", key, err)
	}
}
