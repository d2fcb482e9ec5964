package model

import (
	"fmt"
	"sync"

	"github.com/alexanderramin/educare/internal/predictor"
)

// Loader loads the artifact set at most once per process.
type Loader struct {
	dir string

	once      sync.Once
	artifacts *Artifacts
	err       error
}

// NewLoader returns a Loader for dir. An empty dir disables the trained path.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Load returns the cached artifacts, loading them on first use.
func (l *Loader) Load() (*Artifacts, error) {
	l.once.Do(func() {
		if l.dir == "" {
			return
		}
		l.artifacts, l.err = Load(l.dir)
	})
	return l.artifacts, l.err
}

// Model returns the outcome model for the scorer. When the artifacts are
// unavailable it returns nil and a notice describing the fallback; with no
// artifact directory configured both are empty.
func (l *Loader) Model() (predictor.OutcomeModel, string) {
	a, err := l.Load()
	if err != nil {
		return nil, fmt.Sprintf("using heuristic predictions: %v", err)
	}
	if a == nil {
		return nil, ""
	}
	return a, ""
}
