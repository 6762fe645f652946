// Package debug persists request/response snapshots for offline inspection.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"Starluck/pkg/logger"
)

// Store writes timestamped JSON dumps into a directory. Disabled stores
// swallow every call.
type Store struct {
	dir     string
	enabled bool
	log     *logger.Logger
}

func NewStore(dir string, enabled bool, log *logger.Logger) *Store {
	return &Store{dir: dir, enabled: enabled, log: log}
}

// Save dumps the payload under a kind-prefixed, timestamped file name.
// Failures are logged and never propagate; debug output must not affect
// request handling.
func (s *Store) Save(kind string, payload interface{}) {
	if s == nil || !s.enabled {
		return
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.warn("debug dir", err)
		return
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		s.warn("debug marshal", err)
		return
	}

	name := fmt.Sprintf("%s_%s.json", kind, time.Now().UTC().Format("20060102T150405.000"))
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		s.warn("debug write", err)
	}
}

func (s *Store) warn(msg string, err error) {
	if s.log != nil {
		s.log.Warn(msg+" failed", logger.Error(err))
	}
}
