// Package highscore persists the best score as a single little-endian
// 4-byte signed integer.
package highscore

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// size is the exact length of a well-formed file.
const size = 4

// ErrMalformed is returned when the file exists but does not hold exactly
// one non-negative int32.
var ErrMalformed = errors.New("highscore: malformed file")

// FileStore reads and writes the high score file.
// It is safe for concurrent use so several SSH sessions can share one file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store for the given path. Nothing is touched on
// disk until Load or Save is called.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored high score.
// A missing file is created holding 0. A malformed file yields 0 together
// with ErrMalformed so the caller can log it; the file is left untouched
// until the next Save overwrites it.
func (s *FileStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.write(0); err != nil {
			return 0, err
		}
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}

	score, err := Decode(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", err, s.path)
	}
	return score, nil
}

// Save overwrites the file with score.
func (s *FileStore) Save(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(score)
}

// Raise writes score only if it beats the value currently on disk.
// A missing or malformed file counts as 0.
func (s *FileStore) Raise(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := 0
	if data, err := os.ReadFile(s.path); err == nil {
		current, _ = Decode(data)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}
	if score <= current {
		return nil
	}
	return s.write(score)
}

// Shared adapts a FileStore for several games playing at once: Save never
// lowers the stored value.
type Shared struct {
	*FileStore
}

// Save implements the game's high score store.
func (s Shared) Save(score int) error {
	return s.Raise(score)
}

func (s *FileStore) write(score int) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, Encode(score), 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", s.path, err)
	}
	return nil
}

// Encode returns the 4-byte little-endian form of score.
func Encode(score int) []byte {
	buf := make([]byte, size)
	binary.LittleEndian.PutUint32(buf, uint32(int32(score)))
	return buf
}

// Decode parses the 4-byte little-endian form. Anything that is not exactly
// four bytes, or decodes to a negative value, is ErrMalformed.
func Decode(data []byte) (int, error) {
	if len(data) != size {
		return 0, ErrMalformed
	}
	score := int32(binary.LittleEndian.Uint32(data))
	if score < 0 {
		return 0, ErrMalformed
	}
	return int(score), nil
}
