// Package registry provides a global registry for game shells.
// Shells register themselves in init() functions, allowing the CLI to
// discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/floppy-dot/internal/core"
	"github.com/vovakirdan/floppy-dot/internal/games/floppy"
)

// Shell is a front end that drives a floppy.Game: it measures time, turns
// device input into actions, draws the draw list and owns the music device.
// Games contain pure logic; everything platform specific lives in a shell.
type Shell interface {
	// Name returns a unique identifier used on the command line (e.g. "tui").
	Name() string

	// Title returns a human-readable description.
	Title() string

	// Run plays until the user quits or ctx is cancelled.
	Run(ctx context.Context, opts Options) error
}

// GameFactory builds a game. Shells pass their own options, such as the
// music stream, on top of the ones the caller prepared.
type GameFactory func(extra ...floppy.Option) *floppy.Game

// Options is what the CLI hands to a shell.
type Options struct {
	Runtime       core.RuntimeConfig
	MusicPath     string
	ScreenshotDir string
	Logger        *log.Logger
	NewGame       GameFactory
}

// ShellInfo contains metadata about a registered shell.
type ShellInfo struct {
	Name  string
	Title string
}

// Factory is a function that creates a new instance of a shell.
type Factory func() Shell

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a shell factory to the registry.
// Typically called from a shell's init() function.
// Panics if a shell with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: shell %q already registered", name))
	}

	factories[name] = f
	titles[name] = f().Title()
}

// List returns information about all registered shells, sorted by name.
func List() []ShellInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ShellInfo, 0, len(factories))
	for name := range factories {
		result = append(result, ShellInfo{
			Name:  name,
			Title: titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a shell by name.
// Returns an error if the name is not registered.
func Create(name string) (Shell, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown shell %q", name)
	}

	return f(), nil
}

// Exists checks if a shell with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
