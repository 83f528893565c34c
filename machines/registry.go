// Package machines maps machine names and file extensions to the language
// implementations the shell can drive.
package machines

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/robbyt/loxsh/engine"
	"github.com/robbyt/loxsh/internal/helpers"
	"github.com/robbyt/loxsh/machines/lox"
	"github.com/robbyt/loxsh/machines/risor"
	"github.com/robbyt/loxsh/machines/starlark"
)

// Factory builds a machine. out receives program output such as the
// Starlark print builtin.
type Factory func(handler slog.Handler, out io.Writer) engine.Machine

// Registry holds machine factories in registration order and builds each
// machine at most once.
type Registry struct {
	factories  *orderedmap.OrderedMap[string, Factory]
	extensions map[string]string
	instances  map[string]engine.Machine

	out        io.Writer
	logHandler slog.Handler
	logger     *slog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(handler slog.Handler, out io.Writer) *Registry {
	handler, logger := helpers.SetupLogger(handler, "machines", "Registry")
	return &Registry{
		factories:  orderedmap.NewOrderedMap[string, Factory](),
		extensions: make(map[string]string),
		instances:  make(map[string]engine.Machine),
		out:        out,
		logHandler: handler,
		logger:     logger,
	}
}

// NewDefaultRegistry returns a registry with lox (the default), starlark and
// risor.
func NewDefaultRegistry(handler slog.Handler, out io.Writer) *Registry {
	r := NewRegistry(handler, out)
	// all registrations use fixed, distinct names
	_ = r.Register(lox.Name, func(h slog.Handler, _ io.Writer) engine.Machine {
		return lox.New(h)
	}, ".lox")
	_ = r.Register(starlark.Name, func(h slog.Handler, w io.Writer) engine.Machine {
		return starlark.New(h, w)
	}, ".star", ".starlark")
	_ = r.Register(risor.Name, func(h slog.Handler, _ io.Writer) engine.Machine {
		return risor.New(h)
	}, ".risor")
	return r
}

func (r *Registry) String() string {
	return fmt.Sprintf("machines.Registry{Machines: %s}", strings.Join(r.Names(), ", "))
}

// Register adds a factory under name and routes the given file extensions
// to it. Extensions are matched case-insensitively and include the dot.
func (r *Registry) Register(name string, factory Factory, extensions ...string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidMachine)
	}
	if factory == nil {
		return fmt.Errorf("%w: nil factory for %q", ErrInvalidMachine, name)
	}
	if _, exists := r.factories.Get(name); exists {
		return fmt.Errorf("%w: %s", ErrDuplicateMachine, name)
	}

	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalidMachine, ext)
		}
		if owner, taken := r.extensions[ext]; taken {
			return fmt.Errorf("%w: extension %s already routes to %s", ErrDuplicateMachine, ext, owner)
		}
	}

	r.factories.Set(name, factory)
	for _, ext := range extensions {
		r.extensions[strings.ToLower(ext)] = name
	}
	r.logger.Debug("machine registered", "name", name, "extensions", extensions)
	return nil
}

// Names lists the registered machines in registration order.
func (r *Registry) Names() []string {
	return r.factories.Keys()
}

// Get returns the named machine, building it on first use.
func (r *Registry) Get(name string) (engine.Machine, error) {
	if m, ok := r.instances[name]; ok {
		return m, nil
	}

	factory, ok := r.factories.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownMachine, name, strings.Join(r.Names(), ", "))
	}

	m := factory(r.logHandler, r.out)
	r.instances[name] = m
	return m, nil
}

// ForPath implements engine.MachineSelector. Unknown extensions return nil
// so the pipeline falls back to its own machine.
func (r *Registry) ForPath(path string) engine.Machine {
	ext := strings.ToLower(filepath.Ext(path))
	name, ok := r.extensions[ext]
	if !ok {
		return nil
	}

	m, err := r.Get(name)
	if err != nil {
		r.logger.Warn("extension routes to a missing machine", "ext", ext, "error", err)
		return nil
	}
	return m
}
