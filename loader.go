package vaccinate

import (
	"path/filepath"
	"strings"

	"github.com/CoefficientIO/vaccinate/modfile"
	"github.com/CoefficientIO/vaccinate/registry"
)

// Loader resolves a single dependency reference into a value. Supplying a
// custom loader through Options bypasses the default strategy entirely,
// including relative-path handling, directory search and recursive
// injection.
type Loader interface {
	Resolve(ref any, opts *Options) (any, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(ref any, opts *Options) (any, error)

// Resolve implements Loader.
func (f LoaderFunc) Resolve(ref any, opts *Options) (any, error) { return f(ref, opts) }

// RelativePrefix marks references resolved against Options.ModuleDirs.
const RelativePrefix = "./"

// DefaultLoader is the resolution strategy used when Options.Loader is
// unset. It resolves package-style names through the default registry and
// relative references through module files on disk.
var DefaultLoader Loader = &ModuleLoader{}

// ModuleLoader is the default resolution strategy.
//
// A non-string reference passes through unchanged. A name without the
// relative prefix resolves through the registry. A relative name is
// joined with each configured module directory in order; the first
// successful load wins and, when every candidate fails, the error from
// the last attempt is reported. A loaded value that is itself a declaring
// target is recursively injected (with no receiver) before being handed
// to its consumer. Nothing is cached: resolving the same name twice runs
// the same steps twice.
type ModuleLoader struct {
	// Registry handles package-style names. Nil means registry.Default().
	Registry *registry.Registry
}

// NewModuleLoader returns a ModuleLoader resolving package-style names
// through reg.
func NewModuleLoader(reg *registry.Registry) *ModuleLoader {
	return &ModuleLoader{Registry: reg}
}

// Resolve implements Loader.
func (l *ModuleLoader) Resolve(ref any, opts *Options) (any, error) {
	name, ok := ref.(string)
	if !ok {
		return ref, nil
	}
	opts = opts.merged()
	if !strings.HasPrefix(name, RelativePrefix) {
		return l.fromRegistry(name, opts)
	}
	return l.fromDirs(name, opts)
}

func (l *ModuleLoader) fromRegistry(name string, opts *Options) (any, error) {
	if err := opts.beginResolve(name); err != nil {
		return nil, err
	}
	defer opts.endResolve(name)
	reg := l.Registry
	if reg == nil {
		reg = registry.Default()
	}
	value, err := reg.Resolve(name)
	if err != nil {
		return nil, &ResolutionError{Name: name, Err: err}
	}
	return l.finish(value, opts)
}

func (l *ModuleLoader) fromDirs(name string, opts *Options) (any, error) {
	if err := opts.beginResolve(name); err != nil {
		return nil, err
	}
	defer opts.endResolve(name)
	if len(opts.ModuleDirs) == 0 {
		// No base directory configured: the reference reaches the host
		// loader unprefixed and resolves against the working directory.
		mod, err := modfile.Load(name, opts.Property)
		if err != nil {
			return nil, &ResolutionError{Name: name, Attempts: []string{name}, Err: err}
		}
		return l.finish(moduleValue(mod, opts.Property), opts)
	}
	attempts := make([]string, 0, len(opts.ModuleDirs))
	var lastErr error
	for _, dir := range opts.ModuleDirs {
		candidate := filepath.Join(dir, name)
		attempts = append(attempts, candidate)
		mod, err := modfile.Load(candidate, opts.Property)
		if err != nil {
			lastErr = err
			continue
		}
		return l.finish(moduleValue(mod, opts.Property), opts)
	}
	return nil, &ResolutionError{Name: name, Attempts: attempts, Err: lastErr}
}

// finish inspects a freshly loaded value and injects it when it is itself
// a declaring target.
func (l *ModuleLoader) finish(value any, opts *Options) (any, error) {
	if IsTarget(value, opts.Property) {
		return Invoke(value, opts)
	}
	return value, nil
}

func moduleValue(mod *modfile.Module, property string) any {
	if !mod.Declared {
		return mod.Value
	}
	return NewTarget(mod.Value).Declare(property, mod.Refs...)
}
