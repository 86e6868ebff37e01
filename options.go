package vaccinate

// DefaultProperty is the declaration property consulted when
// Options.Property is empty. It doubles as the symbol name looked up in
// interpreted module files, so it must be a valid exported identifier.
const DefaultProperty = "Vaccinations"

// Options configures a single invocation. Any zero field is filled from a
// snapshot of Defaults taken when the invocation starts; the merge happens
// once and later mutation of Defaults does not affect a call in flight.
type Options struct {
	// Property names the declaration read from targets and loaded modules.
	Property string
	// ModuleDirs lists base directories tried in order when resolving
	// relative references. Nil means no relative resolution is available
	// and relative references reach the host loader unprefixed.
	ModuleDirs []string
	// Loader resolves one dependency reference. Defaults to DefaultLoader.
	Loader Loader

	// resolving tracks in-flight module names so circular chains fail
	// with CycleError instead of exhausting the stack. Shared across the
	// recursive invocations spawned by one call.
	resolving map[string]struct{}
}

// Defaults supplies any Options field left unset on a call. It is read
// once at the start of every invocation. Set it during startup; callers
// mutating it from concurrent goroutines must serialize access themselves.
var Defaults = Options{Property: DefaultProperty}

// SwapDefaults installs o as the process-wide Defaults and returns a
// function restoring the previous value, so tests can scope an override:
//
//	restore := vaccinate.SwapDefaults(vaccinate.Options{ModuleDirs: dirs})
//	defer restore()
func SwapDefaults(o Options) (restore func()) {
	prev := Defaults
	Defaults = o
	return func() { Defaults = prev }
}

// merged returns a one-time merge of o over the current Defaults snapshot.
func (o *Options) merged() *Options {
	m := Defaults
	if o != nil {
		if o.Property != "" {
			m.Property = o.Property
		}
		if o.ModuleDirs != nil {
			m.ModuleDirs = o.ModuleDirs
		}
		if o.Loader != nil {
			m.Loader = o.Loader
		}
		if o.resolving != nil {
			m.resolving = o.resolving
		}
	}
	if m.Property == "" {
		m.Property = DefaultProperty
	}
	if m.Loader == nil {
		m.Loader = DefaultLoader
	}
	if m.resolving == nil {
		m.resolving = make(map[string]struct{})
	}
	return &m
}

// beginResolve marks name as in flight, failing on a cycle. endResolve
// must be called once the name's resolution completes so diamond-shaped
// graphs still resolve.
func (o *Options) beginResolve(name string) error {
	if o.resolving == nil {
		o.resolving = make(map[string]struct{})
	}
	if _, active := o.resolving[name]; active {
		return &CycleError{Name: name}
	}
	o.resolving[name] = struct{}{}
	return nil
}

func (o *Options) endResolve(name string) {
	delete(o.resolving, name)
}
