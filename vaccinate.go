// Package vaccinate is a minimal name-based dependency injector.
//
// A target is a function carrying an ordered list of dependency
// references under a configurable property (default Vaccinations). Invoke
// resolves each reference through a pluggable loader and calls the target
// with the resolved values as positional arguments:
//
//	greet := vaccinate.NewTarget(func(log Logger) string {
//		return log.Prefix + "hello"
//	}, "./logger")
//	result, err := vaccinate.Invoke(greet, &vaccinate.Options{
//		ModuleDirs: []string{"modules"},
//	})
//
// String references name modules: package-style names resolve through the
// registry package, relative ./names load module files from the
// configured directories via the modfile package. Any other reference
// value is handed to the target as-is, which is how tests inject
// already-constructed fakes positionally. A loaded module that is itself
// a declaring target is injected recursively before its consumer sees it.
//
// Nothing is cached across or within invocations, there is no lifecycle
// management, and resolution is fully synchronous.
package vaccinate

import (
	"fmt"
	"reflect"
)

// Invoke resolves target's declared dependencies and calls it with the
// resolved values as positional arguments, in declaration order. The
// first resolution failure aborts the call; target errors pass through
// unwrapped. opts may be nil; unset fields fill from Defaults.
func Invoke(target any, opts *Options) (any, error) {
	return InvokeWithReceiver(target, opts, nil)
}

// InvokeWithReceiver behaves like Invoke and additionally prepends
// receiver as the target's first positional argument, for targets written
// method-expression style.
func InvokeWithReceiver(target any, opts *Options, receiver any) (any, error) {
	m := opts.merged()
	d, ok := target.(Declarer)
	if !ok {
		return nil, &MissingDeclarationError{Property: m.Property, Target: fmt.Sprintf("%T", target)}
	}
	refs, ok := d.Declaration(m.Property)
	if !ok {
		return nil, &MissingDeclarationError{Property: m.Property, Target: fmt.Sprintf("%T", target)}
	}
	fn, err := callableOf(target)
	if err != nil {
		return nil, err
	}
	args := make([]any, 0, len(refs)+1)
	if receiver != nil {
		args = append(args, receiver)
	}
	for _, ref := range refs {
		value, err := m.Loader.Resolve(ref, m)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}
	return call(fn, args)
}

// Resolve runs one dependency reference through the configured loader,
// applying the same Defaults merge as Invoke.
func Resolve(ref any, opts *Options) (any, error) {
	m := opts.merged()
	return m.Loader.Resolve(ref, m)
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// call invokes fn with args. A trailing error result is split off and
// returned as the error; the remaining results collapse to nil, the
// single value, or a []any.
func call(fn reflect.Value, args []any) (any, error) {
	t := fn.Type()
	if t.IsVariadic() {
		if len(args) < t.NumIn()-1 {
			return nil, fmt.Errorf("vaccinate: %s takes at least %d arguments, got %d", t, t.NumIn()-1, len(args))
		}
	} else if len(args) != t.NumIn() {
		return nil, fmt.Errorf("vaccinate: %s takes %d arguments, got %d", t, t.NumIn(), len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var param reflect.Type
		if t.IsVariadic() && i >= t.NumIn()-1 {
			param = t.In(t.NumIn() - 1).Elem()
		} else {
			param = t.In(i)
		}
		if arg == nil {
			in[i] = reflect.Zero(param)
			continue
		}
		value := reflect.ValueOf(arg)
		if !value.Type().AssignableTo(param) {
			return nil, fmt.Errorf("vaccinate: argument %d: %T is not assignable to %s", i, arg, param)
		}
		in[i] = value
	}
	out := fn.Call(in)
	if n := len(out); n > 0 && t.Out(n-1) == errorType {
		if !out[n-1].IsNil() {
			return nil, out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	default:
		results := make([]any, len(out))
		for i, v := range out {
			results[i] = v.Interface()
		}
		return results, nil
	}
}
