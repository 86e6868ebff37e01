package vaccinate

import (
	"fmt"
	"reflect"
)

// Declarer exposes an ordered dependency reference list under a named
// property. A reference that is a string names a loadable module; any
// other value is passed through to the target untouched.
type Declarer interface {
	Declaration(property string) (refs []any, ok bool)
}

// Invokable exposes the function a declaring value is invoked through.
// *Target implements it; named func types that implement Declarer
// directly do not need it.
type Invokable interface {
	Fn() any
}

// Target couples a function with dependency declarations keyed by
// property name, for callers that want to attach a declaration to an
// ordinary func value.
type Target struct {
	fn    any
	props map[string][]any
}

// NewTarget wraps fn and declares refs under DefaultProperty. Ordering
// matters: refs become fn's positional arguments in the same order.
func NewTarget(fn any, refs ...any) *Target {
	return (&Target{fn: fn}).Declare(DefaultProperty, refs...)
}

// Declare records refs under property, replacing any previous list, and
// returns the target for chaining.
func (t *Target) Declare(property string, refs ...any) *Target {
	if t.props == nil {
		t.props = map[string][]any{}
	}
	t.props[property] = refs
	return t
}

// Declaration implements Declarer.
func (t *Target) Declaration(property string) ([]any, bool) {
	refs, ok := t.props[property]
	return refs, ok
}

// Fn implements Invokable.
func (t *Target) Fn() any { return t.fn }

// IsTarget reports whether v is a declaring target for property: it
// carries a reference list under property and resolves to a callable
// function. The default loader uses this to decide whether a loaded
// module needs injection before being handed to its consumer.
func IsTarget(v any, property string) bool {
	d, ok := v.(Declarer)
	if !ok {
		return false
	}
	if _, ok := d.Declaration(property); !ok {
		return false
	}
	_, err := callableOf(v)
	return err == nil
}

func callableOf(v any) (reflect.Value, error) {
	if inv, ok := v.(Invokable); ok {
		v = inv.Fn()
	}
	fn := reflect.ValueOf(v)
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return reflect.Value{}, fmt.Errorf("vaccinate: %T is not invokable", v)
	}
	return fn, nil
}
