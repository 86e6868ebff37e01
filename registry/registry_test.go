package registry

import (
	"errors"
	"reflect"
	"testing"
)

func TestRegisterAndResolve(t *testing.T) {
	reg := New()
	if err := reg.Register("clock", func() (any, error) { return "tick", nil }); err != nil {
		t.Fatalf("register: %v", err)
	}
	value, err := reg.Resolve("clock")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if value != "tick" {
		t.Fatalf("unexpected value: %v", value)
	}
}

func TestDuplicateRegistration(t *testing.T) {
	reg := New()
	reg.MustRegister("clock", func() (any, error) { return nil, nil })
	if err := reg.Register("clock", func() (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestRegisterValidation(t *testing.T) {
	reg := New()
	if err := reg.Register("", func() (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := reg.Register("clock", nil); err == nil {
		t.Fatalf("expected error for nil provider")
	}
}

func TestResolveUnknown(t *testing.T) {
	reg := New()
	if _, err := reg.Resolve("nope"); err == nil {
		t.Fatalf("expected error for unknown name")
	}
}

func TestProviderErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	reg := New()
	reg.MustRegister("bad", func() (any, error) { return nil, boom })
	if _, err := reg.Resolve("bad"); !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestRegisterValue(t *testing.T) {
	reg := New()
	if err := reg.RegisterValue("answer", 42); err != nil {
		t.Fatalf("register value: %v", err)
	}
	value, err := reg.Resolve("answer")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if value != 42 {
		t.Fatalf("unexpected value: %v", value)
	}
}

func TestNamesSorted(t *testing.T) {
	reg := New()
	reg.MustRegister("zeta", func() (any, error) { return nil, nil })
	reg.MustRegister("alpha", func() (any, error) { return nil, nil })
	if got := reg.Names(); !reflect.DeepEqual(got, []string{"alpha", "zeta"}) {
		t.Fatalf("unexpected names: %v", got)
	}
}
