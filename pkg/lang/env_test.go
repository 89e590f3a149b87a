package lang

import (
	"reflect"
	"testing"
)

func TestEnvironment(t *testing.T) {
	t.Run("DefineAndGet", func(t *testing.T) {
		env := NewEnvironment()
		if err := env.Define("a", 7); err != nil {
			t.Fatalf("Define: %v", err)
		}
		v, err := env.Get("a")
		if err != nil || v != 7 {
			t.Errorf("Get(a) = %d, %v; want 7, nil", v, err)
		}
	})

	t.Run("NoRedefinition", func(t *testing.T) {
		env := NewEnvironment()
		_ = env.Define("a", 1)
		err := env.Define("a", 2)
		if !IsRuntimeError(err) {
			t.Fatalf("second Define error = %v, want RuntimeError", err)
		}
		if v, _ := env.Get("a"); v != 1 {
			t.Errorf("a = %d after failed redefinition, want 1", v)
		}
	})

	t.Run("MissingName", func(t *testing.T) {
		env := NewEnvironment()
		if _, err := env.Get("nope"); !IsRuntimeError(err) {
			t.Errorf("Get(nope) error = %v, want RuntimeError", err)
		}
	})

	t.Run("Keys", func(t *testing.T) {
		env := NewEnvironment()
		for _, name := range []string{"c", "a", "b"} {
			_ = env.Define(name, 0)
		}
		if env.Len() != 3 {
			t.Errorf("Len() = %d, want 3", env.Len())
		}
		if got := env.Keys(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
			t.Errorf("Keys() = %v", got)
		}
	})
}
