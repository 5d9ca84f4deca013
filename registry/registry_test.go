/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/suparena/kaseyaschema/errors"
)

type testProbe struct {
	ProbeID float64 `json:"ProbeId"`
}

type testLog struct {
	Event string `json:"Event"`
}

type unboundType struct{}

func init() {
	RegisterType("testProbe", func() any { return &testProbe{} })
	Bind[testProbe]("testProbe", map[string]string{"PK": "testProbe", "SK": "{ProbeId}"})
	Bind[testLog]("testLog", nil)
}

func TestTypeRegistry(t *testing.T) {
	t.Run("NewInstance", func(t *testing.T) {
		obj, err := NewInstance("testProbe")
		if err != nil {
			t.Fatalf("NewInstance failed: %v", err)
		}
		if _, ok := obj.(*testProbe); !ok {
			t.Fatalf("Expected *testProbe, got %T", obj)
		}

		other, _ := NewInstance("testProbe")
		if obj == other {
			t.Fatal("NewInstance should allocate a fresh value on every call")
		}
	})

	t.Run("UnknownType", func(t *testing.T) {
		_, err := GetNewFunc("nope")
		if !errors.IsConfigurationError(err) {
			t.Fatalf("Expected configuration error, got %v", err)
		}
	})

	t.Run("DuplicatePanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("Expected panic on duplicate registration")
			}
		}()
		RegisterType("testProbe", func() any { return &testProbe{} })
	})

	t.Run("RegisteredTypesSorted", func(t *testing.T) {
		names := RegisteredTypes()
		for i := 1; i < len(names); i++ {
			if names[i-1] > names[i] {
				t.Fatalf("RegisteredTypes not sorted: %v", names)
			}
		}
	})
}

func TestBindings(t *testing.T) {
	t.Run("EntityTypeOf", func(t *testing.T) {
		name, ok := EntityTypeOf[testProbe]()
		if !ok || name != "testProbe" {
			t.Fatalf("Expected testProbe binding, got %q %v", name, ok)
		}
		if _, ok := EntityTypeOf[unboundType](); ok {
			t.Fatal("unboundType should not have a binding")
		}
	})

	t.Run("IndexMapIsCopied", func(t *testing.T) {
		m, ok := GetIndexMap[testProbe]()
		if !ok {
			t.Fatal("Expected index map for testProbe")
		}
		m["SK"] = "mutated"

		again, _ := GetIndexMap[testProbe]()
		if again["SK"] != "{ProbeId}" {
			t.Fatalf("Index map mutated through returned copy: %v", again)
		}
	})

	t.Run("BoundWithoutIndexMap", func(t *testing.T) {
		if _, ok := GetIndexMap[testLog](); ok {
			t.Fatal("testLog has no key and should report no index map")
		}
		if name, ok := EntityTypeOf[testLog](); !ok || name != "testLog" {
			t.Fatalf("testLog should still be bound, got %q %v", name, ok)
		}
	})

	t.Run("DoubleBindPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("Expected panic on duplicate binding")
			}
		}()
		Bind[testLog]("other", nil)
	})
}
