package pie

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// Catalog tests
// ---------------------------------------------------------------------------

func TestDefineAndImport(t *testing.T) {
	ct := NewCatalog(DefaultOptions())

	c, err := ct.Define("Point").Register()
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if c.Name() != "Point" {
		t.Errorf("Name = %q, want Point", c.Name())
	}

	imported, err := ct.Import("Point")
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if imported != c {
		t.Error("Import should return the registered class object")
	}
}

func TestImportUnknown(t *testing.T) {
	ct := NewCatalog(DefaultOptions())

	_, err := ct.Import("Ghost")
	if !errors.Is(err, ErrUndefinedClass) {
		t.Errorf("err = %v, want ErrUndefinedClass", err)
	}
}

func TestRedefinitionReplaces(t *testing.T) {
	ct := NewCatalog(DefaultOptions())

	_, err := ct.Define("Answer").
		Public(Table{
			"value": func(self *State, args ...any) (any, error) { return 1, nil },
		}).
		Register()
	if err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	// Same name again: last write wins, no diagnostic.
	_, err = ct.Define("Answer").
		Public(Table{
			"value": func(self *State, args ...any) (any, error) { return 2, nil },
		}).
		Register()
	if err != nil {
		t.Fatalf("second Register failed: %v", err)
	}

	if ct.Len() != 1 {
		t.Errorf("Len = %d, want 1", ct.Len())
	}

	c, err := ct.Import("Answer")
	if err != nil {
		t.Fatal(err)
	}
	obj, err := c.New()
	if err != nil {
		t.Fatal(err)
	}
	v, err := obj.Call("value")
	if err != nil {
		t.Fatal(err)
	}
	if v != 2 {
		t.Errorf("value = %v, want 2 (second definition)", v)
	}
}

func TestCatalogIntrospection(t *testing.T) {
	ct := NewCatalog(DefaultOptions())
	if _, err := ct.Define("B").Register(); err != nil {
		t.Fatal(err)
	}
	if _, err := ct.Define("A").Register(); err != nil {
		t.Fatal(err)
	}

	if !ct.Has("A") || !ct.Has("B") {
		t.Error("Has should report registered classes")
	}
	if ct.Has("C") {
		t.Error("Has should not report unknown classes")
	}
	names := ct.Classes()
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("Classes = %v, want [A B]", names)
	}
}

// ---------------------------------------------------------------------------
// Lazy parent resolution
// ---------------------------------------------------------------------------

func TestLazyParentResolution(t *testing.T) {
	ct := NewCatalog(DefaultOptions())

	// A child may be defined before its parent; the name is only
	// resolved when an instance is made.
	child, err := ct.Define("Child").Extends("Parent").Register()
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := child.New(); !errors.Is(err, ErrUndefinedClass) {
		t.Errorf("New before parent registration: err = %v, want ErrUndefinedClass", err)
	}

	if _, err := ct.Define("Parent").Register(); err != nil {
		t.Fatal(err)
	}
	if _, err := child.New(); err != nil {
		t.Errorf("New after parent registration failed: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Class introspection
// ---------------------------------------------------------------------------

func TestClassIntrospection(t *testing.T) {
	ct := NewCatalog(DefaultOptions())

	c, err := ct.Define("Thing").
		Static(Table{"kind": "thing", "zone": "z"}).
		Private(Table{
			"hidden": func(self *State, args ...any) (any, error) { return nil, nil },
		}).
		Public(Table{
			"show": func(self *State, args ...any) (any, error) { return nil, nil },
		}).
		Operators(Table{
			"__add": func(self *State, args ...any) (any, error) { return nil, nil },
		}).
		Register()
	if err != nil {
		t.Fatal(err)
	}

	if !c.HasPublic("show") || c.HasPublic("hidden") {
		t.Error("HasPublic wrong")
	}
	if !c.HasPrivate("hidden") || c.HasPrivate("show") {
		t.Error("HasPrivate wrong")
	}
	if !c.HasStatic("kind") || c.HasStatic("show") {
		t.Error("HasStatic wrong")
	}
	if !c.HasOperator("__add") || c.HasOperator("__sub") {
		t.Error("HasOperator wrong")
	}

	if got := c.PublicNames(); len(got) != 1 || got[0] != "show" {
		t.Errorf("PublicNames = %v, want [show]", got)
	}
	if got := c.StaticNames(); len(got) != 2 || got[0] != "kind" || got[1] != "zone" {
		t.Errorf("StaticNames = %v, want [kind zone]", got)
	}

	v, ok := c.Static("kind")
	if !ok || v != "thing" {
		t.Errorf("Static(kind) = %v/%v, want thing/true", v, ok)
	}
	c.SetStatic("kind", "gadget")
	if v, _ := c.Static("kind"); v != "gadget" {
		t.Errorf("Static(kind) after SetStatic = %v, want gadget", v)
	}
}

func TestAncestorsAndDepth(t *testing.T) {
	ct := NewCatalog(DefaultOptions())
	if _, err := ct.Define("A").Register(); err != nil {
		t.Fatal(err)
	}
	if _, err := ct.Define("B").Extends("A").Register(); err != nil {
		t.Fatal(err)
	}
	c, err := ct.Define("C").Extends("B").Register()
	if err != nil {
		t.Fatal(err)
	}

	ancestors, err := c.Ancestors()
	if err != nil {
		t.Fatal(err)
	}
	if len(ancestors) != 2 || ancestors[0].Name() != "B" || ancestors[1].Name() != "A" {
		t.Errorf("Ancestors = %v, want [B A]", ancestors)
	}

	depth, err := c.Depth()
	if err != nil {
		t.Fatal(err)
	}
	if depth != 2 {
		t.Errorf("Depth = %d, want 2", depth)
	}

	if c.String() != "C < B" {
		t.Errorf("String = %q, want \"C < B\"", c.String())
	}
}
