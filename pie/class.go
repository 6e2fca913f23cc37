package pie

import (
	"fmt"
	"sort"
)

// ---------------------------------------------------------------------------
// Class: finalized class definition
// ---------------------------------------------------------------------------

// Table is a declaration table passed to the Builder. Static tables may
// mix data and callables; private, public and operator tables accept
// callables only.
type Table = map[string]any

// Method is the callable form of every private, public and operator
// member, and of callable static members. The receiver is always the
// instance's private State, so a method body has private-level access
// regardless of which side it was invoked from.
type Method func(self *State, args ...any) (any, error)

// ConstructorName is the public method invoked once per instantiation,
// with the fresh private State as receiver and the constructor
// arguments forwarded.
const ConstructorName = "constructor"

// Class is a finalized class definition: the shared template behind
// every instance. Definitions are built through a Builder and committed
// to a Catalog; a Class is immutable afterwards except for its static
// storage, which is the per-class shared mutable cell.
type Class struct {
	name       string
	parentName string // resolved lazily, at instantiation time

	statics   map[string]any // one shared storage cell per class, not chained
	private   map[string]Method
	public    map[string]Method
	operators map[string]Method

	catalog *Catalog
}

// Name returns the class name, the unique key in the catalog.
func (c *Class) Name() string { return c.name }

// ParentName returns the declared parent class name, or "" for a root
// class. The parent itself is only looked up when an instance is made.
func (c *Class) ParentName() string { return c.parentName }

// String implements the Stringer interface.
func (c *Class) String() string {
	if c.parentName == "" {
		return c.name
	}
	return c.name + " < " + c.parentName
}

// ---------------------------------------------------------------------------
// Member introspection
// ---------------------------------------------------------------------------

// HasPublic returns true if this class (not its ancestors) declares the
// named public method.
func (c *Class) HasPublic(name string) bool {
	_, ok := c.public[name]
	return ok
}

// HasPrivate returns true if this class declares the named private method.
func (c *Class) HasPrivate(name string) bool {
	_, ok := c.private[name]
	return ok
}

// HasStatic returns true if this class declares the named static member.
func (c *Class) HasStatic(name string) bool {
	_, ok := c.statics[name]
	return ok
}

// HasOperator returns true if this class declares the named operator hook.
func (c *Class) HasOperator(name string) bool {
	_, ok := c.operators[name]
	return ok
}

// PublicNames returns the names of the public methods declared by this
// class, sorted.
func (c *Class) PublicNames() []string {
	names := make([]string, 0, len(c.public))
	for name := range c.public {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StaticNames returns the names of the static members declared by this
// class, sorted.
func (c *Class) StaticNames() []string {
	names := make([]string, 0, len(c.statics))
	for name := range c.statics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Static reads a static member directly from the class's shared storage.
func (c *Class) Static(name string) (any, bool) {
	v, ok := c.statics[name]
	return v, ok
}

// SetStatic writes a static member directly into the class's shared
// storage. The write is immediately visible to every instance.
func (c *Class) SetStatic(name string, value any) {
	c.statics[name] = value
}

// ---------------------------------------------------------------------------
// Class hierarchy helpers
// ---------------------------------------------------------------------------

// resolveParent looks the declared parent up in the catalog. Returns
// (nil, nil) for a root class.
func (c *Class) resolveParent() (*Class, error) {
	if c.parentName == "" {
		return nil, nil
	}
	return c.catalog.Import(c.parentName)
}

// Ancestors returns all ancestor classes from immediate parent to root,
// resolving each through the catalog.
func (c *Class) Ancestors() ([]*Class, error) {
	var result []*Class
	current, err := c.resolveParent()
	for current != nil {
		result = append(result, current)
		current, err = current.resolveParent()
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Depth returns the inheritance depth (0 for a root class).
func (c *Class) Depth() (int, error) {
	ancestors, err := c.Ancestors()
	if err != nil {
		return 0, err
	}
	return len(ancestors), nil
}

// ---------------------------------------------------------------------------
// Catalog: class registry
// ---------------------------------------------------------------------------

// Catalog manages registered classes by name. It replaces the ambient
// "currently open definition" global with explicit Builder values, so a
// half-built definition can never corrupt another one.
//
// The whole object model is single-threaded by contract: registration
// happens sequentially at program start and nothing here locks.
type Catalog struct {
	classes map[string]*Class
	opts    Options
}

// NewCatalog creates an empty catalog with the given options.
func NewCatalog(opts Options) *Catalog {
	return &Catalog{
		classes: make(map[string]*Class),
		opts:    opts,
	}
}

// Define opens a new class definition and returns the Builder that
// accumulates it. Nothing is visible through Import until the builder's
// Register call commits the definition.
func (ct *Catalog) Define(name string) *Builder {
	return &Builder{
		catalog: ct,
		class: &Class{
			name:      name,
			statics:   make(map[string]any),
			private:   make(map[string]Method),
			public:    make(map[string]Method),
			operators: make(map[string]Method),
			catalog:   ct,
		},
	}
}

// Import returns the class registered under name.
func (ct *Catalog) Import(name string) (*Class, error) {
	c, ok := ct.classes[name]
	if !ok {
		return nil, fmt.Errorf("import %q: %w", name, ErrUndefinedClass)
	}
	return c, nil
}

// register commits a class under its name. Registering over an existing
// name silently replaces it: last write wins, no diagnostic. Returns
// the displaced class, or nil.
func (ct *Catalog) register(c *Class) *Class {
	old := ct.classes[c.name]
	ct.classes[c.name] = c
	return old
}

// Has returns true if a class with this name is registered.
func (ct *Catalog) Has(name string) bool {
	_, ok := ct.classes[name]
	return ok
}

// Len returns the number of registered classes.
func (ct *Catalog) Len() int {
	return len(ct.classes)
}

// Classes returns the names of all registered classes, sorted.
func (ct *Catalog) Classes() []string {
	names := make([]string, 0, len(ct.classes))
	for name := range ct.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options returns the catalog's runtime options.
func (ct *Catalog) Options() Options {
	return ct.opts
}
