package pie

import "fmt"

// ---------------------------------------------------------------------------
// Builder: declaration-time accumulation of one class definition
// ---------------------------------------------------------------------------

// Builder accumulates the declarations of one class definition opened
// with Catalog.Define. Each declaration call validates its table and
// records the first definition error; Register reports that error and
// commits nothing, so a bad definition never becomes importable.
type Builder struct {
	catalog *Catalog
	class   *Class
	err     error
}

// fail records the first definition error. Later declarations are still
// validated but cannot clear it.
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// asMethod reports whether a declared value is callable, normalizing
// both the named Method type and the bare function signature users
// write in table literals.
func asMethod(v any) (Method, bool) {
	switch fn := v.(type) {
	case Method:
		return fn, true
	case func(self *State, args ...any) (any, error):
		return fn, true
	}
	return nil, false
}

// Extends sets the parent class name. The parent is resolved in the
// catalog only at instantiation time, so parents may be defined after
// their children.
func (b *Builder) Extends(parentName string) *Builder {
	b.class.parentName = parentName
	return b
}

// Static merges members into the class's shared static storage. Values
// may be data or callables; callables are normalized to Method so they
// can be invoked with the receiving instance's State.
func (b *Builder) Static(members Table) *Builder {
	for name, v := range members {
		if fn, ok := asMethod(v); ok {
			b.class.statics[name] = fn
			continue
		}
		b.class.statics[name] = v
	}
	return b
}

// Private merges private methods into the definition. Every entry must
// be callable.
func (b *Builder) Private(methods Table) *Builder {
	for name, v := range methods {
		fn, ok := asMethod(v)
		if !ok {
			b.fail(fmt.Errorf("class %s: private %q: %w", b.class.name, name, ErrNotCallable))
			continue
		}
		b.class.private[name] = fn
	}
	return b
}

// Public merges public methods into the definition. Every entry must be
// callable.
func (b *Builder) Public(methods Table) *Builder {
	for name, v := range methods {
		fn, ok := asMethod(v)
		if !ok {
			b.fail(fmt.Errorf("class %s: public %q: %w", b.class.name, name, ErrNotCallable))
			continue
		}
		b.class.public[name] = fn
	}
	return b
}

// Operators merges operator hooks into the definition. Every entry must
// be callable, and the reserved intercept names can never be rebound:
// they are the read/write interception mechanism itself.
func (b *Builder) Operators(hooks Table) *Builder {
	for name, v := range hooks {
		if reservedOperator(name) {
			b.fail(fmt.Errorf("class %s: operator %q: %w", b.class.name, name, ErrReservedOperator))
			continue
		}
		fn, ok := asMethod(v)
		if !ok {
			b.fail(fmt.Errorf("class %s: operator %q: %w", b.class.name, name, ErrNotCallable))
			continue
		}
		b.class.operators[name] = fn
	}
	return b
}

// Register finalizes the definition and commits it to the catalog under
// its name. Registering over an existing name silently replaces the old
// definition; instances made afterwards use the new one exclusively.
func (b *Builder) Register() (*Class, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.catalog.register(b.class)
	return b.class, nil
}
