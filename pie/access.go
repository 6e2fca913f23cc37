package pie

import "fmt"

// ---------------------------------------------------------------------------
// Facade: the public side of one instance
// ---------------------------------------------------------------------------

// Facade is the only object the instance factory returns. It holds no
// member storage of its own: every read and write is policy-mediated
// and resolves into the owned State, into the class's shared static
// storage, or up the parent Facade chain for inherited members.
type Facade struct {
	state  *State
	parent *Facade

	// foreign holds externally written undeclared keys, permitted only
	// when the ForeignWrites toggle is on. The State never consults it:
	// external readers see these values, the object's own methods never
	// do. The asymmetry is deliberate.
	foreign map[string]any
}

// ClassName returns the name of the instance's class.
func (f *Facade) ClassName() string { return f.state.class.name }

// IsA reports whether the instance's class chain contains the named
// class.
func (f *Facade) IsA(name string) bool {
	for s := f.state; s != nil; s = s.super {
		if s.class.name == name {
			return true
		}
	}
	return false
}

// Get reads a member through the public-side policy:
//
//   - an externally written foreign key is visible as-is
//   - a declared public method or static member, unless shadowed by a
//     private method of the same name, resolves through the State so an
//     invoked body keeps private-level access
//   - a private method name fails with ErrPrivateAccess
//   - a key some ancestor declares public delegates to the parent
//     Facade, one hop at a time up the chain
//   - anything else fails with ErrUndefinedMember
func (f *Facade) Get(key string) (any, error) {
	if v, ok := f.foreign[key]; ok {
		return v, nil
	}

	c := f.state.class
	_, isPrivate := c.private[key]
	if !isPrivate {
		_, isPublic := c.public[key]
		_, isStatic := c.statics[key]
		if isPublic || isStatic {
			return f.state.Get(key)
		}
	}
	if isPrivate {
		return nil, fmt.Errorf("%s.%s: %w", c.name, key, ErrPrivateAccess)
	}
	if f.ancestorDeclaresPublic(key) {
		return f.parent.Get(key)
	}
	return nil, fmt.Errorf("%s.%s: %w", c.name, key, ErrUndefinedMember)
}

// ancestorDeclaresPublic reports whether any class up the parent chain
// declares key as a public method.
func (f *Facade) ancestorDeclaresPublic(key string) bool {
	for p := f.parent; p != nil; p = p.parent {
		if p.state.class.HasPublic(key) {
			return true
		}
	}
	return false
}

// Set writes a member through the public-side policy. A static name
// mutates the class's shared storage, visible through both sides and
// across instances. Any other key is rejected unless the ForeignWrites
// toggle is on, in which case the value is warned about and stored in
// the foreign map the State never consults.
func (f *Facade) Set(key string, value any) error {
	c := f.state.class
	if _, ok := c.statics[key]; ok {
		c.statics[key] = value
		return nil
	}

	opts := c.catalog.opts
	if !opts.ForeignWrites {
		return fmt.Errorf("%s.%s: %w", c.name, key, ErrForeignWrite)
	}
	opts.warnf("foreign write of %q on a %s instance; the value is invisible to the object's own methods", key, c.name)
	if f.foreign == nil {
		f.foreign = make(map[string]any)
	}
	f.foreign[key] = value
	return nil
}

// Call resolves name through Get and invokes the result. Inherited
// methods run bound to the ancestor layer that declared them.
func (f *Facade) Call(name string, args ...any) (any, error) {
	v, err := f.Get(name)
	if err != nil {
		return nil, err
	}
	return invoke(f.state, name, v, args)
}
