package pie

import "fmt"

// ---------------------------------------------------------------------------
// State: the private side of one instance
// ---------------------------------------------------------------------------

// State is the private side of one instance: the receiver every method
// body sees. It owns the instance fields and links to the parent
// instance's State when the class has a parent, forming an explicit
// chain with one layer per inheritance level.
//
// A State is never returned to external callers; encapsulation is
// enforced at the reference level, not merely at the member level.
type State struct {
	class  *Class
	fields map[string]any
	super  *State
}

// Class returns the class this instance layer belongs to.
func (s *State) Class() *Class { return s.class }

// Super returns the parent instance layer, or nil for a root class.
// This is the explicit handle for base-class dispatch:
//
//	self.Super().Call("say_hello", args...)
func (s *State) Super() *State { return s.super }

// Get resolves a member with private-level access. Resolution order:
// private method, public method, static member, raw stored field.
// Methods come back as BoundMethods bound to this State, so a body that
// reads a public method still runs it with private-level access. A key
// resolved nowhere reads as nil, the way an unset field does.
func (s *State) Get(key string) (any, error) {
	if fn, ok := s.class.private[key]; ok {
		return &BoundMethod{name: key, recv: s, fn: fn}, nil
	}
	if fn, ok := s.class.public[key]; ok {
		return &BoundMethod{name: key, recv: s, fn: fn}, nil
	}
	if v, ok := s.class.statics[key]; ok {
		if fn, ok := asMethod(v); ok {
			return &BoundMethod{name: key, recv: s, fn: fn}, nil
		}
		return v, nil
	}
	return s.fields[key], nil
}

// Set writes a member with private-level access. If key names a static
// member of the class, the write redirects into the shared static
// storage and is immediately visible to every instance; otherwise it
// stores an ordinary private field.
func (s *State) Set(key string, value any) {
	if _, ok := s.class.statics[key]; ok {
		s.class.statics[key] = value
		return
	}
	s.fields[key] = value
}

// Call resolves key the way Get does and invokes the result.
func (s *State) Call(name string, args ...any) (any, error) {
	if fn, ok := s.class.private[name]; ok {
		return fn(s, args...)
	}
	if fn, ok := s.class.public[name]; ok {
		return fn(s, args...)
	}
	if v, ok := s.class.statics[name]; ok {
		return invoke(s, name, v, args)
	}
	if v, ok := s.fields[name]; ok {
		return invoke(s, name, v, args)
	}
	return nil, fmt.Errorf("%s.%s: %w", s.class.name, name, ErrUndefinedMember)
}

// invoke calls a resolved member value, accepting both plain callables
// and previously bound methods.
func invoke(s *State, name string, v any, args []any) (any, error) {
	if fn, ok := asMethod(v); ok {
		return fn(s, args...)
	}
	if bm, ok := v.(*BoundMethod); ok {
		return bm.Invoke(args...)
	}
	return nil, fmt.Errorf("%s.%s: %w", s.class.name, name, ErrNotCallable)
}

// ---------------------------------------------------------------------------
// BoundMethod
// ---------------------------------------------------------------------------

// BoundMethod is a member function captured together with its receiving
// State. Reading a method name (rather than calling it) produces one;
// it can be invoked any number of times later.
type BoundMethod struct {
	name string
	recv *State
	fn   Method
}

// Name returns the member name this method was resolved under.
func (m *BoundMethod) Name() string { return m.name }

// Invoke calls the method on its captured receiver.
func (m *BoundMethod) Invoke(args ...any) (any, error) {
	return m.fn(m.recv, args...)
}

// ---------------------------------------------------------------------------
// Instance factory
// ---------------------------------------------------------------------------

// New instantiates the class and returns the instance's public Facade.
// The private State never escapes.
//
// A parent class is instantiated first, recursively, with the same
// argument list; there is no separate super-constructor argument path.
// If the class declares a public "constructor" method it runs once with
// the fresh State as receiver and the arguments forwarded.
func (c *Class) New(args ...any) (*Facade, error) {
	_, facade, err := c.newInstance(args)
	if err != nil {
		return nil, err
	}
	return facade, nil
}

func (c *Class) newInstance(args []any) (*State, *Facade, error) {
	parent, err := c.resolveParent()
	if err != nil {
		return nil, nil, fmt.Errorf("new %s: %w", c.name, err)
	}

	var parentState *State
	var parentFacade *Facade
	if parent != nil {
		parentState, parentFacade, err = parent.newInstance(args)
		if err != nil {
			return nil, nil, err
		}
	}

	state := &State{
		class:  c,
		fields: make(map[string]any),
		super:  parentState,
	}
	facade := &Facade{
		state:  state,
		parent: parentFacade,
	}

	if ctor, ok := c.public[ConstructorName]; ok {
		if _, err := ctor(state, args...); err != nil {
			return nil, nil, fmt.Errorf("new %s: constructor: %w", c.name, err)
		}
	}

	return state, facade, nil
}
