package pie

import "fmt"

// ---------------------------------------------------------------------------
// Operator hooks
// ---------------------------------------------------------------------------

// Reserved intercept names. These are the read/write interception hooks
// themselves; operator declarations may never rebind them (enforced by
// Builder.Operators), so class bodies cannot disable the interception
// mechanism.
const (
	opIndex    = "__index"
	opNewIndex = "__newindex"
)

func reservedOperator(name string) bool {
	return name == opIndex || name == opNewIndex
}

// CallOp invokes an operator hook from the private side. The hook is
// the raw declared function: its first argument is the private State,
// giving it full private access.
func (s *State) CallOp(name string, args ...any) (any, error) {
	hook, ok := s.class.operators[name]
	if !ok {
		return nil, fmt.Errorf("%s operator %s: %w", s.class.name, name, ErrUndefinedMember)
	}
	return hook(s, args...)
}

// CallOp invokes an operator hook through the public view. It forwards
// to the private-side hook, so an operator triggered from either side
// executes with identical private-level access and identical semantics.
func (f *Facade) CallOp(name string, args ...any) (any, error) {
	return f.state.CallOp(name, args...)
}
