// Package pie implements a runtime class system with member-level
// encapsulation.
//
// This package contains:
//   - Catalog: the class registry
//   - Builder: declaration-time accumulation of one class definition
//   - Class: the finalized definition, callable as an instance factory
//   - State / Facade: the private and public sides of one instance
//   - Operator hook dispatch reachable from either side
package pie
