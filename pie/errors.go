package pie

import "errors"

// ---------------------------------------------------------------------------
// Error values
// ---------------------------------------------------------------------------

// Definition-time errors, reported by Builder.Register before anything
// is committed to the catalog.
var (
	// ErrNotCallable is reported when a private, public or operator table
	// carries an entry that is not a Method.
	ErrNotCallable = errors.New("entry is not callable")

	// ErrReservedOperator is reported when an operator table tries to
	// rebind one of the reserved intercept names.
	ErrReservedOperator = errors.New("operator name is reserved")
)

// Access-time errors, reported by Catalog.Import and by the Facade
// read/write policy. These are programmer errors and are never handled
// internally.
var (
	// ErrUndefinedClass is reported when a class name was never
	// registered, either on Import or when a parent is resolved at
	// instantiation time.
	ErrUndefinedClass = errors.New("class is not registered")

	// ErrPrivateAccess is reported when a private method is read through
	// a Facade.
	ErrPrivateAccess = errors.New("member is private")

	// ErrUndefinedMember is reported when a Facade read cannot resolve a
	// key anywhere in the instance's class chain.
	ErrUndefinedMember = errors.New("member is not defined")

	// ErrForeignWrite is reported when an external write names an
	// undeclared member and the ForeignWrites toggle is off.
	ErrForeignWrite = errors.New("write to undeclared member")
)
