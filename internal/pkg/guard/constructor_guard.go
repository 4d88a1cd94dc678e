// Package guard implements the constructor guard pattern used by domain
// objects to reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil validation error for an object that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as having been created through its
// designated constructor. Embedding a guard and validating it lets domain
// objects detect zero-value instances before any operation runs on them.
//
// Example usage:
//
//	type Template struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTemplate(name string) (Template, error) {
//	    if name == "" {
//	        return Template{}, errors.New("name is required")
//	    }
//	    return Template{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t Template) Validate() error {
//	    return t.guard.Validate(ErrTemplateIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the owning object as
// properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
