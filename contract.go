package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"reflect"
)

// Container is the capability set every tree of this module offers.
//
// Add inserts a value at the tree's default position. Remove and Contains
// report absence of a value as false, not as an error; errors are reserved
// for invalid arguments.
type Container[T any] interface {
	Add(value T) error
	Remove(value T) (bool, error)
	Contains(value T) (bool, error)
	Size() int
	IsEmpty() bool
}

// Config configures the ordering of a tree.
type Config[T any] struct {
	// Compare returns a negative number if a < b, zero if a == b and a
	// positive number if a > b. It has to implement a total order.
	Compare func(a, b T) int
	// Check turns on invariant checking after every mutating operation.
	// This is expensive (O(n) per mutation) and meant for tests and debugging.
	Check bool
}

// Ordered returns a configuration for a type with a natural order.
func Ordered[T cmp.Ordered]() Config[T] {
	return Config[T]{Compare: cmp.Compare[T]}
}

// Validate checks if a configuration is usable for creating a tree.
func (cfg Config[T]) Validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparison function is required", ErrIllegalArguments)
	}
	return nil
}

// IsMissing reports whether v is a nil value, i.e. a nil pointer, interface,
// map, slice, channel or function. Values of all other kinds are never missing.
func IsMissing[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// CheckArgument returns an ErrIllegalArguments error if v is missing.
// op names the operation for the error message.
func CheckArgument[T any](op string, v T) error {
	if IsMissing(v) {
		return fmt.Errorf("%w: %s called with nil value", ErrIllegalArguments, op)
	}
	return nil
}
