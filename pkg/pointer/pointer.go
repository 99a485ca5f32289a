// Copyright (c) 2026 Geodir Authors. All rights reserved.

/*
Package pointer provides utilities for working with pointers in Go.

It utilizes generics to simplify the creation of pointers cleanly,
avoiding boilerplate code in the application logic.
*/
package pointer

// To returns a pointer to the provided value.
// It is useful when you need to pass a primitive value to a function or struct field
// that expects a pointer (e.g. pointer.To("something")).
func To[T any](v T) *T {
	return &v
}
