// Package walkthrough holds two annotated demonstration routines for Go
// struct fundamentals. Structs covers construction, field access and
// mutation, constructor functions, and derived construction; Methods
// covers attaching behavior to a struct type. Each routine writes a fixed
// transcript to the given writer and has no other effects.
package walkthrough

import (
	"fmt"
	"io"
)

func printf(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
