package mdtext

import (
	"errors"
	"fmt"
)

// Sentinel errors for conversion failures. Typed errors below unwrap to
// these, so callers can match categories with errors.Is and still recover
// the offending node kind with errors.As.
var (
	ErrUnsupportedNode      = errors.New("node is not supported")
	ErrUnsupportedChildNode = errors.New("node is not supported in this position")
	ErrNumberedList         = errors.New("numbered lists are not supported")
	ErrListTooDeep          = errors.New("list items are nested too deeply")
	ErrUnsupportedLine      = errors.New("line cannot be indented inside a list item")
)

// UnsupportedNodeError reports a node kind the converter rejects outright.
type UnsupportedNodeError struct {
	Kind string
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("%q node is not supported", e.Kind)
}

func (e *UnsupportedNodeError) Unwrap() error { return ErrUnsupportedNode }

// UnsupportedChildNodeError reports a node that is valid in general but not
// where it actually appeared, such as a list item outside a list or a
// non-item child of a list.
type UnsupportedChildNodeError struct {
	Kind string
}

func (e *UnsupportedChildNodeError) Error() string {
	return fmt.Sprintf("%q node is not supported in this position", e.Kind)
}

func (e *UnsupportedChildNodeError) Unwrap() error { return ErrUnsupportedChildNode }

// EmitError wraps a conversion failure with the kind of the node that was
// being emitted when it happened. Every construct on the path from the root
// to the failure point adds one frame, so the chain reads outermost context
// first and the leaf cause is reachable by repeatedly unwrapping.
type EmitError struct {
	Kind string
	Err  error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("while emitting %s node: %v", e.Kind, e.Err)
}

func (e *EmitError) Unwrap() error { return e.Err }
