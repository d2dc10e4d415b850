package cugraph

import (
	"errors"
	"fmt"

	"github.com/chirayuG-nvidia/cugraph/core"
	"github.com/chirayuG-nvidia/cugraph/graph"
	"github.com/chirayuG-nvidia/cugraph/paths"
)

var (
	// ErrUnsupportedTypes is returned when no instantiation exists for
	// a graph's vertex/edge/weight kind combination.
	ErrUnsupportedTypes = errors.New("unsupported vertex/edge/weight type combination")

	// ErrLookupFailed is returned when a vertex ID has no entry in the
	// renumbering map. The offending ID is in the wrapped error.
	ErrLookupFailed = errors.New("renumbering lookup failed")

	// ErrInvalidTraversal is returned when the traversal result is
	// internally inconsistent (a predecessor cycle).
	ErrInvalidTraversal = errors.New("invalid traversal result")

	// ErrEmptyDestinations is returned when ExtractPaths is called
	// with no destinations.
	ErrEmptyDestinations = errors.New("destination set is empty")

	// ErrKindMismatch is returned when a buffer's element kind does
	// not match the graph's vertex kind.
	ErrKindMismatch = errors.New("buffer kind does not match graph vertex kind")

	// ErrClosed is returned when an operation uses a result that has
	// already been closed.
	ErrClosed = errors.New("result is closed")

	// ErrUnknown wraps failures that no other error kind classifies,
	// including panics recovered at the API boundary. The original
	// message is preserved in the wrapped error.
	ErrUnknown = errors.New("unknown error")
)

// ErrUnsupportedKinds carries the rejected kind combination.
//
// The original underlying error (if any) can be accessed via
// errors.Unwrap; errors.Is(err, ErrUnsupportedTypes) holds.
type ErrUnsupportedKinds struct {
	Vertex core.Kind
	Edge   core.Kind
	Weight core.Kind
}

func (e *ErrUnsupportedKinds) Error() string {
	return fmt.Sprintf("unsupported type combination: vertex=%s edge=%s weight=%s", e.Vertex, e.Edge, e.Weight)
}

func (e *ErrUnsupportedKinds) Unwrap() error { return ErrUnsupportedTypes }

// translateError normalizes collaborator failures into the public
// error contract at the API boundary.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var vnf *graph.ErrVertexNotFound
	if errors.As(err, &vnf) {
		return fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	var oor *graph.ErrInternalOutOfRange
	if errors.As(err, &oor) {
		return fmt.Errorf("%w: %w", ErrInvalidTraversal, err)
	}
	if errors.Is(err, paths.ErrInvalidTraversal) {
		return fmt.Errorf("%w: %w", ErrInvalidTraversal, err)
	}
	if errors.Is(err, paths.ErrNoDestinations) {
		return fmt.Errorf("%w: %w", ErrEmptyDestinations, err)
	}

	// Everything else passes through unchanged: public sentinels,
	// context cancellation, and collaborator errors that are already
	// descriptive.
	return err
}

// recovered converts a recovered panic value into the public error
// contract, preserving the original message.
func recovered(r any) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrUnknown, err)
	}
	return fmt.Errorf("%w: %v", ErrUnknown, r)
}
