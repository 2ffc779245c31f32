package chamfer

import (
	"errors"
	"fmt"
)

// Sentinel errors for the chamfer package.
var (
	// ErrConfiguration is matched by every mask construction error.
	ErrConfiguration = errors.New("chamfer: invalid mask configuration")

	// ErrUnknownMask is returned by Lookup for names not in the catalog.
	ErrUnknownMask = errors.New("chamfer: unknown mask")

	// ErrInvalidDimensions is returned when image sizes and data disagree.
	ErrInvalidDimensions = errors.New("chamfer: invalid dimensions")
)

// WeightCountError is returned when the number of weights does not match
// the arity of the requested mask kind. Kind is zero when the kind was to
// be inferred from the weight count.
type WeightCountError struct {
	Kind Kind
	Got  int
}

func (e *WeightCountError) Error() string {
	if !e.Kind.IsValid() {
		return fmt.Sprintf("chamfer: mask needs 2, 3 or 4 weights, got %d", e.Got)
	}
	return fmt.Sprintf("chamfer: %s mask needs %d weights, got %d", e.Kind, e.Kind.Arity(), e.Got)
}

// Is reports whether target is ErrConfiguration.
func (e *WeightCountError) Is(target error) bool { return target == ErrConfiguration }

// WeightValueError is returned when a weight is not a finite positive number.
type WeightValueError struct {
	Index int
	Value float64
}

func (e *WeightValueError) Error() string {
	return fmt.Sprintf("chamfer: weight %d must be finite and positive, got %g", e.Index, e.Value)
}

// Is reports whether target is ErrConfiguration.
func (e *WeightValueError) Is(target error) bool { return target == ErrConfiguration }
