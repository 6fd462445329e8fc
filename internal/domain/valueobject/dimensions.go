// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
//
// Value Objects follow these principles:
//   - Immutability: Once created, they cannot be changed.
//   - Equality: Two value objects are equal if all their attributes are equal.
//   - Side-effect free: Methods return derived values rather than modifying state
package valueobject

import (
	"fmt"

	"github.com/samber/lo"
)

// Dimensions represents the physical dimensions of a parcel.
// All measurements are in centimeters.
type Dimensions struct {
	// Height in centimeters.
	Height float64 `json:"height" validate:"gt=0"`

	// Width in centimeters.
	Width float64 `json:"width" validate:"gt=0"`

	// Length in centimeters.
	Length float64 `json:"length" validate:"gt=0"`
}

// NewDimensions creates a new Dimensions value object.
// It does not validate; callers that need positive measurements
// (see entity.NewPackage) enforce the struct tags themselves.
//
// Parameters:
//   - height: Height in centimeters
//   - width: Width in centimeters
//   - length: Length in centimeters
//
// Returns:
//   - Dimensions: new Dimensions value object
func NewDimensions(height, width, length float64) Dimensions {
	return Dimensions{
		Height: height,
		Width:  width,
		Length: length,
	}
}

// Volume calculates the volume in cubic centimeters.
//
// Returns:
//   - float64: volume in cm³
func (d Dimensions) Volume() float64 {
	return d.Height * d.Width * d.Length
}

// Longest returns the largest of the three measurements.
//
// Returns:
//   - float64: longest side in centimeters
func (d Dimensions) Longest() float64 {
	return lo.Max([]float64{d.Height, d.Width, d.Length})
}

// String returns a formatted string representation.
//
// Returns:
//   - string: formatted dimensions as HxWxL (e.g., "30.0x20.0x10.0 cm")
func (d Dimensions) String() string {
	return fmt.Sprintf("%.1fx%.1fx%.1f cm", d.Height, d.Width, d.Length)
}
