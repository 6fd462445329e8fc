package entity

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hapkiduki/package-sorter/internal/domain/valueobject"
)

// Sorting thresholds. They are fixed by the carrier and not configurable.
const (
	// BulkyVolumeThreshold is the volume in cm³ at or above which a package is bulky.
	BulkyVolumeThreshold = 1_000_000.0

	// BulkyDimensionThreshold is the side length in cm at or above which a package is bulky.
	BulkyDimensionThreshold = 150.0

	// HeavyMassThreshold is the mass in kg above which a package is heavy.
	// Unlike the bulky thresholds, a mass equal to it is not heavy.
	HeavyMassThreshold = 20.0
)

var validate = validator.New()

// measurements is the validation view of the four package inputs.
// Field order decides which input is reported first.
type measurements struct {
	Dimensions valueobject.Dimensions
	Mass       float64 `validate:"gt=0"`
}

// Package is a single parcel to be sorted.
// A Package is immutable: all fields are set and validated by the
// constructors, and the volume is computed once.
type Package struct {
	dimensions valueobject.Dimensions
	mass       float64
	volume     float64
}

// NewPackage creates a Package from numeric measurements.
// Every value must be a finite number greater than zero.
//
// Parameters:
//   - height: Height in centimeters
//   - width: Width in centimeters
//   - length: Length in centimeters
//   - mass: Mass in kilograms
//
// Returns:
//   - *Package: the validated package
//   - error: *InputError wrapping ErrNotNumeric for NaN or infinite values,
//     or ErrNotPositive for values less than or equal to zero
func NewPackage(height, width, length, mass float64) (*Package, error) {
	values := []struct {
		field string
		value float64
	}{
		{"height", height},
		{"width", width},
		{"length", length},
		{"mass", mass},
	}
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return nil, &InputError{Field: v.field, Value: formatFloat(v.value), Err: ErrNotNumeric}
		}
	}

	m := measurements{
		Dimensions: valueobject.NewDimensions(height, width, length),
		Mass:       mass,
	}
	if err := validate.Struct(m); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, &InputError{
				Field: strings.ToLower(verrs[0].Field()),
				Value: fmt.Sprint(verrs[0].Value()),
				Err:   ErrNotPositive,
			}
		}
		return nil, fmt.Errorf("validate package: %w", err)
	}

	return &Package{
		dimensions: m.Dimensions,
		mass:       mass,
		volume:     m.Dimensions.Volume(),
	}, nil
}

// ParsePackage creates a Package from numeric text such as "10", "2.5" or "1e2".
// All four inputs are parsed before any is checked for positivity, so a
// non-numeric input is always reported as ErrNotNumeric.
//
// Parameters:
//   - height: Height in centimeters
//   - width: Width in centimeters
//   - length: Length in centimeters
//   - mass: Mass in kilograms
//
// Returns:
//   - *Package: the validated package
//   - error: *InputError wrapping ErrNotNumeric or ErrNotPositive
func ParsePackage(height, width, length, mass string) (*Package, error) {
	raw := []struct {
		field string
		text  string
	}{
		{"height", height},
		{"width", width},
		{"length", length},
		{"mass", mass},
	}

	parsed := make([]float64, len(raw))
	for i, r := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(r.text), 64)
		if err != nil {
			return nil, &InputError{Field: r.field, Value: r.text, Err: ErrNotNumeric}
		}
		parsed[i] = v
	}

	return NewPackage(parsed[0], parsed[1], parsed[2], parsed[3])
}

// Height returns the height in centimeters.
func (p *Package) Height() float64 { return p.dimensions.Height }

// Width returns the width in centimeters.
func (p *Package) Width() float64 { return p.dimensions.Width }

// Length returns the length in centimeters.
func (p *Package) Length() float64 { return p.dimensions.Length }

// Mass returns the mass in kilograms.
func (p *Package) Mass() float64 { return p.mass }

// Volume returns the volume in cm³ computed at construction.
func (p *Package) Volume() float64 { return p.volume }

// Dimensions returns the package dimensions.
func (p *Package) Dimensions() valueobject.Dimensions { return p.dimensions }

// IsBulky checks if the package is bulky.
// A package is bulky when its volume reaches BulkyVolumeThreshold or
// any single side reaches BulkyDimensionThreshold.
//
// Returns:
//   - bool: true if the package is bulky
func (p *Package) IsBulky() bool {
	return p.volume >= BulkyVolumeThreshold || p.dimensions.Longest() >= BulkyDimensionThreshold
}

// IsHeavy checks if the package is heavy.
// The comparison is strict: a package of exactly HeavyMassThreshold kg is not heavy.
//
// Returns:
//   - bool: true if the mass exceeds HeavyMassThreshold
func (p *Package) IsHeavy() bool {
	return p.mass > HeavyMassThreshold
}

// Classify determines the shipping category of the package.
//
// Returns:
//   - Category: REJECTED if bulky and heavy, SPECIAL if only one applies,
//     STANDARD otherwise
func (p *Package) Classify() Category {
	return categorize(p.IsBulky(), p.IsHeavy())
}

// String returns a short description, e.g. "10.0x10.0x10.0 cm, 5.00 kg".
func (p *Package) String() string {
	return fmt.Sprintf("%s, %.2f kg", p.dimensions, p.mass)
}

// Sort builds a package and returns its category.
// Note the argument order: width comes first.
//
// Parameters:
//   - width: Width in centimeters
//   - height: Height in centimeters
//   - length: Length in centimeters
//   - mass: Mass in kilograms
//
// Returns:
//   - Category: the package category
//   - error: construction errors, unchanged
func Sort(width, height, length, mass float64) (Category, error) {
	p, err := NewPackage(height, width, length, mass)
	if err != nil {
		return "", err
	}
	return p.Classify(), nil
}

// SortText is Sort for numeric text inputs.
func SortText(width, height, length, mass string) (Category, error) {
	p, err := ParsePackage(height, width, length, mass)
	if err != nil {
		return "", err
	}
	return p.Classify(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
