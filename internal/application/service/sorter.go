// Package service contains the application use cases.
package service

import (
	"context"
	"errors"

	"github.com/hapkiduki/package-sorter/internal/application/port"
	"github.com/hapkiduki/package-sorter/internal/domain/entity"
)

// Sorter sorts a single package into its shipping category.
type Sorter struct {
	log port.Logger
}

// NewSorter creates a Sorter that reports decisions to log.
//
// Parameters:
//   - log: logger for decision and rejection entries
//
// Returns:
//   - *Sorter: the sorter use case
func NewSorter(log port.Logger) *Sorter {
	return &Sorter{log: log}
}

// Sort parses the raw measurements, builds the package and classifies it.
// Arguments follow the command-line order: width, height, length, mass.
//
// Parameters:
//   - ctx: context carrying request-scoped values for logging
//   - width, height, length: sides in centimeters, as numeric text
//   - mass: mass in kilograms, as numeric text
//
// Returns:
//   - entity.Category: the package category
//   - error: the construction error, unchanged (see entity.ErrNotNumeric
//     and entity.ErrNotPositive)
func (s *Sorter) Sort(ctx context.Context, width, height, length, mass string) (entity.Category, error) {
	log := s.log.WithContext(ctx)

	p, err := entity.ParsePackage(height, width, length, mass)
	if err != nil {
		var inputErr *entity.InputError
		if errors.As(err, &inputErr) {
			log.Warn("Package rejected at input",
				"field", inputErr.Field,
				"value", inputErr.Value,
				"error", inputErr.Err,
			)
		} else {
			log.Error("Package construction failed", "error", err)
		}
		return "", err
	}

	category := p.Classify()

	log.Debug("Package classified",
		"dimensions", p.Dimensions().String(),
		"mass_kg", p.Mass(),
		"volume_cm3", p.Volume(),
		"bulky", p.IsBulky(),
		"heavy", p.IsHeavy(),
		"category", category.String(),
	)

	return category, nil
}
