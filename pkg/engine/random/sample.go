package random

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/rigterw/PCG/pkg/engine/errors"
)

// Intn returns a value in [0, n)
func Intn(r dice.Roller, n int) (int, error) {
	if n <= 0 {
		return 0, errors.InvalidArgumentf("sample range must be positive, got %d", n)
	}
	v, err := r.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll")
	}
	return v - 1, nil
}

// Between returns a value in [lo, hi], both inclusive. lo == hi always
// yields lo; hi < lo is an error.
func Between(r dice.Roller, lo, hi int) (int, error) {
	if hi < lo {
		return 0, errors.InvalidArgumentf("empty range [%d, %d]", lo, hi)
	}
	v, err := Intn(r, hi-lo+1)
	if err != nil {
		return 0, err
	}
	return lo + v, nil
}

// Choice returns a uniformly chosen element of items
func Choice[T any](r dice.Roller, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, errors.InvalidArgumentf("cannot choose from an empty slice")
	}
	i, err := Intn(r, len(items))
	if err != nil {
		return zero, err
	}
	return items[i], nil
}

// Shuffle permutes items in place (Fisher-Yates)
func Shuffle[T any](r dice.Roller, items []T) error {
	for i := len(items) - 1; i > 0; i-- {
		j, err := Intn(r, i+1)
		if err != nil {
			return err
		}
		items[i], items[j] = items[j], items[i]
	}
	return nil
}
