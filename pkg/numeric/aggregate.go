package numeric

import (
	"reflect"

	"github.com/dmitrymomot/safeop/pkg/result"
	"github.com/dmitrymomot/safeop/pkg/validator"
)

// elements validates values as a non-empty slice or array of numbers. Every
// element runs through the numeric pipeline before anything is folded.
func elements(values any, overrides []Override) ([]float64, error) {
	if values == nil {
		return nil, result.Presence(MsgArrayRequired)
	}

	rv := reflect.ValueOf(values)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, result.TypeMismatch(MsgNotAnArray)
	}
	if rv.Len() == 0 {
		return nil, result.Policy(MsgEmptyArray)
	}

	cfg := validator.MergeNumber(overrides...)
	out := make([]float64, rv.Len())
	for i := range rv.Len() {
		n, err := validator.ValidateNumber(rv.Index(i).Interface(), cfg)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func sum(values any, overrides []Override) (float64, int, error) {
	ns, err := elements(values, overrides)
	if err != nil {
		return 0, 0, err
	}
	total := 0.0
	for _, n := range ns {
		total += n
	}
	total, err = finite(total, ns...)
	if err != nil {
		return 0, 0, err
	}
	return total, len(ns), nil
}

// Sum adds every element of a slice or array.
func Sum(values any, overrides ...Override) result.Outcome[float64] {
	return result.Run(func() (float64, error) {
		total, _, err := sum(values, overrides)
		return total, err
	})
}

// Average is Sum divided by the element count, so it fails whenever Sum does.
func Average(values any, overrides ...Override) result.Outcome[float64] {
	return result.Run(func() (float64, error) {
		total, count, err := sum(values, overrides)
		if err != nil {
			return 0, err
		}
		return total / float64(count), nil
	})
}

// Minimum returns the smallest element.
func Minimum(values any, overrides ...Override) result.Outcome[float64] {
	return fold(values, overrides, func(acc, n float64) bool { return n < acc })
}

// Maximum returns the largest element.
func Maximum(values any, overrides ...Override) result.Outcome[float64] {
	return fold(values, overrides, func(acc, n float64) bool { return n > acc })
}

func fold(values any, overrides []Override, replace func(acc, n float64) bool) result.Outcome[float64] {
	return result.Run(func() (float64, error) {
		ns, err := elements(values, overrides)
		if err != nil {
			return 0, err
		}
		acc := ns[0]
		for _, n := range ns[1:] {
			if replace(acc, n) {
				acc = n
			}
		}
		return acc, nil
	})
}
