package validator_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/safeop/pkg/result"
	"github.com/dmitrymomot/safeop/pkg/validator"
)

func failureOf(t *testing.T, err error) *result.Failure {
	t.Helper()
	require.Error(t, err)
	var f *result.Failure
	require.ErrorAs(t, err, &f)
	return f
}

func TestMergeNumber(t *testing.T) {
	t.Parallel()

	t.Run("empty override is identity", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, validator.DefaultNumberConfig(), validator.MergeNumber())
		assert.Equal(t, validator.DefaultNumberConfig(), validator.MergeNumber(validator.NumberOverride{}))
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		cfg := validator.DefaultNumberConfig()
		require.NotNil(t, cfg.Min)
		require.NotNil(t, cfg.Max)
		assert.Equal(t, float64(-validator.MaxSafeInteger), *cfg.Min)
		assert.Equal(t, float64(validator.MaxSafeInteger), *cfg.Max)
		assert.True(t, cfg.AllowNegative)
		assert.True(t, cfg.AllowZero)
		assert.False(t, cfg.AllowInfinite)
		assert.False(t, cfg.AllowNaN)
	})

	t.Run("set values replace defaults", func(t *testing.T) {
		t.Parallel()
		cfg := validator.MergeNumber(validator.NumberOverride{
			Min:       validator.Set(1.0),
			AllowZero: validator.Set(false),
		})
		assert.Equal(t, 1.0, *cfg.Min)
		assert.False(t, cfg.AllowZero)
		assert.Equal(t, float64(validator.MaxSafeInteger), *cfg.Max)
	})

	t.Run("explicit absence wins over the default", func(t *testing.T) {
		t.Parallel()
		cfg := validator.MergeNumber(validator.NumberOverride{
			Max:           validator.Clear[float64](),
			AllowNegative: validator.Clear[bool](),
		})
		assert.Nil(t, cfg.Max)
		assert.False(t, cfg.AllowNegative)

		_, err := validator.ValidateNumber(1e300, cfg)
		assert.NoError(t, err)

		_, err = validator.ValidateNumber(-1, cfg)
		assert.Equal(t, validator.MsgNegative, failureOf(t, err).Message)
	})

	t.Run("later overrides win", func(t *testing.T) {
		t.Parallel()
		cfg := validator.MergeNumber(
			validator.NumberOverride{Min: validator.Set(5.0)},
			validator.NumberOverride{Min: validator.Set(7.0)},
			validator.NumberOverride{Max: validator.Set(9.0)},
		)
		assert.Equal(t, 7.0, *cfg.Min)
		assert.Equal(t, 9.0, *cfg.Max)
	})
}

func TestValidateNumber(t *testing.T) {
	t.Parallel()

	permissive := validator.MergeNumber(validator.NumberOverride{
		AllowNaN:      validator.Set(true),
		AllowInfinite: validator.Set(true),
	})

	t.Run("accepts Go numeric types and json.Number", func(t *testing.T) {
		t.Parallel()
		cfg := validator.DefaultNumberConfig()
		for _, v := range []any{int(3), int8(3), int64(3), uint16(3), float32(3), 3.0, json.Number("3")} {
			n, err := validator.ValidateNumber(v, cfg)
			require.NoError(t, err)
			assert.Equal(t, 3.0, n)
		}
	})

	t.Run("presence runs first", func(t *testing.T) {
		t.Parallel()
		_, err := validator.ValidateNumber(nil, permissive)
		f := failureOf(t, err)
		assert.Equal(t, result.KindPresence, f.Kind)
		assert.Equal(t, validator.MsgNumberRequired, f.Message)
	})

	t.Run("type runs before any policy", func(t *testing.T) {
		t.Parallel()
		strict := validator.MergeNumber(validator.NumberOverride{AllowZero: validator.Set(false)})
		for _, v := range []any{"12", true, []int{1}, json.Number("abc")} {
			_, err := validator.ValidateNumber(v, strict)
			f := failureOf(t, err)
			assert.Equal(t, result.KindType, f.Kind)
			assert.Equal(t, validator.MsgNotANumber, f.Message)
		}
	})

	t.Run("NaN rejected by default", func(t *testing.T) {
		t.Parallel()
		_, err := validator.ValidateNumber(math.NaN(), validator.DefaultNumberConfig())
		assert.Equal(t, validator.MsgNaN, failureOf(t, err).Message)
	})

	t.Run("allowed NaN bypasses range checks", func(t *testing.T) {
		t.Parallel()
		cfg := validator.MergeNumber(validator.NumberOverride{
			AllowNaN:  validator.Set(true),
			AllowZero: validator.Set(false),
			Min:       validator.Set(10.0),
		})
		n, err := validator.ValidateNumber(math.NaN(), cfg)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(n))
	})

	t.Run("infinity rejected by default", func(t *testing.T) {
		t.Parallel()
		_, err := validator.ValidateNumber(math.Inf(-1), validator.DefaultNumberConfig())
		assert.Equal(t, validator.MsgInfinite, failureOf(t, err).Message)
	})

	t.Run("allowed infinity bypasses sign and range", func(t *testing.T) {
		t.Parallel()
		cfg := validator.MergeNumber(validator.NumberOverride{
			AllowInfinite: validator.Set(true),
			AllowNegative: validator.Set(false),
		})
		n, err := validator.ValidateNumber(math.Inf(-1), cfg)
		require.NoError(t, err)
		assert.True(t, math.IsInf(n, -1))
	})

	t.Run("zero policy runs before range", func(t *testing.T) {
		t.Parallel()
		cfg := validator.MergeNumber(validator.NumberOverride{
			AllowZero: validator.Set(false),
			Min:       validator.Set(1.0),
		})
		_, err := validator.ValidateNumber(0, cfg)
		assert.Equal(t, validator.MsgZero, failureOf(t, err).Message)
	})

	t.Run("sign policy runs before range", func(t *testing.T) {
		t.Parallel()
		cfg := validator.MergeNumber(validator.NumberOverride{
			AllowNegative: validator.Set(false),
			Min:           validator.Set(0.0),
		})
		_, err := validator.ValidateNumber(-5, cfg)
		assert.Equal(t, validator.MsgNegative, failureOf(t, err).Message)
	})

	t.Run("minimum before maximum", func(t *testing.T) {
		t.Parallel()
		cfg := validator.MergeNumber(validator.NumberOverride{
			Min: validator.Set(10.0),
			Max: validator.Set(0.0),
		})
		_, err := validator.ValidateNumber(5, cfg)
		f := failureOf(t, err)
		assert.Equal(t, result.KindPolicy, f.Kind)
		assert.Equal(t, "Value must be at least 10", f.Message)
	})

	t.Run("maximum bound", func(t *testing.T) {
		t.Parallel()
		cfg := validator.MergeNumber(validator.NumberOverride{Max: validator.Set(2.5)})
		_, err := validator.ValidateNumber(3, cfg)
		assert.Equal(t, "Value must be at most 2.5", failureOf(t, err).Message)
	})

	t.Run("default range is the safe integer range", func(t *testing.T) {
		t.Parallel()
		_, err := validator.ValidateNumber(float64(validator.MaxSafeInteger), validator.DefaultNumberConfig())
		assert.NoError(t, err)
		_, err = validator.ValidateNumber(1e16, validator.DefaultNumberConfig())
		assert.Equal(t, "Value must be at most 9007199254740991", failureOf(t, err).Message)
	})
}

func TestFormatFloat(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "10", validator.FormatFloat(10))
	assert.Equal(t, "-0.125", validator.FormatFloat(-0.125))
	assert.Equal(t, "9007199254740991", validator.FormatFloat(validator.MaxSafeInteger))
}
