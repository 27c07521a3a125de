package validator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/safeop/pkg/validator"
)

func TestSetting_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("missing keys stay unset and null clears", func(t *testing.T) {
		t.Parallel()
		var o validator.NumberOverride
		require.NoError(t, json.Unmarshal([]byte(`{"max": null, "allowZero": false, "min": -3}`), &o))

		assert.False(t, o.AllowNaN.Present())
		assert.True(t, o.Max.Cleared())

		allowZero, ok := o.AllowZero.Get()
		assert.True(t, ok)
		assert.False(t, allowZero)

		minVal, ok := o.Min.Get()
		assert.True(t, ok)
		assert.Equal(t, -3.0, minVal)

		cfg := validator.MergeNumber(o)
		assert.Nil(t, cfg.Max)
		assert.Equal(t, -3.0, *cfg.Min)
		assert.False(t, cfg.AllowZero)
	})

	t.Run("wrong value type is rejected", func(t *testing.T) {
		t.Parallel()
		var o validator.TextOverride
		err := json.Unmarshal([]byte(`{"maxLength": "long"}`), &o)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrInvalidSetting)
	})

	t.Run("marshals set values and nulls", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(validator.TextOverride{
			MaxLength:         validator.Set(12),
			AllowControlChars: validator.Clear[bool](),
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"maxLength":12,"allowWhitespaceOnly":null,"allowControlChars":null}`, string(data))
	})
}
