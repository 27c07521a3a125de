package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/safeop/pkg/result"
	"github.com/dmitrymomot/safeop/pkg/validator"
)

type counter map[string]int

func (c counter) check(name string, v validator.Verdict) validator.Check[struct{}] {
	return validator.Check[struct{}]{
		Name: name,
		Run: func(any, struct{}) validator.Verdict {
			c[name]++
			return v
		},
	}
}

func TestPipeline_Validate(t *testing.T) {
	t.Parallel()

	t.Run("stops at the first failing check", func(t *testing.T) {
		t.Parallel()
		calls := counter{}
		p := validator.Pipeline[struct{}]{
			calls.check("first", validator.Next()),
			calls.check("second", validator.Reject(result.Policy("second failed"))),
			calls.check("third", validator.Reject(result.Policy("third failed"))),
		}

		err := p.Validate("anything", struct{}{})
		require.Error(t, err)
		assert.Equal(t, "second failed", err.Error())
		assert.Equal(t, 1, calls["first"])
		assert.Equal(t, 1, calls["second"])
		assert.Equal(t, 0, calls["third"])
	})

	t.Run("accept skips the remaining checks", func(t *testing.T) {
		t.Parallel()
		calls := counter{}
		p := validator.Pipeline[struct{}]{
			calls.check("bypass", validator.Accept()),
			calls.check("range", validator.Reject(result.Policy("out of range"))),
		}

		assert.NoError(t, p.Validate(1, struct{}{}))
		assert.Equal(t, 0, calls["range"])
	})

	t.Run("passes when every check continues", func(t *testing.T) {
		t.Parallel()
		calls := counter{}
		p := validator.Pipeline[struct{}]{
			calls.check("a", validator.Next()),
			calls.check("b", validator.Next()),
		}
		assert.NoError(t, p.Validate(nil, struct{}{}))
		assert.Equal(t, counter{"a": 1, "b": 1}, calls)
	})

	t.Run("reject without descriptor still fails", func(t *testing.T) {
		t.Parallel()
		p := validator.Pipeline[struct{}]{
			{Name: "bare", Run: func(any, struct{}) validator.Verdict { return validator.Reject(nil) }},
		}
		err := p.Validate(nil, struct{}{})
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestPipelineOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"presence", "type", "nan", "infinity", "zero", "sign", "min", "max"},
		validator.NumberPipeline().Names())
	assert.Equal(t,
		[]string{"presence", "type", "empty", "whitespace", "max_length", "control_chars"},
		validator.TextPipeline().Names())
}

func TestConstraints(t *testing.T) {
	t.Parallel()

	t.Run("returns the first failure and skips the rest", func(t *testing.T) {
		t.Parallel()
		ran := 0
		err := validator.Constraints(
			func() error { ran++; return nil },
			validator.When(true, result.Constraint("Minimum value cannot be greater than maximum value")),
			func() error { ran++; return errors.New("must not run") },
		)
		require.Error(t, err)
		assert.Equal(t, "Minimum value cannot be greater than maximum value", err.Error())
		assert.Equal(t, 1, ran)
	})

	t.Run("nil constraints are skipped", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Constraints(nil, validator.When(false, result.Constraint("x"))))
	})
}
