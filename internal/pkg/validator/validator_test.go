package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	type sample struct {
		Endpoint string `validate:"required,url"`
		Backend  string `validate:"oneof=fs redis off"`
		Batch    uint64 `validate:"gte=1"`
	}

	t.Run("valid struct passes", func(t *testing.T) {
		err := Validate(sample{
			Endpoint: "https://s2.ripple.com:51234/",
			Backend:  "fs",
			Batch:    100_000,
		})

		assert.NoError(t, err)
	})

	t.Run("invalid struct reports every failing field", func(t *testing.T) {
		err := Validate(sample{
			Endpoint: "not a url",
			Backend:  "memory",
			Batch:    0,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "Endpoint")
		assert.Contains(t, err.Error(), "Backend")
		assert.Contains(t, err.Error(), "Batch")
	})

	t.Run("oneof rejects values outside the set", func(t *testing.T) {
		err := Validate(sample{
			Endpoint: "https://localhost:51234/",
			Backend:  "s3",
			Batch:    1,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "oneof")
	})
}
