package catalog_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSize(t *testing.T) {
	validPrice, _ := kernel.NewPriceFromFloat(12)

	t.Run("should create valid size with all valid parameters", func(t *testing.T) {
		s, err := catalog.NewSize(3, "Large", validPrice)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, 3, s.ID())
		assert.Equal(t, "Large", s.Name())
		assert.True(t, validPrice.IsEqual(s.UnitPrice()))
	})

	t.Run("should fail with non-positive id", func(t *testing.T) {
		_, err := catalog.NewSize(0, "Large", validPrice)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "size id")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := catalog.NewSize(3, "", validPrice)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "size name")
	})

	t.Run("should fail with unconstructed price", func(t *testing.T) {
		var zeroPrice kernel.Price

		_, err := catalog.NewSize(3, "Large", zeroPrice)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "price must be created")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var zeroPrice kernel.Price

		_, err := catalog.NewSize(-1, "", zeroPrice)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "size id")
		assert.Contains(t, err.Error(), "size name")
		assert.Contains(t, err.Error(), "price must be created")
	})
}

func TestSize_Validate(t *testing.T) {
	t.Run("zero value size fails validation", func(t *testing.T) {
		var s catalog.Size

		err := s.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "size must be created")
	})
}

func TestSize_IsEqual(t *testing.T) {
	price, _ := kernel.NewPriceFromFloat(10)

	t.Run("sizes with same id are equal", func(t *testing.T) {
		a, _ := catalog.NewSize(2, "Medium", price)
		b, _ := catalog.NewSize(2, "Medium (renamed)", price)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("sizes with different ids are not equal", func(t *testing.T) {
		a, _ := catalog.NewSize(1, "Small", price)
		b, _ := catalog.NewSize(2, "Medium", price)

		assert.False(t, a.IsEqual(b))
	})
}
