package order_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass validation", func(t *testing.T) {
		require.NoError(t, order.Draft.Validate())
		require.NoError(t, order.Finalized.Validate())
	})

	t.Run("unknown status fails validation", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
	})

	t.Run("out of range status fails validation", func(t *testing.T) {
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Draft", order.Draft.String())
	assert.Equal(t, "Finalized", order.Finalized.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatus_Finalize(t *testing.T) {
	t.Run("draft finalizes", func(t *testing.T) {
		s, err := order.Draft.Finalize()

		require.NoError(t, err)
		assert.Equal(t, order.Finalized, s)
	})

	t.Run("finalized finalizes again", func(t *testing.T) {
		s, err := order.Finalized.Finalize()

		require.NoError(t, err)
		assert.Equal(t, order.Finalized, s)
	})

	t.Run("unknown cannot finalize", func(t *testing.T) {
		_, err := order.Unknown.Finalize()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status to finalize")
	})
}

func TestStatus_ValidateCanHaveFinalizedAt(t *testing.T) {
	t.Run("draft must not have finalization time", func(t *testing.T) {
		require.NoError(t, order.Draft.ValidateCanHaveFinalizedAt(false))
		require.Error(t, order.Draft.ValidateCanHaveFinalizedAt(true))
	})

	t.Run("finalized must have finalization time", func(t *testing.T) {
		require.NoError(t, order.Finalized.ValidateCanHaveFinalizedAt(true))
		require.Error(t, order.Finalized.ValidateCanHaveFinalizedAt(false))
	})
}
