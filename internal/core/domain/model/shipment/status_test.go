package shipment_test

import (
	"testing"

	"logistics/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass validation", func(t *testing.T) {
		for _, s := range []shipment.Status{shipment.Shipped, shipment.InTransit, shipment.Delivered} {
			assert.NoError(t, s.Validate(), "status %s should be valid", s)
		}
	})

	t.Run("invalid statuses fail validation", func(t *testing.T) {
		for _, s := range []shipment.Status{shipment.Unknown, shipment.Status(42), shipment.Status(-1)} {
			assert.Error(t, s.Validate(), "status %d should be invalid", s)
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Shipped", shipment.Shipped.String())
	assert.Equal(t, "InTransit", shipment.InTransit.String())
	assert.Equal(t, "Delivered", shipment.Delivered.String())
	assert.Equal(t, "Unknown", shipment.Unknown.String())
	assert.Equal(t, "Unknown", shipment.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round-trips valid status names", func(t *testing.T) {
		for _, s := range []shipment.Status{shipment.Shipped, shipment.InTransit, shipment.Delivered} {
			parsed, err := shipment.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "shipped", "DELIVERED", "Lost"} {
			_, err := shipment.StatusFromString(name)
			assert.Error(t, err, "name %q should be rejected", name)
		}
	})
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("any valid status transitions to Delivered", func(t *testing.T) {
		for _, s := range []shipment.Status{shipment.Shipped, shipment.InTransit, shipment.Delivered} {
			newStatus, err := s.Deliver()
			require.NoError(t, err, "status %s should allow deliver", s)
			assert.Equal(t, shipment.Delivered, newStatus)
		}
	})

	t.Run("invalid status cannot deliver", func(t *testing.T) {
		_, err := shipment.Unknown.Deliver()
		require.Error(t, err)
	})
}
