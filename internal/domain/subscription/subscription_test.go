package subscription

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubscription(t *testing.T) {
	customerID := uuid.New()
	farmID := uuid.New()

	t.Run("creates active subscription", func(t *testing.T) {
		s, err := NewSubscription(customerID, farmID, PlanPremium)
		require.NoError(t, err)
		assert.Equal(t, StatusActive, s.Status)
		assert.Equal(t, PlanPremium, s.Plan)
		assert.WithinDuration(t, time.Now(), s.StartDate, time.Second)
	})

	t.Run("rejects unknown plan", func(t *testing.T) {
		_, err := NewSubscription(customerID, farmID, "Gold Plan")
		assert.Error(t, err)
	})

	t.Run("rejects empty ids", func(t *testing.T) {
		_, err := NewSubscription(uuid.Nil, farmID, PlanFamily)
		assert.Error(t, err)
		_, err = NewSubscription(customerID, uuid.Nil, PlanFamily)
		assert.Error(t, err)
	})
}

func TestSubscriptionRenew(t *testing.T) {
	s, err := NewSubscription(uuid.New(), uuid.New(), PlanPremium)
	require.NoError(t, err)
	require.NoError(t, s.Cancel())

	require.NoError(t, s.Renew(PlanFamily))
	assert.Equal(t, PlanFamily, s.Plan)
	assert.Equal(t, StatusActive, s.Status)

	assert.Error(t, s.Renew("Gold Plan"))
}

func TestSubscriptionLifecycle(t *testing.T) {
	t.Run("pause and resume", func(t *testing.T) {
		s, err := NewSubscription(uuid.New(), uuid.New(), PlanPremium)
		require.NoError(t, err)

		require.NoError(t, s.Pause())
		assert.Equal(t, StatusPaused, s.Status)
		assert.Error(t, s.Pause())

		require.NoError(t, s.Resume())
		assert.Equal(t, StatusActive, s.Status)
		assert.Error(t, s.Resume())
	})

	t.Run("cancel is terminal", func(t *testing.T) {
		s, err := NewSubscription(uuid.New(), uuid.New(), PlanFamily)
		require.NoError(t, err)

		require.NoError(t, s.Cancel())
		assert.Error(t, s.Cancel())
		assert.Error(t, s.Pause())
		assert.Error(t, s.Resume())
	})
}
