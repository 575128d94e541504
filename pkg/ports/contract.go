package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/dpda/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract runs a suite of tests to verify that a RunStore implementation
// adheres to the defined interface contract.
func RunStoreContract(t *testing.T, store RunStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		state := &domain.RunState{State: 3, Stack: "XX$", Steps: 2}

		err := store.Save(ctx, sessionID, state)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, 3, loaded.State)
		assert.Equal(t, "XX$", loaded.Stack)
		assert.Equal(t, 2, loaded.Steps)
		assert.False(t, loaded.Trapped)
	})

	t.Run("Stored copy is isolated", func(t *testing.T) {
		state := &domain.RunState{State: 1, Stack: "$"}
		require.NoError(t, store.Save(ctx, sessionID, state))

		state.Trapped = true
		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.False(t, loaded.Trapped)

		loaded.State = 7
		again, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, 1, again.State)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, domain.NewRunState())
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, domain.NewRunState())
		_ = store.Save(ctx, id2, domain.NewRunState())

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
