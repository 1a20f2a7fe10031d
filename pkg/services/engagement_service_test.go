package services

import (
	"context"
	"testing"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	testdb "github.com/Spark-Corporations/Red-Shadow-sub000/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEngagementService(client.Client)
	ctx := context.Background()

	t.Run("creates pending engagement", func(t *testing.T) {
		eng, err := svc.Create(ctx, CreateEngagementInput{
			Objective:     "assess host 10.0.0.5",
			ObjectiveType: "network",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, eng.ID)
		assert.Equal(t, engagement.StatusPending, eng.Status)
		assert.Equal(t, "network", eng.ObjectiveType)
		assert.False(t, eng.CreatedAt.IsZero())
	})

	t.Run("rejects empty objective", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateEngagementInput{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("accepts valid scope override", func(t *testing.T) {
		eng, err := svc.Create(ctx, CreateEngagementInput{
			Objective: "scan the lab subnet",
			Scope: map[string]interface{}{
				"include_cidrs": []interface{}{"10.0.0.0/24"},
				"exclude_cidrs": []interface{}{"10.0.0.1/32"},
				"rate_limit":    float64(10),
			},
		})
		require.NoError(t, err)
		assert.NotNil(t, eng.Scope)
	})

	t.Run("rejects malformed scope CIDR", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateEngagementInput{
			Objective: "scan",
			Scope: map[string]interface{}{
				"include_cidrs": []interface{}{"not-a-cidr"},
			},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestEngagementService_GetAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEngagementService(client.Client)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateEngagementInput{Objective: "first", ObjectiveType: "network"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateEngagementInput{Objective: "second", ObjectiveType: "web"})
	require.NoError(t, err)

	t.Run("get by id", func(t *testing.T) {
		got, err := svc.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "first", got.Objective)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := svc.Get(ctx, "does-not-exist")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		resp, err := svc.List(ctx, models.EngagementFilters{})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
		require.Len(t, resp.Engagements, 2)
		assert.False(t, resp.Engagements[0].CreatedAt.Before(resp.Engagements[1].CreatedAt))
	})

	t.Run("filter by objective type", func(t *testing.T) {
		resp, err := svc.List(ctx, models.EngagementFilters{ObjectiveType: "web"})
		require.NoError(t, err)
		require.Len(t, resp.Engagements, 1)
		assert.Equal(t, "second", resp.Engagements[0].Objective)
	})

	t.Run("pagination", func(t *testing.T) {
		resp, err := svc.List(ctx, models.EngagementFilters{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
		assert.Len(t, resp.Engagements, 1)
	})
}

type fakePool struct {
	cancelled []string
	result    bool
}

func (p *fakePool) CancelEngagement(engagementID string) bool {
	p.cancelled = append(p.cancelled, engagementID)
	return p.result
}

func TestEngagementService_Cancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEngagementService(client.Client)
	ctx := context.Background()

	t.Run("pending flips to cancelled directly", func(t *testing.T) {
		eng, err := svc.Create(ctx, CreateEngagementInput{Objective: "pending cancel"})
		require.NoError(t, err)

		require.NoError(t, svc.Cancel(ctx, eng.ID))

		got, err := svc.Get(ctx, eng.ID)
		require.NoError(t, err)
		assert.Equal(t, engagement.StatusCancelled, got.Status)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("in-progress goes through the pool", func(t *testing.T) {
		eng, err := svc.Create(ctx, CreateEngagementInput{Objective: "running cancel"})
		require.NoError(t, err)
		require.NoError(t, client.Engagement.UpdateOneID(eng.ID).
			SetStatus(engagement.StatusInProgress).Exec(ctx))

		pool := &fakePool{result: true}
		svc.SetPoolCanceler(pool)
		require.NoError(t, svc.Cancel(ctx, eng.ID))
		assert.Equal(t, []string{eng.ID}, pool.cancelled)
	})

	t.Run("in-progress on another replica errors", func(t *testing.T) {
		eng, err := svc.Create(ctx, CreateEngagementInput{Objective: "elsewhere"})
		require.NoError(t, err)
		require.NoError(t, client.Engagement.UpdateOneID(eng.ID).
			SetStatus(engagement.StatusInProgress).Exec(ctx))

		svc.SetPoolCanceler(&fakePool{result: false})
		err = svc.Cancel(ctx, eng.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "another replica")
	})

	t.Run("terminal status is rejected", func(t *testing.T) {
		eng, err := svc.Create(ctx, CreateEngagementInput{Objective: "done"})
		require.NoError(t, err)
		require.NoError(t, client.Engagement.UpdateOneID(eng.ID).
			SetStatus(engagement.StatusCompleted).Exec(ctx))

		err = svc.Cancel(ctx, eng.ID)
		assert.True(t, IsValidationError(err))
	})
}

func TestEngagementService_Delete(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEngagementService(client.Client)
	ctx := context.Background()

	t.Run("soft deletes terminal engagement", func(t *testing.T) {
		eng, err := svc.Create(ctx, CreateEngagementInput{Objective: "finished"})
		require.NoError(t, err)
		require.NoError(t, client.Engagement.UpdateOneID(eng.ID).
			SetStatus(engagement.StatusCompleted).Exec(ctx))

		require.NoError(t, svc.Delete(ctx, eng.ID))

		row, err := client.Engagement.Get(ctx, eng.ID)
		require.NoError(t, err)
		assert.NotNil(t, row.DeletedAt)

		// Soft-deleted rows disappear from default listings.
		resp, err := svc.List(ctx, models.EngagementFilters{})
		require.NoError(t, err)
		for _, e := range resp.Engagements {
			assert.NotEqual(t, eng.ID, e.ID)
		}
	})

	t.Run("refuses to delete a running engagement", func(t *testing.T) {
		eng, err := svc.Create(ctx, CreateEngagementInput{Objective: "busy"})
		require.NoError(t, err)
		require.NoError(t, client.Engagement.UpdateOneID(eng.ID).
			SetStatus(engagement.StatusInProgress).Exec(ctx))

		err = svc.Delete(ctx, eng.ID)
		assert.True(t, IsValidationError(err))
	})
}

func TestEngagementService_Stats(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEngagementService(client.Client)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Create(ctx, CreateEngagementInput{Objective: "pending"})
		require.NoError(t, err)
	}
	done, err := svc.Create(ctx, CreateEngagementInput{Objective: "done"})
	require.NoError(t, err)
	require.NoError(t, client.Engagement.UpdateOneID(done.ID).
		SetStatus(engagement.StatusCompleted).Exec(ctx))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByStatus["pending"])
	assert.Equal(t, 1, stats.ByStatus["completed"])
}

func TestEngagementService_SoftDeleteOldEngagements(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEngagementService(client.Client)
	ctx := context.Background()

	old, err := svc.Create(ctx, CreateEngagementInput{Objective: "ancient"})
	require.NoError(t, err)
	require.NoError(t, client.Engagement.UpdateOneID(old.ID).
		SetStatus(engagement.StatusFailed).
		SetCreatedAt(time.Now().AddDate(-2, 0, 0)).
		Exec(ctx))

	count, err := svc.SoftDeleteOldEngagements(ctx, 365)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Second pass is a no-op.
	count, err = svc.SoftDeleteOldEngagements(ctx, 365)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Disabled retention is a no-op too.
	count, err = svc.SoftDeleteOldEngagements(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, count)
}
