package util

import (
	"context"
	"testing"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// CreateTestEngagement inserts a minimal pending engagement and returns its ID.
// Tasks, messages, locks, findings, and events all reference an engagement,
// so coordination and service tests call this first.
func CreateTestEngagement(t *testing.T, client *ent.Client, objective string) string {
	t.Helper()

	id := uuid.New().String()
	_, err := client.Engagement.Create().
		SetID(id).
		SetObjective(objective).
		Save(context.Background())
	require.NoError(t, err)

	return id
}
