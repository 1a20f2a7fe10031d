package services

import (
	"context"
	"testing"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/masking"
	"github.com/stretchr/testify/require"
)

// createTestEngagement persists a minimal engagement for tests that need a
// parent row to hang findings, messages, or interactions off.
func createTestEngagement(t *testing.T, client *ent.Client) *ent.Engagement {
	t.Helper()

	svc := NewEngagementService(client)
	eng, err := svc.Create(context.Background(), CreateEngagementInput{
		Objective:     "assess host 10.0.0.5",
		ObjectiveType: "network",
	})
	require.NoError(t, err)
	return eng
}

// newTestMasker returns a masking service with the builtin default pattern
// group, matching what main wires for the timeline.
func newTestMasker(t *testing.T) *masking.Service {
	t.Helper()
	return masking.NewService(nil)
}
