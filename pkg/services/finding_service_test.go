package services

import (
	"context"
	"testing"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	testdb "github.com/Spark-Corporations/Red-Shadow-sub000/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindingService_Add(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFindingService(client.Client)
	eng := createTestEngagement(t, client.Client)
	ctx := context.Background()

	t.Run("persists a full finding", func(t *testing.T) {
		row, err := svc.Add(ctx, eng.ID, FindingInput{
			Phase:       "recon",
			Title:       "Exposed SSH service",
			Severity:    models.SeverityMedium,
			Description: "Port 22 open with password auth enabled",
			Evidence:    []string{"nmap -p22 10.0.0.5: open"},
			Metadata:    map[string]interface{}{"port": float64(22)},
			AgentID:     "worker-1",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, row.ID)
		assert.Equal(t, "Exposed SSH service", row.Title)
		assert.Equal(t, "medium", string(row.Severity))
		assert.Equal(t, []string{"nmap -p22 10.0.0.5: open"}, row.Evidence)
	})

	t.Run("requires title", func(t *testing.T) {
		_, err := svc.Add(ctx, eng.ID, FindingInput{Severity: models.SeverityLow})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown severity", func(t *testing.T) {
		_, err := svc.Add(ctx, eng.ID, FindingInput{Title: "x", Severity: "catastrophic"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing engagement maps to not found", func(t *testing.T) {
		_, err := svc.Add(ctx, "ghost", FindingInput{Title: "x", Severity: models.SeverityInfo})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestFindingService_ListAndCount(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFindingService(client.Client)
	eng := createTestEngagement(t, client.Client)
	ctx := context.Background()

	for _, f := range []FindingInput{
		{Title: "RCE in web app", Severity: models.SeverityCritical, Phase: "exploit"},
		{Title: "Open SSH", Severity: models.SeverityMedium, Phase: "recon"},
		{Title: "Banner disclosure", Severity: models.SeverityMedium, Phase: "recon"},
		{Title: "Host is up", Severity: models.SeverityInfo, Phase: "recon"},
	} {
		_, err := svc.Add(ctx, eng.ID, f)
		require.NoError(t, err)
	}

	t.Run("lists all chronologically", func(t *testing.T) {
		rows, err := svc.List(ctx, eng.ID, "")
		require.NoError(t, err)
		require.Len(t, rows, 4)
		for i := 1; i < len(rows); i++ {
			assert.False(t, rows[i].CreatedAt.Before(rows[i-1].CreatedAt))
		}
	})

	t.Run("filters by severity", func(t *testing.T) {
		rows, err := svc.List(ctx, eng.ID, "medium")
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("rejects unknown severity filter", func(t *testing.T) {
		_, err := svc.List(ctx, eng.ID, "bogus")
		assert.True(t, IsValidationError(err))
	})

	t.Run("counts by severity", func(t *testing.T) {
		counts, err := svc.CountBySeverity(ctx, eng.ID)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{
			"critical": 1,
			"medium":   2,
			"info":     1,
		}, counts)
	})
}
