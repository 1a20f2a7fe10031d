package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/database"
	"github.com/Spark-Corporations/Red-Shadow-sub000/test/util"
	"github.com/stretchr/testify/require"
)

// NewTestClient returns a database.Client bound to a per-test schema on the
// shared test instance, with the GIN indexes applied on top of the ent
// auto-migration. Schema drop and connection close happen in the test
// cleanup registered by SetupTestDatabase.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreateGINIndexes(context.Background(), drv))

	return database.NewClientFromEnt(entClient, db)
}
