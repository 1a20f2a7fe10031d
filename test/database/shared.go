package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/database"
	"github.com/Spark-Corporations/Red-Shadow-sub000/test/util"
	"github.com/stretchr/testify/require"
)

// SharedTestDB is one migrated schema that several replicas mount at once.
// Each replica gets its own connection pool through NewClient, so
// multi-replica scenarios — engagement claiming, orphan takeover, NOTIFY
// fan-out across pods — run against the exact concurrency shape production
// has, while the schema is still torn down with the test.
type SharedTestDB struct {
	pooledConnStr string
	baseConnStr   string
	schema        string
}

// NewSharedTestDB provisions the schema, applies the ent migration and GIN
// indexes once, and registers the schema drop on cleanup. Replica pools
// registered later close first (t.Cleanup is LIFO), so the drop never races
// live connections.
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()
	ctx := context.Background()

	base := util.GetBaseConnectionString(t)
	schema := util.GenerateSchemaName(t)

	admin, err := stdsql.Open("pgx", base)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schema))
	require.NoError(t, err)
	require.NoError(t, admin.Close())

	pooled := util.AddSearchPathToConnString(base, schema)

	// A throwaway client runs the migration; replicas bring their own pools.
	migDB, err := stdsql.Open("pgx", pooled)
	require.NoError(t, err)
	drv := entsql.OpenDB(dialect.Postgres, migDB)
	migClient := ent.NewClient(ent.Driver(drv))
	require.NoError(t, migClient.Schema.Create(ctx))
	require.NoError(t, database.CreateGINIndexes(ctx, drv))
	_ = migClient.Close()
	_ = migDB.Close()

	t.Cleanup(func() { dropSchema(t, base, schema) })

	return &SharedTestDB{
		pooledConnStr: pooled,
		baseConnStr:   base,
		schema:        schema,
	}
}

// NewClient opens an independent pool onto the shared schema, wrapped as a
// *database.Client. Closing one replica's pool never disturbs another's.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()

	db, err := stdsql.Open("pgx", s.pooledConnStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	entClient := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	t.Cleanup(func() {
		_ = entClient.Close()
		_ = db.Close()
	})
	return database.NewClientFromEnt(entClient, db)
}

// BaseConnectionString is the schema-less connection string for dedicated
// listener connections.
func (s *SharedTestDB) BaseConnectionString() string {
	return s.baseConnStr
}

// ConnectionString carries the shared schema's search_path.
func (s *SharedTestDB) ConnectionString() string {
	return s.pooledConnStr
}

// SchemaName returns the schema all replicas share.
func (s *SharedTestDB) SchemaName() string {
	return s.schema
}

func dropSchema(t *testing.T, connStr, schema string) {
	db, err := stdsql.Open("pgx", connStr)
	if err != nil {
		t.Logf("shared schema %s not dropped: %v", schema, err)
		return
	}
	defer func() { _ = db.Close() }()
	if _, err := db.ExecContext(context.Background(),
		fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schema)); err != nil {
		t.Logf("shared schema %s not dropped: %v", schema, err)
	}
}
