// Package util holds shared database plumbing for integration tests. One
// Postgres instance backs the whole run (a testcontainer locally, an
// external service in CI) and every test gets a throwaway schema on it, so
// packages can run in parallel without clobbering each other's rows.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	startContainer sync.Once
	baseConnStr    string
	startErr       error
)

// SetupTestDatabase provisions a fresh schema on the shared instance,
// points an ent client at it, and runs auto-migration. The schema is
// dropped on test cleanup. Returns the ent client plus the underlying
// *sql.DB for callers that need raw access (event publishing, LISTEN).
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	ctx := context.Background()
	connStr := sharedInstance(t)
	schema := GenerateSchemaName(t)

	// A short-lived connection on the default search_path creates the schema.
	admin, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schema))
	require.NoError(t, err)
	require.NoError(t, admin.Close())
	t.Logf("test schema %s ready", schema)

	// The working pool carries search_path in its connection string so every
	// pooled connection resolves tables inside the test schema.
	db, err := stdsql.Open("pgx", AddSearchPathToConnString(connStr, schema))
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))

	// Auto-migration keeps the test DDL in lockstep with the ent schema; the
	// versioned SQL migrations get their own coverage in pkg/database.
	require.NoError(t, client.Schema.Create(ctx))

	t.Cleanup(func() {
		if _, err := db.ExecContext(context.Background(),
			fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schema)); err != nil {
			t.Logf("schema %s not dropped: %v", schema, err)
		}
		_ = client.Close()
		_ = db.Close()
	})

	return client, db
}

// GetBaseConnectionString exposes the shared instance's connection string
// without any search_path. Listeners that hold a dedicated connection (the
// NOTIFY listener's pgx.Conn) want this: NOTIFY channels are global to the
// database, not to a schema.
func GetBaseConnectionString(t *testing.T) string {
	return sharedInstance(t)
}

// sharedInstance resolves the backing Postgres: CI_DATABASE_URL when set,
// otherwise a package-wide testcontainer started on first use.
func sharedInstance(t *testing.T) string {
	if url := os.Getenv("CI_DATABASE_URL"); url != "" {
		t.Log("using external Postgres from CI_DATABASE_URL")
		return url
	}

	startContainer.Do(func() {
		ctx := context.Background()
		t.Log("starting shared Postgres testcontainer")

		container, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			postgres.WithInitScripts(initScriptPath()),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			startErr = fmt.Errorf("postgres container failed to start: %w", err)
			return
		}
		baseConnStr, startErr = container.ConnectionString(ctx, "sslmode=disable")
	})

	require.NoError(t, startErr, "shared test database unavailable")
	return baseConnStr
}

// GenerateSchemaName derives a Postgres-safe schema name from the test name
// plus a random suffix, clipped under the 63-byte identifier limit.
func GenerateSchemaName(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("schema name randomness unavailable: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}

// AddSearchPathToConnString appends a search_path parameter so every pooled
// connection lands in the given schema.
func AddSearchPathToConnString(connStr, schema string) string {
	sep := "?"
	if strings.Contains(connStr, "?") {
		sep = "&"
	}
	return connStr + sep + "search_path=" + schema
}

// initScriptPath locates deploy/postgres-init/01-init.sql relative to this
// source file, so tests in any package find it regardless of working
// directory.
func initScriptPath() string {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("initScriptPath: runtime.Caller failed")
	}
	root := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
	return filepath.Join(root, "deploy", "postgres-init", "01-init.sql")
}
