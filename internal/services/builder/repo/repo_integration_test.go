//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	perr "segmenter/internal/platform/errors"
	"segmenter/internal/platform/store"
	"segmenter/internal/services/builder/domain"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

const savedFiltersDDL = `
	CREATE TABLE IF NOT EXISTS saved_filters (
		name       text PRIMARY KEY,
		spec       jsonb NOT NULL,
		updated_at timestamptz NOT NULL DEFAULT now()
	)`

func TestSavedFilters_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "segmenter-repo-integration",
		PG:      store.PGConfig{Enabled: true, URL: dsn},
	})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer st.Close(context.Background())

	if _, err := st.PG.Exec(ctx, savedFiltersDDL); err != nil {
		t.Fatalf("create table: %v", err)
	}

	r := NewPG().Bind(st.PG)

	spec := domain.Compile(domain.Store{}.
		AddRegion("Texas").
		ToggleCustomerStatus(domain.StatusAll))

	if err := r.Upsert(ctx, "texas", spec); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := r.Get(ctx, "texas")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Spec.Regions) != 1 || got.Spec.Regions[0] != "Texas" {
		t.Fatalf("spec round trip: %+v", got.Spec)
	}

	// upsert replaces under the same name
	spec2 := domain.Compile(domain.Store{}.AddRegion("Alberta"))
	if err := r.Upsert(ctx, "texas", spec2); err != nil {
		t.Fatalf("upsert replace: %v", err)
	}
	got, err = r.Get(ctx, "texas")
	if err != nil {
		t.Fatalf("get after replace: %v", err)
	}
	if got.Spec.Regions[0] != "Alberta" {
		t.Fatalf("replace did not stick: %+v", got.Spec)
	}

	list, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list = %+v", list)
	}

	if err := r.Delete(ctx, "texas"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := r.Delete(ctx, "texas"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("second delete = %v, want not found", err)
	}
	if _, err := r.Get(ctx, "texas"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("get after delete = %v, want not found", err)
	}
}
