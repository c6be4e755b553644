package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/coworker-service/internal/config"
)

func TestMigrationFilesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"0002_more.sql", "README.md", "0001_init.sql"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.sql"), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files, err := migrationFiles(dir)
	if err != nil {
		t.Fatalf("migration files: %v", err)
	}
	if len(files) != 2 || files[0] != "0001_init.sql" || files[1] != "0002_more.sql" {
		t.Fatalf("unexpected files %v", files)
	}
}

func TestRepoMigrationsPresent(t *testing.T) {
	files, err := migrationFiles(filepath.Join("..", "..", "migrations"))
	if err != nil {
		t.Fatalf("migration files: %v", err)
	}
	if len(files) == 0 {
		t.Fatalf("expected at least one migration")
	}
}

func TestPostgresWithoutDSN(t *testing.T) {
	pg, err := NewPostgres(context.Background(), config.PostgresConfig{}, zap.NewNop())
	if err != nil {
		t.Fatalf("new postgres: %v", err)
	}
	if pg.Enabled() {
		t.Fatalf("expected disabled postgres without DSN")
	}
	if err := pg.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping error when not configured")
	}
	if err := RunMigrations(context.Background(), pg.PoolHandle(), "missing", zap.NewNop()); err != nil {
		t.Fatalf("migrations without pool should be skipped: %v", err)
	}
	pg.Close()
}

func TestRedisWithoutAddr(t *testing.T) {
	r := NewRedis(context.Background(), config.RedisConfig{}, zap.NewNop())
	if r.Handle() != nil {
		t.Fatalf("expected nil client without address")
	}
	if err := r.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping error")
	}
	r.Close()
}
