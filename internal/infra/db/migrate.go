package db

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"

	"tripmatch/internal/pkg/config"
	"tripmatch/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"ariga.io/atlas/sql/migrate"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const (
	EngineEmbedded = "embedded"
	EngineAtlas    = "atlas"
)

const createSchemaMigrations = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version    TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migrations exposes the embedded migration files, sorted by name.
func Migrations() (fs.FS, []string, error) {
	sub, err := fs.Sub(migrationFS, "migrations")
	if err != nil {
		return nil, nil, err
	}
	entries, err := fs.ReadDir(sub, ".")
	if err != nil {
		return nil, nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ".sql" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return sub, names, nil
}

func Migrate(ctx context.Context, pool *pgxpool.Pool, dbCfg config.DBConfig, mCfg config.MigrationConfig) error {
	switch mCfg.Engine {
	case EngineAtlas:
		return MigrateWithAtlas(ctx, dbCfg.BuildDSN(), mCfg.AtlasBin)
	case EngineEmbedded, "":
		return MigrateEmbedded(ctx, pool)
	default:
		return errs.New("unknown migration engine: " + mCfg.Engine)
	}
}

// MigrateEmbedded applies each embedded file once, recording it in schema_migrations.
func MigrateEmbedded(ctx context.Context, pool *pgxpool.Pool) error {
	sub, names, err := Migrations()
	if err != nil {
		return errs.Wrap(err, "read migrations")
	}
	if _, err := pool.Exec(ctx, createSchemaMigrations); err != nil {
		return errs.Wrap(err, "create schema_migrations")
	}

	applied := 0
	for _, name := range names {
		content, err := fs.ReadFile(sub, name)
		if err != nil {
			return errs.Wrap(err, "read migration "+name)
		}
		ok, err := applyOnce(ctx, pool, name, string(content))
		if err != nil {
			return errs.Wrap(err, "apply migration "+name)
		}
		if ok {
			slog.Info("applying migration", "file", name)
			applied++
		}
	}

	slog.Info("migrations applied", "count", applied, "known", len(names))
	return nil
}

func applyOnce(ctx context.Context, pool *pgxpool.Pool, version, sql string) (bool, error) {
	var ran bool
	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		// serializes concurrent migrators
		if _, err := tx.Exec(ctx, "LOCK TABLE schema_migrations IN EXCLUSIVE MODE"); err != nil {
			return err
		}
		var exists bool
		if err := tx.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)", version).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return nil
		}
		if _, err := tx.Exec(ctx, sql); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
			return err
		}
		ran = true
		return nil
	})
	return ran, err
}

// MigrateWithAtlas materializes the embedded files into an atlas migration
// directory (with atlas.sum) and runs `atlas migrate apply` against dsn.
func MigrateWithAtlas(ctx context.Context, dsn, atlasBin string) error {
	if atlasBin == "" {
		atlasBin = "atlas"
	}

	dirPath, err := os.MkdirTemp("", "tripmatch-migrations-*")
	if err != nil {
		return errs.Wrap(err, "create atlas migration dir")
	}
	defer os.RemoveAll(dirPath)

	if err := writeAtlasDir(dirPath); err != nil {
		return err
	}

	client, err := atlasexec.NewClient(dirPath, atlasBin)
	if err != nil {
		return errs.Wrap(err, "init atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dsn,
		DirURL: "file://" + dirPath,
	})
	if err != nil {
		return errs.Wrap(err, "atlas migrate apply")
	}

	slog.Info("atlas migrations applied", "count", len(res.Applied), "current", res.Current, "target", res.Target)
	return nil
}

func writeAtlasDir(dirPath string) error {
	sub, names, err := Migrations()
	if err != nil {
		return errs.Wrap(err, "read migrations")
	}
	dir, err := migrate.NewLocalDir(dirPath)
	if err != nil {
		return errs.Wrap(err, "open atlas dir")
	}
	for _, name := range names {
		content, err := fs.ReadFile(sub, name)
		if err != nil {
			return errs.Wrap(err, "read migration "+name)
		}
		if err := dir.WriteFile(name, content); err != nil {
			return errs.Wrap(err, "write migration "+name)
		}
	}
	sum, err := dir.Checksum()
	if err != nil {
		return errs.Wrap(err, "compute atlas.sum")
	}
	return migrate.WriteSumFile(dir, sum)
}
