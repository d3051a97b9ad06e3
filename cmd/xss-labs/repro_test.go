package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"xss-labs/internal/repository"
	"xss-labs/internal/service"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReproStoredComment(t *testing.T) {
	// 1. Base temporária com migração em ficheiro, como em produção
	dir := t.TempDir()
	dbFile := filepath.Join(dir, "test_repro.db")
	migFile := filepath.Join(dir, "001_init_schema.sql")
	schema := `
	CREATE TABLE IF NOT EXISTS comments (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		comment     TEXT NOT NULL,
		created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`
	require.NoError(t, os.WriteFile(migFile, []byte(schema), 0644))

	repo, err := repository.NewSQLiteRepository(dbFile, migFile)
	require.NoError(t, err)

	svc := service.NewLabService(repo)

	// 2. Payload guardado tal como foi enviado
	page, err := svc.StoredPage(context.Background(), "Alice", "<script>alert(1)</script>")
	require.NoError(t, err)

	require.Len(t, page.Comments, 1)
	assert.Equal(t, "Alice", page.Comments[0].Name)
	assert.Equal(t, "<script>alert(1)</script>", page.Comments[0].Body)
	require.NotNil(t, page.Signal)
	assert.True(t, page.Signal.Found)

	// 3. Uma nova leitura continua a devolver o registo
	comments, err := svc.ListComments(context.Background())
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, log.DEBUG, logLevel("DEBUG"))
	assert.Equal(t, log.WARN, logLevel("warn"))
	assert.Equal(t, log.INFO, logLevel(""))
}
