package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"xss-labs/internal/domain"
	"xss-labs/internal/service"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/001_init_schema.sql
var initSchema string

type sqlRepository struct {
	db *sql.DB
}

// NewSQLiteRepository abre a base de dados e aplica as migrações. Um
// migrationScriptPath vazio usa o schema embutido.
func NewSQLiteRepository(dbPath string, migrationScriptPath string) (service.CommentRepository, error) {
	if dbPath != ":memory:" {
		dbDir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	if dbPath == ":memory:" {
		// cada conexão nova teria a sua própria base em memória
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	script := initSchema
	if migrationScriptPath != "" {
		raw, err := os.ReadFile(migrationScriptPath)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler migração %s: %w", migrationScriptPath, err)
		}
		script = string(raw)
	}

	if _, err = db.Exec(script); err != nil {
		return nil, err
	}

	log.Println("INFO [Repository]: Base de dados SQLite conectada e migrações aplicadas.")
	return &sqlRepository{db: db}, nil
}

func (r *sqlRepository) CreateComment(ctx context.Context, c *domain.Comment) error {
	query := `INSERT INTO comments (id, name, comment, created_at) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Body, c.CreatedAt)
	return err
}

// ListComments devolve o log completo, mais recente primeiro.
func (r *sqlRepository) ListComments(ctx context.Context) ([]*domain.Comment, error) {
	query := `SELECT id, name, comment, created_at FROM comments ORDER BY created_at DESC, rowid DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Body,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// CountComments lê a tabela de comentários; serve também de verificação de saúde.
func (r *sqlRepository) CountComments(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("falha ao contar comentários: %w", err)
	}
	return n, nil
}
