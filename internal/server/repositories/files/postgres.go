// Package files provides the PostgreSQL-backed file/folder document store.
package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ivolkov/filecab/internal/common"
	"github.com/ivolkov/filecab/internal/dbx"
	"github.com/ivolkov/filecab/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = `id, user_id, name, type, is_public, parent_id, storage_key, created_at`

// parentValue maps a ParentRef to its column value: NULL for root.
func parentValue(p models.ParentRef) any {
	if p.IsRoot() {
		return nil
	}
	return p.ID()
}

// storageValue maps an empty storage key (folders) to NULL.
func storageValue(key string) any {
	if key == "" {
		return nil
	}
	return key
}

func scanFile(row interface{ Scan(...any) error }) (*models.File, error) {
	f := &models.File{}
	var parentID, storageKey sql.NullString
	err := row.Scan(&f.ID, &f.UserID, &f.Name, &f.Type, &f.IsPublic, &parentID, &storageKey, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	if parentID.Valid {
		f.Parent = models.ParentOf(parentID.String)
	}
	f.StorageKey = storageKey.String
	return f, nil
}

// Insert persists a new document and returns it with the store-assigned id.
func (r *PostgresRepository) Insert(ctx context.Context, file *models.File) (*models.File, error) {
	query := `
		INSERT INTO files (user_id, name, type, is_public, parent_id, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		file.UserID, file.Name, file.Type, file.IsPublic,
		parentValue(file.Parent), storageValue(file.StorageKey)).
		Scan(&file.ID, &file.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return file, nil
}

// GetByID returns the document with the given id regardless of owner,
// or common.ErrorNotFound. Used for parent lookups and content reads,
// where the public/owner gate is applied by the service.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.File, error) {
	query := `SELECT ` + selectColumns + ` FROM files WHERE id = $1`
	f, err := scanFile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

// GetOwned returns the document matching both id and owner,
// or common.ErrorNotFound.
func (r *PostgresRepository) GetOwned(ctx context.Context, id, userID string) (*models.File, error) {
	query := `SELECT ` + selectColumns + ` FROM files WHERE id = $1 AND user_id = $2`
	f, err := scanFile(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

// Replace overwrites the whole document matching (id, user_id).
// Last write wins; there is no revision check. Returns common.ErrorNotFound
// when nothing matched.
func (r *PostgresRepository) Replace(ctx context.Context, file *models.File) error {
	query := `
		UPDATE files
		SET name = $3, type = $4, is_public = $5, parent_id = $6, storage_key = $7
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query,
		file.ID, file.UserID, file.Name, file.Type, file.IsPublic,
		parentValue(file.Parent), storageValue(file.StorageKey))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// SelectPage returns the owner's documents under the given parent.
// page == -1 disables pagination and returns every match in natural store
// order; otherwise results are sorted by id ascending and the pageSize-sized
// window at page*pageSize is returned. Each call restarts the query; no
// cursor survives between calls.
func (r *PostgresRepository) SelectPage(ctx context.Context, userID string, parent models.ParentRef, page, pageSize int) ([]*models.File, error) {
	query := `SELECT ` + selectColumns + ` FROM files WHERE user_id = $1`
	args := []any{userID}

	if parent.IsRoot() {
		query += ` AND parent_id IS NULL`
	} else {
		query += ` AND parent_id = $2`
		args = append(args, parent.ID())
	}

	if page != -1 {
		query += fmt.Sprintf(` ORDER BY id OFFSET %d LIMIT %d`, page*pageSize, pageSize)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.File{}
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Count returns the number of file documents.
func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM files`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
