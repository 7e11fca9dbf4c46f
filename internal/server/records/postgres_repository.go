package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/avelichko/garagevault/internal/common"
	"github.com/avelichko/garagevault/internal/dbx"
)

// PostgresRepository backs the record store with an indexed relational
// table. Tags and images are stored as JSONB arrays; ids come from a
// BIGSERIAL sequence so they are monotonic and never reused.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

// parseID converts an external string id to the bigserial column value.
// Non-numeric ids cannot match any row.
func parseID(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

func marshalList(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}
	return json.Marshal(list)
}

func scanRecord(row interface{ Scan(dest ...any) error }) (*Record, error) {
	record := &Record{}
	var tags, images []byte
	err := row.Scan(&record.ID, &record.OwnerID, &record.Title, &record.Description,
		&tags, &images, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &record.Tags); err != nil {
		return nil, fmt.Errorf("error decoding tags: %w", err)
	}
	if err := json.Unmarshal(images, &record.Images); err != nil {
		return nil, fmt.Errorf("error decoding images: %w", err)
	}
	return record, nil
}

const recordColumns = `id::text, owner_id, title, description, tags, images, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, record *Record) (*Record, error) {

	tags, err := marshalList(record.Tags)
	if err != nil {
		return nil, fmt.Errorf("error encoding tags: %w", err)
	}
	images, err := marshalList(record.Images)
	if err != nil {
		return nil, fmt.Errorf("error encoding images: %w", err)
	}

	now := time.Now().UTC()

	query :=
		`INSERT INTO records (owner_id, title, description, tags, images, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)
		 RETURNING id::text
		 `

	out := record.clone()
	out.CreatedAt = now
	out.UpdatedAt = now

	err = r.db.QueryRowContext(ctx, query,
		out.OwnerID, out.Title, out.Description, tags, images, now).Scan(&out.ID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return out, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Record, error) {

	numericID, err := parseID(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	query := `SELECT ` + recordColumns + ` FROM records WHERE id = $1`

	record, err := scanRecord(r.db.QueryRowContext(ctx, query, numericID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return record, nil
}

// Update merges the patch over the stored row inside a transaction so the
// read-modify-write is atomic with respect to concurrent requests.
func (r *PostgresRepository) Update(ctx context.Context, id string, patch Patch) (*Record, error) {

	numericID, err := parseID(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	var merged *Record

	err = dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		query := `SELECT ` + recordColumns + ` FROM records WHERE id = $1 FOR UPDATE`

		record, err := scanRecord(tx.QueryRowContext(ctx, query, numericID))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("error performing sql request: %w", err)
		}

		record.applyPatch(patch)

		now := time.Now().UTC()
		if now.Before(record.UpdatedAt) {
			now = record.UpdatedAt
		}
		record.UpdatedAt = now

		tags, err := marshalList(record.Tags)
		if err != nil {
			return fmt.Errorf("error encoding tags: %w", err)
		}
		images, err := marshalList(record.Images)
		if err != nil {
			return fmt.Errorf("error encoding images: %w", err)
		}

		update :=
			`UPDATE records
			 SET title = $2, description = $3, tags = $4, images = $5, updated_at = $6
			 WHERE id = $1
			 `

		if _, err := tx.ExecContext(ctx, update,
			numericID, record.Title, record.Description, tags, images, record.UpdatedAt); err != nil {
			return fmt.Errorf("error performing sql request: %w", err)
		}

		merged = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {

	numericID, err := parseID(id)
	if err != nil {
		return false, nil
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = $1`, numericID)
	if err != nil {
		return false, fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Record, error) {

	query := `SELECT ` + recordColumns + ` FROM records
		 WHERE owner_id = $1
		 ORDER BY updated_at DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	out := make([]*Record, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return out, nil
}
