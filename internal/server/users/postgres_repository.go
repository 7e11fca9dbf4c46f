package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/avelichko/garagevault/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// parseID converts an external string id to the bigserial column value.
// Non-numeric ids cannot match any row.
func parseID(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {

	query :=
		`INSERT INTO users (email, password_hash, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id::text
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.CreatedAt).Scan(&user.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, common.ErrorEmailExists
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query :=
		`SELECT id::text, email, password_hash, created_at FROM users
		 WHERE email = $1
		 `

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*User, error) {
	query :=
		`SELECT id::text, email, password_hash, created_at FROM users
		 WHERE id = $1
		 `

	numericID, err := parseID(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	user := &User{}
	err = r.db.QueryRowContext(ctx, query, numericID).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}
