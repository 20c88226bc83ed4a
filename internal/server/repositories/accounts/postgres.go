package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sensitivv/internal/common"
	"github.com/dmitrijs2005/sensitivv/internal/dbx"
	"github.com/dmitrijs2005/sensitivv/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {

	query :=
		`INSERT INTO accounts (email, password_hash, name, language)
         VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		account.Email, account.PasswordHash, account.Name, account.Language).Scan(&account.ID, &account.CreatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	query :=
		`SELECT id, email, password_hash, name, created_at, language FROM accounts
		 WHERE email = $1
		 `

	a := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.CreatedAt, &a.Language)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	// ids are UUIDs; anything else cannot match and would only make Postgres
	// raise an invalid-input error
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrNotFound
	}

	query :=
		`SELECT id, email, name, created_at, language FROM accounts
		 WHERE id = $1
		 `

	a := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&a.ID, &a.Email, &a.Name, &a.CreatedAt, &a.Language)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}
