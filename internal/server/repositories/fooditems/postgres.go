package fooditems

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sensitivv/internal/dbx"
	"github.com/dmitrijs2005/sensitivv/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, filter models.FoodFilter) ([]models.FoodItem, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.ReactionType != "" {
		args = append(args, filter.ReactionType)
		conds = append(conds, fmt.Sprintf("reaction_type = $%d", len(args)))
	}

	query := `SELECT id, name, category, reaction_type, emoji FROM food_items`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := make([]models.FoodItem, 0)
	for rows.Next() {
		var it models.FoodItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.ReactionType, &it.Emoji); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) Add(ctx context.Context, item *models.FoodItem) (*models.FoodItem, error) {
	query :=
		`INSERT INTO food_items (name, category, reaction_type, emoji)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, item.Name, item.Category, item.ReactionType, item.Emoji).Scan(&item.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}
