package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/tortas-api/internal/domain/entity"
	"github.com/jhoicas/tortas-api/internal/domain/repository"
)

var _ repository.CustomCakeRepository = (*CustomCakeRepo)(nil)

var customCakeColumns = []string{
	"id", "user_email", "size", "flavor", "filling", "decoration",
	"message", "special_instructions", "delivery_date", "price", "created_at",
}

// CustomCakeRepo diseños personalizados en la tabla custom_cakes.
type CustomCakeRepo struct {
	pool *pgxpool.Pool
}

func NewCustomCakeRepository(pool *pgxpool.Pool) *CustomCakeRepo {
	return &CustomCakeRepo{pool: pool}
}

func (r *CustomCakeRepo) Create(ctx context.Context, c *entity.CustomCake) error {
	query, args, err := psql.Insert("custom_cakes").Columns(customCakeColumns...).Values(
		c.ID, entity.NormalizeEmail(c.UserEmail), c.Size, c.Flavor, c.Filling, c.Decoration,
		c.Message, c.SpecialInstructions, c.DeliveryDate, c.Price, c.CreatedAt,
	).ToSql()
	if err != nil {
		return fmt.Errorf("build insert custom cake: %w", err)
	}
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert custom cake: %w", err)
	}
	return nil
}

func (r *CustomCakeRepo) ListByUserEmail(ctx context.Context, email string) ([]*entity.CustomCake, error) {
	query, args, err := psql.Select(customCakeColumns...).From("custom_cakes").
		Where(sq.Eq{"user_email": entity.NormalizeEmail(email)}).
		OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list custom cakes: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list custom cakes: %w", err)
	}
	defer rows.Close()
	var list []*entity.CustomCake
	for rows.Next() {
		var c entity.CustomCake
		if err := rows.Scan(&c.ID, &c.UserEmail, &c.Size, &c.Flavor, &c.Filling, &c.Decoration,
			&c.Message, &c.SpecialInstructions, &c.DeliveryDate, &c.Price, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan custom cake: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
