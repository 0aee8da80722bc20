package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/StockMarie-api/internal/domain"
	"github.com/jhoicas/StockMarie-api/internal/domain/entity"
	"github.com/jhoicas/StockMarie-api/internal/domain/repository"
)

var _ repository.SubcategoryRepository = (*SubcategoryRepo)(nil)

// SubcategoryRepo implementación del puerto SubcategoryRepository sobre PostgreSQL.
type SubcategoryRepo struct {
	q Querier
}

// NewSubcategoryRepository construye el adaptador de persistencia para subcategorías.
func NewSubcategoryRepository(q Querier) *SubcategoryRepo {
	return &SubcategoryRepo{q: q}
}

// Create inserta una subcategoría bajo su categoría.
func (r *SubcategoryRepo) Create(ctx context.Context, sub *entity.Subcategory) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO subcategories (id, category_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		sub.ID, sub.CategoryID, sub.Name, sub.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

// GetByCategoryAndName busca una subcategoría por nombre dentro de una categoría.
// Devuelve nil si no existe.
func (r *SubcategoryRepo) GetByCategoryAndName(ctx context.Context, categoryID, name string) (*entity.Subcategory, error) {
	var s entity.Subcategory
	err := r.q.QueryRow(ctx,
		`SELECT id, category_id, name, created_at FROM subcategories WHERE category_id = $1 AND name = $2`,
		categoryID, name,
	).Scan(&s.ID, &s.CategoryID, &s.Name, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return &s, nil
}

// ListByCategory devuelve las subcategorías de una categoría.
func (r *SubcategoryRepo) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Subcategory, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, category_id, name, created_at FROM subcategories WHERE category_id = $1 ORDER BY name`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subcategory
	for rows.Next() {
		var s entity.Subcategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CountByCategory cuenta las subcategorías registradas bajo la categoría.
func (r *SubcategoryRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM subcategories WHERE category_id = $1`,
		categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count subcategories: %w", err)
	}
	return count, nil
}
