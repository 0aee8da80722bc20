package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/StockMarie-api/internal/domain"
	"github.com/jhoicas/StockMarie-api/internal/domain/entity"
	"github.com/jhoicas/StockMarie-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)
var _ repository.SubcategoryRepository = (*SubcategoryRepo)(nil)

// CategoryRepo almacén de categorías en memoria. Igual que el store real, la
// inserción no comprueba unicidad de nombre.
type CategoryRepo struct {
	mu    sync.Mutex
	items []*entity.Category
}

// NewCategoryRepository construye el almacén vacío.
func NewCategoryRepository() *CategoryRepo {
	return &CategoryRepo{}
}

func (r *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *category
	r.items = append(r.items, &cp)
	return nil
}

func (r *CategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*entity.Category, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		list = append(list, &cp)
	}
	return list, nil
}

// SubcategoryRepo almacén de subcategorías en memoria.
type SubcategoryRepo struct {
	mu    sync.Mutex
	items []*entity.Subcategory
}

// NewSubcategoryRepository construye el almacén vacío.
func NewSubcategoryRepository() *SubcategoryRepo {
	return &SubcategoryRepo{}
}

func (r *SubcategoryRepo) Create(_ context.Context, sub *entity.Subcategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.items {
		if s.CategoryID == sub.CategoryID && s.Name == sub.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *sub
	r.items = append(r.items, &cp)
	return nil
}

func (r *SubcategoryRepo) GetByCategoryAndName(_ context.Context, categoryID, name string) (*entity.Subcategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.items {
		if s.CategoryID == categoryID && s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *SubcategoryRepo) ListByCategory(_ context.Context, categoryID string) ([]*entity.Subcategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Subcategory
	for _, s := range r.items {
		if s.CategoryID == categoryID {
			cp := *s
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *SubcategoryRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, s := range r.items {
		if s.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}
