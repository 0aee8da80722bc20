package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/StockMarie-api/internal/domain/entity"
	"github.com/jhoicas/StockMarie-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo historial de movimientos en memoria (append/amend-only).
type MovementRepo struct {
	mu    sync.Mutex
	items []*entity.Movement
}

// NewMovementRepository construye el historial vacío.
func NewMovementRepository() *MovementRepo {
	return &MovementRepo{}
}

func (r *MovementRepo) Create(_ context.Context, movement *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *movement
	if movement.ProductID != nil {
		pid := *movement.ProductID
		cp.ProductID = &pid
	}
	r.items = append(r.items, &cp)
	return nil
}

func (r *MovementRepo) FindLatestByProductAndType(_ context.Context, productID, movementType string) (*entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *entity.Movement
	for _, m := range r.items {
		if m.ProductID == nil || *m.ProductID != productID || m.Type != movementType {
			continue
		}
		// Empate de created_at: gana la fila insertada más tarde.
		if latest == nil || !m.CreatedAt.Before(latest.CreatedAt) {
			latest = m
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	pid := *latest.ProductID
	cp.ProductID = &pid
	return &cp, nil
}

func (r *MovementRepo) AddQuantity(_ context.Context, movementID string, amount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.items {
		if m.ID == movementID {
			m.Quantity += amount
			return nil
		}
	}
	return nil
}

func (r *MovementRepo) DetachProduct(_ context.Context, productID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.items {
		if m.ProductID != nil && *m.ProductID == productID {
			m.ProductID = nil
			m.Name = name
		}
	}
	return nil
}

func (r *MovementRepo) ListWithProduct(_ context.Context) ([]*repository.MovementWithProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*repository.MovementWithProduct, 0, len(r.items))
	for _, m := range r.items {
		cp := *m
		if m.ProductID != nil {
			pid := *m.ProductID
			cp.ProductID = &pid
		}
		list = append(list, &repository.MovementWithProduct{Movement: cp})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Movement.CreatedAt.After(list[j].Movement.CreatedAt)
	})
	return list, nil
}

// All devuelve una instantánea del historial en orden de inserción (solo tests).
func (r *MovementRepo) All() []entity.Movement {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Movement, 0, len(r.items))
	for _, m := range r.items {
		out = append(out, *m)
	}
	return out
}
