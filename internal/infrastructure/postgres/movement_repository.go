package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/StockMarie-api/internal/domain/entity"
	"github.com/jhoicas/StockMarie-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// La tabla product_movements nunca recibe DELETE: el historial solo crece o
// se enmienda.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta una nueva fila de movimiento.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO product_movements (id, product_id, name, movement_type, quantity, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		movement.ID, movement.ProductID, movement.Name, movement.Type,
		movement.Quantity, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// FindLatestByProductAndType devuelve el movimiento más reciente del producto
// con ese tipo, o nil si no hay ninguno. No comprueba si hubo un movimiento
// más reciente en la dirección contraria.
func (r *MovementRepo) FindLatestByProductAndType(ctx context.Context, productID, movementType string) (*entity.Movement, error) {
	var m entity.Movement
	err := r.q.QueryRow(ctx,
		`SELECT id, product_id, name, movement_type, quantity, created_at
		 FROM product_movements
		 WHERE product_id = $1 AND movement_type = $2
		 ORDER BY created_at DESC LIMIT 1`,
		productID, movementType,
	).Scan(&m.ID, &m.ProductID, &m.Name, &m.Type, &m.Quantity, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find latest movement: %w", err)
	}
	return &m, nil
}

// AddQuantity suma amount a la cantidad acumulada de la fila. created_at no
// se modifica: la fila conserva el instante en que empezó la racha.
func (r *MovementRepo) AddQuantity(ctx context.Context, movementID string, amount int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE product_movements SET quantity = quantity + $2 WHERE id = $1`,
		movementID, amount,
	)
	if err != nil {
		return fmt.Errorf("amend movement: %w", err)
	}
	return nil
}

// DetachProduct desengancha todos los movimientos del producto: product_id
// pasa a NULL y name se congela con la etiqueta indicada.
func (r *MovementRepo) DetachProduct(ctx context.Context, productID, name string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE product_movements SET product_id = NULL, name = $2 WHERE product_id = $1`,
		productID, name,
	)
	if err != nil {
		return fmt.Errorf("detach movements: %w", err)
	}
	return nil
}

// ListWithProduct devuelve el historial completo (created_at desc) con name y
// unit del producto unidos cuando aún existe.
func (r *MovementRepo) ListWithProduct(ctx context.Context) ([]*repository.MovementWithProduct, error) {
	rows, err := r.q.Query(ctx,
		`SELECT m.id, m.product_id, m.name, m.movement_type, m.quantity, m.created_at, p.name, p.unit
		 FROM product_movements m
		 LEFT JOIN products p ON p.id = m.product_id
		 ORDER BY m.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*repository.MovementWithProduct
	for rows.Next() {
		var row repository.MovementWithProduct
		if err := rows.Scan(
			&row.Movement.ID, &row.Movement.ProductID, &row.Movement.Name,
			&row.Movement.Type, &row.Movement.Quantity, &row.Movement.CreatedAt,
			&row.ProductName, &row.ProductUnit,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
