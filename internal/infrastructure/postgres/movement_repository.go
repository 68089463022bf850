package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/acastellanos/almacen-api/internal/domain/entity"
	"github.com/acastellanos/almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, user_id, product_id, movement_type, quantity, movement_date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.UserID, movement.ProductID,
		movement.MovementType, movement.Quantity, movement.MovementDate,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List lista todos los movimientos con paginación.
func (r *MovementRepo) List(limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, user_id, product_id, movement_type, quantity, movement_date
		FROM movements ORDER BY movement_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.UserID, &m.ProductID, &m.MovementType, &m.Quantity, &m.MovementDate); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListByUser lista los movimientos registrados por un usuario.
func (r *MovementRepo) ListByUser(userID string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, user_id, product_id, movement_type, quantity, movement_date
		FROM movements WHERE user_id = $1 ORDER BY movement_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by user: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.UserID, &m.ProductID, &m.MovementType, &m.Quantity, &m.MovementDate); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
