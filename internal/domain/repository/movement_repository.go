package repository

import "github.com/acastellanos/almacen-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para Movement.
// Los movimientos son inmutables: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	List(limit, offset int) ([]*entity.Movement, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Movement, error)
}
