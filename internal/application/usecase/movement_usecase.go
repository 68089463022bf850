package usecase

import (
	"github.com/acastellanos/almacen-api/internal/application/dto"
	"github.com/acastellanos/almacen-api/internal/domain/entity"
	"github.com/acastellanos/almacen-api/internal/domain/repository"
)

// MovementUseCase consultas de movimientos. El registro de movimientos vive
// en application/inventory por requerir transacción y regla de roles.
type MovementUseCase struct {
	repo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// List lista todos los movimientos con paginación.
func (uc *MovementUseCase) List(limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementListResponse(list, limit, offset), nil
}

// ListByUser lista los movimientos del usuario indicado.
func (uc *MovementUseCase) ListByUser(userID string, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementListResponse(list, limit, offset), nil
}

func toMovementListResponse(list []*entity.Movement, limit, offset int) *dto.MovementListResponse {
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:           m.ID,
			UserID:       m.UserID,
			ProductID:    m.ProductID,
			MovementType: m.MovementType,
			Quantity:     m.Quantity,
			MovementDate: m.MovementDate,
		})
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
