package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/acastellanos/almacen-api/internal/application/dto"
	"github.com/acastellanos/almacen-api/internal/domain"
	"github.com/acastellanos/almacen-api/internal/domain/entity"
	"github.com/acastellanos/almacen-api/internal/domain/repository"
)

// TxRunner puerto para ejecutar el registro de movimiento en una transacción.
// Lo implementa postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// RegisterMovementUseCase registra movimientos de stock aplicando la regla de
// roles por tipo: add/edit solo admin, withdraw solo employee. La partición es
// estricta, no jerárquica: ningún rol puede registrar el tipo del otro.
type RegisterMovementUseCase struct {
	tx TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(tx TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{tx: tx}
}

// Register valida tipo, rol y producto, y persiste el movimiento.
// El user_id siempre proviene del token del llamador.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, userID, role string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidMovementType(in.MovementType) || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	switch in.MovementType {
	case entity.MovementTypeAdd, entity.MovementTypeEdit:
		if role != entity.RoleAdmin {
			return nil, domain.ErrForbidden
		}
	case entity.MovementTypeWithdraw:
		if role != entity.RoleEmployee {
			return nil, domain.ErrForbidden
		}
	}

	movement := &entity.Movement{
		ID:           uuid.New().String(),
		UserID:       userID,
		ProductID:    in.ProductID,
		MovementType: in.MovementType,
		Quantity:     in.Quantity,
		MovementDate: time.Now(),
	}

	// Verificación del producto e inserción en la misma transacción para que
	// el movimiento nunca apunte a un producto borrado entre ambas sentencias.
	err := uc.tx.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		return movRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:           m.ID,
		UserID:       m.UserID,
		ProductID:    m.ProductID,
		MovementType: m.MovementType,
		Quantity:     m.Quantity,
		MovementDate: m.MovementDate,
	}
}
