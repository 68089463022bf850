package dto

import "time"

// RegisterMovementRequest entrada para registrar un movimiento de stock.
// El user_id se toma del token, nunca del cuerpo.
type RegisterMovementRequest struct {
	ProductID    string `json:"product_id" validate:"required,uuid"`
	MovementType string `json:"movement_type" validate:"required,oneof=add edit withdraw"`
	Quantity     int64  `json:"quantity" validate:"required,gt=0"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ProductID    string    `json:"product_id"`
	MovementType string    `json:"movement_type"`
	Quantity     int64     `json:"quantity"`
	MovementDate time.Time `json:"movement_date"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
