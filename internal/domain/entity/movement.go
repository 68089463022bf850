package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeAdd      = "add"
	MovementTypeEdit     = "edit"
	MovementTypeWithdraw = "withdraw"
)

// ValidMovementType indica si el tipo de movimiento es uno de los conocidos.
func ValidMovementType(t string) bool {
	return t == MovementTypeAdd || t == MovementTypeEdit || t == MovementTypeWithdraw
}

// Movement registro inmutable de un movimiento de stock. Una vez creado no se
// actualiza ni se elimina; el historial es de solo-agregado.
type Movement struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ProductID    string    `json:"product_id"`
	MovementType string    `json:"movement_type"`
	Quantity     int64     `json:"quantity"`
	MovementDate time.Time `json:"movement_date"`
}
