package entity

import "time"

// Tipos de movimiento de estoque. Enumeración cerrada de dos valores.
const (
	MovementTypeEntry = "ENTRY" // entrada (aumenta stock)
	MovementTypeExit  = "EXIT"  // salida (disminuye stock)
)

// Movement representa un movimiento de estoque registrado en el backend.
// Los movimientos son inmutables: solo se crean o se eliminan en cascada
// junto con su producto. ProductID puede quedar colgante si el producto
// fue eliminado después; las agregaciones deben excluir esos movimientos.
type Movement struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"productId"`
	MovementType  string    `json:"movementType"`
	QuantityMoved int64     `json:"quantityMoved"` // siempre > 0
	MovementDate  time.Time `json:"movementDate"`
}

// IsEntry indica si el movimiento aumenta el stock.
func (m Movement) IsEntry() bool { return m.MovementType == MovementTypeEntry }
