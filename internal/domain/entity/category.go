package entity

// Category representa una categoría de productos del backend de estoque.
// Size y Packaging son enumeraciones del formulario de creación
// ("pequeno|medio|grande", "lata|vidro|plastico") pero aquí se tratan
// como strings opacos: el backend es el dueño del vocabulario.
type Category struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Packaging string `json:"packaging"`
}
