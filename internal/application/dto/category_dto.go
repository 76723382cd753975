package dto

// CategoryListRequest parámetros de GET /api/categories.
type CategoryListRequest struct {
	Search string `query:"search"` // substring sobre nombre, tamaño y embalaje
}

// CreateCategoryRequest cuerpo de POST /api/categories.
type CreateCategoryRequest struct {
	Name      string `json:"name"`
	Size      string `json:"size"`      // pequeno|medio|grande
	Packaging string `json:"packaging"` // lata|vidro|plastico
}

// UpdateCategoryRequest cuerpo de PUT /api/categories/:id.
type UpdateCategoryRequest = CreateCategoryRequest

// CategoryRowDTO fila del listado de categorías con el contador de productos
// relacionados (el badge "N produto(s)" de la vista).
type CategoryRowDTO struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Size            string `json:"size"`
	Packaging       string `json:"packaging"`
	DisplayName     string `json:"displayName"`     // "Nombre (tamaño)"
	DisplayNameFull string `json:"displayNameFull"` // "Nombre (tamaño - embalaje)"
	ProductCount    int    `json:"productCount"`
}

// CategoryListDTO respuesta de GET /api/categories.
type CategoryListDTO struct {
	Items        []CategoryRowDTO `json:"items"`
	ShowingCount int              `json:"showingCount"`
	TotalCount   int              `json:"totalCount"`
}

// DeleteImpactDTO números del diálogo de confirmación de borrado: eliminar
// la categoría arrastra en cascada estos productos y sus movimientos.
// El borrado en sí lo ejecuta el backend; aquí solo se mide el impacto.
type DeleteImpactDTO struct {
	CategoryID       int64  `json:"categoryId"`
	CategoryName     string `json:"categoryName"`
	RelatedProducts  int    `json:"relatedProducts"`
	RelatedMovements int    `json:"relatedMovements"`
}
