package dto

// Las entidades de taxonomía se exponen con sus campos nativos (IDs), a
// diferencia de los registros, que las referencian por título.

// CreateStatusRequest / CreateTypeRequest entrada para crear un Status o Type.
type CreateTitleRequest struct {
	Title string `json:"title"`
}

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Title  string `json:"title"`
	TypeID string `json:"type_id"`
}

// CreateSubcategoryRequest entrada para crear una subcategoría.
type CreateSubcategoryRequest struct {
	Title      string `json:"title"`
	CategoryID string `json:"category_id"`
}

// TitleResponse salida de Status y Type.
type TitleResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	TypeID string `json:"type_id"`
}

// SubcategoryResponse salida de una subcategoría.
type SubcategoryResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	CategoryID string `json:"category_id"`
}
