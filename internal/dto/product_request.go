package dto

type ProductRequest struct {
	Name        string  `json:"name" validate:"required,max=60"`
	Description string  `json:"description" validate:"required,max=200"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image" validate:"required"`
	Category    string  `json:"category" validate:"required"`
}
