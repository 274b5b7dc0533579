package handler

// productRequest is the payload for both store and update. Name uniqueness
// is enforced by the service; everything else is validated here.
type productRequest struct {
	Name        string  `json:"name"        validate:"required,min=3,max=150"`
	Description string  `json:"description" validate:"required,min=10"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
}
