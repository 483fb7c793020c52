package dto

// Credential fields follow the file format limits: usernames up to 12
// characters, passwords up to 8, neither may contain whitespace
// (the custom `nowhitespace` rule is registered in the service package).

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=12,nowhitespace"`
	Password string `json:"password" validate:"required,max=8,nowhitespace"`
}

type SignupRequest struct {
	Username string `json:"username" validate:"required,max=12,nowhitespace"`
	Password string `json:"password" validate:"required,max=8,nowhitespace"`
}

type UpdateAccountRequest struct {
	Username string `json:"username" validate:"required,max=12,nowhitespace"`
	Password string `json:"password" validate:"required,max=8,nowhitespace"`
}

type AddToCartRequest struct {
	Category     string `json:"category"      validate:"required"`
	ProductIndex int    `json:"product_index" validate:"required,min=1"`
	Quantity     int    `json:"quantity"      validate:"required,min=1"`
}
