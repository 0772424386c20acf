package schemas

// RegisterSchema struct
type RegisterSchema struct {
	Name     string `json:"name" validate:"required,max=60"`
	Email    string `json:"email" validate:"required,email,max=1000"`
	Password string `json:"password" validate:"required,min=8,max=100"`
}

// LoginSchema struct
type LoginSchema struct {
	Email    string `json:"email" validate:"required,email,max=1000"`
	Password string `json:"password" validate:"required"`
}

// AuthResponseSchema struct
type AuthResponseSchema struct {
	UserID string
	Name   string
	Email  string
	Token  string
}
