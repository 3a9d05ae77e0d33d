package dto

// Auth requests carry login + password; register additionally picks the
// account role (customer or provider; admin accounts are seeded).

type RegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"jane@example.com"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=customer provider" example:"customer"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"jane@example.com"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
