package request

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=32"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}
