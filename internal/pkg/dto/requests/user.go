package requests

type CreateUser struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,password"`
	FullName   string `json:"full_name" validate:"required,min=2,max=100"`
	Role       string `json:"role" validate:"required,staff_role"`
	Department string `json:"department" validate:"max=100"`
}
