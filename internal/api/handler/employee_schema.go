package handler

type employeeRequest struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
}
