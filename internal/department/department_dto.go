package department

type CreateDepartmentRequest struct {
	Code string `json:"code" binding:"required,max=50"`
	Name string `json:"name" binding:"required,max=200"`
}

// UpdateDepartmentRequest is a partial patch: nil fields are left untouched.
type UpdateDepartmentRequest struct {
	Code *string `json:"code" binding:"omitempty,max=50"`
	Name *string `json:"name" binding:"omitempty,max=200"`
}

type DepartmentResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	OwnerID   string `json:"owner_id"`
	CreatedAt string `json:"created_at"`
}

type DepartmentsResponse struct {
	Data  []DepartmentResponse `json:"data"`
	Count int64                `json:"count"`
}

// DepartmentOption is the id/name pair form dropdowns consume.
type DepartmentOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
