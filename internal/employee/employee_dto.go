package employee

type CreateEmployeeRequest struct {
	WorkEmail    string  `json:"work_email" binding:"required,email,max=200"`
	Name         string  `json:"name" binding:"omitempty,max=200"`
	Address      string  `json:"address" binding:"omitempty,max=200"`
	MobileNumber string  `json:"mobile_number" binding:"required,mobile10"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
}

// UpdateEmployeeRequest is a partial patch: nil fields are left untouched.
// A present department_id re-resolves the reference and refreshes the
// denormalized department name.
type UpdateEmployeeRequest struct {
	WorkEmail    *string `json:"work_email" binding:"omitempty,email,max=200"`
	Name         *string `json:"name" binding:"omitempty,max=200"`
	Address      *string `json:"address" binding:"omitempty,max=200"`
	MobileNumber *string `json:"mobile_number" binding:"omitempty,mobile10"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	WorkEmail    string `json:"work_email"`
	Name         string `json:"name,omitempty"`
	Address      string `json:"address,omitempty"`
	MobileNumber string `json:"mobile_number"`
	DepName      string `json:"dep_name,omitempty"`
	DepartmentID string `json:"department_id,omitempty"`
	OwnerID      string `json:"owner_id"`
	CreatedAt    string `json:"created_at"`
}

type EmployeesResponse struct {
	Data  []EmployeeResponse `json:"data"`
	Count int64              `json:"count"`
}
