package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	WorkEmail    string     `gorm:"column:work_email;type:varchar(200);not null;uniqueIndex:uq_employees_work_email"`
	Name         string     `gorm:"column:name;type:varchar(200)"`
	Address      string     `gorm:"column:address;type:varchar(200)"`
	MobileNumber string     `gorm:"column:mobile_number;type:varchar(10);not null"`
	DepName      *string    `gorm:"column:dep_name;type:varchar(200)"`
	DepartmentID *uuid.UUID `gorm:"column:department_id;type:uuid;index"`
	OwnerID      uuid.UUID  `gorm:"column:owner_id;type:uuid;not null;index"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`

	Department *EmployeeDepartment `gorm:"foreignKey:DepartmentID;references:ID;constraint:OnDelete:CASCADE"`
}

// EmployeeDepartment is the minimal join target for the department
// reference. DepName on the employee row stays a write-time snapshot; this
// relation only backs the foreign key.
type EmployeeDepartment struct {
	ID   uuid.UUID `gorm:"primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeDepartment) TableName() string {
	return "departments"
}
