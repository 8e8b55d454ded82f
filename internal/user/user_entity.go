package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Email          string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_users_email"`
	HashedPassword string    `gorm:"column:hashed_password;type:text;not null"`
	FullName       string    `gorm:"column:full_name;type:varchar(255)"`
	IsActive       bool      `gorm:"column:is_active;default:true"`
	IsSuperuser    bool      `gorm:"column:is_superuser;default:false"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}
