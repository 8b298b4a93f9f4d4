package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized identity record. Email is the natural key.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name" bson:"name" validate:"required"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" bson:"email" validate:"required,email"`
	Phone      string    `gorm:"type:varchar(20)" json:"phone" bson:"phone" validate:"omitempty,numeric"`
	Role       Role      `gorm:"type:varchar(20);not null;index" json:"role" bson:"role" validate:"required,oneof=hospitalAdmin labAdmin doctor patient"`
	IsVerified bool      `gorm:"not null;default:false" json:"is_verified" bson:"is_verified"`
	Password   string    `gorm:"type:text;not null" json:"-" bson:"password" validate:"required"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at" bson:"updated_at"`
}

func (User) TableName() string {
	return KindUser.Collection()
}

func (*User) Kind() Kind {
	return KindUser
}

func (u *User) NaturalKey() NaturalKey {
	return UserKey(u.Email)
}

func UserKey(email string) NaturalKey {
	return mustKeyOf(KindUser, email)
}
