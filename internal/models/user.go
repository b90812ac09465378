package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RolePatient      Role = "patient"
	RoleNutritionist Role = "nutritionist"
)

// Valid reports whether the role is one the system knows.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleNutritionist
}

// User represents an account in the system
type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;size:120;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"` // Never send password hash in JSON
	Role         Role   `gorm:"size:20;not null;default:'patient'" json:"role"`

	// Relations (not always preloaded)
	PatientProfile      *Patient      `gorm:"foreignKey:UserID" json:"-"`
	NutritionistProfile *Nutritionist `gorm:"foreignKey:UserID" json:"-"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
