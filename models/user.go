// file: models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRole string
type UserStatus string

const (
	RoleMember    UserRole = "member"
	RoleReviewer  UserRole = "reviewer"
	RoleManager   UserRole = "manager"
	RoleDeveloper UserRole = "developer"
	RoleAdmin     UserRole = "admin"

	StatusActive UserStatus = "active"
	StatusBanned UserStatus = "banned"
)

// Capability sets. Role gates go through these instead of comparing
// role strings at call sites. Admin passes every gate.
var (
	ChallengeCreatorRoles = []UserRole{RoleManager, RoleAdmin, RoleDeveloper}
	ReviewerRoles         = []UserRole{RoleReviewer, RoleManager, RoleAdmin}
)

type User struct {
	ID        uint32     `gorm:"primarykey" json:"id"`
	Username  string     `gorm:"size:50;unique;not null" json:"username"`
	Password  string     `gorm:"size:255;not null" json:"-"`
	Email     string     `gorm:"size:100;unique;not null" json:"email"`
	RealName  string     `gorm:"size:50" json:"real_name,omitempty"`
	Role      UserRole   `gorm:"type:enum('member','reviewer','manager','developer','admin');not null;default:'member'" json:"role"`
	Status    UserStatus `gorm:"type:enum('active','banned');not null;default:'active'" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "innohub_user"
}

// BeforeSave hashes the password on create and whenever it changes.
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.ID == 0 || tx.Statement.Changed("Password") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return
}

func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// HasAnyRole reports whether the role is in the given set. Admin always
// passes.
func HasAnyRole(role UserRole, roles []UserRole) bool {
	if role == RoleAdmin {
		return true
	}
	for _, r := range roles {
		if role == r {
			return true
		}
	}
	return false
}
