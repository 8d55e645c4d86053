package models

import "time"

type UserRole string

const (
	RoleEmployer  UserRole = "employer"
	RoleJobSeeker UserRole = "job_seeker"
)

func (r UserRole) Valid() bool {
	return r == RoleEmployer || r == RoleJobSeeker
}

const DefaultAvatar = "/placeholder.svg"

// User is immutable after creation. Email is not unique.
type User struct {
	ID     string   `gorm:"column:id;type:text;primaryKey" json:"id" bson:"id"`
	Email  string   `gorm:"column:email;type:text;index" json:"email" bson:"email"`
	Name   string   `gorm:"column:name;type:text" json:"name" bson:"name"`
	Role   UserRole `gorm:"column:role;type:text" json:"role" bson:"role"`
	Avatar string   `gorm:"column:avatar;type:text" json:"avatar,omitempty" bson:"avatar,omitempty"`

	PasswordHash string    `gorm:"column:password_hash;type:text" json:"-" bson:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;index" json:"-" bson:"-"`
}

func (User) TableName() string { return "users" }

func (u *User) IsEmployer() bool  { return u != nil && u.Role == RoleEmployer }
func (u *User) IsJobSeeker() bool { return u != nil && u.Role == RoleJobSeeker }
