package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session binds a signed token to a flat copy of the user it was issued for.
type Session struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SessionID string             `bson:"session_id" json:"session_id"` // uuid v4, token jti
	UserID    string             `bson:"user_id" json:"user_id"`
	User      User               `bson:"user" json:"user"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"` // for TTL index
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
