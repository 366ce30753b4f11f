package entity

import (
	"slices"
	"time"
)

// User represents a loyalty account holder.
type User struct {
	ID         int64      `json:"id"`
	Utorid     string     `json:"utorid"` // Immutable 8 character handle.
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Birthday   *string    `json:"birthday,omitempty"` // YYYY-MM-DD
	Role       Role       `json:"role"`
	Points     int64      `json:"points"`
	Verified   bool       `json:"verified"`
	Suspicious bool       `json:"suspicious"`
	Used       []int64    `json:"-"` // One-time promotions already consumed by this user.
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
}

// HasUsed reports whether the one-time promotion was already consumed by the user.
func (u *User) HasUsed(promotionID int64) bool {
	return slices.Contains(u.Used, promotionID)
}

// CanAfford reports whether the balance covers a debit of amount points.
func (u *User) CanAfford(amount int64) bool {
	return u.Points >= amount
}

// Ref returns the compact reference used in event rosters.
func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Utorid: u.Utorid, Name: u.Name}
}

// UserRef identifies a user inside another aggregate.
type UserRef struct {
	ID     int64  `json:"id"`
	Utorid string `json:"utorid"`
	Name   string `json:"name"`
}
