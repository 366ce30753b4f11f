package model

import (
	"time"
)

// EventModel mirrors the 'events' table.
type EventModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text;not null"`
	Location      string    `gorm:"type:varchar(255);not null"`
	StartTime     time.Time `gorm:"index;not null"`
	EndTime       time.Time `gorm:"index;not null"`
	Capacity      *int
	PointsRemain  int64 `gorm:"not null"`
	PointsAwarded int64 `gorm:"not null"`
	Published     bool  `gorm:"index;not null"`
	Full          bool  `gorm:"column:is_full;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Organizers []EventOrganizerModel `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Guests     []EventGuestModel     `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// EventGuestModel mirrors 'event_guests'.
type EventGuestModel struct {
	EventID   int64     `gorm:"primaryKey;autoIncrement:false"`
	UserID    int64     `gorm:"primaryKey;autoIncrement:false;index"`
	User      UserModel `gorm:"foreignKey:UserID"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventGuestModel) TableName() string {
	return "event_guests"
}

// EventOrganizerModel mirrors 'event_organizers'.
type EventOrganizerModel struct {
	EventID   int64     `gorm:"primaryKey;autoIncrement:false"`
	UserID    int64     `gorm:"primaryKey;autoIncrement:false;index"`
	User      UserModel `gorm:"foreignKey:UserID"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventOrganizerModel) TableName() string {
	return "event_organizers"
}
