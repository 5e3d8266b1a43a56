package schema

import "time"

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point is a geotagged place shared by a user. The coordinate pair is
// unique across all points; the authoritative constraint lives in the
// database (see schema/command/migrate).
type Point struct {
	ID          int64     `json:"id" gorm:"primary_key"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude" gorm:"not null"`
	Longitude   float64   `json:"longitude" gorm:"not null"`
	UserID      int64     `json:"user_id" gorm:"not null"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Point) TableName() string {
	return "points"
}

// PointWithOwner is a point enriched with the owner's email, returned
// by the bounding-box search. Kept flat so gorm can scan the joined row.
type PointWithOwner struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	UserID      int64     `json:"user_id"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	Email       string    `json:"email"`
}
