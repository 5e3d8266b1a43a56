package schema

import "time"

// UserPoint records a user's active check-in with a point. A user holds
// at most one active check-in per point; the (user_id, point_id) unique
// index enforces it.
type UserPoint struct {
	ID        int64     `json:"id" gorm:"primary_key"`
	UserID    int64     `json:"user_id" gorm:"not null;unique_index:user_points_unique_pair"`
	PointID   int64     `json:"point_id" gorm:"not null;unique_index:user_points_unique_pair"`
	CreatedAt time.Time `json:"created_at"`
}

func (UserPoint) TableName() string {
	return "user_points"
}

// CheckinInfo is the aggregate view of a point's check-ins from a
// single user's perspective.
type CheckinInfo struct {
	TotalInteractions int64 `json:"total_interactions"`
	UserInteracted    bool  `json:"user_interacted"`
}
