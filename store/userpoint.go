package store

import (
	"github.com/jinzhu/gorm"

	"github.com/pinpoint-labs/pinpoint-api/schema"
)

// CheckIn records an interaction between a user and a point. The pair
// lookup gives the friendly conflict message; the unique index on
// (user_id, point_id) settles concurrent check-ins.
func (s *PinpointStore) CheckIn(userID, pointID int64) (*schema.UserPoint, error) {
	var existing schema.UserPoint
	err := s.ormDB.
		Where("user_id = ? AND point_id = ?", userID, pointID).
		First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyCheckedIn
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	interaction := schema.UserPoint{
		UserID:  userID,
		PointID: pointID,
	}
	if err := s.ormDB.Create(&interaction).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}

	return &interaction, nil
}

// CheckOut deletes the active interaction between a user and a point.
func (s *PinpointStore) CheckOut(userID, pointID int64) error {
	var existing schema.UserPoint
	if err := s.ormDB.
		Where("user_id = ? AND point_id = ?", userID, pointID).
		First(&existing).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return ErrCheckinNotFound
		}
		return err
	}

	return s.ormDB.
		Delete(schema.UserPoint{}, "user_id = ? AND point_id = ?", userID, pointID).Error
}

// GetCheckinInfo aggregates all interactions of a point in a single
// query and flags whether the given user is among them. A point with no
// interactions yields zero and false, never a not-found error.
func (s *PinpointStore) GetCheckinInfo(pointID, userID int64) (*schema.CheckinInfo, error) {
	var row struct {
		TotalInteractions int64
		UserInteracted    int
	}

	if err := s.ormDB.Raw(`
		SELECT
			COUNT(user_points.id) AS total_interactions,
			COALESCE(MAX(CASE WHEN user_points.user_id = ? THEN 1 ELSE 0 END), 0) AS user_interacted
		FROM user_points
		WHERE user_points.point_id = ?`,
		userID, pointID).Scan(&row).Error; err != nil {
		return nil, err
	}

	return &schema.CheckinInfo{
		TotalInteractions: row.TotalInteractions,
		UserInteracted:    row.UserInteracted == 1,
	}, nil
}
