package store

import (
	"github.com/jinzhu/gorm"

	"github.com/pinpoint-labs/pinpoint-api/schema"
)

// searchResultLimit caps every point search; there is no pagination.
const searchResultLimit = 10

// GetPoint returns the point of interest with the given id
func (s *PinpointStore) GetPoint(id int64) (*schema.Point, error) {
	var p schema.Point
	if err := s.ormDB.Where("id = ?", id).First(&p).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrPointNotFound
		}
		return nil, err
	}
	return &p, nil
}

// QueryPointsByName finds at most 10 points whose names contain the
// given fragment, case-insensitively. Ordering is storage-default.
func (s *PinpointStore) QueryPointsByName(name string) ([]schema.Point, error) {
	points := make([]schema.Point, 0)
	if err := s.ormDB.
		Where("name ILIKE ?", "%"+name+"%").
		Limit(searchResultLimit).
		Find(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

// QueryPointsByBoundingBox finds at most 10 points inside the rectangle
// spanned by the two corners, both ends inclusive, with the owner's
// email joined in. A reversed box yields an empty range, not an error.
func (s *PinpointStore) QueryPointsByBoundingBox(northEast, southWest schema.Location) ([]schema.PointWithOwner, error) {
	points := make([]schema.PointWithOwner, 0)
	if err := s.ormDB.
		Table("points").
		Select("points.*, users.email").
		Joins("INNER JOIN users ON points.user_id = users.id").
		Where("points.latitude BETWEEN ? AND ?", southWest.Latitude, northEast.Latitude).
		Where("points.longitude BETWEEN ? AND ?", southWest.Longitude, northEast.Longitude).
		Limit(searchResultLimit).
		Scan(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

// CreatePoint inserts a new point after checking that no point claims
// the same coordinate pair and that the owner exists. The lookups are
// fast-path niceties; a concurrent insert still surfaces through the
// unique index and is reported as the same duplicate-coordinates error.
func (s *PinpointStore) CreatePoint(p *schema.Point) (*schema.Point, error) {
	var existing schema.Point
	err := s.ormDB.
		Where("latitude = ? AND longitude = ?", p.Latitude, p.Longitude).
		First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateCoordinates
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	var owner schema.User
	if err := s.ormDB.Select("id").Where("id = ?", p.UserID).First(&owner).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := s.ormDB.Create(p).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateCoordinates
		}
		return nil, err
	}

	return p, nil
}

// DeletePoint removes a point by id. The existence check and the delete
// are separate round-trips; a point vanishing in between is tolerated.
func (s *PinpointStore) DeletePoint(id int64) error {
	var p schema.Point
	if err := s.ormDB.Select("id").Where("id = ?", id).First(&p).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return ErrPointNotFound
		}
		return err
	}

	return s.ormDB.Delete(schema.Point{}, "id = ?", id).Error
}
