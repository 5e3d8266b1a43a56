package store

import (
	"strings"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/pinpoint-labs/pinpoint-api/schema"
)

// GetUser returns the public profile of a user. The password column is
// never selected; user credentials belong to the authentication service.
func (s *PinpointStore) GetUser(id int64) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.
		Select("id, username, email").
		Where("id = ?", id).
		First(&u).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateUser applies a partial update over an explicit allowlist of
// columns. Username and email clashes with other users are reported as
// conflicts; every value travels as a bind parameter.
func (s *PinpointStore) UpdateUser(id int64, updates map[string]interface{}) error {
	if username, ok := updates["username"].(string); ok {
		var clash schema.User
		err := s.ormDB.
			Select("id").
			Where("username = ? AND id <> ?", username, id).
			First(&clash).Error
		if err == nil {
			return ErrUsernameTaken
		}
		if !gorm.IsRecordNotFoundError(err) {
			return err
		}
	}

	if email, ok := updates["email"].(string); ok {
		var clash schema.User
		err := s.ormDB.
			Select("id").
			Where("email = ? AND id <> ?", email, id).
			First(&clash).Error
		if err == nil {
			return ErrEmailTaken
		}
		if !gorm.IsRecordNotFoundError(err) {
			return err
		}
	}

	result := s.ormDB.Model(&schema.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if pqErr, ok := result.Error.(*pq.Error); ok && pqErr.Code == uniqueViolationCode {
			if strings.Contains(pqErr.Constraint, "email") {
				return ErrEmailTaken
			}
			return ErrUsernameTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
