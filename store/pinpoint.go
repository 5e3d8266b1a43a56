package store

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/pinpoint-labs/pinpoint-api/schema"
)

var (
	ErrPointNotFound        = fmt.Errorf("point of interest not found")
	ErrDuplicateCoordinates = fmt.Errorf("latitude and longitude already in use by another point")
	ErrUserNotFound         = fmt.Errorf("user not found")
	ErrAlreadyCheckedIn     = fmt.Errorf("user already interacted with this point")
	ErrCheckinNotFound      = fmt.Errorf("unable to perform checkout")
	ErrUsernameTaken        = fmt.Errorf("username is already in use")
	ErrEmailTaken           = fmt.Errorf("e-mail is already in use")
)

// pinpoint main datastore
type PinpointCore interface {
	Ping() error

	// Point
	GetPoint(id int64) (*schema.Point, error)
	QueryPointsByName(name string) ([]schema.Point, error)
	QueryPointsByBoundingBox(northEast, southWest schema.Location) ([]schema.PointWithOwner, error)
	CreatePoint(point *schema.Point) (*schema.Point, error)
	DeletePoint(id int64) error

	// UserPoint
	CheckIn(userID, pointID int64) (*schema.UserPoint, error)
	CheckOut(userID, pointID int64) error
	GetCheckinInfo(pointID, userID int64) (*schema.CheckinInfo, error)

	// User
	GetUser(id int64) (*schema.User, error)
	UpdateUser(id int64, updates map[string]interface{}) error
}

// PinpointStore is an implementation of PinpointCore over PostgreSQL
type PinpointStore struct {
	ormDB *gorm.DB
}

func NewPinpointStore(ormDB *gorm.DB) *PinpointStore {
	return &PinpointStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *PinpointStore) Ping() error {
	return s.ormDB.DB().Ping()
}

const uniqueViolationCode = pq.ErrorCode("23505")

// isUniqueViolation reports whether err is a unique-constraint error
// raised by PostgreSQL. The pre-insert existence checks only cover the
// fast path; the constraint is the authority under concurrent writes.
func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == uniqueViolationCode
}
