// Package validate holds the pure input guards used by the API layer.
// Every function either returns a normalized value or an error; nothing
// here touches storage.
package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pinpoint-labs/pinpoint-api/schema"
)

// ID parses s as a positive integer identifier.
func ID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be a positive integer")
	}
	return id, nil
}

// PositiveID checks an identifier that already arrived as a number.
func PositiveID(field string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%s must be a positive integer", field)
	}
	return nil
}

// NonEmptyString rejects values without non-whitespace content.
func NonEmptyString(field, s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%s is required", field)
	}
	return s, nil
}

// Latitude checks that lat is a finite number within [-90, 90].
func Latitude(lat float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return fmt.Errorf("latitude must be a valid number between -90 and 90")
	}
	return nil
}

// Longitude checks that lon is a finite number within [-180, 180].
func Longitude(lon float64) error {
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		return fmt.Errorf("longitude must be a valid number between -180 and 180")
	}
	return nil
}

// BoundingBox checks that both corners are present and within range.
// It deliberately does not require northEast to sit north-east of
// southWest; a reversed box selects an empty range downstream.
func BoundingBox(northEast, southWest *schema.Location) error {
	if northEast == nil || southWest == nil {
		return fmt.Errorf("northEast and southWest coordinates are required")
	}

	for _, corner := range []*schema.Location{northEast, southWest} {
		if err := Latitude(corner.Latitude); err != nil {
			return err
		}
		if err := Longitude(corner.Longitude); err != nil {
			return err
		}
	}

	return nil
}
