package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/pinpoint-labs/pinpoint-api/external/geoinfo"
	"github.com/pinpoint-labs/pinpoint-api/schema"
	"github.com/pinpoint-labs/pinpoint-api/store"
	"github.com/pinpoint-labs/pinpoint-api/validate"
)

type pointParams struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	UserID      int64    `json:"user_id"`
	Color       string   `json:"color"`
}

func (s *Server) getPointByID(c *gin.Context) {
	id, err := validate.ID(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	point, err := s.store.GetPoint(id)
	if err != nil {
		switch err {
		case store.ErrPointNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorPointNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"point": point})
}

func (s *Server) queryPointsByName(c *gin.Context) {
	name, err := validate.NonEmptyString("name", c.Param("name"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	points, err := s.store.QueryPointsByName(name)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"points": points})
}

func (s *Server) queryPointsByBoundingBox(c *gin.Context) {
	var params struct {
		NorthEast *schema.Location `json:"northEast"`
		SouthWest *schema.Location `json:"southWest"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := validate.BoundingBox(params.NorthEast, params.SouthWest); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	points, err := s.store.QueryPointsByBoundingBox(*params.NorthEast, *params.SouthWest)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"points": points})
}

func (s *Server) createPoint(c *gin.Context) {
	var params pointParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	name, err := validate.NonEmptyString("name", params.Name)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Latitude == nil || params.Longitude == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters,
			fmt.Errorf("latitude and longitude are required"))
		return
	}
	if err := validate.Latitude(*params.Latitude); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if err := validate.Longitude(*params.Longitude); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := validate.PositiveID("user_id", params.UserID); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	// `api.strict_point_fields` restores the original contract where
	// description and color were mandatory.
	strict := viper.GetBool("api.strict_point_fields")
	if strict || params.Description != "" {
		if _, err := validate.NonEmptyString("description", params.Description); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
	}
	if strict || params.Color != "" {
		if _, err := validate.NonEmptyString("color", params.Color); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
	}

	point := &schema.Point{
		Name:        name,
		Description: params.Description,
		Latitude:    *params.Latitude,
		Longitude:   *params.Longitude,
		UserID:      params.UserID,
		Color:       params.Color,
	}

	// Best-effort enrichment: fill a missing description with the
	// reverse-geocoded address. Never blocks the create.
	if point.Description == "" && s.geoClient != nil {
		results, err := s.geoClient.Get(schema.Location{
			Latitude:  point.Latitude,
			Longitude: point.Longitude,
		})
		if err != nil {
			log.WithError(err).Warn("reverse geocoding failed")
		} else {
			point.Description = geoinfo.FormattedAddress(results)
		}
	}

	created, err := s.store.CreatePoint(point)
	if err != nil {
		switch err {
		case store.ErrDuplicateCoordinates:
			abortWithEncoding(c, http.StatusBadRequest, errorDuplicateCoordinates)
		case store.ErrUserNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"point_id": created.ID})
}

func (s *Server) deletePoint(c *gin.Context) {
	var params struct {
		PointID int64 `json:"point_id"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := validate.PositiveID("point_id", params.PointID); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.DeletePoint(params.PointID); err != nil {
		switch err {
		case store.ErrPointNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorPointNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"point_id": params.PointID})
}
