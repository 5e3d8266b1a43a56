package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pinpoint-labs/pinpoint-api/store"
	"github.com/pinpoint-labs/pinpoint-api/validate"
)

type interactionParams struct {
	UserID  int64 `json:"user_id"`
	PointID int64 `json:"point_id"`
}

func (s *Server) checkIn(c *gin.Context) {
	var params interactionParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := validate.PositiveID("user_id", params.UserID); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if err := validate.PositiveID("point_id", params.PointID); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	interaction, err := s.store.CheckIn(params.UserID, params.PointID)
	if err != nil {
		switch err {
		case store.ErrAlreadyCheckedIn:
			abortWithEncoding(c, http.StatusConflict, errorAlreadyCheckedIn)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"interaction": interaction})
}

func (s *Server) checkOut(c *gin.Context) {
	var params interactionParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := validate.PositiveID("user_id", params.UserID); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if err := validate.PositiveID("point_id", params.PointID); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.CheckOut(params.UserID, params.PointID); err != nil {
		switch err {
		case store.ErrCheckinNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorCheckoutNotPossible)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) getCheckinInfo(c *gin.Context) {
	pointID, err := validate.ID(c.Query("point_id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	userID, err := validate.ID(c.Query("user_id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	info, err := s.store.GetCheckinInfo(pointID, userID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, info)
}
