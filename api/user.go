package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pinpoint-labs/pinpoint-api/store"
	"github.com/pinpoint-labs/pinpoint-api/validate"
)

func (s *Server) getUserByID(c *gin.Context) {
	id, err := validate.ID(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	user, err := s.store.GetUser(id)
	if err != nil {
		switch err {
		case store.ErrUserNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// updateUser applies a partial profile update. Each field of the
// updatedFields object is optional and validated independently; the
// password value arrives already hashed by the authentication provider.
func (s *Server) updateUser(c *gin.Context) {
	var params struct {
		UserID        int64                  `json:"userId"`
		UpdatedFields map[string]interface{} `json:"updatedFields"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := validate.PositiveID("userId", params.UserID); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	updates := map[string]interface{}{}
	for _, field := range []string{"username", "email", "password"} {
		raw, ok := params.UpdatedFields[field]
		if !ok {
			continue
		}

		value, ok := raw.(string)
		if !ok {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters,
				fmt.Errorf("%s must be a string", field))
			return
		}
		if _, err := validate.NonEmptyString(field, value); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}

		updates[field] = value
	}

	if len(updates) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorNoFieldsToUpdate)
		return
	}

	if err := s.store.UpdateUser(params.UserID, updates); err != nil {
		switch err {
		case store.ErrUsernameTaken:
			abortWithEncoding(c, http.StatusBadRequest, errorUsernameTaken)
		case store.ErrEmailTaken:
			abortWithEncoding(c, http.StatusBadRequest, errorEmailTaken)
		case store.ErrUserNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
