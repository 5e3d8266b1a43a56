package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/pinpoint-labs/pinpoint-api/api/mocks"
	"github.com/pinpoint-labs/pinpoint-api/schema"
	"github.com/pinpoint-labs/pinpoint-api/store"
)

func newUserTestRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/getbyid/:id", s.getUserByID)
	router.PUT("/edit", s.updateUser)
	return router
}

func TestGetUserByID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPinpointCore(ctl)
	s := Server{store: m}

	m.EXPECT().GetUser(int64(1)).Return(&schema.User{
		ID:       1,
		Username: "alice",
		Email:    "alice@example.com",
	}, nil).Times(1)

	router := newUserTestRouter(&s)
	req := httptest.NewRequest("GET", "/getbyid/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		User schema.User `json:"user"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "alice", jResp.User.Username, "wrong username")
	assert.NotContains(t, w.Body.String(), "password", "password leaked")
}

func TestGetUserByIDNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPinpointCore(ctl)
	s := Server{store: m}

	m.EXPECT().GetUser(int64(9)).Return(nil, store.ErrUserNotFound).Times(1)

	router := newUserTestRouter(&s)
	req := httptest.NewRequest("GET", "/getbyid/9", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestUpdateUser(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPinpointCore(ctl)
	s := Server{store: m}

	m.EXPECT().
		UpdateUser(int64(1), map[string]interface{}{
			"username": "bob",
			"email":    "bob@example.com",
		}).
		Return(nil).
		Times(1)

	router := newUserTestRouter(&s)
	body := `{"userId":1,"updatedFields":{"username":"bob","email":"bob@example.com"}}`
	req := httptest.NewRequest("PUT", "/edit", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestUpdateUserUsernameTaken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPinpointCore(ctl)
	s := Server{store: m}

	m.EXPECT().UpdateUser(int64(1), gomock.Any()).Return(store.ErrUsernameTaken).Times(1)

	router := newUserTestRouter(&s)
	body := `{"userId":1,"updatedFields":{"username":"bob"}}`
	req := httptest.NewRequest("PUT", "/edit", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorUsernameTaken.Code, jResp.Code, "wrong error code")
}

func TestUpdateUserInvalid(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPinpointCore(ctl)
	s := Server{store: m}
	router := newUserTestRouter(&s)

	cases := []string{
		`{"updatedFields":{"username":"bob"}}`,
		`{"userId":1,"updatedFields":{}}`,
		`{"userId":1,"updatedFields":{"nickname":"bob"}}`,
		`{"userId":1,"updatedFields":{"username":"  "}}`,
		`{"userId":1,"updatedFields":{"email":7}}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest("PUT", "/edit", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code for body %s", body)
	}
}
