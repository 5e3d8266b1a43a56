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

func newUserPointTestRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.checkIn)
	router.DELETE("/", s.checkOut)
	router.GET("/getCheckinInfo", s.getCheckinInfo)
	return router
}

func TestCheckIn(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPinpointCore(ctl)
	s := Server{store: m}

	m.EXPECT().CheckIn(int64(1), int64(7)).Return(&schema.UserPoint{
		ID:      5,
		UserID:  1,
		PointID: 7,
	}, nil).Times(1)

	router := newUserPointTestRouter(&s)
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"user_id":1,"point_id":7}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var jResp struct {
		Interaction schema.UserPoint `json:"interaction"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(5), jResp.Interaction.ID, "wrong interaction id")
}

func TestCheckInTwiceConflicts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPinpointCore(ctl)
	s := Server{store: m}

	m.EXPECT().CheckIn(int64(1), int64(7)).Return(nil, store.ErrAlreadyCheckedIn).Times(1)

	router := newUserPointTestRouter(&s)
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"user_id":1,"point_id":7}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorAlreadyCheckedIn.Code, jResp.Code, "wrong error code")
}

func TestCheckInInvalidIDs(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPinpointCore(ctl)
	s := Server{store: m}
	router := newUserPointTestRouter(&s)

	cases := []string{
		`{"point_id":7}`,
		`{"user_id":0,"point_id":7}`,
		`{"user_id":1}`,
		`{"user_id":1,"point_id":-2}`,
		`{"user_id":"1","point_id":7}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code for body %s", body)
	}
}

func TestCheckOut(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPinpointCore(ctl)
	s := Server{store: m}

	m.EXPECT().CheckOut(int64(1), int64(7)).Return(nil).Times(1)

	router := newUserPointTestRouter(&s)
	req := httptest.NewRequest("DELETE", "/", strings.NewReader(`{"user_id":1,"point_id":7}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPinpointCore(ctl)
	s := Server{store: m}

	m.EXPECT().CheckOut(int64(1), int64(7)).Return(store.ErrCheckinNotFound).Times(1)

	router := newUserPointTestRouter(&s)
	req := httptest.NewRequest("DELETE", "/", strings.NewReader(`{"user_id":1,"point_id":7}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestGetCheckinInfo(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPinpointCore(ctl)
	s := Server{store: m}

	info := schema.CheckinInfo{
		TotalInteractions: 3,
		UserInteracted:    true,
	}
	m.EXPECT().GetCheckinInfo(int64(7), int64(1)).Return(&info, nil).Times(1)

	router := newUserPointTestRouter(&s)
	req := httptest.NewRequest("GET", "/getCheckinInfo?point_id=7&user_id=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.CheckinInfo
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, info, jResp, "wrong data")
}

// A point nobody interacted with aggregates to zero, not an error.
func TestGetCheckinInfoEmpty(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPinpointCore(ctl)
	s := Server{store: m}

	m.EXPECT().GetCheckinInfo(int64(7), int64(1)).Return(&schema.CheckinInfo{}, nil).Times(1)

	router := newUserPointTestRouter(&s)
	req := httptest.NewRequest("GET", "/getCheckinInfo?point_id=7&user_id=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.CheckinInfo
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(0), jResp.TotalInteractions, "wrong total")
	assert.False(t, jResp.UserInteracted, "wrong interacted flag")
}

func TestGetCheckinInfoInvalidParams(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPinpointCore(ctl)
	s := Server{store: m}
	router := newUserPointTestRouter(&s)

	for _, query := range []string{
		"",
		"?point_id=7",
		"?user_id=1",
		"?point_id=abc&user_id=1",
		"?point_id=7&user_id=0",
	} {
		req := httptest.NewRequest("GET", "/getCheckinInfo"+query, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code for query %q", query)
	}
}
