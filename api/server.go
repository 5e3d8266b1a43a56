package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/pinpoint-labs/pinpoint-api/external/geoinfo"
	"github.com/pinpoint-labs/pinpoint-api/logmodule"
	"github.com/pinpoint-labs/pinpoint-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.PinpointCore

	// Public key of the upstream authentication provider; callers arrive
	// with tokens minted elsewhere.
	jwtPublicKey *rsa.PublicKey

	// External services
	geoClient geoinfo.GeoInfo
}

// NewServer new instance of server
func NewServer(ormDB *gorm.DB, jwtPublicKey *rsa.PublicKey, geoClient geoinfo.GeoInfo) *Server {
	return &Server{
		store:        store.NewPinpointStore(ormDB),
		jwtPublicKey: jwtPublicKey,
		geoClient:    geoClient,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     viper.GetStringSlice("server.cors.origins"),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", s.healthz)

	apiRoute := r.Group("/")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	// api route other than `/information` sits behind the token gateway
	apiRoute.Use(s.authMiddleware())

	pointRoute := apiRoute.Group("/points")
	{
		pointRoute.GET("/getbyid/:id", s.getPointByID)
		pointRoute.GET("/getbyname/:name", s.queryPointsByName)
		pointRoute.POST("/getbycoordinates", s.queryPointsByBoundingBox)
		pointRoute.POST("", s.createPoint)
		pointRoute.DELETE("", s.deletePoint)
	}

	userPointRoute := apiRoute.Group("/userpoints")
	{
		userPointRoute.POST("", s.checkIn)
		userPointRoute.DELETE("", s.checkOut)
		userPointRoute.GET("/getCheckinInfo", s.getCheckinInfo)
	}

	userRoute := apiRoute.Group("/users")
	{
		userRoute.GET("/getbyid/:id", s.getUserByID)
		userRoute.PUT("/edit", s.updateUser)
	}

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "Pinpoint 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
