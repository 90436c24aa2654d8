package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/narenkarthik370h/smart-feedback-analysis/store"
)

// EnvAdmin is the environment-configured administrator. When its email and
// password are set, logins with those credentials resolve to a constant
// identity without touching the accounts collection.
type EnvAdmin struct {
	Name     string
	Email    string
	Password string
}

// Config carries everything the server needs beyond the store.
type Config struct {
	JWTSecret         string
	AdminCreateSecret string
	EnvAdmin          EnvAdmin
	AllowedOrigin     string
	TraceMode         bool
}

// Server is the feedback API server.
type Server struct {
	router *gin.Engine

	mongoStore store.MongoStore

	jwtSecret         []byte
	adminCreateSecret string
	envAdmin          EnvAdmin
	traceMode         bool
}

// NewServer returns a server with all routes registered.
func NewServer(mongoStore store.MongoStore, cfg Config) *Server {
	s := &Server{
		mongoStore:        mongoStore,
		jwtSecret:         []byte(cfg.JWTSecret),
		adminCreateSecret: cfg.AdminCreateSecret,
		envAdmin:          cfg.EnvAdmin,
		traceMode:         cfg.TraceMode,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.RequestID)
	r.Use(s.DumpRequest)

	corsConf := cors.DefaultConfig()
	if cfg.AllowedOrigin != "" {
		corsConf.AllowOrigins = []string{cfg.AllowedOrigin}
	} else {
		corsConf.AllowAllOrigins = true
	}
	corsConf.AllowCredentials = !corsConf.AllowAllOrigins
	corsConf.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConf))

	apiRoute := r.Group("/api")

	apiRoute.GET("/health", s.healthCheck)

	auth := apiRoute.Group("/auth")
	{
		auth.POST("/register", s.accountRegister)
		auth.POST("/login", s.accountLogin)
		auth.POST("/create-admin", s.accountCreateAdmin)
		auth.GET("/me", s.authRequired, s.accountDetail)
	}

	feedback := apiRoute.Group("/feedback")
	{
		feedback.POST("", s.authOptional, s.createFeedback)
		feedback.GET("/summary", s.authRequired, s.sentimentSummary)
		feedback.GET("/my-summary", s.authRequired, s.mySentimentSummary)
		feedback.GET("/my-feedbacks", s.authRequired, s.listMyFeedback)
		feedback.GET("", s.authRequired, s.adminRequired, s.listFeedback)
		feedback.DELETE("/clear", s.authRequired, s.adminRequired, s.clearFeedback)
		feedback.PUT("/:id", s.authRequired, s.adminRequired, s.updateFeedback)
		feedback.DELETE("/:id", s.authRequired, s.adminRequired, s.deleteFeedback)
	}

	s.router = r
	return s
}

// Run starts serving requests on the given address.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) healthCheck(c *gin.Context) {
	if err := s.mongoStore.Ping(); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
