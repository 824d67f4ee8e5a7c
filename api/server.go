package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/flo-api/cache"
	"github.com/bitmark-inc/flo-api/external/cadence"
	"github.com/bitmark-inc/flo-api/external/insight"
	"github.com/bitmark-inc/flo-api/logmodule"
	"github.com/bitmark-inc/flo-api/store"
)

const defaultAlertWait = 2 * time.Second

var log *logrus.Entry

// now is replaced in tests
var now = time.Now

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.FloCore
	mongoStore store.MongoStore
	cache      cache.DashboardCache

	// JWT public key of the authentication service
	jwtPublicKey *rsa.PublicKey

	// External services
	insightClient insight.Client
	cadenceClient cadence.WorkflowClient

	// how long the dashboard waits for the alert sync
	alertWait time.Duration
}

// NewServer new instance of server
func NewServer(
	core store.FloCore,
	mongoStore store.MongoStore,
	dashboardCache cache.DashboardCache,
	jwtKey *rsa.PublicKey,
	insightClient insight.Client,
	cadenceClient cadence.WorkflowClient) *Server {
	alertWait := viper.GetDuration("dashboard.alert_wait")
	if alertWait <= 0 {
		alertWait = defaultAlertWait
	}

	return &Server{
		store:         core,
		mongoStore:    mongoStore,
		cache:         dashboardCache,
		jwtPublicKey:  jwtKey,
		insightClient: insightClient,
		cadenceClient: cadenceClient,
		alertWait:     alertWait,
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

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(s.authMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.POST("", s.accountRegister)
	}

	// api route other than account registration will apply the following middleware
	apiRoute.Use(s.recognizeAccountMiddleware())
	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
	}

	readingRoute := apiRoute.Group("/readings")
	{
		readingRoute.POST("", s.addReading)
		readingRoute.GET("", s.getReadings)
		readingRoute.GET("/latest", s.getLatestReading)
		readingRoute.DELETE("/:readingID", s.deleteReading)
	}

	scoreRoute := apiRoute.Group("/flo-score")
	{
		scoreRoute.POST("", s.calculateFloScore)
		scoreRoute.GET("", s.getLatestFloScore)
		scoreRoute.GET("/history", s.getFloScoreHistory)
	}

	alertRoute := apiRoute.Group("/alerts")
	{
		alertRoute.GET("", s.getActiveAlerts)
		alertRoute.POST("/generate", s.generateAlerts)
		alertRoute.PATCH("/:alertID/read", s.markAlertRead)
	}

	apiRoute.GET("/reminders", s.getReminders)
	apiRoute.GET("/dashboard", s.dashboard)

	wearableRoute := apiRoute.Group("/wearables")
	{
		wearableRoute.POST("", s.addWearableMetric)
		wearableRoute.GET("/summary", s.getWearableSummary)
		wearableRoute.GET("/dashboard", s.getWearablesDashboard)
	}

	medicationRoute := apiRoute.Group("/medications")
	{
		medicationRoute.POST("", s.addMedicationLog)
		medicationRoute.GET("", s.getMedicationLogs)
	}

	insightRoute := apiRoute.Group("/insights")
	{
		insightRoute.GET("", s.getInsights)
		insightRoute.POST("/readings/:readingID", s.generateInsight)
	}

	careTeamRoute := apiRoute.Group("/patients")
	careTeamRoute.Use(s.doctorMiddleware())
	{
		careTeamRoute.GET("", s.getPatients)
	}

	patientRoute := careTeamRoute.Group("/:patientID")
	patientRoute.Use(s.careTeamMiddleware())
	{
		patientRoute.GET("/metrics", s.getPatientMetrics)
		patientRoute.GET("/summary", s.getPatientSummary)
		patientRoute.GET("/readings", s.getPatientReadings)
		patientRoute.GET("/notes", s.getPatientNotes)
		patientRoute.PATCH("/status", s.updatePatientStatus)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("/patients/:patientID", s.getPatientMetrics)
	}

	r.GET("/healthz", s.healthz)

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
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	err = s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
