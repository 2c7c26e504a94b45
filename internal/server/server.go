package server

import (
	"net/http"
	"time"

	"anoa.com/casetrack/internal/config"
	"anoa.com/casetrack/internal/entity"
	"anoa.com/casetrack/internal/middleware"
	"anoa.com/casetrack/pkg/auth"
	"anoa.com/casetrack/pkg/cache"
	"anoa.com/casetrack/pkg/database"
	"anoa.com/casetrack/pkg/logger"
	"anoa.com/casetrack/pkg/ratelimiter"
	"anoa.com/casetrack/pkg/response"
	"anoa.com/casetrack/pkg/validator"

	casenoteHttp "anoa.com/casetrack/internal/modules/casenote/delivery/http"
	casenoteRepo "anoa.com/casetrack/internal/modules/casenote/repository"
	casenoteService "anoa.com/casetrack/internal/modules/casenote/service"

	geoHttp "anoa.com/casetrack/internal/modules/geo/delivery/http"
	geoService "anoa.com/casetrack/internal/modules/geo/service"

	orgHttp "anoa.com/casetrack/internal/modules/organization/delivery/http"
	orgRepo "anoa.com/casetrack/internal/modules/organization/repository"
	orgService "anoa.com/casetrack/internal/modules/organization/service"

	outcomeHttp "anoa.com/casetrack/internal/modules/outcome/delivery/http"
	outcomeRepo "anoa.com/casetrack/internal/modules/outcome/repository"
	outcomeService "anoa.com/casetrack/internal/modules/outcome/service"

	participantHttp "anoa.com/casetrack/internal/modules/participant/delivery/http"
	participantRepo "anoa.com/casetrack/internal/modules/participant/repository"
	participantService "anoa.com/casetrack/internal/modules/participant/service"

	referralHttp "anoa.com/casetrack/internal/modules/referral/delivery/http"
	referralRepo "anoa.com/casetrack/internal/modules/referral/repository"
	referralService "anoa.com/casetrack/internal/modules/referral/service"

	reportHttp "anoa.com/casetrack/internal/modules/report/delivery/http"
	reportRepo "anoa.com/casetrack/internal/modules/report/repository"
	reportService "anoa.com/casetrack/internal/modules/report/service"

	searchService "anoa.com/casetrack/internal/modules/search/service"

	servicerecordHttp "anoa.com/casetrack/internal/modules/servicerecord/delivery/http"
	servicerecordRepo "anoa.com/casetrack/internal/modules/servicerecord/repository"
	servicerecordService "anoa.com/casetrack/internal/modules/servicerecord/service"

	userHttp "anoa.com/casetrack/internal/modules/user/delivery/http"
	userRepo "anoa.com/casetrack/internal/modules/user/repository"
	userService "anoa.com/casetrack/internal/modules/user/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const userAgent = "casetrack/" + config.Version

// Options carries everything the server needs. Redis, Search and Geocoder are optional.
type Options struct {
	Config   *config.Config
	DB       *gorm.DB
	Logger   *zap.Logger
	Redis    *redis.Client
	Search   searchService.ParticipantIndex
	Geocoder geoService.Geocoder
	Registry *prometheus.Registry
	Now      func() time.Time
}

type Server struct {
	engine *gin.Engine
	db     *gorm.DB
	log    *zap.Logger
}

func New(opts Options) *Server {
	cfg := opts.Config
	db := opts.DB
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	geocoder := opts.Geocoder
	if geocoder == nil {
		geocoder = geoService.NewNominatimClient(cfg.GeocoderURL, userAgent, cfg.GeocoderTimeout)
	}

	validator.Register()
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	authMiddleware := middleware.NewAuthMiddleware(tokens)
	metrics := middleware.NewMetrics(registry)

	// Auth
	loginLimiter := ratelimiter.NewAttemptLimiter(opts.Redis, log, "login", cfg.LoginMaxAttempts, cfg.LoginLockoutWindow)
	authSvc := userService.NewAuthService(userRepo.NewUserRepository(db), tokens, loginLimiter)
	authHandler := userHttp.NewAuthHandler(authSvc, cfg.AppEnv, config.Version)

	// Participants and scoped records
	participants := participantRepo.NewRepository(db)
	participantSvc := participantService.NewService(participants, opts.Search, log)
	participantHandler := participantHttp.NewParticipantHandler(participantSvc)

	noteHandler := casenoteHttp.NewNoteHandler(casenoteService.NewService(casenoteRepo.NewRepository(db), participants))
	serviceRecordHandler := servicerecordHttp.NewServiceRecordHandler(
		servicerecordService.NewService(servicerecordRepo.NewRepository(db), participants),
	)

	orgSvc := orgService.NewService(orgRepo.NewRepository(db))
	employerHandler := orgHttp.NewOrganizationHandler(orgSvc, entity.OrgKindEmployer)
	providerHandler := orgHttp.NewOrganizationHandler(orgSvc, entity.OrgKindProvider)

	referralHandler := referralHttp.NewReferralHandler(
		referralService.NewService(referralRepo.NewRepository(db), participants, orgSvc),
	)

	outcomeHandler := outcomeHttp.NewOutcomeHandler(outcomeService.NewService(outcomeService.Repositories{
		Assessments: outcomeRepo.NewAssessmentRepository(db),
		Employment:  outcomeRepo.NewEmploymentRepository(db),
		Education:   outcomeRepo.NewEducationRepository(db),
		Milestones:  outcomeRepo.NewMilestoneRepository(db),
	}, participants))

	// Reports
	reportHandler := reportHttp.NewReportHandler(reportService.NewService(
		reportRepo.NewRepository(db), participants,
		reportService.Options{StrictDates: cfg.ReportStrictDates, Now: opts.Now},
	))

	// Address lookup
	addressHandler := geoHttp.NewAddressHandler(
		geoService.NewService(geocoder, cache.New(opts.Redis), cfg.GeocodeCacheTTL, log),
	)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(middleware.RequestLogger(log, "/metrics", "/api/health"))
	router.Use(metrics.Handler())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.From(c).Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		response.Error(c, http.StatusInternalServerError, "internal server error")
	}))

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Legacy shapes redirect into the canonical table below
	router.Any("/healthz", redirectLegacy)
	router.Any(legacyPrefix+"/*path", redirectLegacy)

	api := router.Group(apiPrefix)

	// Public routes
	api.GET("/health", healthHandler(db))
	api.POST("/login", authHandler.Login)
	api.GET("/whoami", authMiddleware.OptionalAuth(), authHandler.WhoAmI)

	// Any valid credential
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/participants", participantHandler.List)
		protected.GET("/participants/:id", participantHandler.Get)
		protected.GET("/participants/:id/notes", noteHandler.List)
		protected.GET("/participants/:id/services", serviceRecordHandler.List)
		protected.GET("/participants/:id/referrals", referralHandler.List)
		protected.GET("/participants/:id/assessments", outcomeHandler.ListAssessments())
		protected.GET("/participants/:id/employment", outcomeHandler.ListEmployment())
		protected.GET("/participants/:id/education", outcomeHandler.ListEducation())
		protected.GET("/participants/:id/milestones", outcomeHandler.ListMilestones())

		protected.GET("/employers", employerHandler.List)
		protected.GET("/providers", providerHandler.List)

		protected.GET("/addresses", addressHandler.Search)

		reportHandler.Register(protected)
	}

	// Case workers
	writers := protected.Group("")
	writers.Use(authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleStaff))
	{
		writers.POST("/participants", participantHandler.Create)
		writers.PUT("/participants/:id", participantHandler.Update)
		writers.PATCH("/participants/:id", participantHandler.Update)
		writers.DELETE("/participants/:id", participantHandler.Delete)

		writers.POST("/participants/:id/notes", noteHandler.Create)
		writers.POST("/participants/:id/services", serviceRecordHandler.Create)
		writers.POST("/participants/:id/referrals", referralHandler.Create)
		writers.POST("/participants/:id/assessments", outcomeHandler.CreateAssessment())
		writers.POST("/participants/:id/employment", outcomeHandler.CreateEmployment())
		writers.POST("/participants/:id/education", outcomeHandler.CreateEducation())
		writers.POST("/participants/:id/milestones", outcomeHandler.CreateMilestone())

		writers.PATCH("/referrals/:id", referralHandler.Update)
	}

	// Admin only
	admin := protected.Group("")
	admin.Use(authMiddleware.RequireRole(entity.RoleAdmin))
	{
		admin.POST("/employers", employerHandler.Create)
		admin.POST("/providers", providerHandler.Create)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "not found")
	})

	return &Server{
		engine: router,
		db:     db,
		log:    log,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// HTTPServer wraps the router for graceful shutdown by the caller.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "up"
		if err := database.Ping(db); err != nil {
			logger.From(c).Warn("database ping failed", zap.Error(err))
			status = "down"
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "db": status})
	}
}

func setupCORS(router *gin.Engine, origins []string) {
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "Retry-After", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
