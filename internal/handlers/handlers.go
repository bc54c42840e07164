package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"loanhub/api/internal/ai"
	"loanhub/api/internal/config"
	"loanhub/api/internal/middleware"
	"loanhub/api/internal/models"
	"loanhub/api/internal/repository"
	"loanhub/api/internal/service"
	"loanhub/api/internal/storage"
)

type HandlerSet struct {
	log         zerolog.Logger
	cfg         *config.AppConfig
	auth        *service.AuthService
	loans       *service.LoanService
	eligibility *service.EligibilityService
	db          *pgxpool.Pool
	cache       *redis.Client
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, store *storage.ObjectStore, model *ai.Client, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	loanRepo := repository.NewLoanRepository(db)
	docRepo := repository.NewDocumentRepository(db)

	auth := service.NewAuthService(userRepo, cfg, log)
	loans := service.NewLoanService(loanRepo, docRepo, store, cfg, log)
	eligibility := service.NewEligibilityService(model, cache, cfg.AI.CacheTTL, log)

	return HandlerSet{
		log:         log,
		cfg:         cfg,
		auth:        auth,
		loans:       loans,
		eligibility: eligibility,
		db:          db,
		cache:       cache,
	}
}

func (h HandlerSet) Register(engine *gin.Engine) {
	engine.GET("/", h.Liveness)
	engine.GET("/healthz", h.Health)

	engine.POST("/register", h.RegisterUser)
	engine.POST("/login", h.Login)
	engine.GET("/users", h.ListUsers)
	engine.POST("/eligibility", h.Eligibility)

	protected := engine.Group("/")
	protected.Use(middleware.Auth(h.cfg.Security.JWTSecret))
	protected.POST("/apply-loan", h.ApplyLoan)
	protected.GET("/loan-status", h.LoanStatus)
	protected.POST("/loan-document/:id", h.UploadLoanDocument)

	decisions := protected.Group("/")
	decisions.Use(middleware.RequireRoles(models.UserRoleOfficer))
	decisions.PUT("/loan-action/:id", h.LoanAction)
}

// serverError is the terminal failure boundary: the cause is logged for
// operators, the client sees only a fixed message.
func (h HandlerSet) serverError(c *gin.Context, err error) {
	h.log.Error().
		Err(err).
		Str("path", c.Request.URL.Path).
		Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
}
