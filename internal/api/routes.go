package api

import (
	"github.com/gin-gonic/gin"
	"github.com/JustJay7/bpso-complaint-intake/internal/cache"
	"github.com/JustJay7/bpso-complaint-intake/internal/config"
	"github.com/JustJay7/bpso-complaint-intake/internal/intake"
	"github.com/JustJay7/bpso-complaint-intake/pkg/logger"
	"gorm.io/gorm"
)

// LegacyComplaintPath is where the old portal form still posts
const LegacyComplaintPath = "/controllers/departments/BPSO/complaint.php"

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, cache cache.Cache, caseStore CaseStore, logger *logger.Logger, cfg *config.Config) {
	builder := intake.NewBuilder(cfg.Location)
	h := NewHandlers(db, cache, caseStore, builder, logger, cfg)
	h.Register(router)
}

// Register mounts the handlers on router
func (h *Handlers) Register(router *gin.Engine) {
	// Form routes
	router.POST("/complaints", h.SubmitComplaint)
	router.POST(LegacyComplaintPath, h.SubmitComplaint)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/health", h.HealthCheck)
		api.GET("/cases/:number", h.GetCaseAPI)
		api.GET("/submissions", h.ListSubmissionsAPI)
		api.GET("/cache/stats", h.CacheStats)
	}
}
