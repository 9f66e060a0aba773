package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/JustJay7/bpso-complaint-intake/internal/cache"
	"github.com/JustJay7/bpso-complaint-intake/internal/config"
	"github.com/JustJay7/bpso-complaint-intake/internal/database"
	"github.com/JustJay7/bpso-complaint-intake/internal/intake"
	"github.com/JustJay7/bpso-complaint-intake/internal/store"
	"github.com/JustJay7/bpso-complaint-intake/pkg/logger"
	"gorm.io/gorm"
)

// RequestIDKey is the gin context key holding the request ID
const RequestIDKey = "request_id"

// CaseStore writes records to their destination tables and reads them back
type CaseStore interface {
	Write(ctx context.Context, record *intake.CaseRecord, tables []string) (*store.WriteResult, error)
	Get(ctx context.Context, table string, caseNumber int64) (*intake.CaseRecord, error)
}

// Handlers holds all HTTP handlers
type Handlers struct {
	db      *gorm.DB
	cache   cache.Cache
	store   CaseStore
	builder *intake.Builder
	router  *intake.Router
	logger  *logger.Logger
	cfg     *config.Config
}

// NewHandlers creates a new handlers instance
func NewHandlers(db *gorm.DB, cache cache.Cache, caseStore CaseStore, builder *intake.Builder, logger *logger.Logger, cfg *config.Config) *Handlers {
	return &Handlers{
		db:      db,
		cache:   cache,
		store:   caseStore,
		builder: builder,
		router:  intake.NewRouter(cfg.Tables),
		logger:  logger,
		cfg:     cfg,
	}
}

// SubmitComplaint handles the complaint form. Success redirects to the
// dashboard; failures answer with a plain-text message.
func (h *Handlers) SubmitComplaint(c *gin.Context) {
	entry := &database.SubmissionLog{
		RequestID:   c.GetString(RequestIDKey),
		SubmittedAt: time.Now(),
		IPAddress:   c.ClientIP(),
	}
	log := h.logger.With("request_id", entry.RequestID)

	var sub intake.Submission
	if err := c.ShouldBind(&sub); err != nil {
		h.reject(c, log, entry, http.StatusBadRequest, database.ErrorKindInput, "Invalid form data: "+err.Error())
		return
	}
	entry.Affiliation = sub.Affiliation()

	record, err := h.builder.FromSubmission(sub)
	if err != nil {
		var fe *intake.FormatError
		if errors.As(err, &fe) {
			h.reject(c, log, entry, http.StatusBadRequest, database.ErrorKindInput, "Error converting "+fe.Field+": "+fe.Err.Error())
			return
		}
		h.reject(c, log, entry, http.StatusBadRequest, database.ErrorKindInput, err.Error())
		return
	}
	entry.CaseNumber = record.CaseNumber
	entry.SubmissionID = record.SubmissionID
	log = log.With("case_number", record.CaseNumber)

	tables := h.router.Tables(record.DepartmentAffiliation)
	entry.Tables = strings.Join(tables, ",")

	result, err := h.store.Write(c.Request.Context(), record, tables)
	if err != nil {
		var werr *store.WriteError
		if errors.As(err, &werr) {
			entry.WrittenTables = strings.Join(persisted(werr), ",")
			entry.RolledBack = strings.Join(werr.RolledBack, ",")
		}
		// the failed fan-out may have replaced what the cache holds for this number
		h.cache.Delete(record.CaseNumber)
		h.reject(c, log, entry, http.StatusBadGateway, database.ErrorKindStore, "Error: "+err.Error())
		return
	}

	entry.Success = true
	entry.WrittenTables = strings.Join(result.Tables, ",")
	h.saveLog(entry)
	h.cache.Set(record)

	log.Info("Complaint filed",
		"affiliation", record.DepartmentAffiliation,
		"tables", result.Tables,
	)

	c.Redirect(http.StatusSeeOther, h.cfg.DashboardURL)
}

func (h *Handlers) reject(c *gin.Context, log *logger.Logger, entry *database.SubmissionLog, status int, kind, msg string) {
	entry.Success = false
	entry.ErrorKind = kind
	entry.ErrorMessage = msg
	h.saveLog(entry)

	log.Warn("Complaint rejected",
		"kind", kind,
		"status", status,
		"error", msg,
	)

	c.String(status, "%s", msg)
}

// persisted lists the tables that still hold the item after a failed write
func persisted(werr *store.WriteError) []string {
	undone := make(map[string]bool, len(werr.RolledBack))
	for _, t := range werr.RolledBack {
		undone[t] = true
	}
	kept := make([]string, 0, len(werr.Written))
	for _, t := range werr.Written {
		if !undone[t] {
			kept = append(kept, t)
		}
	}
	return kept
}

func (h *Handlers) saveLog(entry *database.SubmissionLog) {
	if err := database.RecordSubmission(h.db, entry); err != nil {
		h.logger.Error("Failed to save submission log", "request_id", entry.RequestID, "error", err)
	}
}

// GetCaseAPI returns a filed case, from the cache when recent
func (h *Handlers) GetCaseAPI(c *gin.Context) {
	caseNumber, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil || caseNumber < intake.MinCaseNumber || caseNumber > intake.MaxCaseNumber {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid case number",
		})
		return
	}

	if record, found := h.cache.Get(caseNumber); found {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"data":      record,
			"fromCache": true,
		})
		return
	}

	record, err := h.store.Get(c.Request.Context(), h.cfg.Tables.BPSO, caseNumber)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Case not found",
		})
		return
	}
	if err != nil {
		h.logger.Error("Failed to read case", "case_number", caseNumber, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	h.cache.Set(record)
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"data":      record,
		"fromCache": false,
	})
}

// ListSubmissionsAPI returns the submission log, newest first
func (h *Handlers) ListSubmissionsAPI(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := database.ListSubmissions(h.db, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Items,
		"pagination": gin.H{
			"page":  result.Page,
			"limit": result.Limit,
			"total": result.Total,
		},
	})
}

// HealthCheck returns the health status
func (h *Handlers) HealthCheck(c *gin.Context) {
	var count int64
	dbHealthy := h.db.Model(&database.SubmissionLog{}).Count(&count).Error == nil

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealthy,
		"cache":    h.cache.Stats(),
		"time":     time.Now().Unix(),
	})
}

// CacheStats returns cache statistics
func (h *Handlers) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   h.cache.Stats(),
	})
}
