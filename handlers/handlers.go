package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"luctreport/auth"
	"luctreport/middleware"
	"luctreport/store"
	"luctreport/utils"
)

// Handler serves every resource endpoint against the store chosen at startup
type Handler struct {
	store     store.Store
	tokens    *auth.TokenManager
	validator *utils.Validator
	logger    *slog.Logger
	now       func() time.Time
}

func New(s store.Store, tokens *auth.TokenManager, logger *slog.Logger) *Handler {
	return &Handler{
		store:     s,
		tokens:    tokens,
		validator: utils.NewValidator(),
		logger:    logger,
		now:       time.Now,
	}
}

// fail writes the error envelope. The underlying error is only logged.
func (h *Handler) fail(c *gin.Context, status int, message string, err error) {
	if err != nil {
		h.logger.Error(message,
			"request_id", middleware.GetRequestID(c),
			"path", c.FullPath(),
			"error", err,
		)
	}
	c.JSON(status, gin.H{"error": message})
}

// paramID parses a numeric path parameter, answering 400 when it is not one
func (h *Handler) paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		h.fail(c, http.StatusBadRequest, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func (h *Handler) claims(c *gin.Context) (*auth.Claims, bool) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		h.fail(c, http.StatusUnauthorized, "No token provided", nil)
	}
	return claims, ok
}

// RootHandler reports which backend serves the process
func (h *Handler) RootHandler(c *gin.Context) {
	users, err := h.store.Users().List(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to fetch status", err)
		return
	}

	database := "Using DEMO data"
	if h.store.Mode() == store.ModeDatabase {
		database = "CONNECTED to PostgreSQL"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Server is running!",
		"database":   database,
		"totalUsers": len(users),
		"timestamp":  h.now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) HealthHandler(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": h.store.Mode()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": h.store.Mode()})
}

// DebugUsersHandler lists accounts without any password material beyond the hash length
func (h *Handler) DebugUsersHandler(c *gin.Context) {
	users, err := h.store.Users().List(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to fetch users", err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"id":             u.ID,
			"username":       u.Username,
			"role":           u.Role,
			"email":          u.Email,
			"passwordLength": len(u.PasswordHash),
		})
	}
	c.JSON(http.StatusOK, gin.H{"totalUsers": len(users), "users": out})
}
