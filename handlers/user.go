package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"luctreport/models"
	"luctreport/store"
	"luctreport/utils"
)

// RegisterHandler creates an account. No token is issued.
func (h *Handler) RegisterHandler(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Checks run in a fixed order: presence, password length, email shape, role.
	fe := h.validator.Struct(req)
	switch {
	case fe != nil && fe.Tag == "required":
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	case fe != nil && fe.Field == "Password":
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		return
	case !utils.ValidateEmail(req.Email):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	case fe != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Registration failed", err)
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
		Role:         req.Role,
	}
	if err := h.store.Users().Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
			return
		}
		h.fail(c, http.StatusInternalServerError, "Registration failed", err)
		return
	}

	h.logger.Info("user registered", "user_id", user.ID, "role", user.Role, "mode", h.store.Mode())
	c.JSON(http.StatusOK, gin.H{
		"message": "Registration successful!",
		"user":    user,
	})
}

// LoginHandler authenticates a user and returns a JWT token. Unknown users and
// wrong passwords get the same answer.
func (h *Handler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.store.Users().GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.CompareUnknownUser(req.Password)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.fail(c, http.StatusInternalServerError, "Login failed", err)
		return
	}

	if err := utils.ComparePassword(user.PasswordHash, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token, User: *user})
}

func (h *Handler) VerifyTokenHandler(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "user": claims})
}
