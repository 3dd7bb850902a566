package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"luctreport/models"
	"luctreport/store"
	"luctreport/utils"
)

func (h *Handler) GetLecturersHandler(c *gin.Context) {
	lecturers, err := h.store.Lecturers().List(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to fetch lecturers", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lecturers": lecturers})
}

func (h *Handler) GetLecturerHandler(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	lecturer, err := h.store.Lecturers().GetByID(c.Request.Context(), id)
	if err != nil {
		h.lecturerError(c, err, "Failed to fetch lecturer")
		return
	}
	c.JSON(http.StatusOK, gin.H{"lecturer": lecturer})
}

func (h *Handler) CreateLecturerHandler(c *gin.Context) {
	var req models.LecturerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if fe := h.validator.Struct(req); fe != nil {
		msg := "Name and email are required"
		if fe.Field == "JoinDate" {
			msg = "Join date must be formatted YYYY-MM-DD"
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if !utils.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	lecturer := models.Lecturer{
		Name:           req.Name,
		Email:          req.Email,
		Specialization: req.Specialization,
		Availability:   req.Availability,
		JoinDate:       req.JoinDate,
	}
	if err := h.store.Lecturers().Create(c.Request.Context(), &lecturer); err != nil {
		h.lecturerError(c, err, "Lecturer creation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lecturer created successfully!", "lecturerId": lecturer.ID})
}

func (h *Handler) UpdateLecturerHandler(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	var req models.LecturerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if fe := h.validator.Struct(req); fe != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}
	if !utils.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	lecturer := models.Lecturer{
		ID:             id,
		Name:           req.Name,
		Email:          req.Email,
		Specialization: req.Specialization,
		Status:         req.Status,
		Workload:       req.Workload,
		Availability:   req.Availability,
	}
	if err := h.store.Lecturers().Update(c.Request.Context(), &lecturer); err != nil {
		h.lecturerError(c, err, "Lecturer update failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lecturer updated successfully!"})
}

func (h *Handler) DeleteLecturerHandler(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.store.Lecturers().Delete(c.Request.Context(), id); err != nil {
		h.lecturerError(c, err, "Lecturer deletion failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lecturer deleted successfully!"})
}

func (h *Handler) lecturerError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrLecturerAssigned):
		h.fail(c, http.StatusBadRequest, "Lecturer is assigned to a course", nil)
	case errors.Is(err, store.ErrNotFound):
		h.fail(c, http.StatusNotFound, "Lecturer not found", nil)
	case errors.Is(err, store.ErrConflict):
		h.fail(c, http.StatusBadRequest, "Lecturer email already exists", nil)
	case errors.Is(err, store.ErrInvalid):
		h.fail(c, http.StatusBadRequest, "Invalid lecturer data", nil)
	default:
		h.fail(c, http.StatusInternalServerError, fallback, err)
	}
}
