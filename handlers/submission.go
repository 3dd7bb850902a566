package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"luctreport/models"
	"luctreport/store"
)

// SubmitReportHandler records a lecture report attributed to the caller
func (h *Handler) SubmitReportHandler(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}

	// Every report field is optional, so a missing body is an empty report.
	var req models.ReportRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	report := models.LecturerReport{
		FacultyName:             req.FacultyName,
		ClassName:               req.ClassName,
		WeekOfReporting:         req.WeekOfReporting,
		DateOfLecture:           req.DateOfLecture,
		CourseName:              req.CourseName,
		CourseCode:              req.CourseCode,
		LecturerName:            req.LecturerName,
		StudentsPresent:         req.StudentsPresent,
		TotalRegisteredStudents: req.TotalRegisteredStudents,
		Venue:                   req.Venue,
		ScheduledTime:           req.ScheduledTime,
		TopicTaught:             req.TopicTaught,
		LearningOutcomes:        req.LearningOutcomes,
		Recommendations:         req.Recommendations,
		SubmittedBy:             claims.ID,
	}
	if err := h.store.Reports().Create(c.Request.Context(), &report); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			h.fail(c, http.StatusNotFound, "User not found", nil)
		case errors.Is(err, store.ErrInvalid):
			h.fail(c, http.StatusBadRequest, "Invalid report data", nil)
		default:
			h.fail(c, http.StatusInternalServerError, "Report submission failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report submitted successfully!", "reportId": report.ID})
}

// SubmitRatingHandler records a rating of 1 to 5 from the caller
func (h *Handler) SubmitRatingHandler(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}

	var req models.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if fe := h.validator.Struct(req); fe != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	rating := models.StudentRating{
		StudentID:    claims.ID,
		CourseCode:   req.CourseCode,
		CourseName:   req.CourseName,
		LecturerName: req.LecturerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := h.store.Ratings().Create(c.Request.Context(), &rating); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			h.fail(c, http.StatusNotFound, "User not found", nil)
		case errors.Is(err, store.ErrInvalid):
			h.fail(c, http.StatusBadRequest, "Rating must be between 1 and 5", nil)
		default:
			h.fail(c, http.StatusInternalServerError, "Rating submission failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating submitted successfully!", "ratingId": rating.ID})
}

func (h *Handler) GetLecturerReportsHandler(c *gin.Context) {
	reports, err := h.store.Reports().List(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to fetch lecturer reports", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (h *Handler) GetStudentRatingsHandler(c *gin.Context) {
	ratings, err := h.store.Ratings().List(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to fetch student ratings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}

// GetMyRatingsHandler returns the ratings naming the caller's full name as lecturer
func (h *Handler) GetMyRatingsHandler(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	user, err := h.store.Users().GetByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.fail(c, http.StatusNotFound, "Lecturer not found", nil)
			return
		}
		h.fail(c, http.StatusInternalServerError, "Failed to fetch lecturer ratings", err)
		return
	}

	ratings, err := h.store.Ratings().ListByLecturer(ctx, user.FullName)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to fetch lecturer ratings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}
