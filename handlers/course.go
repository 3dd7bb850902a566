package handlers

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"

	"github.com/gin-gonic/gin"

	"luctreport/models"
	"luctreport/store"
)

func (h *Handler) GetCoursesHandler(c *gin.Context) {
	courses, err := h.store.Courses().List(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to fetch courses", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

func (h *Handler) GetCourseHandler(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	course, err := h.store.Courses().GetByID(c.Request.Context(), id)
	if err != nil {
		h.courseError(c, err, "Failed to fetch course")
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": course})
}

// CreateCourseHandler adds a course in Planning status with a random card gradient
func (h *Handler) CreateCourseHandler(c *gin.Context) {
	req, ok := h.bindCourse(c)
	if !ok {
		return
	}

	course := models.Course{
		Code:          req.Code,
		Name:          req.Name,
		Credits:       req.Credits,
		Level:         req.Level,
		Semester:      req.Semester,
		Status:        models.CourseStatusPlanning,
		Color:         randomGradient(),
		Modules:       req.Modules,
		Prerequisites: req.Prerequisites,
	}
	if err := h.store.Courses().Create(c.Request.Context(), &course); err != nil {
		h.courseError(c, err, "Course creation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course created successfully!", "courseId": course.ID})
}

// UpdateCourseHandler replaces the editable fields. An empty status keeps the current one.
func (h *Handler) UpdateCourseHandler(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	req, ok := h.bindCourse(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	course, err := h.store.Courses().GetByID(ctx, id)
	if err != nil {
		h.courseError(c, err, "Course update failed")
		return
	}

	course.Code = req.Code
	course.Name = req.Name
	course.Credits = req.Credits
	course.Level = req.Level
	course.Semester = req.Semester
	course.Modules = req.Modules
	course.Prerequisites = req.Prerequisites
	if req.Status != "" {
		course.Status = req.Status
	}

	if err := h.store.Courses().Update(ctx, course); err != nil {
		h.courseError(c, err, "Course update failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course updated successfully!"})
}

func (h *Handler) DeleteCourseHandler(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.store.Courses().Delete(c.Request.Context(), id); err != nil {
		h.courseError(c, err, "Course deletion failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully!"})
}

func (h *Handler) AssignLecturerHandler(c *gin.Context) {
	courseID, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	lecturerID, ok := h.paramID(c, "lecturerId")
	if !ok {
		return
	}

	if err := h.store.Courses().AssignLecturer(c.Request.Context(), courseID, lecturerID); err != nil {
		h.courseError(c, err, "Lecturer assignment failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lecturer assigned successfully!"})
}

func (h *Handler) bindCourse(c *gin.Context) (*models.CourseRequest, bool) {
	var req models.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return nil, false
	}
	if fe := h.validator.Struct(req); fe != nil {
		msg := "Course code and name are required"
		if fe.Field == "Credits" {
			msg = "Credits must not be negative"
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return nil, false
	}
	return &req, true
}

func (h *Handler) courseError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrLecturerNotFound):
		h.fail(c, http.StatusNotFound, "Lecturer not found", nil)
	case errors.Is(err, store.ErrNotFound):
		h.fail(c, http.StatusNotFound, "Course not found", nil)
	case errors.Is(err, store.ErrConflict):
		h.fail(c, http.StatusBadRequest, "Course code already exists", nil)
	case errors.Is(err, store.ErrInvalid):
		h.fail(c, http.StatusBadRequest, "Invalid course data", nil)
	default:
		h.fail(c, http.StatusInternalServerError, fallback, err)
	}
}

func randomGradient() string {
	return fmt.Sprintf("linear-gradient(135deg, #%06x 0%%, #%06x 100%%)", rand.IntN(1<<24), rand.IntN(1<<24))
}
