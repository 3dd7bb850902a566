package models

// RegisterRequest for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required"`
	Role     Role   `json:"role" validate:"required,role"`
}

// LoginRequest for authentication
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse contains JWT token and user info
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ReportRequest is the body of a lecture report submission. No field is mandatory.
type ReportRequest struct {
	FacultyName             string `json:"facultyName"`
	ClassName               string `json:"className"`
	WeekOfReporting         int    `json:"weekOfReporting"`
	DateOfLecture           string `json:"dateOfLecture"`
	CourseName              string `json:"courseName"`
	CourseCode              string `json:"courseCode"`
	LecturerName            string `json:"lecturerName"`
	StudentsPresent         int    `json:"studentsPresent"`
	TotalRegisteredStudents int    `json:"totalRegisteredStudents"`
	Venue                   string `json:"venue"`
	ScheduledTime           string `json:"scheduledTime"`
	TopicTaught             string `json:"topicTaught"`
	LearningOutcomes        string `json:"learningOutcomes"`
	Recommendations         string `json:"recommendations"`
}

// RatingRequest is the body of a course rating submission
type RatingRequest struct {
	CourseCode   string  `json:"courseCode"`
	CourseName   string  `json:"courseName"`
	LecturerName string  `json:"lecturerName"`
	Rating       int     `json:"rating" validate:"min=1,max=5"`
	Comment      *string `json:"comment"`
}

// CourseRequest is used for both create and update; Status is ignored on create
type CourseRequest struct {
	Code          string   `json:"code" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Credits       int      `json:"credits" validate:"min=0"`
	Level         string   `json:"level"`
	Semester      string   `json:"semester"`
	Status        string   `json:"status"`
	Modules       []string `json:"modules"`
	Prerequisites []string `json:"prerequisites"`
}

// LecturerCreateRequest for adding a lecturer
type LecturerCreateRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Specialization string `json:"specialization"`
	Availability   string `json:"availability"`
	JoinDate       string `json:"joinDate" validate:"omitempty,datetime=2006-01-02"`
}

// LecturerUpdateRequest for editing a lecturer
type LecturerUpdateRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Specialization string `json:"specialization"`
	Status         string `json:"status"`
	Workload       string `json:"workload"`
	Availability   string `json:"availability"`
}
