package models

import "time"

// Role is one of the four account roles of the reporting system
type Role string

const (
	RoleStudent           Role = "student"
	RoleLecturer          Role = "lecturer"
	RolePrincipalLecturer Role = "principal_lecturer"
	RoleProgramLeader     Role = "program_leader"
)

// Roles lists every role a user may register with
var Roles = []Role{RoleStudent, RoleLecturer, RolePrincipalLecturer, RoleProgramLeader}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

const (
	CourseStatusPlanning = "Planning"
	CourseStatusActive   = "Active"
)

// User model. PasswordHash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Course model
type Course struct {
	ID                   int64     `json:"id"`
	Code                 string    `json:"code"`
	Name                 string    `json:"name"`
	Credits              int       `json:"credits"`
	Level                string    `json:"level"`
	Semester             string    `json:"semester"`
	Status               string    `json:"status"`
	AssignedLecturerID   *int64    `json:"assigned_lecturer_id"`
	AssignedLecturerName *string   `json:"assigned_lecturer_name"`
	StudentsEnrolled     int       `json:"students_enrolled"`
	Rating               float64   `json:"rating"`
	Color                string    `json:"color"`
	Modules              []string  `json:"modules"`
	Prerequisites        []string  `json:"prerequisites"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Lecturer model. Workload is a percentage string such as "85%".
type Lecturer struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Specialization  string    `json:"specialization"`
	Status          string    `json:"status"`
	CoursesAssigned int       `json:"courses_assigned"`
	TotalStudents   int       `json:"total_students"`
	Rating          float64   `json:"rating"`
	Workload        string    `json:"workload"`
	Availability    string    `json:"availability"`
	JoinDate        string    `json:"join_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// LecturerReport is an append-only record of one lecture session
type LecturerReport struct {
	ID                      int64     `json:"id"`
	FacultyName             string    `json:"faculty_name"`
	ClassName               string    `json:"class_name"`
	WeekOfReporting         int       `json:"week_of_reporting"`
	DateOfLecture           string    `json:"date_of_lecture"`
	CourseName              string    `json:"course_name"`
	CourseCode              string    `json:"course_code"`
	LecturerName            string    `json:"lecturer_name"`
	StudentsPresent         int       `json:"students_present"`
	TotalRegisteredStudents int       `json:"total_registered_students"`
	Venue                   string    `json:"venue"`
	ScheduledTime           string    `json:"scheduled_time"`
	TopicTaught             string    `json:"topic_taught"`
	LearningOutcomes        string    `json:"learning_outcomes"`
	Recommendations         string    `json:"recommendations"`
	SubmittedBy             int64     `json:"submitted_by"`
	SubmittedByName         string    `json:"submitted_by_name"`
	SubmittedAt             time.Time `json:"submitted_at"`
}

// StudentRating is an append-only record. LecturerName is denormalized, not a reference.
type StudentRating struct {
	ID           int64     `json:"id"`
	StudentID    int64     `json:"student_id"`
	StudentName  string    `json:"student_name"`
	CourseCode   string    `json:"course_code"`
	CourseName   string    `json:"course_name"`
	LecturerName string    `json:"lecturer_name"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment"`
	RatedAt      time.Time `json:"rated_at"`
}
