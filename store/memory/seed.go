package memory

import (
	"time"

	"luctreport/models"
	"luctreport/utils"
)

// DemoPassword is the password of every seeded account
const DemoPassword = "password123"

// NewSeeded returns a store holding the demo accounts, courses and lecturers
func NewSeeded() (*Store, error) {
	hash, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return nil, err
	}

	s := New()
	// Seeds are spaced one minute apart so newest-first listings keep a stable order.
	base := s.now().Add(-time.Hour)
	tick := func(i int) time.Time { return base.Add(time.Duration(i) * time.Minute) }

	for i, u := range demoUsers() {
		u.PasswordHash = hash
		u.CreatedAt = tick(i)
		s.users = append(s.users, u)
		s.bumpID(u.ID)
	}
	for i, l := range demoLecturers() {
		l.CreatedAt, l.UpdatedAt = tick(i), tick(i)
		s.lecturers = append(s.lecturers, l)
		s.bumpID(l.ID)
	}
	for i, c := range demoCourses() {
		c.CreatedAt, c.UpdatedAt = tick(i), tick(i)
		s.courses = append(s.courses, c)
		s.bumpID(c.ID)
	}
	return s, nil
}

func demoUsers() []models.User {
	return []models.User{
		{ID: 1, Username: "demo.student", Email: "demo.student@luct.ac.ls", FullName: "Demo Student", Role: models.RoleStudent},
		{ID: 2, Username: "demo.lecturer", Email: "demo.lecturer@luct.ac.ls", FullName: "Demo Lecturer", Role: models.RoleLecturer},
		{ID: 3, Username: "demo.supervisor", Email: "demo.supervisor@luct.ac.ls", FullName: "Demo Supervisor", Role: models.RolePrincipalLecturer},
		{ID: 4, Username: "demo.director", Email: "demo.director@luct.ac.ls", FullName: "Demo Director", Role: models.RoleProgramLeader},
	}
}

func demoLecturers() []models.Lecturer {
	return []models.Lecturer{
		{ID: 1, Name: "Dr. Thabo Moloi", Email: "t.moloi@university.ac.za", Specialization: "Software Architecture", Status: "Active", CoursesAssigned: 3, TotalStudents: 125, Rating: 4.7, Workload: "85%", Availability: "Full-time", JoinDate: "2020-03-15"},
		{ID: 2, Name: "Ms. Lerato Nkosi", Email: "l.nkosi@university.ac.za", Specialization: "Database Systems", Status: "Active", CoursesAssigned: 2, TotalStudents: 80, Rating: 4.5, Workload: "70%", Availability: "Full-time", JoinDate: "2021-08-22"},
		{ID: 3, Name: "Dr. James Wilson", Email: "j.wilson@university.ac.za", Specialization: "Machine Learning", Status: "Available", CoursesAssigned: 1, TotalStudents: 35, Rating: 4.8, Workload: "45%", Availability: "Part-time", JoinDate: "2019-11-30"},
		{ID: 4, Name: "Prof. Sarah Johnson", Email: "s.johnson@university.ac.za", Specialization: "Cybersecurity", Status: "Active", CoursesAssigned: 4, TotalStudents: 98, Rating: 4.9, Workload: "90%", Availability: "Full-time", JoinDate: "2018-01-15"},
		{ID: 5, Name: "Mr. David Brown", Email: "d.brown@university.ac.za", Specialization: "Computer Networks", Status: "Active", CoursesAssigned: 2, TotalStudents: 67, Rating: 4.4, Workload: "65%", Availability: "Full-time", JoinDate: "2022-02-10"},
	}
}

func demoCourses() []models.Course {
	lecturer := func(id int64) *int64 { return &id }
	return []models.Course{
		{
			ID: 1, Code: "ICT3101", Name: "Web Development", Credits: 15, Level: "Year 3", Semester: "Semester 1",
			Status: models.CourseStatusActive, AssignedLecturerID: lecturer(1), StudentsEnrolled: 45, Rating: 4.7,
			Color:         "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
			Modules:       []string{"HTML", "CSS", "JavaScript", "React"},
			Prerequisites: []string{"ICT2101", "ICT2201"},
		},
		{
			ID: 2, Code: "ICT2202", Name: "Database Systems", Credits: 12, Level: "Year 2", Semester: "Semester 2",
			Status: models.CourseStatusActive, AssignedLecturerID: lecturer(2), StudentsEnrolled: 38, Rating: 4.5,
			Color:         "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
			Modules:       []string{"SQL", "NoSQL", "Database Design", "Normalization"},
			Prerequisites: []string{"ICT1201"},
		},
		{
			ID: 3, Code: "ICT3301", Name: "Software Engineering", Credits: 15, Level: "Year 3", Semester: "Semester 1",
			Status: models.CourseStatusActive, AssignedLecturerID: lecturer(3), StudentsEnrolled: 42, Rating: 4.8,
			Color:         "linear-gradient(135deg, #4facfe 0%, #00f2fe 100%)",
			Modules:       []string{"SDLC", "Agile", "Testing", "Project Management"},
			Prerequisites: []string{"ICT2301", "ICT2401"},
		},
		{
			ID: 4, Code: "MATH2101", Name: "Discrete Mathematics", Credits: 12, Level: "Year 2", Semester: "Semester 1",
			Status: models.CourseStatusActive, AssignedLecturerID: lecturer(4), StudentsEnrolled: 50, Rating: 4.6,
			Color:         "linear-gradient(135deg, #43e97b 0%, #38f9d7 100%)",
			Modules:       []string{"Logic", "Sets", "Graphs", "Combinatorics"},
			Prerequisites: []string{"MATH1101"},
		},
	}
}
