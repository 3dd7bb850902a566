package db

// table is one idempotent DDL statement. Order matters: referenced tables come first.
type table struct {
	name string
	ddl  string
}

var tables = []table{
	{name: "users", ddl: `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(50) UNIQUE NOT NULL,
			email VARCHAR(100) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			full_name VARCHAR(100) NOT NULL,
			role VARCHAR(20) NOT NULL CHECK (role IN ('student', 'lecturer', 'principal_lecturer', 'program_leader')),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{name: "lecturers", ddl: `
		CREATE TABLE IF NOT EXISTS lecturers (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) UNIQUE NOT NULL,
			specialization VARCHAR(100),
			status VARCHAR(20) DEFAULT 'Available',
			courses_assigned INTEGER DEFAULT 0,
			total_students INTEGER DEFAULT 0,
			rating DECIMAL(3,1) DEFAULT 0.0,
			workload VARCHAR(10) DEFAULT '0%',
			availability VARCHAR(20) DEFAULT 'Full-time',
			join_date DATE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{name: "courses", ddl: `
		CREATE TABLE IF NOT EXISTS courses (
			id SERIAL PRIMARY KEY,
			code VARCHAR(20) UNIQUE NOT NULL,
			name VARCHAR(100) NOT NULL,
			credits INTEGER NOT NULL,
			level VARCHAR(20) NOT NULL,
			semester VARCHAR(20) NOT NULL,
			status VARCHAR(20) DEFAULT 'Planning',
			assigned_lecturer_id INTEGER REFERENCES lecturers(id),
			students_enrolled INTEGER DEFAULT 0,
			rating DECIMAL(3,1) DEFAULT 0.0,
			color VARCHAR(100),
			modules TEXT[],
			prerequisites TEXT[],
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{name: "lecturer_reports", ddl: `
		CREATE TABLE IF NOT EXISTS lecturer_reports (
			id SERIAL PRIMARY KEY,
			faculty_name VARCHAR(100) NOT NULL,
			class_name VARCHAR(100) NOT NULL,
			week_of_reporting INTEGER NOT NULL,
			date_of_lecture DATE NOT NULL,
			course_name VARCHAR(100) NOT NULL,
			course_code VARCHAR(20) NOT NULL,
			lecturer_name VARCHAR(100) NOT NULL,
			students_present INTEGER NOT NULL,
			total_registered_students INTEGER NOT NULL,
			venue VARCHAR(100) NOT NULL,
			scheduled_time TIME NOT NULL,
			topic_taught TEXT NOT NULL,
			learning_outcomes TEXT NOT NULL,
			recommendations TEXT NOT NULL,
			submitted_by INTEGER REFERENCES users(id),
			submitted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{name: "student_ratings", ddl: `
		CREATE TABLE IF NOT EXISTS student_ratings (
			id SERIAL PRIMARY KEY,
			student_id INTEGER REFERENCES users(id),
			course_code VARCHAR(20) NOT NULL,
			course_name VARCHAR(100) NOT NULL,
			lecturer_name VARCHAR(100) NOT NULL,
			rating INTEGER NOT NULL CHECK (rating >= 1 AND rating <= 5),
			comment TEXT,
			rated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
}
