package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"luctreport/auth"
	"luctreport/config"
	"luctreport/models"
	"luctreport/routes"
	"luctreport/store/memory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	tokens *auth.TokenManager
}

func newTestServer(t *testing.T, debugRoutes bool) *testServer {
	t.Helper()
	s, err := memory.NewSeeded()
	if err != nil {
		t.Fatalf("NewSeeded() error: %v", err)
	}
	tokens := auth.NewTokenManager("test-secret")
	cfg := &config.Config{DebugRoutes: debugRoutes}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &testServer{t: t, router: routes.NewRouter(cfg, s, tokens, logger), tokens: tokens}
}

func (ts *testServer) do(method, path, token string, body any) (int, map[string]any) {
	ts.t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			ts.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		ts.t.Fatalf("%s %s: invalid JSON %q", method, path, w.Body.String())
	}
	return w.Code, out
}

func (ts *testServer) login(username string) string {
	ts.t.Helper()
	code, body := ts.do(http.MethodPost, "/api/login", "", gin.H{"username": username, "password": memory.DemoPassword})
	if code != http.StatusOK {
		ts.t.Fatalf("login %s: %d %v", username, code, body)
	}
	return body["token"].(string)
}

func TestRegister(t *testing.T) {
	ts := newTestServer(t, false)

	valid := gin.H{"username": "neo", "email": "neo@luct.ac.ls", "password": "secret1", "fullName": "Neo M", "role": "student"}
	with := func(key string, value any) gin.H {
		out := gin.H{}
		for k, v := range valid {
			out[k] = v
		}
		out[key] = value
		return out
	}

	tests := []struct {
		name       string
		body       gin.H
		wantStatus int
		wantError  string
	}{
		{name: "missing field", body: with("fullName", ""), wantStatus: http.StatusBadRequest, wantError: "All fields are required"},
		{name: "short password", body: with("password", "12345"), wantStatus: http.StatusBadRequest, wantError: "Password must be at least 6 characters"},
		{name: "bad email", body: with("email", "neo@luct"), wantStatus: http.StatusBadRequest, wantError: "Invalid email format"},
		{name: "unknown role", body: with("role", "admin"), wantStatus: http.StatusBadRequest, wantError: "Invalid role"},
		{name: "taken username", body: with("username", "demo.student"), wantStatus: http.StatusBadRequest, wantError: "Username or email already exists"},
		{name: "ok", body: valid, wantStatus: http.StatusOK},
		{name: "duplicate", body: valid, wantStatus: http.StatusBadRequest, wantError: "Username or email already exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := ts.do(http.MethodPost, "/api/register", "", tt.body)
			if code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%v)", code, tt.wantStatus, body)
			}
			if tt.wantError != "" && body["error"] != tt.wantError {
				t.Errorf("error = %v, want %q", body["error"], tt.wantError)
			}
			if tt.wantStatus == http.StatusOK {
				if body["message"] != "Registration successful!" || body["token"] != nil {
					t.Errorf("body = %v", body)
				}
				user := body["user"].(map[string]any)
				if _, leaked := user["password"]; leaked {
					t.Error("password hash in response")
				}
			}
		})
	}

	// The new account can log in straight away.
	code, _ := ts.do(http.MethodPost, "/api/login", "", gin.H{"username": "neo", "password": "secret1"})
	if code != http.StatusOK {
		t.Errorf("login after register status = %d", code)
	}
}

func TestLoginDoesNotLeakUserExistence(t *testing.T) {
	ts := newTestServer(t, false)

	wrongPassword := httptest.NewRecorder()
	ts.router.ServeHTTP(wrongPassword, jsonRequest(t, "/api/login", gin.H{"username": "demo.student", "password": "nope"}))
	unknownUser := httptest.NewRecorder()
	ts.router.ServeHTTP(unknownUser, jsonRequest(t, "/api/login", gin.H{"username": "ghost", "password": "nope"}))

	if wrongPassword.Code != http.StatusUnauthorized || unknownUser.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d, %d, want 401", wrongPassword.Code, unknownUser.Code)
	}
	if wrongPassword.Body.String() != unknownUser.Body.String() {
		t.Errorf("bodies differ: %s vs %s", wrongPassword.Body.String(), unknownUser.Body.String())
	}
}

func jsonRequest(t *testing.T, path string, body any) *http.Request {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestVerifyToken(t *testing.T) {
	ts := newTestServer(t, false)
	token := ts.login("demo.lecturer")

	code, body := ts.do(http.MethodPost, "/api/verify-token", token, nil)
	if code != http.StatusOK || body["valid"] != true {
		t.Fatalf("verify = %d %v", code, body)
	}
	user := body["user"].(map[string]any)
	if user["username"] != "demo.lecturer" || user["role"] != "lecturer" {
		t.Errorf("claims = %v", user)
	}

	// Same token against a server with a rotated secret.
	tokens := auth.NewTokenManager("rotated")
	rotated := &testServer{
		t:      t,
		tokens: tokens,
		router: routes.NewRouter(&config.Config{}, mustSeed(t), tokens, slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	code, body = rotated.do(http.MethodPost, "/api/verify-token", token, nil)
	if code != http.StatusUnauthorized || body["error"] != "Invalid token" {
		t.Errorf("rotated secret verify = %d %v", code, body)
	}

	code, body = ts.do(http.MethodPost, "/api/verify-token", "", nil)
	if code != http.StatusUnauthorized || body["error"] != "No token provided" {
		t.Errorf("no token verify = %d %v", code, body)
	}
}

func mustSeed(t *testing.T) *memory.Store {
	t.Helper()
	s, err := memory.NewSeeded()
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t, false)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/courses"},
		{http.MethodPost, "/api/courses"},
		{http.MethodGet, "/api/lecturers"},
		{http.MethodPost, "/api/submit-report"},
		{http.MethodPost, "/api/submit-rating"},
		{http.MethodGet, "/api/my-ratings"},
	} {
		code, body := ts.do(route.method, route.path, "", nil)
		if code != http.StatusUnauthorized || body["error"] != "No token provided" {
			t.Errorf("%s %s = %d %v", route.method, route.path, code, body)
		}
	}
}

func TestRatings(t *testing.T) {
	ts := newTestServer(t, false)
	student := ts.login("demo.student")

	code, body := ts.do(http.MethodPost, "/api/submit-rating", student, gin.H{
		"courseCode": "ICT3101", "courseName": "Web Development", "lecturerName": "Demo Lecturer", "rating": 6,
	})
	if code != http.StatusBadRequest {
		t.Errorf("rating 6 = %d %v", code, body)
	}

	code, body = ts.do(http.MethodPost, "/api/submit-rating", student, gin.H{
		"courseCode": "ICT3101", "courseName": "Web Development", "lecturerName": "Demo Lecturer", "rating": 5, "comment": "clear",
	})
	if code != http.StatusOK || body["message"] != "Rating submitted successfully!" || body["ratingId"] == nil {
		t.Fatalf("rating 5 = %d %v", code, body)
	}

	code, body = ts.do(http.MethodGet, "/api/student-ratings", student, nil)
	ratings := body["ratings"].([]any)
	if code != http.StatusOK || len(ratings) != 1 {
		t.Fatalf("student-ratings = %d %v", code, body)
	}
	if r := ratings[0].(map[string]any); r["student_name"] != "Demo Student" {
		t.Errorf("student_name = %v", r["student_name"])
	}

	// The seeded lecturer's full name is "Demo Lecturer", so the rating is theirs.
	code, body = ts.do(http.MethodGet, "/api/my-ratings", ts.login("demo.lecturer"), nil)
	if code != http.StatusOK || len(body["ratings"].([]any)) != 1 {
		t.Errorf("my-ratings = %d %v", code, body)
	}

	code, body = ts.do(http.MethodGet, "/api/my-ratings", ts.login("demo.director"), nil)
	if code != http.StatusOK || len(body["ratings"].([]any)) != 0 {
		t.Errorf("my-ratings for director = %d %v", code, body)
	}
}

func TestMyRatingsUnknownCaller(t *testing.T) {
	ts := newTestServer(t, false)
	token, err := ts.tokens.Issue(&models.User{ID: 404, Username: "gone", Role: models.RoleLecturer})
	if err != nil {
		t.Fatal(err)
	}

	code, body := ts.do(http.MethodGet, "/api/my-ratings", token, nil)
	if code != http.StatusNotFound || body["error"] != "Lecturer not found" {
		t.Errorf("my-ratings = %d %v", code, body)
	}
}

func TestSubmissionsTrustTokenClaims(t *testing.T) {
	ts := newTestServer(t, false)
	// Signed for an account the demo store no longer holds, as after a restart.
	token, err := ts.tokens.Issue(&models.User{ID: 9999, Username: "registered.before.restart", Role: models.RoleStudent})
	if err != nil {
		t.Fatal(err)
	}

	code, body := ts.do(http.MethodPost, "/api/submit-report", token, gin.H{"courseCode": "ICT3101"})
	if code != http.StatusOK || body["reportId"] == nil {
		t.Errorf("submit-report = %d %v", code, body)
	}
	code, body = ts.do(http.MethodPost, "/api/submit-rating", token, gin.H{"courseCode": "ICT3101", "lecturerName": "Demo Lecturer", "rating": 4})
	if code != http.StatusOK || body["ratingId"] == nil {
		t.Errorf("submit-rating = %d %v", code, body)
	}

	_, body = ts.do(http.MethodGet, "/api/lecturer-reports", token, nil)
	if reports := body["reports"].([]any); len(reports) != 1 {
		t.Errorf("lecturer-reports = %v", body)
	}
}

func TestSubmitReportAcceptsEmptyBody(t *testing.T) {
	ts := newTestServer(t, false)
	token := ts.login("demo.lecturer")

	req := httptest.NewRequest(http.MethodPost, "/api/submit-report", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("no body = %d %s", w.Code, w.Body.String())
	}

	code, body := ts.do(http.MethodPost, "/api/submit-report", token, gin.H{})
	if code != http.StatusOK || body["message"] != "Report submitted successfully!" {
		t.Errorf("empty object = %d %v", code, body)
	}

	code, _ = ts.do(http.MethodPost, "/api/submit-report", token, "not an object")
	if code != http.StatusBadRequest {
		t.Errorf("malformed body = %d, want 400", code)
	}
}

func TestReports(t *testing.T) {
	ts := newTestServer(t, false)
	token := ts.login("demo.lecturer")

	code, body := ts.do(http.MethodPost, "/api/submit-report", token, gin.H{
		"facultyName": "FICT", "className": "BSCSM Y3", "weekOfReporting": 6, "dateOfLecture": "2024-03-01",
		"courseName": "Web Development", "courseCode": "ICT3101", "lecturerName": "Demo Lecturer",
		"studentsPresent": 40, "totalRegisteredStudents": 45, "venue": "Hall 6", "scheduledTime": "09:00",
		"topicTaught": "React hooks", "learningOutcomes": "State", "recommendations": "More labs",
	})
	if code != http.StatusOK || body["reportId"] == nil {
		t.Fatalf("submit-report = %d %v", code, body)
	}

	code, body = ts.do(http.MethodGet, "/api/lecturer-reports", token, nil)
	reports := body["reports"].([]any)
	if code != http.StatusOK || len(reports) != 1 {
		t.Fatalf("lecturer-reports = %d %v", code, body)
	}
	report := reports[0].(map[string]any)
	if report["submitted_by_name"] != "Demo Lecturer" || report["course_code"] != "ICT3101" {
		t.Errorf("report = %v", report)
	}
}

func TestCourseLifecycle(t *testing.T) {
	ts := newTestServer(t, false)
	token := ts.login("demo.director")

	code, body := ts.do(http.MethodPost, "/api/courses", token, gin.H{
		"code": "ICT4101", "name": "Distributed Systems", "credits": 15, "level": "Year 4", "semester": "Semester 1",
		"modules": []string{"RPC", "Consensus"},
	})
	if code != http.StatusOK || body["message"] != "Course created successfully!" {
		t.Fatalf("create = %d %v", code, body)
	}
	id := int64(body["courseId"].(float64))
	path := fmt.Sprintf("/api/courses/%d", id)

	code, body = ts.do(http.MethodGet, path, token, nil)
	course := body["course"].(map[string]any)
	if code != http.StatusOK || course["code"] != "ICT4101" || course["status"] != "Planning" {
		t.Fatalf("get = %d %v", code, body)
	}
	if course["prerequisites"] == nil {
		t.Error("prerequisites should be [] not null")
	}

	code, body = ts.do(http.MethodGet, "/api/courses", token, nil)
	first := body["courses"].([]any)[0].(map[string]any)
	if code != http.StatusOK || first["code"] != "ICT4101" {
		t.Errorf("newest course not first: %v", first["code"])
	}

	code, body = ts.do(http.MethodPost, "/api/courses", token, gin.H{"code": "ICT4101", "name": "Again", "credits": 10})
	if code != http.StatusBadRequest || body["error"] != "Course code already exists" {
		t.Errorf("duplicate create = %d %v", code, body)
	}
	code, body = ts.do(http.MethodPost, "/api/courses", token, gin.H{"name": "No code"})
	if code != http.StatusBadRequest {
		t.Errorf("create without code = %d %v", code, body)
	}

	code, body = ts.do(http.MethodPut, path, token, gin.H{"code": "ICT4101", "name": "Distributed Computing", "credits": 15})
	if code != http.StatusOK || body["message"] != "Course updated successfully!" {
		t.Errorf("update = %d %v", code, body)
	}
	code, body = ts.do(http.MethodPut, path, token, gin.H{"code": "ICT3101", "name": "Clash", "credits": 15})
	if code != http.StatusBadRequest || body["error"] != "Course code already exists" {
		t.Errorf("update into taken code = %d %v", code, body)
	}

	code, body = ts.do(http.MethodPost, path+"/assign/5", token, nil)
	if code != http.StatusOK || body["message"] != "Lecturer assigned successfully!" {
		t.Fatalf("assign = %d %v", code, body)
	}
	_, body = ts.do(http.MethodGet, path, token, nil)
	course = body["course"].(map[string]any)
	if course["status"] != "Active" || course["assigned_lecturer_name"] != "Mr. David Brown" || course["name"] != "Distributed Computing" {
		t.Errorf("course after assign = %v", course)
	}

	code, body = ts.do(http.MethodDelete, path, token, nil)
	if code != http.StatusOK {
		t.Fatalf("delete = %d %v", code, body)
	}
	code, body = ts.do(http.MethodDelete, path, token, nil)
	if code != http.StatusNotFound || body["error"] != "Course not found" {
		t.Errorf("second delete = %d %v", code, body)
	}
}

func TestCourseNotFoundAndBadIDs(t *testing.T) {
	ts := newTestServer(t, false)
	token := ts.login("demo.director")

	tests := []struct {
		method     string
		path       string
		body       any
		wantStatus int
		wantError  string
	}{
		{http.MethodGet, "/api/courses/999", nil, http.StatusNotFound, "Course not found"},
		{http.MethodPut, "/api/courses/999", gin.H{"code": "X1", "name": "X"}, http.StatusNotFound, "Course not found"},
		{http.MethodGet, "/api/courses/abc", nil, http.StatusBadRequest, "Invalid id"},
		{http.MethodPost, "/api/courses/999/assign/1", nil, http.StatusNotFound, "Course not found"},
		{http.MethodPost, "/api/courses/1/assign/999", nil, http.StatusNotFound, "Lecturer not found"},
		{http.MethodPost, "/api/courses/1/assign/x", nil, http.StatusBadRequest, "Invalid id"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			code, body := ts.do(tt.method, tt.path, token, tt.body)
			if code != tt.wantStatus || body["error"] != tt.wantError {
				t.Errorf("= %d %v, want %d %q", code, body, tt.wantStatus, tt.wantError)
			}
		})
	}
}

func TestLecturers(t *testing.T) {
	ts := newTestServer(t, false)
	token := ts.login("demo.director")

	code, body := ts.do(http.MethodPost, "/api/lecturers", token, gin.H{
		"name": "Dr. Palesa Mokoena", "email": "p.mokoena@university.ac.za", "specialization": "Data Science", "joinDate": "2024-01-08",
	})
	if code != http.StatusOK || body["lecturerId"] == nil {
		t.Fatalf("create = %d %v", code, body)
	}
	path := fmt.Sprintf("/api/lecturers/%d", int64(body["lecturerId"].(float64)))

	code, body = ts.do(http.MethodGet, path, token, nil)
	lecturer := body["lecturer"].(map[string]any)
	if code != http.StatusOK || lecturer["status"] != "Available" || lecturer["join_date"] != "2024-01-08" {
		t.Errorf("get = %d %v", code, body)
	}

	code, body = ts.do(http.MethodPost, "/api/lecturers", token, gin.H{"name": "Dup", "email": "p.mokoena@university.ac.za"})
	if code != http.StatusBadRequest || body["error"] != "Lecturer email already exists" {
		t.Errorf("duplicate = %d %v", code, body)
	}
	code, _ = ts.do(http.MethodPost, "/api/lecturers", token, gin.H{"name": "Bad date", "email": "b@university.ac.za", "joinDate": "08/01/2024"})
	if code != http.StatusBadRequest {
		t.Errorf("bad join date = %d", code)
	}

	code, body = ts.do(http.MethodPut, path, token, gin.H{
		"name": "Dr. Palesa Mokoena", "email": "p.mokoena@university.ac.za", "status": "Active", "workload": "40%", "availability": "Part-time",
	})
	if code != http.StatusOK || body["message"] != "Lecturer updated successfully!" {
		t.Errorf("update = %d %v", code, body)
	}

	code, body = ts.do(http.MethodPut, "/api/lecturers/999", token, gin.H{"name": "Ghost", "email": "ghost@university.ac.za"})
	if code != http.StatusNotFound || body["error"] != "Lecturer not found" {
		t.Errorf("update missing = %d %v", code, body)
	}
	code, body = ts.do(http.MethodDelete, "/api/lecturers/999", token, nil)
	if code != http.StatusNotFound || body["error"] != "Lecturer not found" {
		t.Errorf("delete missing = %d %v", code, body)
	}

	// Lecturer 1 teaches ICT3101.
	code, body = ts.do(http.MethodDelete, "/api/lecturers/1", token, nil)
	if code != http.StatusBadRequest || body["error"] != "Lecturer is assigned to a course" {
		t.Errorf("delete assigned = %d %v, want 400", code, body)
	}

	code, body = ts.do(http.MethodDelete, path, token, nil)
	if code != http.StatusOK || body["message"] != "Lecturer deleted successfully!" {
		t.Errorf("delete = %d %v", code, body)
	}
}

func TestConcurrentRatingsAreAllKept(t *testing.T) {
	ts := newTestServer(t, false)
	token := ts.login("demo.student")

	const n = 40
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, _ := json.Marshal(gin.H{"courseCode": "ICT3101", "courseName": "Web Development", "lecturerName": "Demo Lecturer", "rating": 4})
			req := httptest.NewRequest(http.MethodPost, "/api/submit-rating", bytes.NewReader(b))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)
			ts.router.ServeHTTP(httptest.NewRecorder(), req)
		}()
	}
	wg.Wait()

	_, body := ts.do(http.MethodGet, "/api/student-ratings", token, nil)
	ratings := body["ratings"].([]any)
	if len(ratings) != n {
		t.Fatalf("kept %d ratings, want %d", len(ratings), n)
	}
	seen := map[float64]bool{}
	for _, r := range ratings {
		id := r.(map[string]any)["id"].(float64)
		if seen[id] {
			t.Fatalf("duplicate id %v", id)
		}
		seen[id] = true
	}
}

func TestStatusAndDebugRoutes(t *testing.T) {
	ts := newTestServer(t, false)

	code, body := ts.do(http.MethodGet, "/", "", nil)
	if code != http.StatusOK || body["database"] != "Using DEMO data" || body["totalUsers"] != float64(4) {
		t.Errorf("root = %d %v", code, body)
	}
	code, body = ts.do(http.MethodGet, "/health", "", nil)
	if code != http.StatusOK || body["database"] != "memory" {
		t.Errorf("health = %d %v", code, body)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/debug-users", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("debug-users without flag = %d, want 404", w.Code)
	}

	debug := newTestServer(t, true)
	code, body = debug.do(http.MethodGet, "/api/debug-users", "", nil)
	if code != http.StatusOK || body["totalUsers"] != float64(4) {
		t.Fatalf("debug-users = %d %v", code, body)
	}
	for _, u := range body["users"].([]any) {
		user := u.(map[string]any)
		if user["passwordLength"] != float64(60) {
			t.Errorf("passwordLength = %v", user["passwordLength"])
		}
		if _, ok := user["passwordPreview"]; ok {
			t.Error("debug-users leaks a hash preview")
		}
	}
}
