package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mindcare_backend/internal/config"
	"mindcare_backend/pkg/database"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
	cfg.JWT.ExpireTime = 30 * time.Minute
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()
	cfg.Sentiment.Provider = "none"
	cfg.Chat.Seed = 7
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.RateLimit.MaxRequests = 10000
	cfg.RateLimit.WindowMinutes = 1

	a, err := New(cfg, db, nil)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return a
}

func (a *App) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: decode body %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w, env
}

func (a *App) registerUser(t *testing.T, email string) string {
	t.Helper()
	w, env := a.do(t, http.MethodPost, "/api/register", "", map[string]interface{}{
		"email":           email,
		"password":        "secret123",
		"confirmPassword": "secret123",
		"fullName":        "سارا",
		"age":             22,
		"studentLevel":    "bachelor",
		"consentGiven":    true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
	}
	var data struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.AccessToken == "" {
		t.Fatalf("register token missing: %s", env.Data)
	}
	return data.AccessToken
}

func allResponses(n, value int) map[string]int {
	out := make(map[string]int, n)
	for i := 1; i <= n; i++ {
		out[fmt.Sprint(i)] = value
	}
	return out
}

func TestHealthAndPublicRoutes(t *testing.T) {
	a := newTestApp(t)

	tests := []struct {
		path string
		want int
	}{
		{"/api/health", http.StatusOK},
		{"/api/journeys", http.StatusOK},
		{"/api/journeys/no-such-journey", http.StatusNotFound},
		{"/api/gamification/badges", http.StatusOK},
		{"/api/gamification/leaderboard", http.StatusOK},
		{"/api/nlp/models", http.StatusOK},
		{"/api/assessments/DASS-21/questions", http.StatusOK},
		{"/api/assessments/GAD-7/questions", http.StatusBadRequest},
		{"/api/profile", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w, _ := a.do(t, http.MethodGet, tt.path, "", nil)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	a := newTestApp(t)
	token := a.registerUser(t, "sara@example.com")

	w, _ := a.do(t, http.MethodPost, "/api/register", "", map[string]interface{}{
		"email":           "SARA@example.com",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"fullName":        "سارا",
		"consentGiven":    true,
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate register status = %d, want 409", w.Code)
	}

	w, _ = a.do(t, http.MethodPost, "/api/login", "", map[string]string{"email": "sara@example.com", "password": "wrong-pass"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d, want 401", w.Code)
	}
	w, _ = a.do(t, http.MethodPost, "/api/login", "", map[string]string{"email": "sara@example.com", "password": "secret123"})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d", w.Code)
	}

	w, env := a.do(t, http.MethodGet, "/api/profile", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile status = %d", w.Code)
	}
	if strings.Contains(string(env.Data), "secret123") || strings.Contains(string(env.Data), "\"password\"") {
		t.Fatalf("profile leaks password: %s", env.Data)
	}

	w, _ = a.do(t, http.MethodGet, "/api/profile", "not-a-jwt", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token status = %d, want 401", w.Code)
	}
}

func TestRegisterRejections(t *testing.T) {
	a := newTestApp(t)
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"no consent", map[string]interface{}{"email": "a@example.com", "password": "secret123", "confirmPassword": "secret123", "fullName": "x", "consentGiven": false}},
		{"mismatch", map[string]interface{}{"email": "b@example.com", "password": "secret123", "confirmPassword": "secret124", "fullName": "x", "consentGiven": true}},
		{"short password", map[string]interface{}{"email": "c@example.com", "password": "123", "confirmPassword": "123", "fullName": "x", "consentGiven": true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := a.do(t, http.MethodPost, "/api/register", "", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestSubmitAssessments(t *testing.T) {
	a := newTestApp(t)
	token := a.registerUser(t, "sara@example.com")

	w, env := a.do(t, http.MethodPost, "/api/submit-dass21", token, map[string]interface{}{"responses": allResponses(21, 0)})
	if w.Code != http.StatusOK {
		t.Fatalf("dass status = %d (%s)", w.Code, w.Body.String())
	}
	var result struct {
		DepressionLevel string   `json:"depression_level"`
		Recommendations []string `json:"recommendations"`
	}
	json.Unmarshal(env.Data, &result)
	if result.DepressionLevel != "عادی" || len(result.Recommendations) == 0 {
		t.Fatalf("unexpected dass result %s", env.Data)
	}

	// 重复键解析后只剩 20 道题
	var b strings.Builder
	b.WriteString(`{"responses":{"1":0,"1":1`)
	for i := 3; i <= 21; i++ {
		fmt.Fprintf(&b, `,"%d":0`, i)
	}
	b.WriteString(`}}`)
	w, env = a.do(t, http.MethodPost, "/api/submit-dass21", token, b.String())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate key status = %d, want 400", w.Code)
	}
	if !strings.Contains(env.Message, "21") {
		t.Fatalf("message = %q, want question count", env.Message)
	}

	bad := allResponses(9, 1)
	bad["3"] = 4
	w, _ = a.do(t, http.MethodPost, "/api/submit-phq9", token, map[string]interface{}{"responses": bad})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("out of range status = %d, want 400", w.Code)
	}

	w, _ = a.do(t, http.MethodPost, "/api/submit-phq9", token, map[string]interface{}{"responses": allResponses(9, 3)})
	if w.Code != http.StatusOK {
		t.Fatalf("phq9 status = %d", w.Code)
	}

	w, env = a.do(t, http.MethodGet, "/api/assessments", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var list []map[string]interface{}
	json.Unmarshal(env.Data, &list)
	if len(list) != 2 || list[0]["assessmentType"] != "PHQ-9" {
		t.Fatalf("list = %s", env.Data)
	}

	w, env = a.do(t, http.MethodGet, "/api/gamification", token, nil)
	var p struct {
		XP int `json:"xp"`
	}
	json.Unmarshal(env.Data, &p)
	if w.Code != http.StatusOK || p.XP != 20 {
		t.Fatalf("gamification = %d %s, want xp 20", w.Code, env.Data)
	}
}

func TestJournalRoutes(t *testing.T) {
	a := newTestApp(t)
	token := a.registerUser(t, "sara@example.com")

	for _, level := range []int{4, 8} {
		w, _ := a.do(t, http.MethodPost, "/api/mood-entry", token, map[string]interface{}{"mood_level": level, "note": "خوب"})
		if w.Code != http.StatusOK {
			t.Fatalf("mood status = %d (%s)", w.Code, w.Body.String())
		}
	}
	w, env := a.do(t, http.MethodGet, "/api/mood-entries", token, nil)
	var moods []struct {
		MoodLevel int `json:"moodLevel"`
	}
	json.Unmarshal(env.Data, &moods)
	if w.Code != http.StatusOK || len(moods) != 1 || moods[0].MoodLevel != 8 {
		t.Fatalf("mood entries = %s", env.Data)
	}

	tests := []struct {
		name string
		path string
		body interface{}
		want int
	}{
		{"mood out of range", "/api/mood-entry", map[string]interface{}{"mood_level": 11}, http.StatusBadRequest},
		{"sleep zero hours", "/api/sleep-entry", map[string]interface{}{"hours": 0, "quality": 2}, http.StatusOK},
		{"sleep missing hours", "/api/sleep-entry", map[string]interface{}{"quality": 2}, http.StatusBadRequest},
		{"sleep too long", "/api/sleep-entry", map[string]interface{}{"hours": 25, "quality": 2}, http.StatusBadRequest},
		{"reflection", "/api/daily-reflection", map[string]interface{}{"text": "امروز آرام بودم"}, http.StatusOK},
		{"reflection empty", "/api/daily-reflection", map[string]interface{}{"text": ""}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := a.do(t, http.MethodPost, tt.path, token, tt.body)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.want, w.Body.String())
			}
		})
	}

	for _, path := range []string{"/api/sleep-entries", "/api/daily-reflections", "/api/mental-health-plan"} {
		if w, _ := a.do(t, http.MethodGet, path, token, nil); w.Code != http.StatusOK {
			t.Fatalf("%s status = %d", path, w.Code)
		}
	}
}

func TestChatAndMemory(t *testing.T) {
	a := newTestApp(t)
	token := a.registerUser(t, "sara@example.com")

	w, _ := a.do(t, http.MethodPut, "/api/memory", token, map[string]interface{}{"memory": map[string]string{"nickname": "سارا"}})
	if w.Code != http.StatusOK {
		t.Fatalf("memory status = %d", w.Code)
	}

	w, env := a.do(t, http.MethodPost, "/api/chat", token, map[string]string{"message": "سلام"})
	if w.Code != http.StatusOK {
		t.Fatalf("chat status = %d (%s)", w.Code, w.Body.String())
	}
	var reply struct {
		Response string `json:"response"`
	}
	json.Unmarshal(env.Data, &reply)
	if !strings.Contains(reply.Response, "سارا") {
		t.Fatalf("reply %q should greet by nickname", reply.Response)
	}

	w, env = a.do(t, http.MethodGet, "/api/chat/history", token, nil)
	var turns []json.RawMessage
	json.Unmarshal(env.Data, &turns)
	if w.Code != http.StatusOK || len(turns) != 1 {
		t.Fatalf("history = %s", env.Data)
	}
}

func TestJourneyRoutes(t *testing.T) {
	a := newTestApp(t)
	token := a.registerUser(t, "sara@example.com")

	_, env := a.do(t, http.MethodGet, "/api/journeys", "", nil)
	var journeys []struct {
		ID string `json:"id"`
	}
	json.Unmarshal(env.Data, &journeys)
	if len(journeys) == 0 {
		t.Fatalf("no journeys: %s", env.Data)
	}
	id := journeys[0].ID

	if w, _ := a.do(t, http.MethodGet, "/api/journeys/"+id+"/progress", token, nil); w.Code != http.StatusNotFound {
		t.Fatalf("progress before start = %d, want 404", w.Code)
	}
	if w, _ := a.do(t, http.MethodPost, "/api/journeys/unknown/start", token, nil); w.Code != http.StatusNotFound {
		t.Fatalf("start unknown = %d, want 404", w.Code)
	}
	if w, _ := a.do(t, http.MethodPost, "/api/journeys/"+id+"/start", token, nil); w.Code != http.StatusOK {
		t.Fatalf("start = %d", w.Code)
	}
	w, env := a.do(t, http.MethodPost, "/api/journeys/"+id+"/advance", token, nil)
	var view struct {
		CurrentStep int `json:"currentStep"`
	}
	json.Unmarshal(env.Data, &view)
	if w.Code != http.StatusOK || view.CurrentStep != 1 {
		t.Fatalf("advance = %d %s", w.Code, env.Data)
	}
}

func TestAdminExport(t *testing.T) {
	a := newTestApp(t)
	userToken := a.registerUser(t, "sara@example.com")

	if w, _ := a.do(t, http.MethodGet, "/api/admin/export-data", userToken, nil); w.Code != http.StatusForbidden {
		t.Fatalf("user export = %d, want 403", w.Code)
	}

	if _, err := a.services.auth.CreateAdmin("admin@example.com", "adminpass", ""); err != nil {
		t.Fatalf("create admin: %v", err)
	}
	_, env := a.do(t, http.MethodPost, "/api/login", "", map[string]string{"email": "admin@example.com", "password": "adminpass"})
	var login struct {
		AccessToken string `json:"access_token"`
	}
	json.Unmarshal(env.Data, &login)

	w, env := a.do(t, http.MethodGet, "/api/admin/export-data", login.AccessToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin export = %d (%s)", w.Code, w.Body.String())
	}
	if strings.Contains(string(env.Data), "sara@example.com") {
		t.Fatalf("export leaks identity: %s", env.Data)
	}
}

func TestAwardAndLeaderboard(t *testing.T) {
	a := newTestApp(t)
	token := a.registerUser(t, "sara@example.com")

	for _, xp := range []int{-5, 1001, 1 << 62} {
		if w, _ := a.do(t, http.MethodPost, "/api/gamification/award", token, map[string]int{"xp": xp}); w.Code != http.StatusBadRequest {
			t.Fatalf("award %d = %d, want 400", xp, w.Code)
		}
	}
	w, env := a.do(t, http.MethodPost, "/api/gamification/award", token, map[string]int{"xp": 120})
	var p struct {
		Level  int      `json:"level"`
		Badges []string `json:"badges"`
	}
	json.Unmarshal(env.Data, &p)
	if w.Code != http.StatusOK || p.Level != 2 || len(p.Badges) != 1 || p.Badges[0] != "Novice" {
		t.Fatalf("award = %d %s", w.Code, env.Data)
	}

	_, env = a.do(t, http.MethodGet, "/api/gamification/leaderboard", "", nil)
	var board []struct {
		XP int `json:"xp"`
	}
	json.Unmarshal(env.Data, &board)
	if len(board) != 1 || board[0].XP != 120 {
		t.Fatalf("leaderboard = %s", env.Data)
	}
}

func TestDeletedUserIsUnauthorized(t *testing.T) {
	a := newTestApp(t)
	token := a.registerUser(t, "sara@example.com")
	if err := a.DB.Exec("DELETE FROM users").Error; err != nil {
		t.Fatalf("delete users: %v", err)
	}

	tests := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodGet, "/api/profile", nil},
		{http.MethodGet, "/api/memory", nil},
		{http.MethodPut, "/api/memory", map[string]interface{}{"memory": map[string]string{"mood": "calm"}}},
		{http.MethodGet, "/api/gamification", nil},
		{http.MethodPost, "/api/gamification/award", map[string]int{"xp": 10}},
		{http.MethodPost, "/api/submit-phq9", map[string]interface{}{"responses": allResponses(9, 1)}},
		{http.MethodPost, "/api/mood-entry", map[string]interface{}{"mood_level": 5}},
		{http.MethodPost, "/api/chat", map[string]string{"message": "سلام"}},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			if w, _ := a.do(t, tt.method, tt.path, token, tt.body); w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d (%s), want 401", w.Code, w.Body.String())
			}
		})
	}

	for _, table := range []string{"assessment_submissions", "mood_entries", "chat_history"} {
		var count int64
		a.DB.Table(table).Count(&count)
		if count != 0 {
			t.Errorf("%s has %d rows for a deleted user", table, count)
		}
	}
}

func TestCORSPreflightAndReload(t *testing.T) {
	a := newTestApp(t)

	preflight := func(origin string) string {
		req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		a.Router.ServeHTTP(w, req)
		return w.Header().Get("Access-Control-Allow-Origin")
	}

	if got := preflight("http://evil.example"); got != "" {
		t.Fatalf("unexpected allow origin %q", got)
	}
	next := *a.Config
	next.CORS.AllowedOrigins = []string{"http://evil.example"}
	a.ApplyConfig(&next)
	if got := preflight("http://evil.example"); got != "http://evil.example" {
		t.Fatalf("allow origin after reload = %q", got)
	}
}
