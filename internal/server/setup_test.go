package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"prodcrew/internal/config"
	"prodcrew/internal/database"
	"prodcrew/internal/models"
	"prodcrew/internal/server"
	"prodcrew/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type notification struct {
	subject   string
	recipient string
	body      string
}

type fakeNotifier struct {
	calls []notification
}

func (f *fakeNotifier) Notify(subject, recipient, body string) bool {
	f.calls = append(f.calls, notification{subject: subject, recipient: recipient, body: body})
	return true
}

type testApp struct {
	t         *testing.T
	router    *gin.Engine
	db        *gorm.DB
	uploadDir string
	notifier  *fakeNotifier
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection so every statement sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	dir := t.TempDir()
	uploads, err := storage.New(dir)
	require.NoError(t, err)

	notifier := &fakeNotifier{}
	cfg := &config.Config{SessionSecret: "test-secret", UploadDir: dir}

	return &testApp{
		t:         t,
		router:    server.NewRouter(cfg, db, uploads, notifier, nil),
		db:        db,
		uploadDir: dir,
		notifier:  notifier,
	}
}

func (a *testApp) createUser(username, email, password string, admin bool) models.User {
	a.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(a.t, err)

	user := models.User{Username: username, PasswordHash: string(hash), IsAdmin: admin}
	if email != "" {
		user.Email = &email
	}
	require.NoError(a.t, a.db.Create(&user).Error)
	return user
}

func (a *testApp) login(username, password string) []*http.Cookie {
	a.t.Helper()

	w := a.doJSON(http.MethodPost, "/login", gin.H{"username": username, "password": password}, nil)
	require.Equal(a.t, http.StatusOK, w.Code, "login: %s", w.Body.String())
	return w.Result().Cookies()
}

func (a *testApp) do(method, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	return a.doJSON(method, path, nil, cookies)
}

func (a *testApp) doJSON(method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	a.t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(a.t, err)
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) upload(path, filename string, content []byte, fields map[string]string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(a.t, err)
	_, err = fw.Write(content)
	require.NoError(a.t, err)
	for k, v := range fields {
		require.NoError(a.t, mw.WriteField(k, v))
	}
	require.NoError(a.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

// createEvent makes an event through the API and returns its id.
func (a *testApp) createEvent(cookies []*http.Cookie, title, date string) uint {
	a.t.Helper()

	w := a.doJSON(http.MethodPost, "/events/add", gin.H{"title": title, "event_date": date}, cookies)
	require.Equal(a.t, http.StatusOK, w.Code, "create event: %s", w.Body.String())

	var resp struct {
		ID uint `json:"id"`
	}
	decode(a.t, w, &resp)
	return resp.ID
}
