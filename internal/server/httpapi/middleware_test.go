package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/taskdeck/internal/common"
	"github.com/dmitrijs2005/taskdeck/internal/server/auth"
	"github.com/dmitrijs2005/taskdeck/internal/server/models"
)

func TestRequireAuth_NoHeader(t *testing.T) {
	s := newTestServer(t, &fakeAuthService{}, &fakeTaskService{})

	rec := doJSON(t, s, http.MethodGet, "/api/v1/tasks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	s := newTestServer(t, &fakeAuthService{}, &fakeTaskService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	s := newTestServer(t, &fakeAuthService{}, &fakeTaskService{})

	rec := doJSON(t, s, http.MethodGet, "/api/v1/tasks", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	s := newTestServer(t, &fakeAuthService{}, &fakeTaskService{})

	token, err := auth.GenerateToken("u-1", []byte(testSecret), "HS256", -time.Minute)
	assert.NoError(t, err)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/tasks", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	s := newTestServer(t, &fakeAuthService{}, &fakeTaskService{})

	token, err := auth.GenerateToken("u-1", []byte("other-secret"), "HS256", time.Hour)
	assert.NoError(t, err)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/tasks", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_SubjectVanished(t *testing.T) {
	users := &fakeAuthService{byIDErr: common.ErrorNotFound}
	s := newTestServer(t, users, &fakeTaskService{})

	rec := doJSON(t, s, http.MethodGet, "/api/v1/tasks", issueToken(t, "u-gone"), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", errorCode(t, rec))
}

func TestRequireAuth_LookupFailure(t *testing.T) {
	users := &fakeAuthService{byIDErr: errors.New("db down")}
	s := newTestServer(t, users, &fakeTaskService{})

	rec := doJSON(t, s, http.MethodGet, "/api/v1/tasks", issueToken(t, "u-1"), nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", errorCode(t, rec))
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestRequireAuth_ValidTokenLoadsUser(t *testing.T) {
	user := &models.User{ID: "u-1", Email: "a@x.com"}
	users := &fakeAuthService{byID: map[string]*models.User{"u-1": user}, byIDErr: common.ErrorNotFound}
	tasks := &fakeTaskService{list: []*models.Task{}}
	s := newTestServer(t, users, tasks)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/tasks", issueToken(t, "u-1"), nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "u-1", tasks.lastUserID)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"Bearer  abc ", "abc"},
		{"Basic abc", ""},
		{"Bearer", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bearerToken(tt.header), "header %q", tt.header)
	}
}
