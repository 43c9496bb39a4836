package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"college-feedback-backend/internal/middleware"
	"college-feedback-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registerBody = `{"username":"asha","email":"Asha@College.edu","password":"secret123","role":"student",
	"semester":"5","branch":"CSE","section":"A"}`

func TestRegisterApproveLogin(t *testing.T) {
	env := newTestEnv(t)
	admin := env.users.add(models.User{Email: "admin@college.edu", Role: models.RoleAdmin, IsApproved: true})

	rec := env.do(t, http.MethodPost, "/api/register", "", registerBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	user, err := env.users.FindByEmail(context.Background(), "asha@college.edu")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.False(t, user.IsApproved)
	assert.NotEqual(t, "secret123", user.Password)

	login := `{"email":"asha@college.edu","password":"secret123"}`
	rec = env.do(t, http.MethodPost, "/api/login", "", login)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "User not approved", errorMessage(t, rec))

	rec = env.do(t, http.MethodPost, "/api/faculty/approve-user/"+user.ID.Hex(), env.token(t, admin), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	select {
	case msg := <-env.notifier.sent:
		assert.Equal(t, "asha@college.edu", msg.To)
	case <-time.After(2 * time.Second):
		t.Fatal("approval email was not sent")
	}

	rec = env.do(t, http.MethodPost, "/api/login", "", login)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp LoginResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, user.ID.Hex(), resp.User.ID)
	assert.Equal(t, models.RoleStudent, resp.User.Role)

	claims, err := middleware.ParseToken(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/register", "", registerBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/register", "", registerBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already exists", errorMessage(t, rec))
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body string
	}{
		{"bad email", `{"username":"asha","email":"nope","password":"secret123","role":"admin"}`},
		{"short password", `{"username":"asha","email":"a@b.co","password":"123","role":"admin"}`},
		{"unknown role", `{"username":"asha","email":"a@b.co","password":"secret123","role":"dean"}`},
		{"student without class", `{"username":"asha","email":"a@b.co","password":"secret123","role":"student"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/register", "", registerBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	for _, body := range []string{
		`{"email":"asha@college.edu","password":"wrong-password"}`,
		`{"email":"nobody@college.edu","password":"secret123"}`,
	} {
		rec = env.do(t, http.MethodPost, "/api/login", "", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid credentials", errorMessage(t, rec))
	}
}
