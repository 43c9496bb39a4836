package handlers

import (
	"net/http"
	"testing"

	"college-feedback-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timetableBody = `{"branch":"CSE","section":"A","semester":"5","facultyName":"Dr. Rao","subjectName":"AI",
	"courseCode":"CS551","type":"theory","parentDepartment":"CS","academicYear":"2024-25","isElective":true}`

func TestTimetableLifecycle(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.users.add(models.User{Email: "t@college.edu", Role: models.RoleClassTeacher})
	student := env.users.add(models.User{Email: "s@college.edu", Role: models.RoleStudent, Branch: "CSE"})

	rec := env.do(t, http.MethodPost, "/api/timetables", env.token(t, student), timetableBody)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/timetables", env.token(t, teacher), timetableBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created models.Timetable
	decodeBody(t, rec, &created)
	require.NotNil(t, created.CreatedBy)
	assert.Equal(t, teacher.ID, *created.CreatedBy)

	rec = env.do(t, http.MethodGet, "/api/timetables/criteria?branch=CSE&semester=5", env.token(t, student), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []models.Timetable
	decodeBody(t, rec, &listed)
	assert.Len(t, listed, 1)

	rec = env.do(t, http.MethodGet, "/api/electives", env.token(t, student), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var electives []string
	decodeBody(t, rec, &electives)
	assert.Equal(t, []string{"AI"}, electives)

	rec = env.do(t, http.MethodGet, "/api/timetables/"+created.ID.Hex(), env.token(t, student), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/timetables/delete?id="+created.ID.Hex(), env.token(t, teacher), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/timetables/"+created.ID.Hex(), env.token(t, student), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFacultyRegistry(t *testing.T) {
	env := newTestEnv(t)
	admin := env.users.add(models.User{Email: "a@college.edu", Role: models.RoleAdmin})
	token := env.token(t, admin)

	body := `{"facultyName":"Dr. Rao","subjectName":"DBMS","branch":"CSE"}`
	rec := env.do(t, http.MethodPost, "/api/facultyregister/create/faculty", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/api/facultyregister/create/faculty", token, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Faculty name must be unique", errorMessage(t, rec))

	rec = env.do(t, http.MethodGet, "/api/facultyregister/facultyname", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var names []string
	decodeBody(t, rec, &names)
	assert.Equal(t, []string{"Dr. Rao"}, names)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
