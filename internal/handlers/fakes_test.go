package handlers

import (
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"college-feedback-backend/internal/analysis"
	"college-feedback-backend/internal/middleware"
	"college-feedback-backend/internal/models"
	"college-feedback-backend/internal/notify"
	"college-feedback-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const testSecret = "handler-test-secret"

type fakeFeedbackStore struct {
	mu        sync.Mutex
	records   []models.Feedback
	findCalls int
	err       error
}

func (s *fakeFeedbackStore) CreateMany(ctx context.Context, entries []*models.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for i, fb := range entries {
		for _, existing := range s.records {
			if sameSubmission(&existing, fb) {
				return &repository.DuplicateSubmissionError{Type: fb.Type, Subject: fb.SubjectName}
			}
		}
		for _, other := range entries[:i] {
			if sameSubmission(other, fb) {
				return &repository.DuplicateSubmissionError{Type: fb.Type, Subject: fb.SubjectName}
			}
		}
	}
	for _, fb := range entries {
		fb.ID = bson.NewObjectID()
		fb.CreatedAt = time.Now()
		s.records = append(s.records, *fb)
	}
	return nil
}

func sameSubmission(a, b *models.Feedback) bool {
	return a.StudentID == b.StudentID && a.Semester == b.Semester && a.Type == b.Type && a.SubjectName == b.SubjectName
}

func (s *fakeFeedbackStore) Find(ctx context.Context, c analysis.Criteria) ([]models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findCalls++
	if s.err != nil {
		return nil, s.err
	}
	return c.Select(s.records), nil
}

func (s *fakeFeedbackStore) FindByStudent(ctx context.Context, studentID bson.ObjectID) ([]models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Feedback{}
	for _, fb := range s.records {
		if fb.StudentID == studentID {
			out = append(out, fb)
		}
	}
	return out, nil
}

func (s *fakeFeedbackStore) Distinct(ctx context.Context, field string, c analysis.Criteria) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	values := []string{}
	for _, fb := range c.Select(s.records) {
		v := feedbackField(&fb, field)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values, nil
}

func feedbackField(fb *models.Feedback, field string) string {
	switch field {
	case analysis.FieldFacultyName:
		return fb.FacultyName
	case analysis.FieldSubjectName:
		return fb.SubjectName
	case analysis.FieldParentDepartment:
		return fb.ParentDepartment
	case analysis.FieldAcademicYear:
		return fb.AcademicYear
	case analysis.FieldBranch:
		return fb.Branch
	case analysis.FieldType:
		return fb.Type
	}
	return ""
}

func (s *fakeFeedbackStore) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, fb := range s.records {
		if fb.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeUserStore struct {
	mu    sync.Mutex
	users map[bson.ObjectID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[bson.ObjectID]*models.User{}}
}

func (s *fakeUserStore) add(u models.User) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = bson.NewObjectID()
	s.users[u.ID] = &u
	return &u
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	if existing, _ := s.FindByEmail(ctx, user.Email); existing != nil {
		return repository.ErrEmailExists
	}
	created := s.add(*user)
	user.ID = created.ID
	return nil
}

func (s *fakeUserStore) List(ctx context.Context, f repository.UserFilter) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.User{}
	for _, u := range s.users {
		if (f.Role == "" || u.Role == f.Role) && (f.Branch == "" || u.Branch == f.Branch) &&
			(f.Semester == "" || u.Semester == f.Semester) && (f.Section == "" || u.Section == f.Section) {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *fakeUserStore) mutate(id bson.ObjectID, fn func(u *models.User)) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	fn(u)
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) UpdateProfile(ctx context.Context, id bson.ObjectID, p models.Profile) (*models.User, error) {
	return s.mutate(id, func(u *models.User) {
		if p.Username != "" {
			u.Username = p.Username
		}
		if p.Branch != "" {
			u.Branch = p.Branch
		}
	})
}

func (s *fakeUserStore) SetElectives(ctx context.Context, id bson.ObjectID, electives []string) (*models.User, error) {
	return s.mutate(id, func(u *models.User) { u.Electives = electives })
}

func (s *fakeUserStore) RemoveElective(ctx context.Context, id bson.ObjectID, elective string) (*models.User, error) {
	return s.mutate(id, func(u *models.User) {
		kept := []string{}
		for _, e := range u.Electives {
			if e != elective {
				kept = append(kept, e)
			}
		}
		u.Electives = kept
	})
}

func (s *fakeUserStore) SetApproved(ctx context.Context, id bson.ObjectID, approved bool) (*models.User, error) {
	return s.mutate(id, func(u *models.User) { u.IsApproved = approved })
}

type fakeTimetableStore struct {
	mu         sync.Mutex
	timetables []models.Timetable
}

func (s *fakeTimetableStore) Create(ctx context.Context, t *models.Timetable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = bson.NewObjectID()
	s.timetables = append(s.timetables, *t)
	return nil
}

func (s *fakeTimetableStore) List(ctx context.Context, f repository.TimetableFilter) ([]models.Timetable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Timetable{}
	for _, t := range s.timetables {
		if (f.Branch == "" || t.Branch == f.Branch) && (f.Semester == "" || t.Semester == f.Semester) &&
			(f.Section == "" || t.Section == f.Section) && (f.Batch == "" || t.Batch == f.Batch) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeTimetableStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Timetable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.timetables {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, nil
}

func (s *fakeTimetableStore) Update(ctx context.Context, id bson.ObjectID, t *models.Timetable) (*models.Timetable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.timetables {
		if s.timetables[i].ID == id {
			t.ID = id
			s.timetables[i] = *t
			return t, nil
		}
	}
	return nil, nil
}

func (s *fakeTimetableStore) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.timetables {
		if t.ID == id {
			s.timetables = append(s.timetables[:i], s.timetables[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeTimetableStore) ElectiveSubjects(ctx context.Context, branch string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []string{}
	for _, t := range s.timetables {
		if t.IsElective && t.Branch == branch {
			out = append(out, t.SubjectName)
		}
	}
	return out, nil
}

type fakeFacultyStore struct {
	mu      sync.Mutex
	faculty []models.Faculty
}

func (s *fakeFacultyStore) Create(ctx context.Context, f *models.Faculty) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.faculty {
		if existing.FacultyName == f.FacultyName {
			return repository.ErrFacultyExists
		}
	}
	f.ID = bson.NewObjectID()
	s.faculty = append(s.faculty, *f)
	return nil
}

func (s *fakeFacultyStore) List(ctx context.Context) ([]models.Faculty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Faculty{}, s.faculty...), nil
}

func (s *fakeFacultyStore) Update(ctx context.Context, id bson.ObjectID, f *models.Faculty) (*models.Faculty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.faculty {
		if s.faculty[i].ID == id {
			f.ID = id
			s.faculty[i] = *f
			return f, nil
		}
	}
	return nil, nil
}

func (s *fakeFacultyStore) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.faculty {
		if f.ID == id {
			s.faculty = append(s.faculty[:i], s.faculty[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeFacultyStore) Distinct(ctx context.Context, field string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []string{}
	for _, f := range s.faculty {
		if field == "facultyName" {
			out = append(out, f.FacultyName)
		}
	}
	return out, nil
}

type fakeNotifier struct {
	sent chan notify.Message
}

func (n *fakeNotifier) Send(ctx context.Context, msg notify.Message) error {
	n.sent <- msg
	return nil
}

type recordingLogger struct {
	mu     sync.Mutex
	errors []string
}

func (l *recordingLogger) Info(msg string, args ...interface{}) {}
func (l *recordingLogger) Warn(msg string, args ...interface{}) {}

func (l *recordingLogger) Error(msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
	log.Println(msg)
}

type testEnv struct {
	router     *chi.Mux
	feedback   *fakeFeedbackStore
	users      *fakeUserStore
	timetables *fakeTimetableStore
	faculty    *fakeFacultyStore
	notifier   *fakeNotifier
	log        *recordingLogger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		feedback:   &fakeFeedbackStore{},
		users:      newFakeUserStore(),
		timetables: &fakeTimetableStore{},
		faculty:    &fakeFacultyStore{},
		notifier:   &fakeNotifier{sent: make(chan notify.Message, 4)},
		log:        &recordingLogger{},
	}
	env.router = NewRouter(RouterConfig{
		Feedback:    env.feedback,
		Users:       env.users,
		Timetables:  env.timetables,
		Faculty:     env.faculty,
		Notifier:    env.notifier,
		Log:         env.log,
		JWTSecret:   testSecret,
		TokenTTL:    time.Hour,
		CORSOrigins: []string{"*"},
	})
	return env
}

// token returns a bearer token for a user with the given role.
func (env *testEnv) token(t *testing.T, u *models.User) string {
	t.Helper()
	token, err := middleware.IssueToken(testSecret, u.ID.Hex(), u.Role, time.Hour)
	require.NoError(t, err)
	return token
}

func (env *testEnv) do(t *testing.T, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}
