package handlers

import (
	"context"

	"college-feedback-backend/internal/analysis"
	"college-feedback-backend/internal/models"
	"college-feedback-backend/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// FeedbackStore is implemented by repository.FeedbackRepo.
type FeedbackStore interface {
	CreateMany(ctx context.Context, entries []*models.Feedback) error
	Find(ctx context.Context, c analysis.Criteria) ([]models.Feedback, error)
	FindByStudent(ctx context.Context, studentID bson.ObjectID) ([]models.Feedback, error)
	Distinct(ctx context.Context, field string, c analysis.Criteria) ([]string, error)
	Delete(ctx context.Context, id bson.ObjectID) (bool, error)
}

// UserStore is implemented by repository.UserRepo.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context, f repository.UserFilter) ([]models.User, error)
	UpdateProfile(ctx context.Context, id bson.ObjectID, p models.Profile) (*models.User, error)
	SetElectives(ctx context.Context, id bson.ObjectID, electives []string) (*models.User, error)
	RemoveElective(ctx context.Context, id bson.ObjectID, elective string) (*models.User, error)
	SetApproved(ctx context.Context, id bson.ObjectID, approved bool) (*models.User, error)
}

// TimetableStore is implemented by repository.TimetableRepo.
type TimetableStore interface {
	Create(ctx context.Context, t *models.Timetable) error
	List(ctx context.Context, f repository.TimetableFilter) ([]models.Timetable, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Timetable, error)
	Update(ctx context.Context, id bson.ObjectID, t *models.Timetable) (*models.Timetable, error)
	Delete(ctx context.Context, id bson.ObjectID) (bool, error)
	ElectiveSubjects(ctx context.Context, branch string) ([]string, error)
}

// FacultyStore is implemented by repository.FacultyRepo.
type FacultyStore interface {
	Create(ctx context.Context, f *models.Faculty) error
	List(ctx context.Context) ([]models.Faculty, error)
	Update(ctx context.Context, id bson.ObjectID, f *models.Faculty) (*models.Faculty, error)
	Delete(ctx context.Context, id bson.ObjectID) (bool, error)
	Distinct(ctx context.Context, field string) ([]string, error)
}

var (
	_ FeedbackStore  = (*repository.FeedbackRepo)(nil)
	_ UserStore      = (*repository.UserRepo)(nil)
	_ TimetableStore = (*repository.TimetableRepo)(nil)
	_ FacultyStore   = (*repository.FacultyRepo)(nil)
)
