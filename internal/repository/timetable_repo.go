package repository

import (
	"context"
	"time"

	"college-feedback-backend/internal/database"
	"college-feedback-backend/internal/models"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type TimetableRepo struct {
	collection *mongo.Collection
}

func NewTimetableRepo() *TimetableRepo {
	return &TimetableRepo{
		collection: database.GetCollection(database.TimetableCollection),
	}
}

// TimetableFilter selects the timetable of one class. Empty fields match
// anything.
type TimetableFilter struct {
	Branch   string
	Section  string
	Semester string
	Batch    string
}

func (f TimetableFilter) bson() bson.M {
	filter := bson.M{}
	if f.Branch != "" {
		filter["branch"] = f.Branch
	}
	if f.Section != "" {
		filter["section"] = f.Section
	}
	if f.Semester != "" {
		filter["semester"] = f.Semester
	}
	if f.Batch != "" {
		filter["batch"] = f.Batch
	}
	return filter
}

func (r *TimetableRepo) Create(ctx context.Context, t *models.Timetable) error {
	t.CreatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, t)
	if err != nil {
		return errors.Wrap(err, "inserting timetable")
	}
	t.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *TimetableRepo) List(ctx context.Context, f TimetableFilter) ([]models.Timetable, error) {
	cursor, err := r.collection.Find(ctx, f.bson(), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "listing timetables")
	}
	timetables := []models.Timetable{}
	if err := cursor.All(ctx, &timetables); err != nil {
		return nil, errors.Wrap(err, "decoding timetables")
	}
	return timetables, nil
}

func (r *TimetableRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Timetable, error) {
	var t models.Timetable
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "finding timetable")
	}
	return &t, nil
}

// Update rewrites the class and course fields of a timetable entry. The
// academic year, session and creator are kept.
func (r *TimetableRepo) Update(ctx context.Context, id bson.ObjectID, t *models.Timetable) (*models.Timetable, error) {
	update := bson.M{"$set": bson.M{
		"branch":             t.Branch,
		"section":            t.Section,
		"semester":           t.Semester,
		"batch":              t.Batch,
		"facultyName":        t.FacultyName,
		"subjectName":        t.SubjectName,
		"courseCode":         t.CourseCode,
		"type":               t.Type,
		"courseAbbreviation": t.CourseAbbreviation,
		"parentDepartment":   t.ParentDepartment,
		"isElective":         t.IsElective,
	}}
	var updated models.Timetable
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "updating timetable")
	}
	return &updated, nil
}

func (r *TimetableRepo) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, errors.Wrap(err, "deleting timetable")
	}
	return result.DeletedCount > 0, nil
}

// ElectiveSubjects lists the elective subjects offered to a branch.
func (r *TimetableRepo) ElectiveSubjects(ctx context.Context, branch string) ([]string, error) {
	return distinctStrings(ctx, r.collection, "subjectName", bson.M{"isElective": true, "branch": branch})
}

// EnsureIndexes creates necessary indexes for the timetables collection
func (r *TimetableRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "branch", Value: 1},
			{Key: "semester", Value: 1},
			{Key: "section", Value: 1},
		},
	})
	return err
}
