package repository

import (
	"context"

	"college-feedback-backend/internal/database"
	"college-feedback-backend/internal/models"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type FacultyRepo struct {
	collection *mongo.Collection
}

func NewFacultyRepo() *FacultyRepo {
	return &FacultyRepo{
		collection: database.GetCollection(database.FacultyCollection),
	}
}

func (r *FacultyRepo) Create(ctx context.Context, f *models.Faculty) error {
	result, err := r.collection.InsertOne(ctx, f)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrFacultyExists
		}
		return errors.Wrap(err, "inserting faculty")
	}
	f.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *FacultyRepo) List(ctx context.Context) ([]models.Faculty, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "facultyName", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "listing faculty")
	}
	faculty := []models.Faculty{}
	if err := cursor.All(ctx, &faculty); err != nil {
		return nil, errors.Wrap(err, "decoding faculty")
	}
	return faculty, nil
}

// Update replaces the registry entry and returns it, or nil when no entry
// has the id.
func (r *FacultyRepo) Update(ctx context.Context, id bson.ObjectID, f *models.Faculty) (*models.Faculty, error) {
	update := bson.M{"$set": bson.M{
		"facultyName":      f.FacultyName,
		"subjectName":      f.SubjectName,
		"courseCode":       f.CourseCode,
		"branch":           f.Branch,
		"session":          f.Session,
		"parentDepartment": f.ParentDepartment,
	}}
	var updated models.Faculty
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrFacultyExists
		}
		return nil, errors.Wrap(err, "updating faculty")
	}
	return &updated, nil
}

func (r *FacultyRepo) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, errors.Wrap(err, "deleting faculty")
	}
	return result.DeletedCount > 0, nil
}

// Distinct lists the distinct values of a registry field.
func (r *FacultyRepo) Distinct(ctx context.Context, field string) ([]string, error) {
	return distinctStrings(ctx, r.collection, field, nil)
}

// EnsureIndexes creates necessary indexes for the faculties collection
func (r *FacultyRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "facultyName", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
