package repository

import (
	"context"
	"log"
	"time"

	"college-feedback-backend/internal/analysis"
	"college-feedback-backend/internal/database"
	"college-feedback-backend/internal/models"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// feedbackCollection is the part of *mongo.Collection the feedback repo uses.
type feedbackCollection interface {
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
	Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error)
	InsertMany(ctx context.Context, documents any, opts ...options.Lister[options.InsertManyOptions]) (*mongo.InsertManyResult, error)
	DeleteOne(ctx context.Context, filter any, opts ...options.Lister[options.DeleteOneOptions]) (*mongo.DeleteResult, error)
	DeleteMany(ctx context.Context, filter any, opts ...options.Lister[options.DeleteManyOptions]) (*mongo.DeleteResult, error)
	Distinct(ctx context.Context, fieldName string, filter any, opts ...options.Lister[options.DistinctOptions]) *mongo.DistinctResult
	Indexes() mongo.IndexView
}

type FeedbackRepo struct {
	collection feedbackCollection
}

func NewFeedbackRepo() *FeedbackRepo {
	return &FeedbackRepo{
		collection: database.GetCollection(database.FeedbackCollection),
	}
}

// FindDuplicate returns the feedback already submitted by a student for the
// given semester, type and subject, or nil.
func (r *FeedbackRepo) FindDuplicate(ctx context.Context, studentID bson.ObjectID, semester, kind, subject string) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.collection.FindOne(ctx, bson.M{
		"studentId":   studentID,
		"semester":    semester,
		"type":        kind,
		"subjectName": subject,
	}).Decode(&feedback)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "finding duplicate feedback")
	}
	return &feedback, nil
}

// CreateMany stores one submission batch. Every entry is checked against
// earlier submissions first; a concurrent submission that slips past the
// check is rejected by the unique index, and the part of the batch already
// written is removed again.
func (r *FeedbackRepo) CreateMany(ctx context.Context, entries []*models.Feedback) error {
	for _, fb := range entries {
		existing, err := r.FindDuplicate(ctx, fb.StudentID, fb.Semester, fb.Type, fb.SubjectName)
		if err != nil {
			return err
		}
		if existing != nil {
			return &DuplicateSubmissionError{Type: fb.Type, Subject: fb.SubjectName}
		}
	}

	now := time.Now()
	docs := make([]interface{}, len(entries))
	for i, fb := range entries {
		fb.ID = bson.NewObjectID()
		fb.CreatedAt = now
		docs[i] = fb
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			return errors.Wrap(err, "inserting feedback")
		}
		idx := duplicateIndex(err)
		if idx < 0 || idx >= len(entries) {
			idx = 0
		}
		r.rollback(ctx, entries[:idx])
		return &DuplicateSubmissionError{Type: entries[idx].Type, Subject: entries[idx].SubjectName}
	}
	return nil
}

// rollback removes the entries written before a batch failed. It runs even
// when the request context is already cancelled.
func (r *FeedbackRepo) rollback(ctx context.Context, written []*models.Feedback) {
	if len(written) == 0 {
		return
	}
	ids := make([]bson.ObjectID, len(written))
	for i, fb := range written {
		ids[i] = fb.ID
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if _, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		log.Printf("⚠️  Failed to roll back %d feedback entries: %v", len(ids), err)
	}
}

// Find returns the feedback matching c in insertion order.
func (r *FeedbackRepo) Find(ctx context.Context, c analysis.Criteria) ([]models.Feedback, error) {
	return r.find(ctx, c.Filter())
}

func (r *FeedbackRepo) FindByStudent(ctx context.Context, studentID bson.ObjectID) ([]models.Feedback, error) {
	return r.find(ctx, bson.M{"studentId": studentID})
}

func (r *FeedbackRepo) find(ctx context.Context, filter bson.M) ([]models.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "finding feedback")
	}
	feedbacks := []models.Feedback{}
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, errors.Wrap(err, "decoding feedback")
	}
	return feedbacks, nil
}

// Distinct lists the distinct values of field among the feedback matching c.
func (r *FeedbackRepo) Distinct(ctx context.Context, field string, c analysis.Criteria) ([]string, error) {
	return distinctStrings(ctx, r.collection, field, c.Filter())
}

func (r *FeedbackRepo) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, errors.Wrap(err, "deleting feedback")
	}
	return result.DeletedCount > 0, nil
}

// EnsureIndexes creates necessary indexes for the feedbacks collection
func (r *FeedbackRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			// one submission per student, semester, type and subject
			Keys: bson.D{
				{Key: "studentId", Value: 1},
				{Key: "semester", Value: 1},
				{Key: "type", Value: 1},
				{Key: "subjectName", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "facultyName", Value: 1}, {Key: "academicYear", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "parentDepartment", Value: 1}, {Key: "academicYear", Value: 1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
