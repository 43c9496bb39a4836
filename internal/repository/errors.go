package repository

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var (
	ErrEmailExists   = errors.New("a user with this email already exists")
	ErrFacultyExists = errors.New("a faculty with this name already exists")
)

// DuplicateSubmissionError reports feedback that was already submitted for
// the same student, semester, type and subject.
type DuplicateSubmissionError struct {
	Type    string
	Subject string
}

func (e *DuplicateSubmissionError) Error() string {
	return fmt.Sprintf("You have already submitted %s feedback for %s in this semester.", e.Type, e.Subject)
}

// duplicateIndex returns the batch position of the first document rejected
// by a unique index, or -1.
func duplicateIndex(err error) int {
	var writeErrors []mongo.BulkWriteError
	var bwe mongo.BulkWriteException
	var bwePtr *mongo.BulkWriteException
	switch {
	case errors.As(err, &bwe):
		writeErrors = bwe.WriteErrors
	case errors.As(err, &bwePtr):
		writeErrors = bwePtr.WriteErrors
	}
	for _, we := range writeErrors {
		if we.Code == 11000 {
			return we.Index
		}
	}
	return -1
}

type distinctFinder interface {
	Distinct(ctx context.Context, fieldName string, filter any, opts ...options.Lister[options.DistinctOptions]) *mongo.DistinctResult
}

func distinctStrings(ctx context.Context, coll distinctFinder, field string, filter bson.M) ([]string, error) {
	if filter == nil {
		filter = bson.M{}
	}
	values := []string{}
	if err := coll.Distinct(ctx, field, filter).Decode(&values); err != nil {
		return nil, errors.Wrapf(err, "distinct %s", field)
	}
	return values, nil
}
