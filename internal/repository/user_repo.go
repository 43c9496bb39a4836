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

type UserRepo struct {
	collection *mongo.Collection
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		collection: database.GetCollection(database.UserCollection),
	}
}

// UserFilter narrows user listings. Empty fields match anything.
type UserFilter struct {
	Role     string
	Semester string
	Branch   string
	Section  string
}

func (f UserFilter) bson() bson.M {
	filter := bson.M{}
	for key, value := range map[string]string{
		"role":     f.Role,
		"semester": f.Semester,
		"branch":   f.Branch,
		"section":  f.Section,
	} {
		if value != "" {
			filter[key] = value
		}
	}
	return filter
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "finding user")
	}
	return &user, nil
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	if user.Electives == nil {
		user.Electives = []string{}
	}
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailExists
		}
		return errors.Wrap(err, "inserting user")
	}
	user.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *UserRepo) List(ctx context.Context, f UserFilter) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, f.bson(), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "listing users")
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "decoding users")
	}
	return users, nil
}

// UpdateProfile applies the non-empty fields of p and returns the updated
// user, or nil when no user has the id.
func (r *UserRepo) UpdateProfile(ctx context.Context, id bson.ObjectID, p models.Profile) (*models.User, error) {
	p.UpdatedAt = time.Now()
	return r.update(ctx, id, bson.M{"$set": p})
}

// SetElectives replaces the elective subjects chosen by a user.
func (r *UserRepo) SetElectives(ctx context.Context, id bson.ObjectID, electives []string) (*models.User, error) {
	if electives == nil {
		electives = []string{}
	}
	return r.update(ctx, id, bson.M{"$set": bson.M{"electives": electives, "updatedAt": time.Now()}})
}

func (r *UserRepo) RemoveElective(ctx context.Context, id bson.ObjectID, elective string) (*models.User, error) {
	return r.update(ctx, id, bson.M{
		"$pull": bson.M{"electives": elective},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
}

func (r *UserRepo) SetApproved(ctx context.Context, id bson.ObjectID, approved bool) (*models.User, error) {
	return r.update(ctx, id, bson.M{"$set": bson.M{"isApproved": approved, "updatedAt": time.Now()}})
}

func (r *UserRepo) update(ctx context.Context, id bson.ObjectID, update bson.M) (*models.User, error) {
	var user models.User
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailExists
		}
		return nil, errors.Wrap(err, "updating user")
	}
	return &user, nil
}

// EnsureIndexes creates necessary indexes for the users collection
func (r *UserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
