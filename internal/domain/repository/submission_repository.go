package repository

import (
	"context"
	"errors"
	"fmt"
	"submission_review/internal/common"
	"submission_review/internal/domain/model"
	"submission_review/internal/platform/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MaxListResults bounds unpaginated list reads, matching the store's
// historical read cap.
const MaxListResults = 100

type SubmissionRepository interface {
	Create(ctx context.Context, submission *model.Submission) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Submission, error)
	FindByIDAndOwner(ctx context.Context, id primitive.ObjectID, owner string) (*model.Submission, error)
	FindAll(ctx context.Context) ([]model.Submission, error)
	FindByOwner(ctx context.Context, owner string) ([]model.Submission, error)
	UpdateDetails(ctx context.Context, id primitive.ObjectID, submission *model.Submission) error
	AppendComment(ctx context.Context, id primitive.ObjectID, comment model.Comment) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.Status) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoSubmissionRepository struct {
	col *mongo.Collection
}

func NewMongoSubmissionRepository(db *mongo.Database) SubmissionRepository {
	return &mongoSubmissionRepository{col: db.Collection(database.SubmissionsCollection)}
}

func (r *mongoSubmissionRepository) Create(ctx context.Context, submission *model.Submission) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, submission)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("mongoSubmissionRepository.Create: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("mongoSubmissionRepository.Create: unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (r *mongoSubmissionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Submission, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoSubmissionRepository) FindByIDAndOwner(ctx context.Context, id primitive.ObjectID, owner string) (*model.Submission, error) {
	return r.findOne(ctx, bson.M{"_id": id, "student_id": owner})
}

func (r *mongoSubmissionRepository) findOne(ctx context.Context, filter bson.M) (*model.Submission, error) {
	submission := &model.Submission{}
	err := r.col.FindOne(ctx, filter).Decode(submission)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoSubmissionRepository.findOne: %w", err)
	}
	return submission, nil
}

func (r *mongoSubmissionRepository) FindAll(ctx context.Context) ([]model.Submission, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoSubmissionRepository) FindByOwner(ctx context.Context, owner string) ([]model.Submission, error) {
	return r.find(ctx, bson.M{"student_id": owner})
}

func (r *mongoSubmissionRepository) find(ctx context.Context, filter bson.M) ([]model.Submission, error) {
	cursor, err := r.col.Find(ctx, filter, options.Find().SetLimit(MaxListResults))
	if err != nil {
		return nil, fmt.Errorf("mongoSubmissionRepository.find: %w", err)
	}
	defer cursor.Close(ctx)

	submissions := []model.Submission{}
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, fmt.Errorf("mongoSubmissionRepository.find: decode: %w", err)
	}
	return submissions, nil
}

// UpdateDetails overwrites the student-mutable fields in place. Status and
// comments are never touched here.
func (r *mongoSubmissionRepository) UpdateDetails(ctx context.Context, id primitive.ObjectID, submission *model.Submission) error {
	update := bson.M{"$set": bson.M{
		"title":             submission.Title,
		"content":           submission.Content,
		"project_head":      submission.ProjectHead,
		"budget":            submission.Budget,
		"venue":             submission.Venue,
		"organization_name": submission.OrganizationName,
		"event_datetime":    submission.EventDatetime,
	}}
	return r.updateOne(ctx, id, update, "UpdateDetails")
}

func (r *mongoSubmissionRepository) AppendComment(ctx context.Context, id primitive.ObjectID, comment model.Comment) error {
	return r.updateOne(ctx, id, bson.M{"$push": bson.M{"comments": comment}}, "AppendComment")
}

func (r *mongoSubmissionRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.Status) error {
	return r.updateOne(ctx, id, bson.M{"$set": bson.M{"status": status}}, "UpdateStatus")
}

func (r *mongoSubmissionRepository) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M, op string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("mongoSubmissionRepository.%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *mongoSubmissionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("mongoSubmissionRepository.Delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}
