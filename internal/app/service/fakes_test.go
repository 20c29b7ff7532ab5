package service

import (
	"context"
	"submission_review/internal/common"
	"submission_review/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if _, ok := r.users[user.Username]; ok {
		return common.ErrDuplicateUser
	}
	u := *user
	r.users[user.Username] = &u
	return nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	u := *user
	return &u, nil
}

type fakeSubmissionRepo struct {
	subs map[primitive.ObjectID]*model.Submission
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{subs: map[primitive.ObjectID]*model.Submission{}}
}

func (r *fakeSubmissionRepo) Create(ctx context.Context, submission *model.Submission) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	s := *submission
	s.ID = id
	r.subs[id] = &s
	return id, nil
}

func (r *fakeSubmissionRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Submission, error) {
	sub, ok := r.subs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	s := *sub
	return &s, nil
}

func (r *fakeSubmissionRepo) FindByIDAndOwner(ctx context.Context, id primitive.ObjectID, owner string) (*model.Submission, error) {
	sub, ok := r.subs[id]
	if !ok || sub.StudentID != owner {
		return nil, common.ErrNotFound
	}
	s := *sub
	return &s, nil
}

func (r *fakeSubmissionRepo) FindAll(ctx context.Context) ([]model.Submission, error) {
	out := []model.Submission{}
	for _, sub := range r.subs {
		out = append(out, *sub)
	}
	return out, nil
}

func (r *fakeSubmissionRepo) FindByOwner(ctx context.Context, owner string) ([]model.Submission, error) {
	out := []model.Submission{}
	for _, sub := range r.subs {
		if sub.StudentID == owner {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) UpdateDetails(ctx context.Context, id primitive.ObjectID, submission *model.Submission) error {
	sub, ok := r.subs[id]
	if !ok {
		return common.ErrNotFound
	}
	sub.Title = submission.Title
	sub.Content = submission.Content
	sub.ProjectHead = submission.ProjectHead
	sub.Budget = submission.Budget
	sub.Venue = submission.Venue
	sub.OrganizationName = submission.OrganizationName
	sub.EventDatetime = submission.EventDatetime
	return nil
}

func (r *fakeSubmissionRepo) AppendComment(ctx context.Context, id primitive.ObjectID, comment model.Comment) error {
	sub, ok := r.subs[id]
	if !ok {
		return common.ErrNotFound
	}
	sub.Comments = append(sub.Comments, comment)
	return nil
}

func (r *fakeSubmissionRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.Status) error {
	sub, ok := r.subs[id]
	if !ok {
		return common.ErrNotFound
	}
	sub.Status = status
	return nil
}

func (r *fakeSubmissionRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.subs[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.subs, id)
	return nil
}
