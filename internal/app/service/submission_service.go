package service

import (
	"context"
	"fmt"
	"strings"
	"submission_review/internal/common"
	"submission_review/internal/domain/model"
	"submission_review/internal/domain/repository"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionService enforces the role and ownership rules of the review
// workflow. Caller identity and role always come from the verified token,
// never from the request body.
type SubmissionService struct {
	submissionRepo repository.SubmissionRepository
}

func NewSubmissionService(submissionRepo repository.SubmissionRepository) *SubmissionService {
	return &SubmissionService{submissionRepo: submissionRepo}
}

type SubmissionRequest struct {
	Title            string `json:"title" validate:"required"`
	Content          string `json:"content" validate:"required"`
	ProjectHead      string `json:"project_head"`
	Budget           int    `json:"budget" validate:"gte=0"`
	Venue            string `json:"venue"`
	OrganizationName string `json:"organization_name"`
	EventDate        string `json:"event_date"`
	EventTime        string `json:"event_time"`
}

type CommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

// eventDatetime joins the two client-supplied fields into the single stored value.
func (r SubmissionRequest) eventDatetime() string {
	return strings.TrimSpace(r.EventDate + " " + r.EventTime)
}

// Create persists a new pending submission owned by the caller. Any
// status-like input from the client is ignored.
func (s *SubmissionService) Create(ctx context.Context, caller string, role model.Role, req SubmissionRequest) (string, error) {
	if role != model.RoleStudent {
		return "", common.Errorf("only students can create submissions: %w", common.ErrForbidden)
	}

	submission := &model.Submission{
		StudentID:        caller,
		Title:            req.Title,
		Content:          req.Content,
		ProjectHead:      req.ProjectHead,
		Budget:           req.Budget,
		Venue:            req.Venue,
		OrganizationName: req.OrganizationName,
		EventDatetime:    req.eventDatetime(),
		Status:           model.StatusPending,
		Comments:         []model.Comment{},
		CreatedAt:        time.Now().UTC(),
	}

	id, err := s.submissionRepo.Create(ctx, submission)
	if err != nil {
		return "", fmt.Errorf("failed to create submission: %w", err)
	}
	return id.Hex(), nil
}

// List returns every submission for admins and only the caller's own for students.
func (s *SubmissionService) List(ctx context.Context, caller string, role model.Role) ([]model.Submission, error) {
	if role == model.RoleAdmin {
		return s.submissionRepo.FindAll(ctx)
	}
	return s.submissionRepo.FindByOwner(ctx, caller)
}

func (s *SubmissionService) Get(ctx context.Context, caller string, role model.Role, id string) (*model.Submission, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if role == model.RoleAdmin {
		return s.submissionRepo.FindByID(ctx, oid)
	}
	return s.submissionRepo.FindByIDAndOwner(ctx, oid, caller)
}

// Update overwrites the mutable fields of a submission the caller owns.
// It does not touch status or comments, and is permitted in any status so a
// student can act on requested revisions.
func (s *SubmissionService) Update(ctx context.Context, caller string, role model.Role, id string, req SubmissionRequest) error {
	if role != model.RoleStudent {
		return common.Errorf("only students can update submissions: %w", common.ErrForbidden)
	}
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := s.submissionRepo.FindByIDAndOwner(ctx, oid, caller); err != nil {
		return err
	}

	submission := &model.Submission{
		Title:            req.Title,
		Content:          req.Content,
		ProjectHead:      req.ProjectHead,
		Budget:           req.Budget,
		Venue:            req.Venue,
		OrganizationName: req.OrganizationName,
		EventDatetime:    req.eventDatetime(),
	}
	if err := s.submissionRepo.UpdateDetails(ctx, oid, submission); err != nil {
		return fmt.Errorf("failed to update submission: %w", err)
	}
	return nil
}

func (s *SubmissionService) Delete(ctx context.Context, caller string, role model.Role, id string) error {
	if role != model.RoleStudent {
		return common.Errorf("only students can delete submissions: %w", common.ErrForbidden)
	}
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := s.submissionRepo.FindByIDAndOwner(ctx, oid, caller); err != nil {
		return err
	}
	if err := s.submissionRepo.Delete(ctx, oid); err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}
	return nil
}

func (s *SubmissionService) AddComment(ctx context.Context, caller string, role model.Role, id, text string) error {
	if role != model.RoleAdmin {
		return common.Errorf("only admins can add comments: %w", common.ErrForbidden)
	}
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	comment := model.Comment{
		AdminID:   caller,
		Comment:   text,
		Timestamp: time.Now().UTC(),
	}
	return s.submissionRepo.AppendComment(ctx, oid, comment)
}

// UpdateStatus moves a submission to approved or revision. Pending is never
// a valid target; it exists only as the initial state.
func (s *SubmissionService) UpdateStatus(ctx context.Context, caller string, role model.Role, id, newStatus string) error {
	if role != model.RoleAdmin {
		return common.Errorf("only admins can update status: %w", common.ErrForbidden)
	}
	status := model.Status(newStatus)
	if !model.ReviewableStatus(status) {
		return common.Errorf("status must be approved or revision: %w", common.ErrInvalidStatus)
	}
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.submissionRepo.UpdateStatus(ctx, oid, status)
}

// parseID distinguishes a malformed identifier from a well-formed one that
// resolves to nothing.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidID
	}
	return oid, nil
}
