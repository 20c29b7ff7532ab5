package handler

import (
	"encoding/json"
	"net/http"
	"submission_review/internal/api/middleware"
	"submission_review/internal/app/service"
	"submission_review/internal/common"
	"submission_review/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

func (h *SubmissionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{submissionID}", h.get)
	r.Put("/{submissionID}", h.update)
	r.Delete("/{submissionID}", h.delete)
	r.Post("/{submissionID}/comment", h.addComment)
	r.Put("/{submissionID}/status", h.updateStatus)
}

// caller pulls the authenticated identity placed in context by the
// Authenticator middleware.
func caller(r *http.Request, w http.ResponseWriter) (string, model.Role, bool) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return "", "", false
	}
	role, ok := middleware.GetRoleFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return "", "", false
	}
	return username, role, true
}

func (h *SubmissionHandler) create(w http.ResponseWriter, r *http.Request) {
	username, role, ok := caller(r, w)
	if !ok {
		return
	}

	var req service.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	id, err := h.submissionService.Create(r.Context(), username, role, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *SubmissionHandler) list(w http.ResponseWriter, r *http.Request) {
	username, role, ok := caller(r, w)
	if !ok {
		return
	}

	submissions, err := h.submissionService.List(r.Context(), username, role)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, submissions)
}

func (h *SubmissionHandler) get(w http.ResponseWriter, r *http.Request) {
	username, role, ok := caller(r, w)
	if !ok {
		return
	}

	submission, err := h.submissionService.Get(r.Context(), username, role, chi.URLParam(r, "submissionID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, submission)
}

func (h *SubmissionHandler) update(w http.ResponseWriter, r *http.Request) {
	username, role, ok := caller(r, w)
	if !ok {
		return
	}

	var req service.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	if err := h.submissionService.Update(r.Context(), username, role, chi.URLParam(r, "submissionID"), req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Submission updated"})
}

func (h *SubmissionHandler) delete(w http.ResponseWriter, r *http.Request) {
	username, role, ok := caller(r, w)
	if !ok {
		return
	}

	if err := h.submissionService.Delete(r.Context(), username, role, chi.URLParam(r, "submissionID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Submission deleted"})
}

func (h *SubmissionHandler) addComment(w http.ResponseWriter, r *http.Request) {
	username, role, ok := caller(r, w)
	if !ok {
		return
	}

	var req service.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	if err := h.submissionService.AddComment(r.Context(), username, role, chi.URLParam(r, "submissionID"), req.Comment); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Comment added"})
}

func (h *SubmissionHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	username, role, ok := caller(r, w)
	if !ok {
		return
	}

	var req service.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	if err := h.submissionService.UpdateStatus(r.Context(), username, role, chi.URLParam(r, "submissionID"), req.Status); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Status updated"})
}
