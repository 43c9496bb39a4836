package handlers

import (
	"context"
	"net/http"
	"strings"

	"college-feedback-backend/internal/logger"
	"college-feedback-backend/internal/middleware"
	"college-feedback-backend/internal/models"
	"college-feedback-backend/internal/notify"
	"college-feedback-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type UserHandler struct {
	users    UserStore
	notifier notify.Notifier
	log      logger.Logger
}

func NewUserHandler(users UserStore, notifier notify.Notifier, log logger.Logger) *UserHandler {
	return &UserHandler{
		users:    users,
		notifier: notifier,
		log:      log,
	}
}

type SelectElectivesRequest struct {
	Electives []string `json:"electives" validate:"required,dive,required"`
}

type RemoveElectiveRequest struct {
	ElectiveToRemove string `json:"electiveToRemove" validate:"required"`
}

// --- GET /api/users ---

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	users, err := h.users.List(r.Context(), repository.UserFilter{
		Role:     q.Get("role"),
		Semester: q.Get("semester"),
		Branch:   q.Get("branch"),
		Section:  q.Get("section"),
	})
	if err != nil {
		writeServiceError(w, h.log, "Error listing users", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// --- GET /api/users/me ---

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	h.writeUser(w, r, userID)
}

// --- GET /api/users/user/{id} ---

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseObjectID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if !canActFor(r, userID, models.RoleAdmin, models.RoleFaculty, models.RoleClassTeacher) {
		writeError(w, http.StatusForbidden, "access denied")
		return
	}
	h.writeUser(w, r, userID)
}

func (h *UserHandler) writeUser(w http.ResponseWriter, r *http.Request, id bson.ObjectID) {
	user, err := h.users.FindByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, "Error finding user", err)
		return
	}
	h.respondUser(w, user)
}

func (h *UserHandler) respondUser(w http.ResponseWriter, user *models.User) {
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// --- PUT /api/users/me ---

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	var profile models.Profile
	if !decode(w, r, &profile) {
		return
	}
	profile.Email = strings.ToLower(profile.Email)

	user, err := h.users.UpdateProfile(r.Context(), userID, profile)
	if err != nil {
		writeServiceError(w, h.log, "Error updating user", err)
		return
	}
	h.respondUser(w, user)
}

// --- PUT /api/users/user/{id}/select-elective ---

func (h *UserHandler) SelectElectives(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.electiveOwner(w, r)
	if !ok {
		return
	}
	var req SelectElectivesRequest
	if !decode(w, r, &req) {
		return
	}

	user, err := h.users.SetElectives(r.Context(), userID, req.Electives)
	if err != nil {
		writeServiceError(w, h.log, "Error updating electives", err)
		return
	}
	h.respondElectives(w, user, "Electives updated successfully")
}

// --- PUT /api/users/user/{id}/remove-elective ---

func (h *UserHandler) RemoveElective(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.electiveOwner(w, r)
	if !ok {
		return
	}
	var req RemoveElectiveRequest
	if !decode(w, r, &req) {
		return
	}

	user, err := h.users.RemoveElective(r.Context(), userID, req.ElectiveToRemove)
	if err != nil {
		writeServiceError(w, h.log, "Error removing elective", err)
		return
	}
	h.respondElectives(w, user, "Elective removed successfully")
}

func (h *UserHandler) electiveOwner(w http.ResponseWriter, r *http.Request) (bson.ObjectID, bool) {
	userID, ok := parseObjectID(w, chi.URLParam(r, "id"))
	if !ok {
		return userID, false
	}
	if !canActFor(r, userID, models.RoleAdmin) {
		writeError(w, http.StatusForbidden, "access denied")
		return userID, false
	}
	return userID, true
}

func (h *UserHandler) respondElectives(w http.ResponseWriter, user *models.User, msg string) {
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":   msg,
		"electives": user.Electives,
	})
}

// --- GET /api/students ---

// Students lists students. Administrators may filter freely; faculty and
// approved class teachers see the class they are assigned to.
func (h *UserHandler) Students(w http.ResponseWriter, r *http.Request) {
	filter := repository.UserFilter{Role: models.RoleStudent}

	switch middleware.GetRole(r.Context()) {
	case models.RoleAdmin:
		q := r.URL.Query()
		filter.Semester = q.Get("semester")
		filter.Branch = q.Get("branch")
		filter.Section = q.Get("section")
	case models.RoleFaculty, models.RoleClassTeacher:
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		teacher, err := h.users.FindByID(r.Context(), userID)
		if err != nil {
			writeServiceError(w, h.log, "Error finding user", err)
			return
		}
		if teacher == nil || !teacher.IsApproved {
			writeError(w, http.StatusForbidden, "Unauthorized access")
			return
		}
		filter.Semester = teacher.Semester
		filter.Branch = teacher.Branch
		filter.Section = teacher.Section
	default:
		writeError(w, http.StatusForbidden, "Unauthorized access")
		return
	}

	students, err := h.users.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.log, "Error listing students", err)
		return
	}
	writeJSON(w, http.StatusOK, students)
}

// --- POST /api/faculty/approve-user/{id} ---

func (h *UserHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.setApproval(w, r, true)
}

// --- POST /api/faculty/reject-user/{id} ---

func (h *UserHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.setApproval(w, r, false)
}

func (h *UserHandler) setApproval(w http.ResponseWriter, r *http.Request, approved bool) {
	userID, ok := parseObjectID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	user, err := h.users.SetApproved(r.Context(), userID, approved)
	if err != nil {
		writeServiceError(w, h.log, "Error updating approval", err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	msg := "User rejected successfully"
	if approved {
		msg = "User approved successfully"
		// Send the email in the background (non-blocking)
		go func() {
			if err := h.notifier.Send(context.Background(), notify.ApprovalMessage(user)); err != nil {
				h.log.Warn("Error sending approval email", err)
			}
		}()
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": msg,
		"user":    user,
	})
}
