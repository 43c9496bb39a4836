package handlers

import (
	"net/http"

	"college-feedback-backend/internal/logger"
	"college-feedback-backend/internal/models"
	"college-feedback-backend/internal/repository"

	"github.com/go-chi/chi/v5"
)

type TimetableHandler struct {
	timetables TimetableStore
	users      UserStore
	log        logger.Logger
}

func NewTimetableHandler(timetables TimetableStore, users UserStore, log logger.Logger) *TimetableHandler {
	return &TimetableHandler{
		timetables: timetables,
		users:      users,
		log:        log,
	}
}

type TimetableRequest struct {
	Branch             string `json:"branch" validate:"required"`
	Section            string `json:"section" validate:"required"`
	Semester           string `json:"semester" validate:"required"`
	Batch              string `json:"batch"`
	FacultyName        string `json:"facultyName" validate:"required"`
	SubjectName        string `json:"subjectName" validate:"required"`
	CourseCode         string `json:"courseCode" validate:"required"`
	Type               string `json:"type" validate:"required,oneof=theory practical"`
	CourseAbbreviation string `json:"courseAbbreviation"`
	ParentDepartment   string `json:"parentDepartment" validate:"required"`
	AcademicYear       string `json:"academicYear"`
	Session            string `json:"session"`
	IsElective         bool   `json:"isElective"`
}

func (req *TimetableRequest) timetable() *models.Timetable {
	return &models.Timetable{
		Branch:             req.Branch,
		Section:            req.Section,
		Semester:           req.Semester,
		Batch:              req.Batch,
		FacultyName:        req.FacultyName,
		SubjectName:        req.SubjectName,
		CourseCode:         req.CourseCode,
		Type:               req.Type,
		CourseAbbreviation: req.CourseAbbreviation,
		ParentDepartment:   req.ParentDepartment,
		AcademicYear:       req.AcademicYear,
		Session:            req.Session,
		IsElective:         req.IsElective,
	}
}

// --- POST /api/timetables ---

func (h *TimetableHandler) Create(w http.ResponseWriter, r *http.Request) {
	creator, ok := currentUserID(w, r)
	if !ok {
		return
	}
	var req TimetableRequest
	if !decode(w, r, &req) {
		return
	}

	t := req.timetable()
	t.CreatedBy = &creator
	if err := h.timetables.Create(r.Context(), t); err != nil {
		writeServiceError(w, h.log, "Error creating timetable", err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// --- GET /api/timetables and /api/timetables/criteria ---

func (h *TimetableHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	timetables, err := h.timetables.List(r.Context(), repository.TimetableFilter{
		Branch:   q.Get("branch"),
		Section:  q.Get("section"),
		Semester: q.Get("semester"),
		Batch:    q.Get("batch"),
	})
	if err != nil {
		writeServiceError(w, h.log, "Error fetching timetables", err)
		return
	}
	writeJSON(w, http.StatusOK, timetables)
}

// --- GET /api/timetables/{id} ---

func (h *TimetableHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	t, err := h.timetables.FindByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, "Error fetching timetable", err)
		return
	}
	if t == nil {
		writeError(w, http.StatusNotFound, "Timetable not found")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// --- PUT /api/timetables/update/{id} ---

func (h *TimetableHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req TimetableRequest
	if !decode(w, r, &req) {
		return
	}

	t, err := h.timetables.Update(r.Context(), id, req.timetable())
	if err != nil {
		writeServiceError(w, h.log, "Error updating timetable", err)
		return
	}
	if t == nil {
		writeError(w, http.StatusNotFound, "Timetable not found")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// --- DELETE /api/timetables/delete?id= ---

func (h *TimetableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r.URL.Query().Get("id"))
	if !ok {
		return
	}
	deleted, err := h.timetables.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, "Error deleting timetable", err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Timetable not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Timetable deleted successfully"})
}

// --- GET /api/electives ---

// Electives lists the elective subjects offered to the caller's branch.
func (h *TimetableHandler) Electives(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	user, err := h.users.FindByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.log, "Error finding user", err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	subjects, err := h.timetables.ElectiveSubjects(r.Context(), user.Branch)
	if err != nil {
		writeServiceError(w, h.log, "Error fetching elective subjects", err)
		return
	}
	writeJSON(w, http.StatusOK, subjects)
}
