package handlers

import (
	"net/http"

	"college-feedback-backend/internal/logger"
	"college-feedback-backend/internal/models"

	"github.com/go-chi/chi/v5"
)

// FacultyHandler manages the faculty registry used to fill timetable forms.
type FacultyHandler struct {
	faculty FacultyStore
	log     logger.Logger
}

func NewFacultyHandler(faculty FacultyStore, log logger.Logger) *FacultyHandler {
	return &FacultyHandler{
		faculty: faculty,
		log:     log,
	}
}

type FacultyRequest struct {
	FacultyName      string `json:"facultyName" validate:"required"`
	SubjectName      string `json:"subjectName"`
	CourseCode       string `json:"courseCode"`
	Branch           string `json:"branch"`
	Session          string `json:"session"`
	ParentDepartment string `json:"parentDepartment"`
}

func (req *FacultyRequest) faculty() *models.Faculty {
	return &models.Faculty{
		FacultyName:      req.FacultyName,
		SubjectName:      req.SubjectName,
		CourseCode:       req.CourseCode,
		Branch:           req.Branch,
		Session:          req.Session,
		ParentDepartment: req.ParentDepartment,
	}
}

// --- POST /api/facultyregister/create/faculty ---

func (h *FacultyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req FacultyRequest
	if !decode(w, r, &req) {
		return
	}
	f := req.faculty()
	if err := h.faculty.Create(r.Context(), f); err != nil {
		writeServiceError(w, h.log, "Error registering faculty", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Faculty registered successfully",
		"data":    f,
	})
}

// --- GET /api/facultyregister/faculty ---

func (h *FacultyHandler) List(w http.ResponseWriter, r *http.Request) {
	faculty, err := h.faculty.List(r.Context())
	if err != nil {
		writeServiceError(w, h.log, "Error retrieving faculty data", err)
		return
	}
	writeJSON(w, http.StatusOK, faculty)
}

// --- PUT /api/facultyregister/faculty/edit/{id} ---

func (h *FacultyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req FacultyRequest
	if !decode(w, r, &req) {
		return
	}

	f, err := h.faculty.Update(r.Context(), id, req.faculty())
	if err != nil {
		writeServiceError(w, h.log, "Error updating faculty", err)
		return
	}
	if f == nil {
		writeError(w, http.StatusNotFound, "Faculty not found")
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// --- DELETE /api/facultyregister/faculty/delete/{id} ---

func (h *FacultyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	deleted, err := h.faculty.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, "Error deleting faculty", err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Faculty not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Faculty deleted successfully"})
}

// --- GET /api/facultyregister/{lookup} ---

// Distinct lists the distinct values of a registry field. An empty registry
// yields an empty list.
func (h *FacultyHandler) Distinct(field string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := h.faculty.Distinct(r.Context(), field)
		if err != nil {
			writeServiceError(w, h.log, "Error fetching "+field+" values", err)
			return
		}
		writeJSON(w, http.StatusOK, values)
	}
}

// FacultyLookups maps registry lookup routes onto document fields.
var FacultyLookups = map[string]string{
	"facultyname":       "facultyName",
	"subjects":          "subjectName",
	"coursecodes":       "courseCode",
	"branches":          "branch",
	"sessions":          "session",
	"parentdepartments": "parentDepartment",
}
