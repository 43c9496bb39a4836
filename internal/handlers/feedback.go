package handlers

import (
	"net/http"
	"strings"

	"college-feedback-backend/internal/analysis"
	"college-feedback-backend/internal/logger"
	"college-feedback-backend/internal/models"

	"github.com/go-chi/chi/v5"
)

type FeedbackHandler struct {
	feedback FeedbackStore
	log      logger.Logger
}

func NewFeedbackHandler(feedback FeedbackStore, log logger.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedback: feedback,
		log:      log,
	}
}

// FeedbackEntry is one filled form. Theory and practical forms carry the
// same class and course fields.
type FeedbackEntry struct {
	FacultyName        string           `json:"facultyName" validate:"required"`
	SubjectName        string           `json:"subjectName" validate:"required"`
	CourseName         string           `json:"courseName" validate:"required"`
	Branch             string           `json:"branch" validate:"required"`
	ParentDepartment   string           `json:"parentDepartment" validate:"required"`
	Section            string           `json:"section" validate:"required"`
	Semester           string           `json:"semester" validate:"required"`
	Batch              string           `json:"batch" validate:"required"`
	CourseCode         string           `json:"courseCode" validate:"required"`
	AcademicYear       string           `json:"academicYear" validate:"required"`
	CourseAbbreviation string           `json:"courseAbbreviation" validate:"required"`
	Responses          models.Responses `json:"responses" validate:"required,min=1"`
}

// SubmitFeedbackRequest is a batch of forms. Semester is the default for
// entries that do not name their own.
type SubmitFeedbackRequest struct {
	Semester        string          `json:"semester"`
	FeedbackEntries []FeedbackEntry `json:"feedbackEntries" validate:"required,min=1,dive"`
}

// --- POST /api/feedback/theory/submit ---

func (h *FeedbackHandler) SubmitTheory(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, models.TypeTheory)
}

// --- POST /api/feedback/practical/submit ---

func (h *FeedbackHandler) SubmitPractical(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, models.TypePractical)
}

func (h *FeedbackHandler) submit(w http.ResponseWriter, r *http.Request, kind string) {
	studentID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req SubmitFeedbackRequest
	fillSemester := func() {
		for i := range req.FeedbackEntries {
			if req.FeedbackEntries[i].Semester == "" {
				req.FeedbackEntries[i].Semester = req.Semester
			}
		}
	}
	if !decodeWith(w, r, &req, fillSemester) {
		return
	}

	entries := make([]*models.Feedback, len(req.FeedbackEntries))
	for i, e := range req.FeedbackEntries {
		entries[i] = &models.Feedback{
			StudentID:          studentID,
			FacultyName:        e.FacultyName,
			CourseName:         e.CourseName,
			Branch:             e.Branch,
			ParentDepartment:   e.ParentDepartment,
			Section:            e.Section,
			Semester:           e.Semester,
			Batch:              e.Batch,
			SubjectName:        e.SubjectName,
			CourseCode:         e.CourseCode,
			CourseAbbreviation: e.CourseAbbreviation,
			AcademicYear:       e.AcademicYear,
			Type:               kind,
			Responses:          e.Responses,
		}
	}

	if err := h.feedback.CreateMany(r.Context(), entries); err != nil {
		writeServiceError(w, h.log, "Error submitting "+kind+" feedback", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": strings.ToUpper(kind[:1]) + kind[1:] + " feedback submitted successfully!",
	})
}

// --- GET /api/feedback/{studentId} ---

func (h *FeedbackHandler) ByStudent(w http.ResponseWriter, r *http.Request) {
	studentID, ok := parseObjectID(w, chi.URLParam(r, "studentId"))
	if !ok {
		return
	}
	if !canActFor(r, studentID, models.RoleAdmin, models.RoleFaculty, models.RoleClassTeacher) {
		writeError(w, http.StatusForbidden, "access denied")
		return
	}

	feedbacks, err := h.feedback.FindByStudent(r.Context(), studentID)
	if err != nil {
		writeServiceError(w, h.log, "Error fetching student feedback", err)
		return
	}
	if len(feedbacks) == 0 {
		writeError(w, http.StatusNotFound, "No feedback found for this student")
		return
	}
	writeJSON(w, http.StatusOK, feedbacks)
}

// --- GET /api/feedback/feedbacks ---

func (h *FeedbackHandler) All(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, analysis.Criteria{})
}

// --- GET /api/feedback/feedbacks/filtered ---

func (h *FeedbackHandler) Filtered(w http.ResponseWriter, r *http.Request) {
	c := analysis.CriteriaFromQuery(r.URL.Query()).Only(
		analysis.FieldSemester,
		analysis.FieldParentDepartment,
		analysis.FieldAcademicYear,
		analysis.FieldSubjectName,
		analysis.FieldCourseName,
		analysis.FieldFacultyName,
	)
	h.list(w, r, c)
}

func (h *FeedbackHandler) list(w http.ResponseWriter, r *http.Request, c analysis.Criteria) {
	feedbacks, err := h.feedback.Find(r.Context(), c)
	if err != nil {
		writeServiceError(w, h.log, "Error fetching feedback", err)
		return
	}
	if len(feedbacks) == 0 {
		writeError(w, http.StatusNotFound, "No feedback found")
		return
	}
	writeJSON(w, http.StatusOK, feedbacks)
}

// --- GET /api/feedback/feedbacks/analysis ---

func (h *FeedbackHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	c := analysis.CriteriaFromQuery(r.URL.Query()).Only(
		analysis.FieldSemester,
		analysis.FieldBranch,
		analysis.FieldType,
		analysis.FieldSubjectName,
		analysis.FieldCourseName,
		analysis.FieldFacultyName,
	)
	feedbacks, err := h.feedback.Find(r.Context(), c)
	if err != nil {
		writeServiceError(w, h.log, "Error analyzing feedback", err)
		return
	}
	overview, err := analysis.Analyze(feedbacks)
	if err != nil {
		writeServiceError(w, h.log, "Error analyzing feedback", err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

// Lookup describes a distinct-value listing over the feedback collection.
// Aliases maps extra query parameters onto criteria fields.
type Lookup struct {
	Field    string
	Filters  []string
	Required []string
	Aliases  map[string]string
	NotFound string
}

// --- GET /api/feedback/feedbacks/{lookup} ---

func (h *FeedbackHandler) Distinct(l Lookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		for param, field := range l.Aliases {
			if v := strings.TrimSpace(q.Get(param)); v != "" {
				q.Set(field, v)
			}
		}
		c := analysis.CriteriaFromQuery(q).Only(l.Filters...)
		if err := c.Require(l.Required...); err != nil {
			writeServiceError(w, h.log, "Error checking lookup parameters", err)
			return
		}

		values, err := h.feedback.Distinct(r.Context(), l.Field, c)
		if err != nil {
			writeServiceError(w, h.log, "Error fetching "+l.Field+" values", err)
			return
		}
		if len(values) == 0 {
			writeError(w, http.StatusNotFound, l.NotFound)
			return
		}
		writeJSON(w, http.StatusOK, values)
	}
}

// FeedbackLookups are the distinct-value routes under /feedbacks.
var FeedbackLookups = map[string]Lookup{
	"faculty-names": {Field: analysis.FieldFacultyName, NotFound: "No faculty names found"},
	"faculty-names/by-parentdepartment": {
		Field:    analysis.FieldFacultyName,
		Filters:  []string{analysis.FieldParentDepartment},
		Required: []string{analysis.FieldParentDepartment},
		Aliases:  map[string]string{"department": analysis.FieldParentDepartment},
		NotFound: "No faculty names found for the selected department",
	},
	"course-names":     {Field: analysis.FieldCourseName, NotFound: "No course names found"},
	"branches":         {Field: analysis.FieldBranch, NotFound: "No branches found"},
	"parentdepartment": {Field: analysis.FieldParentDepartment, NotFound: "No parent departments found"},
	"parentdepartment/filter/samesubject": {
		Field:    analysis.FieldParentDepartment,
		Filters:  []string{analysis.FieldAcademicYear},
		Required: []string{analysis.FieldAcademicYear},
		NotFound: "No parent departments found for the selected academic year",
	},
	"types":         {Field: analysis.FieldType, NotFound: "No types found"},
	"semesters":     {Field: analysis.FieldSemester, NotFound: "No semesters found"},
	"academicyear":  {Field: analysis.FieldAcademicYear, NotFound: "No academic years found"},
	"sections":      {Field: analysis.FieldSection, NotFound: "No sections found"},
	"subject-names": {Field: analysis.FieldSubjectName, NotFound: "No subject names found"},
	"subject-names/filter": {
		Field:    analysis.FieldSubjectName,
		Filters:  []string{analysis.FieldAcademicYear, analysis.FieldParentDepartment},
		Required: []string{analysis.FieldAcademicYear, analysis.FieldParentDepartment},
		NotFound: "No subject names found for the selected filters",
	},
}

// --- DELETE /api/feedback/feedbacks/{feedbackId} ---

func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, chi.URLParam(r, "feedbackId"))
	if !ok {
		return
	}
	deleted, err := h.feedback.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, "Error deleting feedback", err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Feedback not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Feedback deleted successfully."})
}
