package handlers

import (
	"net/http"

	"college-feedback-backend/internal/analysis"
	"college-feedback-backend/internal/logger"
	"college-feedback-backend/internal/models"
)

// AnalysisHandler serves the administrator reports. Every report reads the
// matching feedback once and aggregates it in memory.
type AnalysisHandler struct {
	feedback FeedbackStore
	log      logger.Logger
}

func NewAnalysisHandler(feedback FeedbackStore, log logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		feedback: feedback,
		log:      log,
	}
}

type reportFunc func(records []models.Feedback) (interface{}, error)

// report runs one aggregation: the query is narrowed to filters, checked
// against required and only then sent to the store.
func (h *AnalysisHandler) report(w http.ResponseWriter, r *http.Request, filters, required []string, build reportFunc) {
	c := analysis.CriteriaFromQuery(r.URL.Query()).Only(filters...)
	if err := c.Require(required...); err != nil {
		writeServiceError(w, h.log, "Error checking report parameters", err)
		return
	}

	records, err := h.feedback.Find(r.Context(), c)
	if err != nil {
		writeServiceError(w, h.log, "Error fetching feedback for analysis", err)
		return
	}

	result, err := build(records)
	if err != nil {
		writeServiceError(w, h.log, "Error analyzing feedback", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// --- GET /api/admin/feedback-analysis ---

func (h *AnalysisHandler) FacultySummary(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, analysis.SummaryRequired, analysis.SummaryRequired, func(records []models.Feedback) (interface{}, error) {
		return analysis.Summarize(records)
	})
}

// --- GET /api/admin/by-same-subject ---

func (h *AnalysisHandler) BySubject(w http.ResponseWriter, r *http.Request) {
	filters := append([]string{analysis.FieldAcademicYear, analysis.FieldBranch}, analysis.BySubjectRequired...)
	h.report(w, r, filters, analysis.BySubjectRequired, func(records []models.Feedback) (interface{}, error) {
		return analysis.BySubject(records)
	})
}

// --- GET /api/admin/by-faculty ---

func (h *AnalysisHandler) ByFaculty(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, analysis.ByFacultyRequired, analysis.ByFacultyRequired, func(records []models.Feedback) (interface{}, error) {
		return analysis.ByFaculty(records)
	})
}

// --- GET /api/admin/feedback-analysis-by-branch ---

func (h *AnalysisHandler) ByDepartment(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, analysis.DepartmentRequired, analysis.DepartmentRequired, func(records []models.Feedback) (interface{}, error) {
		return analysis.ByDepartment(records)
	})
}
