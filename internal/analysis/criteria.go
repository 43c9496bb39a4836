package analysis

import (
	"fmt"
	"net/url"
	"strings"

	"college-feedback-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Filterable feedback attributes, named as in query strings and documents.
const (
	FieldFacultyName      = "facultyName"
	FieldCourseName       = "courseName"
	FieldType             = "type"
	FieldSemester         = "semester"
	FieldBranch           = "branch"
	FieldSection          = "section"
	FieldParentDepartment = "parentDepartment"
	FieldAcademicYear     = "academicYear"
	FieldSubjectName      = "subjectName"
)

var fieldOrder = []string{
	FieldFacultyName,
	FieldCourseName,
	FieldType,
	FieldSemester,
	FieldBranch,
	FieldSection,
	FieldParentDepartment,
	FieldAcademicYear,
	FieldSubjectName,
}

var fieldLabels = map[string]string{
	FieldFacultyName:      "Faculty Name",
	FieldCourseName:       "Course Name",
	FieldType:             "Type",
	FieldSemester:         "Semester",
	FieldBranch:           "Branch",
	FieldSection:          "Section",
	FieldParentDepartment: "Parent Department",
	FieldAcademicYear:     "Academic Year",
	FieldSubjectName:      "Subject Name",
}

// Criteria selects feedback records by exact string equality. Empty fields
// match anything.
type Criteria struct {
	FacultyName      string `json:"facultyName,omitempty"`
	CourseName       string `json:"courseName,omitempty"`
	Type             string `json:"type,omitempty"`
	Semester         string `json:"semester,omitempty"`
	Branch           string `json:"branch,omitempty"`
	Section          string `json:"section,omitempty"`
	ParentDepartment string `json:"parentDepartment,omitempty"`
	AcademicYear     string `json:"academicYear,omitempty"`
	SubjectName      string `json:"subjectName,omitempty"`
}

func CriteriaFromQuery(q url.Values) Criteria {
	get := func(key string) string { return strings.TrimSpace(q.Get(key)) }
	return Criteria{
		FacultyName:      get(FieldFacultyName),
		CourseName:       get(FieldCourseName),
		Type:             get(FieldType),
		Semester:         get(FieldSemester),
		Branch:           get(FieldBranch),
		Section:          get(FieldSection),
		ParentDepartment: get(FieldParentDepartment),
		AcademicYear:     get(FieldAcademicYear),
		SubjectName:      get(FieldSubjectName),
	}
}

// Get returns the value of the named field, or "" for unknown names.
func (c Criteria) Get(field string) string {
	switch field {
	case FieldFacultyName:
		return c.FacultyName
	case FieldCourseName:
		return c.CourseName
	case FieldType:
		return c.Type
	case FieldSemester:
		return c.Semester
	case FieldBranch:
		return c.Branch
	case FieldSection:
		return c.Section
	case FieldParentDepartment:
		return c.ParentDepartment
	case FieldAcademicYear:
		return c.AcademicYear
	case FieldSubjectName:
		return c.SubjectName
	}
	return ""
}

// Only returns a copy of c keeping just the named fields.
func (c Criteria) Only(fields ...string) Criteria {
	keep := make(map[string]bool, len(fields))
	for _, f := range fields {
		keep[f] = true
	}
	out := Criteria{}
	for _, f := range fieldOrder {
		if keep[f] {
			out.set(f, c.Get(f))
		}
	}
	return out
}

func (c *Criteria) set(field, value string) {
	switch field {
	case FieldFacultyName:
		c.FacultyName = value
	case FieldCourseName:
		c.CourseName = value
	case FieldType:
		c.Type = value
	case FieldSemester:
		c.Semester = value
	case FieldBranch:
		c.Branch = value
	case FieldSection:
		c.Section = value
	case FieldParentDepartment:
		c.ParentDepartment = value
	case FieldAcademicYear:
		c.AcademicYear = value
	case FieldSubjectName:
		c.SubjectName = value
	}
}

// Require reports every named field that is empty.
func (c Criteria) Require(fields ...string) error {
	var missing []string
	for _, f := range fields {
		if c.Get(f) == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return &MissingParameterError{Fields: missing}
	}
	return nil
}

// Filter builds the exact-match query document for the set fields.
func (c Criteria) Filter() bson.M {
	filter := bson.M{}
	for _, f := range fieldOrder {
		if v := c.Get(f); v != "" {
			filter[f] = v
		}
	}
	return filter
}

func (c Criteria) Matches(fb *models.Feedback) bool {
	for _, f := range fieldOrder {
		v := c.Get(f)
		if v != "" && recordField(fb, f) != v {
			return false
		}
	}
	return true
}

// Select returns the records matching c, preserving order.
func (c Criteria) Select(records []models.Feedback) []models.Feedback {
	var out []models.Feedback
	for i := range records {
		if c.Matches(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}

func recordField(fb *models.Feedback, field string) string {
	switch field {
	case FieldFacultyName:
		return fb.FacultyName
	case FieldCourseName:
		return fb.CourseName
	case FieldType:
		return fb.Type
	case FieldSemester:
		return fb.Semester
	case FieldBranch:
		return fb.Branch
	case FieldSection:
		return fb.Section
	case FieldParentDepartment:
		return fb.ParentDepartment
	case FieldAcademicYear:
		return fb.AcademicYear
	case FieldSubjectName:
		return fb.SubjectName
	}
	return ""
}

// MissingParameterError lists required criteria that were not supplied.
type MissingParameterError struct {
	Fields []string
}

func (e *MissingParameterError) Error() string {
	labels := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		if l, ok := fieldLabels[f]; ok {
			labels[i] = l
		} else {
			labels[i] = f
		}
	}
	verb := "are"
	if len(labels) == 1 {
		verb = "is"
	}
	return fmt.Sprintf("%s %s required", joinAnd(labels), verb)
}

func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}
