package analysis

import (
	"net/url"
	"testing"

	"college-feedback-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestCriteriaRequire(t *testing.T) {
	tests := []struct {
		name    string
		c       Criteria
		fields  []string
		wantErr string
	}{
		{
			name:    "all missing",
			fields:  SummaryRequired,
			wantErr: "Faculty Name, Course Name, Type, Semester, and Branch are required",
		},
		{
			name:    "two missing",
			c:       Criteria{FacultyName: "Dr. Rao"},
			fields:  []string{FieldFacultyName, FieldAcademicYear, FieldSemester},
			wantErr: "Academic Year and Semester are required",
		},
		{
			name:    "one missing",
			c:       Criteria{SubjectName: "DBMS"},
			fields:  BySubjectRequired,
			wantErr: "Type is required",
		},
		{
			name:   "complete",
			c:      Criteria{FacultyName: "Dr. Rao", AcademicYear: "2024-25"},
			fields: ByFacultyRequired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Require(tt.fields...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var missing *MissingParameterError
			require.ErrorAs(t, err, &missing)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestCriteriaFromQueryAndFilter(t *testing.T) {
	q := url.Values{}
	q.Set("facultyName", " Dr. Rao ")
	q.Set("semester", "5")
	q.Set("unknown", "ignored")

	c := CriteriaFromQuery(q)
	assert.Equal(t, Criteria{FacultyName: "Dr. Rao", Semester: "5"}, c)
	assert.Equal(t, bson.M{"facultyName": "Dr. Rao", "semester": "5"}, c.Filter())
	assert.Equal(t, bson.M{}, Criteria{}.Filter())
}

func TestCriteriaOnly(t *testing.T) {
	c := Criteria{FacultyName: "Dr. Rao", Semester: "5", Branch: "CSE"}
	assert.Equal(t, Criteria{Semester: "5", Branch: "CSE"}, c.Only(FieldSemester, FieldBranch, FieldType))
}

func TestCriteriaMatchesAndSelect(t *testing.T) {
	records := []models.Feedback{
		{FacultyName: "Dr. Rao", Branch: "CSE", Type: models.TypeTheory},
		{FacultyName: "Dr. Rao", Branch: "IT", Type: models.TypeTheory},
		{FacultyName: "Dr. Iyer", Branch: "CSE", Type: models.TypePractical},
	}

	c := Criteria{FacultyName: "Dr. Rao"}
	assert.True(t, c.Matches(&records[0]))
	assert.False(t, c.Matches(&records[2]))

	got := Criteria{Branch: "CSE"}.Select(records)
	require.Len(t, got, 2)
	assert.Equal(t, "Dr. Rao", got[0].FacultyName)
	assert.Equal(t, "Dr. Iyer", got[1].FacultyName)

	assert.Len(t, Criteria{}.Select(records), 3)
	assert.Empty(t, Criteria{Branch: "cse"}.Select(records))
}
