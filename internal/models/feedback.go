package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Feedback types.
const (
	TypeTheory    = "theory"
	TypePractical = "practical"
)

// Responses maps a question label to the score given for it. Labels are free
// text and differ between survey versions; values are normally numbers on a
// 0-4 scale but older documents may hold text.
type Responses map[string]interface{}

type Feedback struct {
	ID                 bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	StudentID          bson.ObjectID `bson:"studentId" json:"studentId"`
	FacultyName        string        `bson:"facultyName" json:"facultyName"`
	CourseName         string        `bson:"courseName" json:"courseName"`
	Branch             string        `bson:"branch" json:"branch"`
	ParentDepartment   string        `bson:"parentDepartment" json:"parentDepartment"`
	Section            string        `bson:"section" json:"section"`
	Semester           string        `bson:"semester" json:"semester"`
	Batch              string        `bson:"batch" json:"batch"`
	SubjectName        string        `bson:"subjectName" json:"subjectName"`
	CourseCode         string        `bson:"courseCode" json:"courseCode"`
	CourseAbbreviation string        `bson:"courseAbbreviation" json:"courseAbbreviation"`
	AcademicYear       string        `bson:"academicYear" json:"academicYear"`
	Type               string        `bson:"type" json:"type"`
	Responses          Responses     `bson:"responses" json:"responses"`
	CreatedAt          time.Time     `bson:"createdAt" json:"createdAt"`
}
