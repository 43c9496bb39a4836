package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Timetable maps a faculty member and subject onto a class section. Students
// fill one feedback form per entry that applies to them.
type Timetable struct {
	ID                 bson.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Branch             string         `bson:"branch" json:"branch"`
	Section            string         `bson:"section" json:"section"`
	Semester           string         `bson:"semester" json:"semester"`
	Batch              string         `bson:"batch,omitempty" json:"batch,omitempty"`
	FacultyName        string         `bson:"facultyName" json:"facultyName"`
	SubjectName        string         `bson:"subjectName" json:"subjectName"`
	CourseCode         string         `bson:"courseCode" json:"courseCode"`
	Type               string         `bson:"type" json:"type"`
	CourseAbbreviation string         `bson:"courseAbbreviation" json:"courseAbbreviation"`
	ParentDepartment   string         `bson:"parentDepartment" json:"parentDepartment"`
	AcademicYear       string         `bson:"academicYear" json:"academicYear"`
	Session            string         `bson:"session" json:"session"`
	IsElective         bool           `bson:"isElective" json:"isElective"`
	CreatedBy          *bson.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt          time.Time      `bson:"createdAt" json:"createdAt"`
}
