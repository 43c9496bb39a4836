package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Faculty is an entry of the faculty registry used to populate timetable
// forms. FacultyName is unique.
type Faculty struct {
	ID               bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	FacultyName      string        `bson:"facultyName" json:"facultyName"`
	SubjectName      string        `bson:"subjectName" json:"subjectName"`
	CourseCode       string        `bson:"courseCode" json:"courseCode"`
	Branch           string        `bson:"branch" json:"branch"`
	Session          string        `bson:"session" json:"session"`
	ParentDepartment string        `bson:"parentDepartment" json:"parentDepartment"`
}
