package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Roles.
const (
	RoleStudent      = "student"
	RoleFaculty      = "faculty"
	RoleClassTeacher = "class-teacher"
	RoleAdmin        = "admin"
)

type User struct {
	ID                 bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username           string        `bson:"username" json:"username"`
	Email              string        `bson:"email" json:"email"`
	Password           string        `bson:"password" json:"-"`
	Role               string        `bson:"role" json:"role"`
	MobileNumber       string        `bson:"mobileNumber,omitempty" json:"mobileNumber,omitempty"`
	RegistrationNumber string        `bson:"registrationNumber,omitempty" json:"registrationNumber,omitempty"`
	RollNumber         string        `bson:"rollNumber,omitempty" json:"rollNumber,omitempty"`
	Semester           string        `bson:"semester,omitempty" json:"semester,omitempty"`
	Branch             string        `bson:"branch,omitempty" json:"branch,omitempty"`
	Section            string        `bson:"section,omitempty" json:"section,omitempty"`
	Batch              string        `bson:"batch,omitempty" json:"batch,omitempty"`
	Session            string        `bson:"session,omitempty" json:"session,omitempty"`
	AcademicYear       string        `bson:"academicYear,omitempty" json:"academicYear,omitempty"`
	IsApproved         bool          `bson:"isApproved" json:"isApproved"`
	Electives          []string      `bson:"electives" json:"electives"`
	CreatedAt          time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Profile holds the user fields a user may change about themselves. Empty
// fields are left untouched.
type Profile struct {
	Username           string    `bson:"username,omitempty" json:"username" validate:"omitempty,min=2"`
	Email              string    `bson:"email,omitempty" json:"email" validate:"omitempty,email"`
	MobileNumber       string    `bson:"mobileNumber,omitempty" json:"mobileNumber" validate:"omitempty,numeric,min=7,max=15"`
	RegistrationNumber string    `bson:"registrationNumber,omitempty" json:"registrationNumber"`
	RollNumber         string    `bson:"rollNumber,omitempty" json:"rollNumber"`
	Semester           string    `bson:"semester,omitempty" json:"semester"`
	Branch             string    `bson:"branch,omitempty" json:"branch"`
	Section            string    `bson:"section,omitempty" json:"section"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"-"`
}
