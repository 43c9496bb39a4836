package analysis

import (
	"errors"

	"college-feedback-backend/internal/models"
)

var ErrNoFeedback = errors.New("no feedback found for the given criteria")

// Raw score thresholds of the faculty summary. Scores strictly between the
// two count as neither good nor bad.
const (
	GoodScore = 3
	BadScore  = 1
)

// Required criteria per report.
var (
	SummaryRequired    = []string{FieldFacultyName, FieldCourseName, FieldType, FieldSemester, FieldBranch}
	BySubjectRequired  = []string{FieldSubjectName, FieldType}
	ByFacultyRequired  = []string{FieldFacultyName, FieldAcademicYear}
	DepartmentRequired = []string{FieldParentDepartment, FieldAcademicYear}
)

// Summary is the per-question breakdown for one faculty member's class.
// Every individual score counts once.
type Summary struct {
	AverageScore     string            `json:"averageScore"`
	GoodFeedbacks    string            `json:"goodFeedbacks"`
	BadFeedbacks     string            `json:"badFeedbacks"`
	TotalFeedbacks   int               `json:"totalFeedbacks"`
	QuestionAverages map[string]string `json:"questionAverages"`
	Remark           string            `json:"remark"`
}

func Summarize(records []models.Feedback) (*Summary, error) {
	if len(records) == 0 {
		return nil, ErrNoFeedback
	}

	var total Accumulator
	var good, bad int
	questions := newGroups[string, Accumulator]()

	for i := range records {
		eachScore(records[i].Responses, []string{ExcludedPracticalQuestion}, func(label string, score float64) {
			total.Add(score)
			switch {
			case score >= GoodScore:
				good++
			case score <= BadScore:
				bad++
			}
			questions.get(label).Add(score)
		})
	}

	averages := make(map[string]string, questions.len())
	questions.each(func(label string, acc *Accumulator) {
		averages[label] = acc.Percentage() + "%"
	})

	return &Summary{
		AverageScore:     total.Percentage() + "%",
		GoodFeedbacks:    share(good, total.Count),
		BadFeedbacks:     share(bad, total.Count),
		TotalFeedbacks:   total.Count,
		QuestionAverages: averages,
		Remark:           Remark(total.percent()),
	}, nil
}

func share(n, of int) string {
	if of == 0 {
		return "0.00%"
	}
	return Fixed(float64(n)/float64(of)*100, 2) + "%"
}

// FacultyBranchScore rates one faculty member teaching a subject to one
// branch.
type FacultyBranchScore struct {
	FacultyName       string `json:"facultyName"`
	Branch            string `json:"branch"`
	AverageRating     string `json:"averageRating"`
	AveragePercentage string `json:"averagePercentage"`
	Remark            string `json:"remark"`
}

type branchGroup struct {
	branches *groups[string, Accumulator]
}

// BySubject compares the faculty teaching the same subject. Each record's
// mean counts once; records without numeric responses are ignored.
func BySubject(records []models.Feedback) ([]FacultyBranchScore, error) {
	if len(records) == 0 {
		return nil, ErrNoFeedback
	}

	faculties := newGroups[string, branchGroup]()
	for i := range records {
		fb := &records[i]
		mean, ok := RecordMean(fb.Responses)
		if !ok {
			continue
		}
		g := faculties.get(fb.FacultyName)
		if g.branches == nil {
			g.branches = newGroups[string, Accumulator]()
		}
		g.branches.get(fb.Branch).Add(mean)
	}

	result := []FacultyBranchScore{}
	faculties.each(func(faculty string, g *branchGroup) {
		g.branches.each(func(branch string, acc *Accumulator) {
			result = append(result, FacultyBranchScore{
				FacultyName:       faculty,
				Branch:            branch,
				AverageRating:     Fixed(acc.Mean(), 2),
				AveragePercentage: acc.Percentage(),
				Remark:            Remark(acc.percent()),
			})
		})
	})
	return result, nil
}

// SubjectScore rates one subject, branch and type taught by a faculty member.
type SubjectScore struct {
	FacultyName       string `json:"facultyName"`
	SubjectName       string `json:"subjectName"`
	Branch            string `json:"branch"`
	Type              string `json:"type"`
	AcademicYear      string `json:"academicYear"`
	AverageRating     string `json:"averageRating"`
	AveragePercentage string `json:"averagePercentage"`
	Remark            string `json:"remark"`
}

type subjectKey struct {
	subject, branch, kind string
}

type subjectGroup struct {
	facultyName, academicYear string
	acc                       Accumulator
}

// ByFaculty breaks one faculty member's feedback down per subject, branch
// and type. Each record's mean counts once.
func ByFaculty(records []models.Feedback) ([]SubjectScore, error) {
	if len(records) == 0 {
		return nil, ErrNoFeedback
	}

	subjects := newGroups[subjectKey, subjectGroup]()
	for i := range records {
		fb := &records[i]
		mean, ok := RecordMean(fb.Responses)
		if !ok {
			continue
		}
		g := subjects.get(subjectKey{fb.SubjectName, fb.Branch, fb.Type})
		if g.acc.Count == 0 {
			g.facultyName, g.academicYear = fb.FacultyName, fb.AcademicYear
		}
		g.acc.Add(mean)
	}

	result := []SubjectScore{}
	subjects.each(func(k subjectKey, g *subjectGroup) {
		result = append(result, SubjectScore{
			FacultyName:       g.facultyName,
			SubjectName:       k.subject,
			Branch:            k.branch,
			Type:              k.kind,
			AcademicYear:      g.academicYear,
			AverageRating:     Fixed(g.acc.Mean(), 2),
			AveragePercentage: g.acc.Percentage(),
			Remark:            Remark(g.acc.percent()),
		})
	})
	return result, nil
}

// DepartmentFacultyScore rates one faculty member across a department.
//
// StudentCount is the number of distinct students divided by the number of
// distinct course codes. It approximates students per course and is not an
// exact per-course count. CourseCount counts distinct course names.
type DepartmentFacultyScore struct {
	FacultyName       string  `json:"facultyName"`
	StudentCount      float64 `json:"studentCount"`
	CourseCount       int     `json:"courseCount"`
	AverageRating     string  `json:"averageRating"`
	AveragePercentage string  `json:"averagePercentage"`
	Remark            string  `json:"remark"`
}

type DepartmentReport struct {
	FacultyData []DepartmentFacultyScore `json:"facultyData"`
}

type facultyGroup struct {
	acc         Accumulator
	students    set
	courseNames set
	courseCodes set
}

// ByDepartment rolls feedback up per faculty member, reporting ratings with
// four significant digits.
func ByDepartment(records []models.Feedback) (*DepartmentReport, error) {
	if len(records) == 0 {
		return nil, ErrNoFeedback
	}

	faculties := newGroups[string, facultyGroup]()
	for i := range records {
		fb := &records[i]
		mean, ok := RecordMean(fb.Responses)
		if !ok {
			continue
		}
		g := faculties.get(fb.FacultyName)
		g.acc.Add(mean)
		g.students.add(fb.StudentID.Hex())
		g.courseNames.add(fb.CourseName)
		g.courseCodes.add(fb.CourseCode)
	}

	report := &DepartmentReport{FacultyData: []DepartmentFacultyScore{}}
	faculties.each(func(name string, g *facultyGroup) {
		row := DepartmentFacultyScore{
			FacultyName:       name,
			CourseCount:       len(g.courseNames),
			AverageRating:     "0.0000",
			AveragePercentage: "0.0000",
			Remark:            Remark(g.acc.percent()),
		}
		if len(g.courseCodes) > 0 {
			row.StudentCount = float64(len(g.students)) / float64(len(g.courseCodes))
		}
		if g.acc.Count > 0 {
			row.AverageRating = Precision(g.acc.Mean(), 4)
			row.AveragePercentage = Precision(g.acc.percent(), 4)
		}
		report.FacultyData = append(report.FacultyData, row)
	})
	return report, nil
}

// overviewScale is the scale the overview reports its overall score on.
const overviewScale = 5

// Overview is the raw analysis of an arbitrary selection. It keeps its own
// conventions: the overall score divides by records times distinct
// questions and is scaled against five, and good/bad are raw counts with
// thresholds 4 and 2.
type Overview struct {
	AverageScore     string            `json:"averageScore"`
	GoodFeedbacks    int               `json:"goodFeedbacks"`
	BadFeedbacks     int               `json:"badFeedbacks"`
	TotalFeedbacks   int               `json:"totalFeedbacks"`
	QuestionAverages map[string]string `json:"questionAverages"`
	Feedbacks        []models.Feedback `json:"feedbacks"`
}

func Analyze(records []models.Feedback) (*Overview, error) {
	if len(records) == 0 {
		return nil, ErrNoFeedback
	}

	var total float64
	var good, bad int
	questions := newGroups[string, Accumulator]()
	for i := range records {
		eachScore(records[i].Responses, nil, func(label string, score float64) {
			total += score
			switch {
			case score >= 4:
				good++
			case score <= 2:
				bad++
			}
			questions.get(label).Add(score)
		})
	}

	averageScore := "0.00%"
	if questions.len() > 0 {
		avg := total / float64(len(records)*questions.len())
		averageScore = Fixed(avg/overviewScale*100, 2) + "%"
	}

	averages := make(map[string]string, questions.len())
	questions.each(func(label string, acc *Accumulator) {
		averages[label] = Fixed(acc.Mean()/MaxScore*100, 2) + "%"
	})

	return &Overview{
		AverageScore:     averageScore,
		GoodFeedbacks:    good,
		BadFeedbacks:     bad,
		TotalFeedbacks:   len(records),
		QuestionAverages: averages,
		Feedbacks:        records,
	}, nil
}
