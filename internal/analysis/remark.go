package analysis

// Remark bands, best first.
const (
	RemarkExcellent       = "Excellent"
	RemarkVeryGood        = "Very Good"
	RemarkGood            = "Good"
	RemarkSatisfactory    = "Satisfactory"
	RemarkNeedImprovement = "Need Improvement"
)

// Remark maps a percentage onto its band. Lower bounds are inclusive; any
// value below 60, including NaN, needs improvement.
func Remark(percentage float64) string {
	switch {
	case percentage >= 90:
		return RemarkExcellent
	case percentage >= 80:
		return RemarkVeryGood
	case percentage >= 70:
		return RemarkGood
	case percentage >= 60:
		return RemarkSatisfactory
	default:
		return RemarkNeedImprovement
	}
}
