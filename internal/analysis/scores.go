package analysis

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"college-feedback-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ExcludedPracticalQuestion is a survey item that is not scored in the
// faculty summary.
const ExcludedPracticalQuestion = "0_Practical sessions were well-organized and conducted in a structured manner"

// ParseScore converts a stored response value into a score. Text, booleans,
// nil and non-finite numbers are rejected.
func ParseScore(v interface{}) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case bson.Decimal128:
		return parseScoreString(n.String())
	case string:
		return parseScoreString(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseScoreString(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// eachScore calls fn for every numeric response in label order, skipping the
// excluded labels.
func eachScore(responses models.Responses, exclude []string, fn func(label string, score float64)) {
	labels := make([]string, 0, len(responses))
	for label := range responses {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		if excluded(label, exclude) {
			continue
		}
		if score, ok := ParseScore(responses[label]); ok {
			fn(label, score)
		}
	}
}

func excluded(label string, exclude []string) bool {
	for _, e := range exclude {
		if label == e {
			return true
		}
	}
	return false
}

// ExtractScores returns the numeric responses of one record.
func ExtractScores(responses models.Responses, exclude ...string) []float64 {
	scores := make([]float64, 0, len(responses))
	eachScore(responses, exclude, func(_ string, score float64) {
		scores = append(scores, score)
	})
	return scores
}

// RecordMean is the mean of a record's numeric responses. ok is false when
// the record has none.
func RecordMean(responses models.Responses) (mean float64, ok bool) {
	var acc Accumulator
	for _, s := range ExtractScores(responses) {
		acc.Add(s)
	}
	if acc.Count == 0 {
		return 0, false
	}
	return acc.Mean(), true
}
