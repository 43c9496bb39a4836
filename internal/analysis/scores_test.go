package analysis

import (
	"math"
	"testing"

	"college-feedback-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestParseScore(t *testing.T) {
	dec, err := bson.ParseDecimal128("2.5")
	if err != nil {
		t.Fatalf("ParseDecimal128() failed: %v", err)
	}

	tests := []struct {
		name   string
		in     interface{}
		want   float64
		wantOK bool
	}{
		{"float64", 3.0, 3, true},
		{"int32", int32(4), 4, true},
		{"int64", int64(0), 0, true},
		{"int", 2, 2, true},
		{"decimal128", dec, 2.5, true},
		{"numeric string", " 1.5 ", 1.5, true},
		{"text", "very good", 0, false},
		{"empty string", "", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
		{"NaN", math.NaN(), 0, false},
		{"Inf", math.Inf(1), 0, false},
		{"NaN string", "NaN", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseScore(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractScores(t *testing.T) {
	responses := models.Responses{
		"1_Clarity":  4.0,
		"0_Coverage": int32(3),
		"comments":   "more examples please",
		"2_Aids":     nil,
	}

	// labels are visited in sorted order
	assert.Equal(t, []float64{3, 4}, ExtractScores(responses))
	assert.Equal(t, []float64{4}, ExtractScores(responses, "0_Coverage"))
	assert.Empty(t, ExtractScores(models.Responses{"comments": "n/a"}))
	assert.Empty(t, ExtractScores(nil))
}

func TestRecordMean(t *testing.T) {
	mean, ok := RecordMean(models.Responses{"a": 4.0, "b": 2.0, "c": "skip"})
	assert.True(t, ok)
	assert.Equal(t, 3.0, mean)

	_, ok = RecordMean(models.Responses{"c": "skip"})
	assert.False(t, ok)
}
