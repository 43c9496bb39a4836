package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	tests := []struct {
		x        float64
		decimals int
		want     string
	}{
		{62.5, 2, "62.50"},
		{0, 2, "0.00"},
		{78.125, 2, "78.13"},
		{1.005, 2, "1.00"},
		{0.004, 2, "0.00"},
		{0.05, 2, "0.05"},
		{2.5, 0, "3"},
		{-2.5, 0, "-3"},
		{123.456, 1, "123.5"},
		{100, 2, "100.00"},
		{math.Inf(1), 2, "+Inf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fixed(tt.x, tt.decimals), "Fixed(%v, %d)", tt.x, tt.decimals)
	}
}

func TestPrecision(t *testing.T) {
	tests := []struct {
		x    float64
		want string
	}{
		{3, "3.000"},
		{100, "100.0"},
		{0, "0.000"},
		{0.5, "0.5000"},
		{78.125, "78.13"},
		{3.125, "3.125"},
		{9.99996, "10.00"},
		{999.99, "1000"},
		{98766, "9.877e+4"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Precision(tt.x, 4), "Precision(%v, 4)", tt.x)
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "62.50", Percentage(10, 4))
	assert.Equal(t, "100.00", Percentage(8, 2))
	assert.Equal(t, "0.00", Percentage(0, 0))
	assert.Equal(t, "0.00", Percentage(12, 0))
}

func TestRemark(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{100, RemarkExcellent},
		{90, RemarkExcellent},
		{89.99, RemarkVeryGood},
		{80, RemarkVeryGood},
		{79.99, RemarkGood},
		{70, RemarkGood},
		{60, RemarkSatisfactory},
		{59.99, RemarkNeedImprovement},
		{0, RemarkNeedImprovement},
		{-5, RemarkNeedImprovement},
		{150, RemarkExcellent},
		{math.NaN(), RemarkNeedImprovement},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Remark(tt.p), "Remark(%v)", tt.p)
	}
}
