package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_scorePercentage(t *testing.T) {
	tests := []struct {
		correct, total int
		want           float64
	}{
		{0, 0, 0},
		{0, 2, 0},
		{1, 2, 50},
		{2, 2, 100},
		{1, 3, 100.0 / 3.0},
		{7, 10, 70},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, scorePercentage(tt.correct, tt.total), 0.0001, "%d/%d", tt.correct, tt.total)
	}
}
