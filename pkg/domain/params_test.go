package domain_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/aretw0/countdown/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeParams_Date(t *testing.T) {
	target := time.Date(2030, time.January, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
	}{
		{"time value", target},
		{"rfc3339 string", target.Format(time.RFC3339)},
		{"epoch millis int64", target.UnixMilli()},
		{"epoch millis float64", float64(target.UnixMilli())},
		{"epoch millis json.Number", json.Number("1893542400000")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p domain.DateSelectedParams
			err := domain.DecodeParams(map[string]any{"date": tt.value}, &p)
			require.NoError(t, err)
			assert.True(t, target.Equal(p.Date), "got %v", p.Date)
		})
	}
}

func TestDecodeParams_NaNIsZeroTime(t *testing.T) {
	var p domain.DateSelectedParams
	err := domain.DecodeParams(map[string]any{"date": math.NaN()}, &p)
	require.NoError(t, err)
	assert.True(t, p.Date.IsZero())
}

func TestDecodeParams_Error(t *testing.T) {
	var p domain.ErrorParams
	require.NoError(t, domain.DecodeParams(domain.ErrorInput("past date").Parameters, &p))
	assert.Equal(t, "past date", p.Message)
}

func TestDecodeParams_UnparseableString(t *testing.T) {
	var p domain.DateSelectedParams
	err := domain.DecodeParams(map[string]any{"date": "not a date"}, &p)
	assert.Error(t, err)
}
