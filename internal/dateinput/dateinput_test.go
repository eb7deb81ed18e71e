package dateinput_test

import (
	"testing"
	"time"

	"github.com/aretw0/countdown/internal/dateinput"
	"github.com/aretw0/countdown/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)

	tests := []struct {
		text string
		want time.Time
	}{
		{"2026-12-25", time.Date(2026, time.December, 25, 0, 0, 0, 0, loc)},
		{"2024-02-29", time.Date(2024, time.February, 29, 0, 0, 0, 0, loc)},
		{"2025-02-30", time.Date(2025, time.March, 2, 0, 0, 0, 0, loc)},
		{"2025-13-01", time.Date(2026, time.January, 1, 0, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := dateinput.Parse(tt.text, loc)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
			assert.Equal(t, loc, got.Location())
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, text := range []string{"", "2026-1-5", "26-01-05", "2026/01/05", "2026-01-05T00:00", " 2026-01-05", "tomorrow"} {
		_, err := dateinput.Parse(text, time.UTC)
		assert.Error(t, err, text)
	}
}

func TestToInput(t *testing.T) {
	in := dateinput.ToInput("2030-01-02", time.UTC)
	assert.Equal(t, domain.InputDateSelected, in.ID)
	assert.Equal(t, time.Date(2030, time.January, 2, 0, 0, 0, 0, time.UTC), in.Parameters[domain.ParamDate])

	bad := dateinput.ToInput("02/01/2030", time.UTC)
	assert.Equal(t, domain.InputError, bad.ID)
	assert.Equal(t, dateinput.MsgMalformed, bad.Parameters[domain.ParamMessage])
}
