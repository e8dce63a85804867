package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsp(s string) *time.Time {
	t := ts(s)
	return &t
}

func TestPeriodsOverlap(t *testing.T) {
	tests := []struct {
		name string
		s1   time.Time
		e1   *time.Time
		s2   time.Time
		e2   *time.Time
		want bool
	}{
		{"disjoint", ts("2025-01-01"), tsp("2025-02-01"), ts("2025-03-01"), tsp("2025-04-01"), false},
		{"identical", ts("2025-01-01"), tsp("2025-02-01"), ts("2025-01-01"), tsp("2025-02-01"), true},
		{"partial", ts("2025-01-01"), tsp("2025-03-01"), ts("2025-02-01"), tsp("2025-04-01"), true},
		{"contained", ts("2025-01-01"), tsp("2025-12-01"), ts("2025-03-01"), tsp("2025-04-01"), true},
		{"touching endpoints", ts("2025-01-01"), tsp("2025-02-01"), ts("2025-02-01"), tsp("2025-03-01"), true},
		{"open end overlaps later period", ts("2025-01-01"), nil, ts("2030-01-01"), tsp("2030-06-01"), true},
		{"open end before other start", ts("2025-06-01"), tsp("2025-07-01"), ts("2025-08-01"), nil, false},
		{"both open", ts("2025-01-01"), nil, ts("2030-01-01"), nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, periodsOverlap(tt.s1, tt.e1, tt.s2, tt.e2))
			assert.Equal(t, tt.want, periodsOverlap(tt.s2, tt.e2, tt.s1, tt.e1), "overlap must be symmetric")
		})
	}
}

func TestValidatePeriod(t *testing.T) {
	assert.NoError(t, validatePeriod(ts("2025-01-01"), tsp("2025-06-01")))
	assert.NoError(t, validatePeriod(ts("2025-01-01"), nil))

	assert.ErrorIs(t, validatePeriod(time.Time{}, nil), ErrPeriodInvalid)
	assert.ErrorIs(t, validatePeriod(ts("2025-06-01"), tsp("2025-01-01")), ErrPeriodInvalid)
	assert.ErrorIs(t, validatePeriod(ts("2025-01-01"), tsp("2025-01-01")), ErrPeriodInvalid)
}

func TestExtensionFromContentType(t *testing.T) {
	ext, err := extensionFromContentType("image/png")
	require.NoError(t, err)
	assert.Equal(t, ".png", ext)

	ext, err = extensionFromContentType("image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, ".jpg", ext)

	_, err = extensionFromContentType("application/pdf")
	assert.ErrorIs(t, err, ErrUnsupportedImageType)

	_, err = extensionFromContentType("")
	assert.ErrorIs(t, err, ErrUnsupportedImageType)
}

func TestPublicURLNilUploader(t *testing.T) {
	key := "games/1/background.png"
	assert.Nil(t, publicURL(nil, &key))
	assert.Nil(t, publicURL(nil, nil))
}
