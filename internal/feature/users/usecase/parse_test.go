package usecase

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{raw: "1", want: 1},
		{raw: "42", want: 42},
		{raw: "", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "1.5", wantErr: true},
		{raw: "12abc", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			id, err := parseID(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestParseAge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      any
		want    int
		wantErr bool
	}{
		{name: "json number", in: float64(30), want: 30},
		{name: "int", in: 57, want: 57},
		{name: "json.Number", in: json.Number("18"), want: 18},
		{name: "numeric string", in: "25", want: 25},
		{name: "fraction rounds up", in: 0.5, want: 1},
		{name: "missing", in: nil, wantErr: true},
		{name: "zero", in: float64(0), wantErr: true},
		{name: "negative", in: float64(-1), wantErr: true},
		{name: "NaN", in: math.NaN(), wantErr: true},
		{name: "infinity", in: math.Inf(1), wantErr: true},
		{name: "not a number", in: "thirty", wantErr: true},
		{name: "empty string", in: "", wantErr: true},
		{name: "bool", in: true, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			age, err := parseAge(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAge)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, age)
		})
	}
}

func TestParseDob(t *testing.T) {
	t.Parallel()

	want := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"1990-01-01", "1990-01-01T00:00:00Z", "1990-01-01T00:00:00.000Z", "1990-01-01T09:00:00+09:00"} {
		got, err := parseDob(raw)
		assert.NoError(t, err, raw)
		assert.True(t, want.Equal(got), "%s parsed to %v", raw, got)
		assert.Equal(t, time.UTC, got.Location())
	}

	_, err := parseDob("01/02/1990")
	assert.ErrorIs(t, err, ErrInvalidDob)
}
