package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraduationYear(t *testing.T) {
	tests := []struct {
		name  string
		epoch int64
		want  int
	}{
		{"new year 2025 utc", 1735689600, 2025},
		{"one second before 2025", 1735689599, 2024},
		{"epoch", 0, 1970},
		{"mid 2030", time.Date(2030, time.June, 15, 12, 0, 0, 0, time.UTC).Unix(), 2030},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GraduationYear(tt.epoch))
		})
	}
}

func TestBadge_View(t *testing.T) {
	b := &Badge{
		ID:             "u1",
		FullName:       "John Appleseed",
		University:     "MIT",
		Major:          "CS",
		GraduationDate: 1735689600,
		GitHub:         "https://github.com/john",
	}

	want := BadgeView{
		ID:             "u1",
		FullName:       "John Appleseed",
		University:     "MIT",
		Major:          "CS",
		GraduationYear: 2025,
		GitHub:         "https://github.com/john",
	}
	if diff := cmp.Diff(want, b.View()); diff != "" {
		t.Fatalf("View() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "MIT | Year of 2025", b.View().Subtitle())
}

func TestBadge_DecodesServerJSON(t *testing.T) {
	body := `{"id":"abc","full_name":"Jane","university":"Uni","major":"Math","graduation_date":1735689600,"github":"https://github.com/jane"}`

	var b Badge
	require.NoError(t, json.Unmarshal([]byte(body), &b))
	assert.Equal(t, "abc", b.ID)
	assert.Equal(t, int64(1735689600), b.GraduationDate)
	assert.Equal(t, "https://github.com/jane", b.GitHub)
}

func TestBadgeForm_Details(t *testing.T) {
	f := BadgeForm{
		FullName:       "John",
		University:     "MIT",
		Major:          "CS",
		GraduationDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		GitHub:         "https://github.com/john",
	}

	d := f.Details()
	assert.Equal(t, int64(1735689600), d.GraduationDate)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"full_name":"John","university":"MIT","major":"CS","graduation_date":1735689600,"github":"https://github.com/john"}`,
		string(raw))
}
