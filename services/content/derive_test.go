package content

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Advanced Go: Concurrency!", "advanced-go-concurrency"},
		{"  Trim Me  ", "trim-me"},
		{"already-a-slug", "already-a-slug"},
		{"Multiple   Spaces & Symbols!!", "multiple-spaces-symbols"},
		{"Números y Acentós", "números-y-acentós"},
		{"123 Go", "123-go"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{59, "00:59"},
		{60, "01:00"},
		{90, "01:30"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3700, "1:01:40"},
		{7322, "2:02:02"},
		{-10, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDuration(tt.seconds); got != tt.want {
				t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}
