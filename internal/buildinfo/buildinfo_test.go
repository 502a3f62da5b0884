package buildinfo

import "testing"

func TestShortAndBanner(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)

	tests := []struct {
		version, commit, date string
		short, banner         string
	}{
		{"dev", "unknown", "unknown", "dev", "matrix clock dev"},
		{"dev", "abc123", "unknown", "abc123", "matrix clock abc123"},
		{"v1.0.0", "abc123", "2024-05-01", "v1.0.0", "matrix clock v1.0.0 (2024-05-01)"},
	}
	for _, tt := range tests {
		Version, Commit, Date = tt.version, tt.commit, tt.date
		if got := Short(); got != tt.short {
			t.Errorf("Short() = %q, want %q", got, tt.short)
		}
		if got := Banner(); got != tt.banner {
			t.Errorf("Banner() = %q, want %q", got, tt.banner)
		}
	}
}
