package utils

import (
	"testing"
	"time"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"simple", "Institution Dashboard", "institution-dashboard", false},
		{"diacritics removed", "Géraldine's Exposé", "geraldine-s-expose", false},
		{"punctuation becomes hyphens", "Q1/Q2 Revenue", "q1-q2-revenue", false},
		{"leading and trailing noise trimmed", "  --Enrollments--  ", "enrollments", false},
		{"empty input", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateSlug(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("got err %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, 2, 3, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		context  string
		dataType string
		want     string
	}{
		{"plain", "institution", "enrollments", "institution_enrollments_2025-02-03.csv"},
		{"free text context", "Mentor Earnings", "monthly revenue", "mentor-earnings_monthly-revenue_2025-02-03.csv"},
		{"empty context falls back", "", "enrollments", "export_enrollments_2025-02-03.csv"},
		{"empty data type falls back", "institution", "", "institution_data_2025-02-03.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExportFilename(tt.context, tt.dataType, now); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
