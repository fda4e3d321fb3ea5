package model

import "testing"

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2025-03-10", want: "2025-03-10"},
		{in: "  2024-02-29 ", want: "2024-02-29"},
		{in: "0001-01-01", want: "0001-01-01"},
		{in: "9999-12-31", want: "9999-12-31"},
		{in: "2025-13-40", wantErr: true},
		{in: "2025-02-29", wantErr: true},
		{in: "2025-04-31", wantErr: true},
		{in: "2025-1-05", wantErr: true},
		{in: "25-01-05", wantErr: true},
		{in: "2025/01/05", wantErr: true},
		{in: "2025-01-05T10:00", wantErr: true},
		{in: "tomorrow", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDeadline(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDeadline(%q) = %v, want error", tt.in, d)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDeadline(%q): %v", tt.in, err)
			}
			if got := FormatDeadline(d); got != tt.want {
				t.Errorf("round trip: got %q, want %q", got, tt.want)
			}
			if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
				t.Errorf("deadline carries a time of day: %v", d)
			}
		})
	}
}

func TestCompletedLabel(t *testing.T) {
	if got := CompletedLabel(true); got != "Yes" {
		t.Errorf("CompletedLabel(true) = %q", got)
	}
	if got := CompletedLabel(false); got != "No" {
		t.Errorf("CompletedLabel(false) = %q", got)
	}
}
