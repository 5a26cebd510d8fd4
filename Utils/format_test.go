package Utils

import (
	"testing"
	"time"
)

func TestFormatSize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1 << 20, "1.0 MB"},
		{1 << 30, "1.0 GB"},
		{1 << 40, "1.0 TB"},
	}
	for _, c := range cases {
		if got := FormatSize(c.size); got != c.want {
			t.Errorf("FormatSize(%d) = %q, want %q", c.size, got, c.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2024, 5, 17, 9, 30, 5, 0, time.UTC)
	if got := FormatTime(ts, ""); got != "2024-05-17 09:30:05" {
		t.Errorf("FormatTime default = %q", got)
	}
	if got := FormatTime(ts, "02/01/2006"); got != "17/05/2024" {
		t.Errorf("FormatTime custom = %q", got)
	}
}

func TestGetFileIcon(t *testing.T) {
	if got := GetFileIcon("src", true); got != "📁" {
		t.Errorf("dir icon = %q", got)
	}
	if got := GetFileIcon("main.go", false); got != "🔷" {
		t.Errorf("go icon = %q", got)
	}
	if got := GetFileIcon("unknown.bin", false); got != "📄" {
		t.Errorf("default icon = %q", got)
	}
}
