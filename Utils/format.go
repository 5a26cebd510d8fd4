package Utils

import (
	"path/filepath"
	"strconv"
	"time"
)

// TimeFormat is the default layout for last-modified timestamps.
const TimeFormat = "2006-01-02 15:04:05"

func FormatSize(size int64) string {
	const (
		KB = 1 << 10
		MB = 1 << 20
		GB = 1 << 30
		TB = 1 << 40
	)

	switch {
	case size >= TB:
		return formatFloat(float64(size)/TB) + " TB"
	case size >= GB:
		return formatFloat(float64(size)/GB) + " GB"
	case size >= MB:
		return formatFloat(float64(size)/MB) + " MB"
	case size >= KB:
		return formatFloat(float64(size)/KB) + " KB"
	default:
		return strconv.FormatInt(size, 10) + " B"
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

// FormatTime renders a last-modified timestamp with the given layout,
// falling back to TimeFormat when layout is empty.
func FormatTime(t time.Time, layout string) string {
	if layout == "" {
		layout = TimeFormat
	}
	return t.Format(layout)
}

// GetFileIcon returns a display icon for a file or folder name
func GetFileIcon(name string, isDir bool) string {
	if isDir {
		return "📁"
	}
	ext := filepath.Ext(name)
	switch ext {
	case ".go":
		return "🔷"
	case ".txt", ".md":
		return "📝"
	case ".jpg", ".png", ".gif":
		return "🖼️"
	case ".mp3", ".wav":
		return "🎵"
	case ".mp4", ".avi", ".mov":
		return "🎞️"
	case ".pdf":
		return "📕"
	case ".zip", ".tar", ".gz":
		return "📦"
	case ".exe", ".app":
		return "⚙️"
	default:
		return "📄"
	}
}
