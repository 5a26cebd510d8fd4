package Reader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrUnreadable is reported when a directory cannot be listed, either
// because it vanished or because of permissions.
var ErrUnreadable = errors.New("directory not readable")

// Entry describes one child of a listed directory at listing time.
type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	Size    int64
	ModTime time.Time
	Kind    string
}

// Snapshot is the ordered listing of one directory at one instant.
type Snapshot []Entry

// DirReader lists immediate children of a directory.
type DirReader struct{}

// NewDirReader creates a directory reader
func NewDirReader() DirReader {
	return DirReader{}
}

// List returns the visible children of path, directories first, each
// group sorted case-insensitively by name. On failure it returns an
// empty snapshot together with ErrUnreadable; it never returns a
// partial listing.
func (DirReader) List(path string) (Snapshot, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	snapshot := make(Snapshot, 0, len(dirEntries))
	for _, e := range dirEntries {
		if isHidden(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// Entry vanished between ReadDir and stat
			continue
		}

		entry := Entry{
			Name:    e.Name(),
			Path:    filepath.Join(path, e.Name()),
			IsDir:   e.IsDir(),
			ModTime: info.ModTime(),
		}
		if !entry.IsDir {
			entry.Size = info.Size()
		}
		entry.Kind = KindOf(entry.Name, entry.IsDir)
		snapshot = append(snapshot, entry)
	}

	sort.SliceStable(snapshot, func(i, j int) bool {
		if snapshot[i].IsDir != snapshot[j].IsDir {
			return snapshot[i].IsDir
		}
		return strings.ToLower(snapshot[i].Name) < strings.ToLower(snapshot[j].Name)
	})

	return snapshot, nil
}

// KindOf derives the type label shown in the listing: "Folder" for
// directories, "GO File" style labels for files with an extension.
func KindOf(name string, isDir bool) string {
	if isDir {
		return "Folder"
	}
	ext := filepath.Ext(name)
	if len(ext) > 1 {
		return strings.ToUpper(ext[1:]) + " File"
	}
	return "File"
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
