package Nav

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"FileScout/Cache"
	"FileScout/Reader"
)

var (
	// ErrNotADirectory is reported when a navigation target is missing
	// or not a directory.
	ErrNotADirectory = errors.New("not a directory")
	// ErrInvalidPath is reported when address bar text cannot be
	// resolved to an existing directory.
	ErrInvalidPath = errors.New("invalid path")
)

// Lister is the directory listing dependency of the controller.
type Lister interface {
	List(path string) (Reader.Snapshot, error)
}

// DeleteFailure records one entry that could not be removed.
type DeleteFailure struct {
	Path string
	Err  error
}

func (f DeleteFailure) Error() string {
	return fmt.Sprintf("delete %s: %v", f.Path, f.Err)
}

// Controller owns the current location and coordinates history, reads
// and the tree cache. It is the single source of truth both views
// render from.
type Controller struct {
	lister   Lister
	history  *History
	tree     *Cache.Tree
	current  string
	snapshot Reader.Snapshot

	remove func(string) error
}

// NewController creates a controller in the uninitialized state; the
// first NavigateTo establishes the current location.
func NewController(lister Lister, tree *Cache.Tree) *Controller {
	return &Controller{
		lister:  lister,
		history: NewHistory(),
		tree:    tree,
		remove:  os.Remove,
	}
}

// Current returns the current location, empty before the first
// navigation.
func (c *Controller) Current() string {
	return c.current
}

// Snapshot returns the listing of the current location as of the last
// operation.
func (c *Controller) Snapshot() Reader.Snapshot {
	return c.snapshot
}

// CanBack reports whether Back would move.
func (c *Controller) CanBack() bool {
	return c.history.CanBack()
}

// CanForward reports whether Forward would move.
func (c *Controller) CanForward() bool {
	return c.history.CanForward()
}

// NavigateTo makes path the current location, pushing the previous one
// onto the back history and clearing the forward history. The listing
// happens before any state changes, so a target that fails to resolve
// or read leaves current and history untouched.
func (c *Controller) NavigateTo(path string) (Reader.Snapshot, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}

	snapshot, err := c.lister.List(path)
	if err != nil {
		return nil, err
	}

	c.history.Record(c.current)
	c.current = path
	c.snapshot = snapshot
	return snapshot, nil
}

// NavigateToPath resolves address bar text and navigates to it. The
// state is left untouched when the text does not name an existing
// directory.
func (c *Controller) NavigateToPath(text string) (Reader.Snapshot, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrInvalidPath
	}
	path, err := filepath.Abs(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, text)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, text)
	}
	return c.NavigateTo(path)
}

// Up navigates to the parent of the current location. At a filesystem
// root it is a no-op: current and both history stacks stay unchanged.
func (c *Controller) Up() (Reader.Snapshot, error) {
	if c.current == "" {
		return c.snapshot, nil
	}
	parent := filepath.Dir(c.current)
	if parent == c.current {
		return c.snapshot, nil
	}
	return c.NavigateTo(parent)
}

// Home navigates to the user's home directory.
func (c *Controller) Home() (Reader.Snapshot, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotADirectory, err)
	}
	return c.NavigateTo(home)
}

// Back moves to the previous location without recording a new history
// entry. A no-op when the back stack is empty. A location that became
// unreadable since it was visited still becomes current, with an empty
// listing and the read error surfaced.
func (c *Controller) Back() (Reader.Snapshot, error) {
	loc, ok := c.history.Back(c.current)
	if !ok {
		return c.snapshot, nil
	}
	return c.relist(loc)
}

// Forward moves to the next location, symmetric to Back.
func (c *Controller) Forward() (Reader.Snapshot, error) {
	loc, ok := c.history.Forward(c.current)
	if !ok {
		return c.snapshot, nil
	}
	return c.relist(loc)
}

// Refresh re-lists the current location without touching history and
// invalidates its subtree in the tree cache so both views converge on
// the same filesystem truth.
func (c *Controller) Refresh() (Reader.Snapshot, error) {
	if c.current == "" {
		return c.snapshot, nil
	}
	if c.tree != nil {
		if node := c.tree.FindByPath(c.current); node != nil {
			c.tree.Invalidate(node)
		}
	}
	snapshot, err := c.relist(c.current)
	return snapshot, err
}

// Delete removes each path independently: one failure never skips the
// remaining entries. After attempting all of them the current location
// is refreshed regardless of partial failure, so the returned snapshot
// reflects whatever survived.
func (c *Controller) Delete(paths []string) (Reader.Snapshot, []DeleteFailure) {
	var failures []DeleteFailure
	for _, p := range paths {
		if err := c.remove(p); err != nil {
			failures = append(failures, DeleteFailure{Path: p, Err: err})
		}
	}
	snapshot, _ := c.Refresh()
	return snapshot, failures
}

func (c *Controller) relist(loc string) (Reader.Snapshot, error) {
	snapshot, err := c.lister.List(loc)
	c.current = loc
	c.snapshot = snapshot
	return snapshot, err
}
