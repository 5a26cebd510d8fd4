package Cache

import (
	"path/filepath"
	"sort"

	"FileScout/Reader"

	"github.com/shirou/gopsutil/v3/disk"
)

// State is the expansion state of a tree node.
type State int

const (
	Collapsed State = iota
	Loading
	Expanded
)

// TreeNode represents one directory or file in the hierarchy view.
// Children are materialized lazily on first expansion.
type TreeNode struct {
	Path        string
	Name        string
	IsDir       bool
	HasChildren bool

	state    State
	children []*TreeNode
}

// State returns the node's expansion state.
func (n *TreeNode) State() State {
	return n.state
}

// Children returns the cached children. Empty until the node has been
// expanded.
func (n *TreeNode) Children() []*TreeNode {
	return n.children
}

// Lister is the directory listing dependency of the tree.
type Lister interface {
	List(path string) (Reader.Snapshot, error)
}

// Tree caches the lazily expanded directory hierarchy.
type Tree struct {
	lister Lister
	roots  []*TreeNode
}

// NewTree creates a tree cache backed by the given lister
func NewTree(lister Lister) *Tree {
	return &Tree{lister: lister}
}

// Roots returns one collapsed node per mounted volume. Discovery runs
// once; the fallback is a single "/" root when partitions cannot be
// read.
func (t *Tree) Roots() []*TreeNode {
	if t.roots == nil {
		t.roots = discoverRoots()
	}
	return t.roots
}

// SetRoots replaces volume discovery with an explicit set of root
// paths.
func (t *Tree) SetRoots(paths ...string) {
	roots := make([]*TreeNode, 0, len(paths))
	for _, p := range paths {
		roots = append(roots, newDirNode(p))
	}
	t.roots = roots
}

// Expand returns the node's children, listing the filesystem only on
// the first call. A failed listing reverts the node to Collapsed so a
// later expand can retry instead of caching the failure.
func (t *Tree) Expand(node *TreeNode) ([]*TreeNode, error) {
	if node.state == Expanded {
		return node.children, nil
	}

	node.state = Loading
	snapshot, err := t.lister.List(node.Path)
	if err != nil {
		node.state = Collapsed
		node.children = nil
		return nil, err
	}

	children := make([]*TreeNode, 0, len(snapshot))
	for _, entry := range snapshot {
		children = append(children, &TreeNode{
			Path:  entry.Path,
			Name:  entry.Name,
			IsDir: entry.IsDir,
			// Directories are assumed expandable without listing them
			HasChildren: entry.IsDir,
		})
	}
	node.children = children
	node.state = Expanded
	return children, nil
}

// Invalidate resets the node and all its descendants to Collapsed,
// discarding cached children. The next Expand re-reads the filesystem.
func (t *Tree) Invalidate(node *TreeNode) {
	for _, child := range node.children {
		t.Invalidate(child)
	}
	node.children = nil
	node.state = Collapsed
}

// FindByPath locates an already materialized node by path. It never
// expands anything while searching.
func (t *Tree) FindByPath(path string) *TreeNode {
	for _, root := range t.Roots() {
		if found := findByPath(root, path); found != nil {
			return found
		}
	}
	return nil
}

func findByPath(node *TreeNode, path string) *TreeNode {
	if node.Path == path {
		return node
	}
	for _, child := range node.children {
		if found := findByPath(child, path); found != nil {
			return found
		}
	}
	return nil
}

func newDirNode(path string) *TreeNode {
	name := filepath.Base(path)
	if name == string(filepath.Separator) || name == "." {
		name = path
	}
	return &TreeNode{
		Path:        path,
		Name:        name,
		IsDir:       true,
		HasChildren: true,
	}
}

func discoverRoots() []*TreeNode {
	partitions, err := disk.Partitions(false)
	if err != nil || len(partitions) == 0 {
		return []*TreeNode{newDirNode(string(filepath.Separator))}
	}

	seen := make(map[string]bool)
	var mounts []string
	for _, p := range partitions {
		if p.Mountpoint == "" || seen[p.Mountpoint] {
			continue
		}
		seen[p.Mountpoint] = true
		mounts = append(mounts, p.Mountpoint)
	}
	sort.Strings(mounts)

	roots := make([]*TreeNode, 0, len(mounts))
	for _, m := range mounts {
		roots = append(roots, newDirNode(m))
	}
	return roots
}
