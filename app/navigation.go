package app

import (
	"fmt"
	"os/exec"
	"runtime"

	"FileScout/Cache"
	"FileScout/Reader"

	"github.com/rivo/tview"
)

// onTreeSelected expands a directory node (listing it on first
// expansion only) and makes it the current location.
func onTreeSelected(tnode *tview.TreeNode) {
	ref, ok := tnode.GetReference().(*Cache.TreeNode)
	if !ok || ref == nil {
		return
	}
	if !ref.IsDir {
		openFile(ref.Path)
		return
	}

	if tnode.IsExpanded() {
		tnode.SetExpanded(false)
	} else {
		children, err := dirTree.Expand(ref)
		if err != nil {
			showError(err)
			return
		}
		if len(tnode.GetChildren()) == 0 {
			populateChildren(tnode, children)
		}
		tnode.SetExpanded(true)
	}

	if _, err := controller.NavigateTo(ref.Path); err != nil {
		showError(err)
		return
	}
	afterNavigation()
}

// activateRow opens the entry under the cursor: directories become the
// current location, files are handed to the OS opener.
func activateRow(row int) {
	entry, ok := entryAt(row)
	if !ok {
		return
	}
	if entry.IsDir {
		if _, err := controller.NavigateTo(entry.Path); err != nil {
			showError(err)
			return
		}
		afterNavigation()
		return
	}
	openFile(entry.Path)
}

func navigateToAddress(text string) {
	if _, err := controller.NavigateToPath(text); err != nil {
		showError(err)
		addressBar.SetText(controller.Current())
		return
	}
	afterNavigation()
}

func goBack() {
	if _, err := controller.Back(); err != nil {
		showError(err)
	}
	afterNavigation()
}

func goForward() {
	if _, err := controller.Forward(); err != nil {
		showError(err)
	}
	afterNavigation()
}

// goUp moves to the parent directory; a no-op at a filesystem root.
func goUp() {
	if _, err := controller.Up(); err != nil {
		showError(err)
		return
	}
	afterNavigation()
}

func goHome() {
	if _, err := controller.Home(); err != nil {
		showError(err)
		return
	}
	afterNavigation()
}

// refreshCurrent re-lists the current directory and rebuilds its
// subtree display from the invalidated cache.
func refreshCurrent() {
	if _, err := controller.Refresh(); err != nil {
		showError(err)
	}
	rebuildCurrentSubtree()
	afterNavigation()
}

// rebuildCurrentSubtree re-expands the displayed node for the current
// location after its cache entry was invalidated.
func rebuildCurrentSubtree() {
	root := treeView.GetRoot()
	if root == nil {
		return
	}
	tnode := findNodeByPath(root, controller.Current())
	if tnode == nil {
		return
	}
	ref, ok := tnode.GetReference().(*Cache.TreeNode)
	if !ok {
		return
	}
	tnode.ClearChildren()
	if tnode.IsExpanded() {
		if children, err := dirTree.Expand(ref); err == nil {
			populateChildren(tnode, children)
		}
	}
}

// toggleMark marks or unmarks the entry under the cursor for batch
// deletion.
func toggleMark() {
	row, _ := fileTable.GetSelection()
	entry, ok := entryAt(row)
	if !ok {
		return
	}
	if marked[entry.Path] {
		delete(marked, entry.Path)
	} else {
		marked[entry.Path] = true
	}
	renderTable()
	if row < fileTable.GetRowCount() {
		fileTable.Select(row, 0)
	}
}

// deleteSelection deletes the marked entries, or the entry under the
// cursor when nothing is marked.
func deleteSelection() {
	var paths []string
	for p := range marked {
		paths = append(paths, p)
	}
	if len(paths) == 0 {
		row, _ := fileTable.GetSelection()
		entry, ok := entryAt(row)
		if !ok {
			return
		}
		paths = []string{entry.Path}
	}

	if confirmDelete {
		confirmThenDelete(paths)
		return
	}
	doDelete(paths)
}

func confirmThenDelete(paths []string) {
	what := "the selected file"
	if len(paths) > 1 {
		what = fmt.Sprintf("the selected %d files", len(paths))
	}
	modal := tview.NewModal().
		SetText(fmt.Sprintf("Are you sure you want to delete %s?", what)).
		AddButtons([]string{"Delete", "Cancel"}).
		SetDoneFunc(func(index int, label string) {
			pages.RemovePage("confirm")
			app.SetFocus(fileTable)
			if label == "Delete" {
				doDelete(paths)
			}
		})
	pages.AddPage("confirm", modal, true, true)
}

// doDelete attempts every path independently, then repaints from the
// refreshed snapshot. Failures are reported in the status line.
func doDelete(paths []string) {
	_, failures := controller.Delete(paths)
	for _, p := range paths {
		delete(marked, p)
	}
	rebuildCurrentSubtree()
	afterNavigation()
	if len(failures) > 0 {
		showError(fmt.Errorf("%d of %d entries not deleted: %v", len(failures), len(paths), failures[0].Err))
	} else {
		setStatus(fmt.Sprintf(" Deleted %d item(s)", len(paths)))
	}
}

func entryAt(row int) (Reader.Entry, bool) {
	cell := fileTable.GetCell(row, 0)
	if cell == nil {
		return Reader.Entry{}, false
	}
	entry, ok := cell.GetReference().(Reader.Entry)
	return entry, ok
}

// openCommand hands a file to the OS-associated application.
var openCommand = func(path string) error {
	opener := "xdg-open"
	if runtime.GOOS == "darwin" {
		opener = "open"
	}
	return exec.Command(opener, path).Start()
}

func openFile(path string) {
	if err := openCommand(path); err != nil {
		showError(fmt.Errorf("open %s: %w", path, err))
		return
	}
	setStatus(" Opened " + path)
}
