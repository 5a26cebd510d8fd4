package app

import (
	"fmt"

	"FileScout/Cache"
	"FileScout/Utils"
	"FileScout/styling"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// newTreeNode wraps a cache node for display. The cache node travels
// as the tview reference so handlers can get back to it.
func newTreeNode(node *Cache.TreeNode) *tview.TreeNode {
	text := Utils.GetFileIcon(node.Name, node.IsDir) + " " + node.Name
	color := tcell.ColorWhite
	if node.IsDir {
		color = tcell.ColorGreen
	}
	return tview.NewTreeNode(text).
		SetReference(node).
		SetSelectable(true).
		SetColor(color).
		SetExpanded(false)
}

// populateChildren mirrors the cache node's children under the tview
// node, replacing whatever was displayed before.
func populateChildren(tnode *tview.TreeNode, children []*Cache.TreeNode) {
	tnode.ClearChildren()
	for _, child := range children {
		tnode.AddChild(newTreeNode(child))
	}
}

// renderTable repaints the flat listing from the controller's current
// snapshot. Ordering comes from the reader and is preserved as-is.
func renderTable() {
	fileTable.Clear()

	headers := []string{"Name", "Type", "Size", "Last Modified"}
	for col, h := range headers {
		fileTable.SetCell(0, col, tview.NewTableCell(h).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
	}

	for i, entry := range controller.Snapshot() {
		row := i + 1

		prefix := "  "
		if marked[entry.Path] {
			prefix = "* "
		}
		nameColor := tcell.ColorWhite
		if entry.IsDir {
			nameColor = tcell.ColorGreen
		}
		name := prefix + Utils.GetFileIcon(entry.Name, entry.IsDir) + " " + entry.Name
		fileTable.SetCell(row, 0, tview.NewTableCell(name).
			SetTextColor(nameColor).
			SetExpansion(1).
			SetReference(entry))

		fileTable.SetCell(row, 1, tview.NewTableCell(entry.Kind))

		size := ""
		if !entry.IsDir {
			size = Utils.FormatSize(entry.Size)
		}
		fileTable.SetCell(row, 2, tview.NewTableCell(size).
			SetAlign(tview.AlignRight))

		fileTable.SetCell(row, 3, tview.NewTableCell(Utils.FormatTime(entry.ModTime, timeFormat)))
	}

	if fileTable.GetRowCount() > 1 {
		fileTable.Select(1, 0)
	}
	fileTable.ScrollToBeginning()
}

// afterNavigation pulls the new state into every widget: address bar,
// table, tree selection and status line.
func afterNavigation() {
	addressBar.SetText(controller.Current())
	renderTable()
	syncTreeSelection()
	setStatus(statusNav(len(controller.Snapshot())))
}

// syncTreeSelection highlights the tree node matching the current
// location when it is already materialized. Ancestor paths are not
// force-expanded.
func syncTreeSelection() {
	root := treeView.GetRoot()
	if root == nil {
		return
	}
	if found := findNodeByPath(root, controller.Current()); found != nil {
		treeView.SetCurrentNode(found)
	}
}

// findNodeByPath finds a displayed tree node by path
func findNodeByPath(node *tview.TreeNode, targetPath string) *tview.TreeNode {
	if ref, ok := node.GetReference().(*Cache.TreeNode); ok && ref.Path == targetPath {
		return node
	}
	for _, child := range node.GetChildren() {
		if found := findNodeByPath(child, targetPath); found != nil {
			return found
		}
	}
	return nil
}

func setStatus(text string) {
	statusView.SetText(text)
}

func showError(err error) {
	setStatus("[red] " + err.Error())
}

// statusNav renders the item count with history hints.
func statusNav(items int) string {
	hints := ""
	if controller.CanBack() {
		hints += " ←"
	}
	if controller.CanForward() {
		hints += " →"
	}
	return " " + styling.CreateInfoText("Items", fmt.Sprintf("%d", items), tcell.ColorGreen) + hints
}
