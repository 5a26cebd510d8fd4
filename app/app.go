package app

import (
	"os"

	"FileScout/Cache"
	"FileScout/Nav"
	"FileScout/Reader"
	"FileScout/config"
	"FileScout/styling"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	app        *tview.Application
	pages      *tview.Pages
	flex       *tview.Flex
	treeView   *tview.TreeView
	fileTable  *tview.Table
	addressBar *tview.InputField
	headerView *tview.TextView
	statusView *tview.TextView
	footerView *tview.TextView

	controller *Nav.Controller
	dirTree    *Cache.Tree
	marked     map[string]bool

	confirmDelete bool
	timeFormat    string
)

// StartApp runs the two-pane explorer until the user quits.
func StartApp(cfg config.Config) {
	app = tview.NewApplication()
	marked = make(map[string]bool)
	confirmDelete = cfg.ConfirmDelete
	timeFormat = cfg.TimeFormat

	reader := Reader.NewDirReader()
	dirTree = Cache.NewTree(reader)
	controller = Nav.NewController(reader, dirTree)

	// Create styled header
	headerStyle := styling.NewStyleBuilder().
		WithBold().
		WithTextColor(tcell.ColorBlue).
		Build()
	headerText := styling.ApplyStyle("FileScout, browse and tidy your directories", headerStyle)

	headerView = tview.NewTextView().
		SetText(headerText).
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	addressBar = tview.NewInputField().SetLabel(" Address: ")
	addressBar.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			navigateToAddress(addressBar.GetText())
			app.SetFocus(fileTable)
		case tcell.KeyEscape:
			addressBar.SetText(controller.Current())
			app.SetFocus(fileTable)
		}
	})

	// Create tree view over the volume roots; children appear lazily
	// on expansion
	treeRoot := tview.NewTreeNode("Volumes").SetSelectable(false)
	for _, root := range dirTree.Roots() {
		treeRoot.AddChild(newTreeNode(root))
	}
	treeView = tview.NewTreeView().
		SetRoot(treeRoot).
		SetTopLevel(1)
	treeView.SetSelectedFunc(onTreeSelected)

	// Create the flat listing table
	fileTable = tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)
	fileTable.SetSelectedFunc(func(row, column int) {
		activateRow(row)
	})

	statusView = tview.NewTextView().
		SetDynamicColors(true).
		SetText(" Ready")

	// Create styled footer
	footerStyle := styling.NewStyleBuilder().
		WithTextColor(tcell.ColorGray).
		Build()
	footerText := styling.ApplyStyle("ENTER: Open | b/f: Back/Forward | BACKSPACE: Up | h: Home | SPACE: Refresh | m: Mark | d: Delete | a: Address | TAB: Pane | q: Quit", footerStyle)

	footerView = tview.NewTextView().
		SetText(footerText).
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	split := tview.NewFlex().
		AddItem(treeView, 0, 1, false).
		AddItem(fileTable, 0, 2, true)

	flex = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(addressBar, 1, 0, false).
		AddItem(split, 0, 1, true).
		AddItem(statusView, 1, 0, false).
		AddItem(footerView, 1, 0, false)

	pages = tview.NewPages().AddPage("main", flex, true, true)

	// Handle key events
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if app.GetFocus() == addressBar {
			return event
		}
		switch event.Key() {
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			goUp()
			return nil
		case tcell.KeyTab:
			switchPane()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				app.Stop()
				return nil
			case 'b':
				goBack()
				return nil
			case 'f':
				goForward()
				return nil
			case 'u':
				goUp()
				return nil
			case 'h':
				goHome()
				return nil
			case ' ', 'r':
				refreshCurrent()
				return nil
			case 'm':
				toggleMark()
				return nil
			case 'd':
				deleteSelection()
				return nil
			case 'a':
				app.SetFocus(addressBar)
				return nil
			}
		}
		return event
	})

	startPath := cfg.StartPath
	if startPath == "" {
		startPath = homeOrRoot()
	}
	if _, err := controller.NavigateTo(startPath); err != nil {
		// Configured start path is gone; fall back
		if _, err := controller.NavigateTo(homeOrRoot()); err != nil {
			controller.NavigateTo("/")
		}
	}
	afterNavigation()

	// Start the application
	if err := app.SetRoot(pages, true).EnableMouse(true).Run(); err != nil {
		panic(err)
	}
}

func homeOrRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "/"
	}
	return home
}

func switchPane() {
	if app.GetFocus() == treeView {
		app.SetFocus(fileTable)
	} else {
		app.SetFocus(treeView)
	}
}
