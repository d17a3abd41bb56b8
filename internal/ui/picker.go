package ui

import (
	"fmt"

	"github.com/dastanaron/recentdirs/internal/picker"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// App is the in-terminal chooser used when no dialog program can be
// spawned (or when explicitly requested). It satisfies picker.Chooser.
type App struct{}

// NewApp creates a new terminal chooser.
func NewApp() *App {
	return &App{}
}

// Choose shows the selectable rows in a tview list and blocks until the
// user picks one or dismisses the screen with Esc or q.
func (a *App) Choose(folders []string, maxLen int) (string, error) {
	app := tview.NewApplication()
	list := tview.NewList().ShowSecondaryText(false)
	list.SetBorder(true).SetTitle(picker.Title())

	var choice string
	chosen := false
	for _, row := range picker.Rows(folders) {
		row := row
		list.AddItem(row, "", 0, func() {
			choice = row
			chosen = true
			app.Stop()
		})
	}

	list.SetDoneFunc(func() {
		app.Stop()
	})
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	frame := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewTextView().SetText(picker.Prompt), 1, 0, false).
		AddItem(list, 0, 1, true)

	if err := app.SetRoot(frame, true).SetFocus(list).Run(); err != nil {
		return "", fmt.Errorf("%w: terminal ui: %v", picker.ErrBackendUnavailable, err)
	}
	if !chosen {
		return "", picker.ErrDismissed
	}
	return choice, nil
}

// ConfirmClear asks the destructive-clear question in a modal with
// Delete/Abort buttons. Only an explicit Delete confirms.
func (a *App) ConfirmClear() (bool, error) {
	app := tview.NewApplication()
	confirmed := false

	modal := tview.NewModal().
		SetText(picker.ConfirmText).
		AddButtons([]string{picker.ConfirmCancelLabel, picker.ConfirmOKLabel}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			confirmed = buttonLabel == picker.ConfirmOKLabel
			app.Stop()
		})
	modal.SetBorder(true).SetTitle("Confirm")

	if err := app.SetRoot(modal, true).SetFocus(modal).Run(); err != nil {
		return false, fmt.Errorf("%w: terminal ui: %v", picker.ErrBackendUnavailable, err)
	}
	return confirmed, nil
}
