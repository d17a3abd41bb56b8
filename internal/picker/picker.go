package picker

import (
	"errors"
	"fmt"
	"os"

	"github.com/dastanaron/recentdirs/internal/version"
)

// ClearChoice is the synthetic last row that requests clearing the store.
const ClearChoice = "⚠ Clear the list"

// Prompt shown above the folder list.
const Prompt = "Open recently used folder"

var (
	// ErrDismissed is returned when the user closes a chooser without
	// picking anything. The program exits 0 on it.
	ErrDismissed = errors.New("chooser dismissed")

	// ErrBackendUnavailable is returned when a dialog program cannot be
	// spawned at all; the caller may fall back to another chooser.
	ErrBackendUnavailable = errors.New("chooser backend unavailable")
)

// Chooser presents the folder list and the destructive-clear confirmation.
// Choose blocks until the user picks a row or dismisses the dialog; no
// timeout is applied.
type Chooser interface {
	Choose(folders []string, maxLen int) (string, error)
	ConfirmClear() (bool, error)
}

// Rows assembles the selectable rows: the user's home directory first,
// folders most-recent-first, the clear marker last. An empty folder list
// still yields the two synthetic rows.
func Rows(folders []string) []string {
	rows := make([]string, 0, len(folders)+2)
	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		rows = append(rows, home)
	}
	rows = append(rows, folders...)
	return append(rows, ClearChoice)
}

// WindowSize computes the chooser window geometry: width is bounded by 80%
// of the display width or eight times the longest path, whichever is
// smaller; height is 80% of the display height.
func WindowSize(maxLen, displayW, displayH int) (width, height int) {
	width = displayW * 8 / 10
	if byText := maxLen * 8; byText < width {
		width = byText
	}
	return width, displayH * 8 / 10
}

// Title is the dialog window title.
func Title() string {
	return fmt.Sprintf("%s %s", version.Name, version.Version)
}

// ConfirmText is the warning question asked before clearing the store.
const ConfirmText = "Delete the whole list of recently used folders?"

// Labels for the destructive confirmation.
const (
	ConfirmOKLabel     = "Delete"
	ConfirmCancelLabel = "Abort"
)

// Fixed size of the confirmation dialog.
const (
	ConfirmWidth  = 320
	ConfirmHeight = 120
)
