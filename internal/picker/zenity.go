package picker

import (
	"fmt"

	"github.com/dastanaron/recentdirs/internal/display"
)

// Zenity presents dialogs through the zenity program (GNOME and most
// GTK-based desktops).
type Zenity struct{}

func (Zenity) Choose(folders []string, maxLen int) (string, error) {
	dw, dh := display.Primary()
	w, h := WindowSize(maxLen, dw, dh)
	res, err := run("zenity", zenityListArgs(Rows(folders), w, h)...)
	if err != nil {
		return "", fmt.Errorf("%w: zenity: %v", ErrBackendUnavailable, err)
	}
	if res.ExitCode != 0 {
		return "", ErrDismissed
	}
	return res.Choice(), nil
}

func (Zenity) ConfirmClear() (bool, error) {
	res, err := run("zenity", zenityConfirmArgs()...)
	if err != nil {
		return false, fmt.Errorf("%w: zenity: %v", ErrBackendUnavailable, err)
	}
	return res.ExitCode == 0, nil
}

func zenityListArgs(rows []string, width, height int) []string {
	args := []string{
		"--list",
		"--title=" + Title(),
		"--text=" + Prompt,
		"--column=Folder",
		"--hide-header",
		fmt.Sprintf("--width=%d", width),
		fmt.Sprintf("--height=%d", height),
	}
	return append(args, rows...)
}

func zenityConfirmArgs() []string {
	return []string{
		"--question",
		"--title=" + Title(),
		"--text=" + ConfirmText,
		"--ok-label=" + ConfirmOKLabel,
		"--cancel-label=" + ConfirmCancelLabel,
		fmt.Sprintf("--width=%d", ConfirmWidth),
		fmt.Sprintf("--height=%d", ConfirmHeight),
	}
}
