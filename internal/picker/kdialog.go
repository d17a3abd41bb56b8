package picker

import (
	"fmt"

	"github.com/dastanaron/recentdirs/internal/display"
)

// KDialog presents dialogs through kdialog (KDE and LXQt sessions).
type KDialog struct{}

func (KDialog) Choose(folders []string, maxLen int) (string, error) {
	dw, dh := display.Primary()
	w, h := WindowSize(maxLen, dw, dh)
	res, err := run("kdialog", kdialogMenuArgs(Rows(folders), w, h)...)
	if err != nil {
		return "", fmt.Errorf("%w: kdialog: %v", ErrBackendUnavailable, err)
	}
	if res.ExitCode != 0 {
		return "", ErrDismissed
	}
	return res.Choice(), nil
}

func (KDialog) ConfirmClear() (bool, error) {
	res, err := run("kdialog", kdialogConfirmArgs()...)
	if err != nil {
		return false, fmt.Errorf("%w: kdialog: %v", ErrBackendUnavailable, err)
	}
	return res.ExitCode == 0, nil
}

// kdialog --menu takes tag/item pairs and prints the chosen tag; the row
// text doubles as its own tag.
func kdialogMenuArgs(rows []string, width, height int) []string {
	args := []string{
		"--title", Title(),
		"--geometry", fmt.Sprintf("%dx%d", width, height),
		"--menu", Prompt,
	}
	for _, row := range rows {
		args = append(args, row, row)
	}
	return args
}

func kdialogConfirmArgs() []string {
	return []string{
		"--title", Title(),
		"--geometry", fmt.Sprintf("%dx%d", ConfirmWidth, ConfirmHeight),
		"--yes-label", ConfirmOKLabel,
		"--no-label", ConfirmCancelLabel,
		"--warningyesno", ConfirmText,
	}
}
