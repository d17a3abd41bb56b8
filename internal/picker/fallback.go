package picker

import "errors"

// Fallback chains two choosers: every call goes to the primary until it
// reports its backend unavailable, after which the secondary takes over
// for the rest of the session. Dismissals are not retried.
type Fallback struct {
	Primary   Chooser
	Secondary Chooser

	useSecondary bool
}

func (f *Fallback) Choose(folders []string, maxLen int) (string, error) {
	if !f.useSecondary {
		choice, err := f.Primary.Choose(folders, maxLen)
		if !errors.Is(err, ErrBackendUnavailable) {
			return choice, err
		}
		f.useSecondary = true
	}
	return f.Secondary.Choose(folders, maxLen)
}

func (f *Fallback) ConfirmClear() (bool, error) {
	if !f.useSecondary {
		ok, err := f.Primary.ConfirmClear()
		if !errors.Is(err, ErrBackendUnavailable) {
			return ok, err
		}
		f.useSecondary = true
	}
	return f.Secondary.ConfirmClear()
}
