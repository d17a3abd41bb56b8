package desktop

import (
	"os"
	"strings"
)

// Environment identifies the running desktop session.
type Environment int

const (
	Unknown Environment = iota
	GNOME
	KDE
	XFCE
	Cinnamon
	MATE
	LXQt
)

var names = map[Environment]string{
	Unknown:  "unknown",
	GNOME:    "GNOME",
	KDE:      "KDE",
	XFCE:     "XFCE",
	Cinnamon: "Cinnamon",
	MATE:     "MATE",
	LXQt:     "LXQt",
}

func (e Environment) String() string {
	if n, ok := names[e]; ok {
		return n
	}
	return "unknown"
}

// Detect probes the process environment for the current desktop.
func Detect() Environment {
	return DetectFrom(os.Getenv)
}

// DetectFrom resolves the desktop environment from the given variable
// lookup. XDG_CURRENT_DESKTOP wins (it may hold a colon-separated list,
// e.g. "ubuntu:GNOME"), then DESKTOP_SESSION, then toolkit-specific
// session markers.
func DetectFrom(getenv func(string) string) Environment {
	for _, part := range strings.Split(getenv("XDG_CURRENT_DESKTOP"), ":") {
		if e := match(part); e != Unknown {
			return e
		}
	}
	if e := match(getenv("DESKTOP_SESSION")); e != Unknown {
		return e
	}
	if getenv("KDE_FULL_SESSION") != "" {
		return KDE
	}
	if getenv("GNOME_DESKTOP_SESSION_ID") != "" {
		return GNOME
	}
	return Unknown
}

func match(name string) Environment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gnome", "gnome-classic", "ubuntu", "pop":
		return GNOME
	case "kde", "plasma", "kde-plasma":
		return KDE
	case "xfce", "xfce4", "xubuntu":
		return XFCE
	case "cinnamon", "x-cinnamon":
		return Cinnamon
	case "mate":
		return MATE
	case "lxqt":
		return LXQt
	}
	return Unknown
}
