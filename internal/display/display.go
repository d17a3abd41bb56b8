package display

import (
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// Defaults used when the display size cannot be probed.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

var modeRe = regexp.MustCompile(`(\d+)x(\d+)\+\d+\+\d+`)

// Primary returns the pixel size of the primary display, probed via
// xrandr. On any failure (no X session, xrandr missing, unparseable
// output) it returns the defaults.
func Primary() (width, height int) {
	out, err := exec.Command("xrandr", "--query").Output()
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return parsePrimary(string(out))
}

// parsePrimary finds the connected primary output line in xrandr --query
// output, e.g. "eDP-1 connected primary 1920x1080+0+0 ...". When no output
// is marked primary, the first connected one is used.
func parsePrimary(out string) (int, int) {
	var fallback string
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, " connected ") {
			continue
		}
		if strings.Contains(line, " primary ") {
			if w, h, ok := parseMode(line); ok {
				return w, h
			}
		}
		if fallback == "" {
			fallback = line
		}
	}
	if w, h, ok := parseMode(fallback); ok {
		return w, h
	}
	return DefaultWidth, DefaultHeight
}

func parseMode(line string) (int, int, bool) {
	m := modeRe.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}
	w, err1 := strconv.Atoi(m[1])
	h, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}
