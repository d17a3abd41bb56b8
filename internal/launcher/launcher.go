package launcher

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ExpandHome resolves a leading ~/ (or a bare ~) to the user's home
// directory. Other paths are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// Open hands the path to the OS default opener. Fire-and-forget: the
// spawned process is not awaited and failures are ignored.
func Open(path string) {
	var cmd string
	var args []string
	switch runtime.GOOS {
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start"}
	case "darwin":
		cmd = "open"
	default:
		cmd = "xdg-open"
	}
	args = append(args, path)
	_ = exec.Command(cmd, args...).Start()
}
