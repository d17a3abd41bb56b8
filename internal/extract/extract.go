package extract

import (
	"net/url"
	"os"
	"strings"

	"github.com/dastanaron/recentdirs/internal/models"
)

const (
	fileScheme = "file://"

	// tempRoot is compared literally: only the temp root itself is
	// filtered, /tmp/sub/ survives. cacheMarker matches anywhere in the
	// path. The asymmetry is intentional.
	tempRoot    = "/tmp/"
	cacheMarker = "/.cache/"
)

// Folders derives the list of recently used folders from a store document.
//
// Each bookmark href is reduced to its parent directory (trailing separator
// kept) and percent-decoded. Paths equal to the temp root, containing the
// cache marker, or absent from disk are dropped. The result is ordered
// most-recent-first (store appends newest last) and deduplicated, keeping the
// first occurrence of each path.
//
// The second return value is the longest decoded path seen across all
// entries, including filtered ones; the picker uses it to size its window.
// The document is not mutated and repeated calls yield identical output.
func Folders(doc *models.Document) ([]string, int) {
	var paths []string
	maxLen := 0

	for _, b := range doc.Bookmarks {
		dir, ok := parentDir(b.Href)
		if !ok {
			continue
		}
		if len(dir) > maxLen {
			maxLen = len(dir)
		}
		if dir == tempRoot || strings.Contains(dir, cacheMarker) {
			continue
		}
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		paths = append(paths, dir)
	}

	reverse(paths)
	return dedup(paths), maxLen
}

// parentDir turns a file URI into the decoded parent directory of the
// referenced file, with a trailing separator.
func parentDir(uri string) (string, bool) {
	if !strings.HasPrefix(uri, fileScheme) {
		return "", false
	}
	path := strings.TrimPrefix(uri, fileScheme)
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return "", false
	}
	path = path[:idx+1]
	decoded, err := url.PathUnescape(path)
	if err != nil {
		return "", false
	}
	return decoded, true
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func dedup(s []string) []string {
	seen := make(map[string]bool, len(s))
	out := s[:0]
	for _, p := range s {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
