package ops

import (
	"os"
	"strings"
)

// joinEntry renders the path of a directory entry the way it is reported:
// the parent exactly as walked, a separator, then the entry name.
// filepath.Join is avoided because it would turn "./a.txt" into "a.txt".
func joinEntry(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, string(os.PathSeparator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
