package ops

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/zjuct/myfind/internal/core"
)

// ReportOpts configures how matches are printed
type ReportOpts struct {
	Verbose  bool
	Encoding string
}

var (
	failColor    = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
	pathColor    = color.New(color.FgYellow)
)

// Report prints matches to w. An empty result prints "No match found."
// In verbose mode each path is followed by the decoded contents of the file;
// the first file that cannot be read stops the report.
func Report(w io.Writer, matches []string, o ReportOpts) error {
	if len(matches) == 0 {
		_, err := fmt.Fprintln(w, failColor.Sprint("No match found."))
		return err
	}

	if _, err := fmt.Fprintln(w, successColor.Sprint("Matches found: ")); err != nil {
		return err
	}

	for _, path := range matches {
		if !o.Verbose {
			if _, err := fmt.Fprintln(w, path); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintln(w, pathColor.Sprint(path)); err != nil {
			return err
		}
		body, err := core.ReadFileWithEncoding(path, o.Encoding)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, body); err != nil {
			return err
		}
	}

	return nil
}
