package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/zjuct/myfind/internal/core"
)

// setColor enables color only when w is a terminal and neither --no-color
// nor NO_COLOR asks otherwise.
func setColor(w io.Writer, noColor bool) {
	color.NoColor = !colorEnabled(w, noColor)
}

func colorEnabled(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "myfind",
	})
}

// PrintError writes err to w the way myfind reports failures
func PrintError(w io.Writer, err error) {
	red := color.New(color.FgRed)
	if core.ExitCode(err) == core.ExitUsage {
		fmt.Fprintf(w, "%s %v\n", red.Sprint("Error:"), err)
		fmt.Fprintln(w, "Run 'myfind --help' for usage.")
		return
	}
	fmt.Fprintf(w, "%s %v\n", red.Sprint("Error encountered:"), err)
}
