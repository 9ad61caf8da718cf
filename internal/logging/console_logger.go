package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vvka-141/sampleorg/internal/tui"
)

// ConsoleLogger writes log messages to stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	color   bool
	out     io.Writer
	mu      sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger writing to stderr.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
// Prefixes are coloured when stderr is an interactive terminal.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
		color:   tui.StderrSupportsColor(),
		out:     os.Stderr,
	}
}

// NewWriterLogger creates a ConsoleLogger that writes plain, uncoloured lines to w.
func NewWriterLogger(w io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
		out:     w,
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.prefix("[VERBOSE]", false), format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.prefix("[ERROR]", true), format, args)
}

func (l *ConsoleLogger) prefix(tag string, isError bool) string {
	if l.color {
		if isError {
			tag = tui.ErrorStyle.Render(tag)
		} else {
			tag = tui.MutedStyle.Render(tag)
		}
	}
	return tag + " "
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(l.out, prefix+format+"\n", args...)
	} else {
		fmt.Fprint(l.out, prefix+format+"\n")
	}
}
