// Package printer renders copy events on the console
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/bethropolis/exclude-copy/internal/utils"
	"github.com/fatih/color"
)

const ruleWidth = 60

// Printer writes one line per copy event to the configured output. It
// implements copier.Reporter.
type Printer struct {
	mu         sync.Mutex
	output     io.Writer
	errOutput  io.Writer
	baseDir    string
	useColors  bool
	jsonOutput bool
}

// New creates a new Printer with default settings
func New() *Printer {
	wd, _ := os.Getwd()
	return &Printer{
		output:    os.Stdout,
		errOutput: os.Stderr,
		baseDir:   wd,
		useColors: true,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithErrorOutput sets where failures and the bell are written
func (p *Printer) WithErrorOutput(w io.Writer) *Printer {
	p.errOutput = w
	return p
}

// WithBaseDir sets the directory displayed paths are shortened against
func (p *Printer) WithBaseDir(dir string) *Printer {
	p.baseDir = dir
	return p
}

// WithColors enables or disables colored output
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithJSON enables JSON-lines output mode
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonOutput = enabled
	return p
}

// JSONEvent is one line of JSON output
type JSONEvent struct {
	Event       string `json:"event"`
	Path        string `json:"path,omitempty"`
	Destination string `json:"destination,omitempty"`
	Count       *int   `json:"count,omitempty"`
	Message     string `json:"message,omitempty"`
}

// Banner prints the title block shown at startup
func (p *Printer) Banner(title string) {
	if p.jsonOutput {
		return
	}
	p.line(color.FgCyan, strings.Repeat("*", ruleWidth))
	p.line(color.FgHiCyan, title)
	p.line(color.FgCyan, strings.Repeat("*", ruleWidth))
}

// Footer prints the closing rule
func (p *Printer) Footer() {
	if p.jsonOutput {
		return
	}
	p.line(color.Reset, "")
	p.line(color.FgCyan, strings.Repeat("*", ruleWidth))
}

// CreatingDirectory reports a destination directory about to be created
func (p *Printer) CreatingDirectory(path string) {
	if p.jsonOutput {
		p.emit(JSONEvent{Event: "mkdir", Path: path})
		return
	}
	p.line(color.FgGreen, fmt.Sprintf(" * Creating destination directory %q as it does not exist...", p.display(path)))
}

// IgnoredDirectory reports an excluded source directory
func (p *Printer) IgnoredDirectory(path string) {
	if p.jsonOutput {
		p.emit(JSONEvent{Event: "ignore-dir", Path: path})
		return
	}
	p.line(color.FgHiBlack, fmt.Sprintf(" * Directory %q ignored", p.display(path)))
}

// IgnoredFile reports an excluded source file
func (p *Printer) IgnoredFile(path string) {
	if p.jsonOutput {
		p.emit(JSONEvent{Event: "ignore-file", Path: path})
		return
	}
	p.line(color.FgHiBlack, fmt.Sprintf(" * File %q ignored", p.display(path)))
}

// CopyingFile reports a file about to be copied
func (p *Printer) CopyingFile(src, dst string) {
	if p.jsonOutput {
		p.emit(JSONEvent{Event: "copy", Path: src, Destination: dst})
		return
	}
	p.line(color.FgWhite, fmt.Sprintf(" * Copying %q to %q...", p.display(src), p.display(dst)))
}

// Notice prints an out-of-band message such as an interrupt notice
func (p *Printer) Notice(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.jsonOutput {
		p.emit(JSONEvent{Event: "notice", Message: msg})
		return
	}
	p.line(color.FgHiYellow, " * "+msg)
}

// Summary prints the number of copied files. Nothing is printed in text
// mode when no file was copied.
func (p *Printer) Summary(count int) {
	if p.jsonOutput {
		p.emit(JSONEvent{Event: "summary", Count: &count})
		return
	}
	if count <= 0 {
		return
	}
	p.line(color.Reset, "")
	p.line(color.FgYellow, fmt.Sprintf(" * %d file(s) copied!", count))
}

// Failure writes a fatal message to the error output, preceded by the
// terminal bell.
func (p *Printer) Failure(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	fmt.Fprint(p.errOutput, "\a")
	if p.jsonOutput {
		p.writeJSON(p.errOutput, JSONEvent{Event: "failure", Message: msg})
		return
	}
	fmt.Fprintln(p.errOutput, p.paint(color.FgRed, " ! Failure: "+msg))
}

func (p *Printer) display(path string) string {
	return utils.DisplayPathFrom(p.baseDir, path)
}

func (p *Printer) paint(attr color.Attribute, s string) string {
	if !p.useColors || s == "" || attr == color.Reset {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}

func (p *Printer) line(attr color.Attribute, s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.output, p.paint(attr, s))
}

func (p *Printer) emit(ev JSONEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writeJSON(p.output, ev)
}

func (p *Printer) writeJSON(w io.Writer, ev JSONEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Fprintf(w, "%s\n", data)
}
