package workspace

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Reporter renders a single-line spinner on stderr while a multi-file pass
// runs. It stays silent when stderr is not a terminal or when machine output
// was requested.
type Reporter struct {
	enabled bool
	label   string
	start   time.Time
	spinner int
	lastLen int
}

func NewReporter(label string, asJSON bool) *Reporter {
	stat, err := os.Stderr.Stat()
	enabled := err == nil && (stat.Mode()&os.ModeCharDevice) != 0 && !asJSON
	return &Reporter{enabled: enabled, label: label, start: time.Now()}
}

// Update implements Progress.
func (r *Reporter) Update(file string, done, total int) {
	if !r.enabled {
		return
	}
	frames := [4]string{"-", "\\", "|", "/"}
	frame := frames[r.spinner%len(frames)]
	r.spinner++
	if len(file) > 72 {
		file = "..." + file[len(file)-69:]
	}
	r.print(fmt.Sprintf("%s %s %d/%d %s", frame, r.label, done, total, file))
}

// Done finishes the status line with the elapsed time.
func (r *Reporter) Done(count int) {
	if !r.enabled {
		return
	}
	elapsed := time.Since(r.start).Round(time.Millisecond)
	r.print(fmt.Sprintf("%s complete (%d files in %s)", r.label, count, elapsed))
	fmt.Fprintln(os.Stderr)
}

func (r *Reporter) print(status string) {
	if r.lastLen > len(status) {
		status += strings.Repeat(" ", r.lastLen-len(status))
	}
	r.lastLen = len(status)
	fmt.Fprintf(os.Stderr, "\r%s", status)
}
