package servicelog

import (
	"fmt"
	"os"
	"time"

	"frontdesk/internal/pkg/errs"
)

var ErrAppendFailed = errs.New("appending to service completion log failed")

const timeLayout = "2006-01-02 15:04:05"

// Writer appends service completion notes to a plain-text log, one line per
// fulfilment. The log is informational; callers treat append failures as
// non-fatal.
type Writer struct {
	path string
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

func (w *Writer) Append(at time.Time, roomNumber, serviceName, provider, details string) error {
	if details == "" {
		details = "none"
	}
	line := fmt.Sprintf("[%s] Room %s - Service '%s' completed by %s. Details: %s\n",
		at.Format(timeLayout), roomNumber, serviceName, provider, details)

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errs.Mark(err, ErrAppendFailed)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return errs.Mark(err, ErrAppendFailed)
	}
	return nil
}
