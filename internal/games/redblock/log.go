package redblock

import (
	"io"

	"github.com/charmbracelet/log"
)

// logger discards output until SetLogger is called; the TUI owns the terminal.
var logger = log.New(io.Discard)

// SetLogger routes game logs to l. A nil logger restores the discarding default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}
