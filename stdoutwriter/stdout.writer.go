package stdoutwriter

import (
	"fmt"
	"io"
	"os"
)

// Logger writes each log record on its own line.
// The zero value writes to the standard output.
type Logger struct {
	Out io.Writer
}

func (l Logger) Write(p []byte) (n int, err error) {
	out := l.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := fmt.Fprintln(out, string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}
