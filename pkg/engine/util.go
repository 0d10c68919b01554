package engine

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/seekerror/logw"
)

// ReadStdinLines reads newline-delimited commands from stdin onto a buffered channel,
// asynchronously. The channel closes when stdin is exhausted (EOF, pipe closed) --
// grounded on the teacher's identically named helper (pkg/engine/util.go), which this
// package's protocol adapters (e.g. uci.NewDriver) take as their input stream.
func ReadStdinLines(ctx context.Context) <-chan string {
	lines := make(chan string, 1)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			logw.Debugf(ctx, "<< %v", line)
			lines <- line
		}
	}()
	return lines
}

// WriteStdoutLines writes every line from lines to stdout until the channel closes or
// ctx is cancelled, whichever comes first -- so cancelling ctx unblocks the writer even
// if its producer goroutine is still running.
func WriteStdoutLines(ctx context.Context, lines <-chan string) {
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return
			}
			logw.Debugf(ctx, ">> %v", line)
			_, _ = fmt.Fprintln(os.Stdout, line)

		case <-ctx.Done():
			return
		}
	}
}
