package engine

import (
	"bufio"
	"context"
	"github.com/seekerror/logw"
	"os"
)

// ReadStdinLines reads stdin lines into a chan. Async.
func ReadStdinLines(ctx context.Context) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}
