package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kairoterm/kairo/internal/ui/views"
)

// RunPlain drives executor from line-oriented input, for pipes and dumb
// terminals. It returns when the exiter is triggered or input ends.
func RunPlain(in io.Reader, out io.Writer, executor Executor, exiter *Exiter, username string) error {
	if exiter == nil {
		exiter = &Exiter{}
	}
	prompt := views.Prompt(username)
	scanner := bufio.NewScanner(in)

	for {
		if _, err := io.WriteString(out, prompt); err != nil {
			return err
		}
		if !scanner.Scan() {
			break
		}

		output := executor.Execute(scanner.Text())
		if output != "" && !strings.HasSuffix(output, "\n") {
			output += "\n"
		}
		if _, err := io.WriteString(out, output); err != nil {
			return err
		}
		if exiter.Requested() {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	_, err := io.WriteString(out, "\n")
	return err
}
