package interpreter

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// RunOptions control the peripheral behavior of a run. The command semantics
// themselves never change.
type RunOptions struct {
	// Visual echoes each command and redraws the table after every line.
	Visual bool
}

// RunStream feeds lines from r to the interpreter and writes every REPORT
// result to w, one per line, in the order produced. Lines are consumed
// strictly in order and each line's effect is fully applied before the next
// is read. The only error condition is a failing reader; command-level
// problems never surface.
func RunStream(it *Interpreter, r io.Reader, w io.Writer, opts RunOptions) error {
	if opts.Visual {
		fmt.Fprintln(w, NewTable().Render(it.Robot()))
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		out, ok := it.Eval(line)

		if opts.Visual {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				fmt.Fprintf(w, "\n> %s\n", trimmed)
			}
			fmt.Fprintln(w, NewTable().Render(it.Robot()))
		}
		if ok {
			fmt.Fprintln(w, out)
		}
	}
	return sc.Err()
}
