package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"toyrobot/internal/interpreter"
)

func main() {
	var visual, debug bool
	flag.BoolVar(&visual, "visual", false, "render the table after every command")
	flag.BoolVar(&visual, "v", false, "shorthand for -visual")
	flag.BoolVar(&debug, "debug", false, "log ignored commands to stderr")
	flag.Parse()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	it := interpreter.NewInterpreter(logger)
	opts := interpreter.RunOptions{Visual: visual}

	if flag.NArg() > 0 {
		name := flag.Arg(0)
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("error opening file %q: %v", name, err)
		}
		defer f.Close()
		if err := interpreter.RunStream(it, f, os.Stdout, opts); err != nil {
			log.Fatalf("reading %q: %v", name, err)
		}
		return
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		runREPL(it, opts)
		return
	}

	if err := interpreter.RunStream(it, os.Stdin, os.Stdout, opts); err != nil {
		log.Fatal(err)
	}
}

// runREPL reads commands interactively with line editing and in-session
// history. Ctrl-C and Ctrl-D end the run.
func runREPL(it *interpreter.Interpreter, opts interpreter.RunOptions) {
	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)

	if opts.Visual {
		fmt.Println(interpreter.NewTable().Render(it.Robot()))
	}
	for {
		line, err := rl.Prompt("> ")
		if err != nil {
			// liner.ErrPromptAborted or io.EOF
			fmt.Println()
			return
		}
		if strings.TrimSpace(line) != "" {
			rl.AppendHistory(line)
		}

		out, ok := it.Eval(line)
		if opts.Visual {
			fmt.Println(interpreter.NewTable().Render(it.Robot()))
		}
		if ok {
			fmt.Println(out)
		}
	}
}
