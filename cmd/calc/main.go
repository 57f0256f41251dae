package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/rechner-app/calc"
)

const (
	historyFile = ".calc_history"
	prompt      = "==> "
)

const banner = "calc REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit, :help for commands."

const helpText = `
REPL commands:
  :quit      Exit the REPL
  :help      Show this help
  :history   Show past calculations, newest first
  !N         Recall and re-evaluate the expression of history entry N
  :1/x :sqrt :sq :pct
             Apply the transform to the previous result
`

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

// entry is one past calculation, kept newest first.
type entry struct {
	expr   string
	result string
}

func main() {
	comma := flag.Bool("comma", false, "use a decimal comma for input and output")
	quiet := flag.Bool("q", false, "on error, print a placeholder instead of the message")
	flag.Parse()

	var opts []calc.Option
	if *comma {
		opts = append(opts, calc.DecimalComma())
	}

	if flag.NArg() > 0 {
		os.Exit(oneshot(strings.Join(flag.Args(), " "), opts, *quiet))
	}
	os.Exit(repl(opts))
}

// oneshot evaluates its arguments and prints the formatted result. In quiet
// mode a failure prints the live-preview placeholder instead of the error.
func oneshot(src string, opts []calc.Option, quiet bool) int {
	v, err := calc.Evaluate(src, opts...)
	if err != nil {
		if quiet {
			fmt.Println("…")
		} else {
			fmt.Fprintln(os.Stderr, red(err.Error()))
		}
		return 1
	}
	fmt.Println(calc.Format(v, opts...))
	return 0
}

func repl(opts []calc.Option) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	var (
		history  []entry
		last     float64
		haveLast bool
	)

	record := func(expr string, v float64) {
		res := calc.Format(v, opts...)
		fmt.Println(res)
		history = append([]entry{{expr, res}}, history...)
		last, haveLast = v, true
	}

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println()
				continue
			}
			fmt.Println()
			break
		}
		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}

		if strings.HasPrefix(code, ":") {
			switch strings.ToLower(code) {
			case ":quit":
				return 0
			case ":help":
				fmt.Print(helpText)
			case ":history":
				if len(history) == 0 {
					fmt.Println("no history")
					continue
				}
				for i, e := range history {
					fmt.Printf("%3d  %s = %s\n", i+1, e.expr, e.result)
				}
			case ":1/x", ":sqrt", ":sq", ":pct":
				if !haveLast {
					fmt.Fprintln(os.Stderr, red("no previous result"))
					continue
				}
				v, err := applyUnary(strings.ToLower(code), last)
				if err != nil {
					fmt.Fprintln(os.Stderr, red(err.Error()))
					continue
				}
				record(code, v)
			default:
				fmt.Println("unknown command. Type :help for commands.")
			}
			continue
		}

		if strings.HasPrefix(code, "!") {
			n, err := strconv.Atoi(code[1:])
			if err != nil || n < 1 || n > len(history) {
				fmt.Fprintln(os.Stderr, red("no history entry "+code[1:]))
				continue
			}
			code = history[n-1].expr
			fmt.Println(prompt + code)
		}

		v, err := calc.Evaluate(code, opts...)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		record(code, v)
		ln.AppendHistory(code)
	}
	return 0
}

func applyUnary(cmd string, x float64) (float64, error) {
	switch cmd {
	case ":1/x":
		return calc.Reciprocal(x)
	case ":sqrt":
		return calc.Sqrt(x)
	case ":sq":
		return calc.Square(x), nil
	case ":pct":
		return calc.Percent(x), nil
	default:
		panic("calc: unknown unary command " + cmd)
	}
}
