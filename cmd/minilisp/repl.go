package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/xyproto/vt"

	"github.com/jpschroeder/minilisp"
)

const continuationPrompt = "  ... "

type runner struct {
	ev     *minilisp.Evaluator
	env    *minilisp.Env
	out    io.Writer
	color  bool
	logger *slog.Logger
}

func newRunner(cfg Config, logger *slog.Logger, out io.Writer) *runner {
	opts := []minilisp.Option{minilisp.WithMaxDepth(cfg.MaxDepth)}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		opts = append(opts, minilisp.WithLogger(logger))
	}
	return &runner{
		ev:     minilisp.NewEvaluator(opts...),
		env:    minilisp.NewCoreEnvWriter(out),
		out:    out,
		color:  cfg.Color,
		logger: logger,
	}
}

// EvalString evaluates every form in src and returns the last value.
func (r *runner) EvalString(src string) (minilisp.Expr, error) {
	exprs, err := minilisp.ReadString(src)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var val minilisp.Expr
	for _, expr := range exprs {
		val, err = r.ev.Eval(r.env, expr)
		if err != nil {
			return nil, err
		}
	}
	return val, nil
}

// EvalFile evaluates a source file in the runner's environment.
func (r *runner) EvalFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	r.logger.Debug("eval file", slog.String("path", path), slog.Int("bytes", len(src)))
	if _, err := r.EvalString(string(src)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ReadEvalPrint evaluates forms from in until EOF, printing each result.
// Failures are reported and evaluation continues with the next form. It
// returns the number of failures.
func (r *runner) ReadEvalPrint(in *bufio.Reader) int {
	failures := 0
	for {
		expr, err := minilisp.Read(in)
		if err == io.EOF {
			return failures
		}
		if err != nil {
			r.printError(err)
			failures++
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return failures
			}
			continue
		}

		val, err := r.ev.Eval(r.env, expr)
		if err != nil {
			r.printError(err)
			failures++
			continue
		}
		r.printValue(val)
	}
}

// Loop runs the interactive prompt until EOF.
func (r *runner) Loop(cfg Config) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	history := cfg.HistoryPath()
	if history != "" {
		if f, err := os.Open(history); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	var pending strings.Builder
	for {
		prompt := cfg.Prompt
		if pending.Len() > 0 {
			prompt = continuationPrompt
		}

		input, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			pending.Reset()
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)
			break
		}
		if err != nil {
			return err
		}

		pending.WriteString(input)
		pending.WriteString("\n")
		exprs, err := minilisp.ReadString(pending.String())
		if errors.Is(err, io.ErrUnexpectedEOF) {
			continue
		}
		if entry := strings.TrimSpace(pending.String()); entry != "" {
			line.AppendHistory(entry)
		}
		pending.Reset()
		if err != nil {
			r.printError(err)
			continue
		}

		for _, expr := range exprs {
			val, err := r.ev.Eval(r.env, expr)
			if err != nil {
				r.printError(err)
				break
			}
			r.printValue(val)
		}
	}

	if history != "" {
		f, err := os.Create(history)
		if err != nil {
			r.logger.Warn("history not saved", slog.String("path", history), slog.Any("error", err))
			return nil
		}
		defer f.Close()
		if _, err := line.WriteHistory(f); err != nil {
			r.logger.Warn("history not saved", slog.String("path", history), slog.Any("error", err))
		}
	}
	return nil
}

func (r *runner) printValue(val minilisp.Expr) {
	fmt.Fprintln(r.out, minilisp.Render(val))
}

func (r *runner) printError(err error) {
	msg := fmt.Sprintf("Error: %v", err)
	if r.color {
		msg = vt.LightRed.Get(msg)
	}
	fmt.Fprintln(r.out, msg)
}
