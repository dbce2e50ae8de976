package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
)

func isInputRedirected() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return true
	}
	return (fi.Mode() & os.ModeCharDevice) == 0
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	expr := flag.String("e", "", "evaluate `source` and print the result")
	debug := flag.Bool("debug", false, "log evaluator calls to stderr")
	noColor := flag.Bool("no-color", false, "disable coloured output")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *noColor {
		cfg.Color = false
	}
	level, _ := cfg.Level()
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	r := newRunner(cfg, logger, os.Stdout)

	if *expr != "" {
		val, err := r.EvalString(*expr)
		if err != nil {
			r.printError(err)
			os.Exit(1)
		}
		r.printValue(val)
		return
	}

	if flag.NArg() > 0 {
		for _, path := range flag.Args() {
			if err := r.EvalFile(path); err != nil {
				r.printError(err)
				os.Exit(1)
			}
		}
		return
	}

	if isInputRedirected() {
		r.color = false
		if failures := r.ReadEvalPrint(bufio.NewReader(os.Stdin)); failures > 0 {
			os.Exit(1)
		}
		return
	}

	if err := r.Loop(cfg); err != nil {
		logger.Error("repl", slog.Any("error", err))
		os.Exit(1)
	}
}
