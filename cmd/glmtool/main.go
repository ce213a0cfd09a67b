// glmtool evaluates vector and transform scripts with the glmath library.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unsafe"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/glmath/internal/config"
	"github.com/Faultbox/glmath/internal/logger"
	"github.com/Faultbox/glmath/internal/script"
	"github.com/Faultbox/glmath/pkg/math"
)

var errUsage = errors.New("usage")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(config.Args(), cfg, os.Stdout); err != nil {
		if !errors.Is(err, errUsage) {
			logger.Error("command failed", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, cfg *config.Config, out io.Writer) error {
	if len(args) < 1 {
		printUsage(os.Stderr)
		return errUsage
	}

	command, args := args[0], args[1:]
	logger.Debug("dispatching command", zap.String("command", command), zap.Strings("args", args))
	switch command {
	case "eval":
		return cmdEval(args, cfg, out)
	case "info":
		return cmdInfo(out)
	case "config":
		return cmdConfig(args, cfg, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		return errUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `glmtool - vector and transform script evaluator

Usage:
  glmtool [flags] <command> [args]

Commands:
  eval <script.yaml>    Run a script and print each step's result
  info                  Show scalar precision and type sizes
  config [path]         Print the effective config, or write it to path

Flags:
  -config <path>        Config file (default ./glmtool.yaml)
  -debug                Enable debug logging
  -format text|yaml     Output format
  -digits N             Significant digits for printed scalars, -1 for shortest exact
  -stack N              Initial transform stack capacity

Examples:
  glmtool eval transforms.yaml
  glmtool -format yaml -digits 4 eval transforms.yaml`)
}

func cmdEval(args []string, cfg *config.Config, out io.Writer) error {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: glmtool eval <script.yaml>")
		return errUsage
	}

	s, err := script.Load(args[0])
	if err != nil {
		return err
	}

	log := logger.Named("script")
	log.Info("evaluating", zap.String("path", args[0]), zap.Int("steps", len(s.Steps)))

	e := script.NewEvaluator(cfg.Stack.InitialCapacity, log)
	results, err := e.Run(s)
	if err != nil {
		logger.Warn("script stopped early",
			zap.Int("completed", len(results)),
			zap.Int("steps", len(s.Steps)))
	} else {
		logger.Info("script evaluated", zap.Int("steps", len(results)))
	}

	if cfg.Output.Format == "yaml" {
		data, merr := yaml.Marshal(results)
		if merr != nil {
			return merr
		}
		if _, werr := out.Write(data); werr != nil {
			return werr
		}
	} else {
		for _, r := range results {
			fmt.Fprintln(out, r.Text(cfg.Output.Digits))
		}
	}
	return err
}

func cmdInfo(out io.Writer) error {
	fmt.Fprintf(out, "Scalar:  float%d\n", math.Precision)
	fmt.Fprintf(out, "Debug:   %t\n", math.Debug)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Type sizes (bytes):")
	for _, t := range []struct {
		name string
		size uintptr
	}{
		{"Vec2", unsafe.Sizeof(math.Vec2{})},
		{"Vec3", unsafe.Sizeof(math.Vec3{})},
		{"Vec4", unsafe.Sizeof(math.Vec4{})},
		{"Quat", unsafe.Sizeof(math.Quat{})},
		{"Rect", unsafe.Sizeof(math.Rect{})},
		{"Mat3", unsafe.Sizeof(math.Mat3{})},
		{"Mat4", unsafe.Sizeof(math.Mat4{})},
		{"Bezier", unsafe.Sizeof(math.Bezier{})},
	} {
		fmt.Fprintf(out, "  %-8s %d\n", t.name, t.size)
	}
	return nil
}

func cmdConfig(args []string, cfg *config.Config, out io.Writer) error {
	if len(args) > 0 {
		if err := cfg.SaveTo(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", args[0])
		return nil
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
