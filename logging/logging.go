// Package logging builds the zap logger shared by the geodes command.
//
// Format "auto" picks the human-friendly console encoder when the output is a
// terminal and JSON otherwise, so piping the command into a file or another
// tool yields machine-readable lines without extra flags.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrFormat is returned for an unknown Options.Format.
var ErrFormat = errors.New("logging: unknown format")

// Options selects level, encoding and destination.
type Options struct {
	Level  string    // debug, info, warn, error; empty means info
	Format string    // auto, console, json; empty means auto
	Writer io.Writer // defaults to os.Stderr
}

// New builds a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	var enc zapcore.Encoder
	switch opts.Format {
	case "", "auto":
		if isTerminal(w) {
			enc = consoleEncoder()
		} else {
			enc = jsonEncoder()
		}
	case "console":
		enc = consoleEncoder()
	case "json":
		enc = jsonEncoder()
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, opts.Format)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), level)

	return zap.New(core), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func consoleEncoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")

	return zapcore.NewConsoleEncoder(cfg)
}

func jsonEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
}
