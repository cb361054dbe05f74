package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

var currentLogLevel slog.Level

// SetupLogging configures the default slog logger from the environment:
// DEBUG forces debug level, PRODUCT_VERBOSITY sets any other level and
// COLOR overrides terminal detection.
func SetupLogging(verbose bool) error {
	_, debug := os.LookupEnv("DEBUG")
	level := new(slog.LevelVar)
	if debug || verbose {
		level.Set(slog.LevelDebug)
	} else {
		envlevel, found := os.LookupEnv("PRODUCT_VERBOSITY")
		if found {
			err := level.UnmarshalText([]byte(envlevel))
			if err != nil {
				return errors.Wrapf(err, `SetupLogging error: bad PRODUCT_VERBOSITY value "%s"`, envlevel)
			}
		}
	}

	colorEnv, found := os.LookupEnv("COLOR")
	var color bool
	if found {
		color = "true" == colorEnv
	} else {
		color = isatty.IsTerminal(os.Stderr.Fd())
	}
	SetLoggingHandler(os.Stderr, level.Level(), color)

	return nil
}

func SetLoggingHandler(w io.Writer, level slog.Level, color bool) {
	currentLogLevel = level
	var h slog.Handler
	if color {
		h = tint.NewHandler(
			w,
			&tint.Options{
				Level: level,
				ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
					if a.Key == "err" && a.Value.Kind() == slog.KindAny && a.Value.Any() == nil {
						// Drop nil error.
						return slog.Attr{}
					}
					return a
				},
				TimeFormat: "15:04:05",
			},
		)
	} else {
		h = slog.NewTextHandler(
			w,
			&slog.HandlerOptions{
				Level: level,
			},
		)
	}
	slog.SetDefault(slog.New(h))
}
