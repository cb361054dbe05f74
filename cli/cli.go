package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"product-with-repeat/ds"
	"product-with-repeat/product"
	"product-with-repeat/ui"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type (
	Args struct {
		Print   *PrintCmd `arg:"subcommand:print" help:"print every tuple, one per line"`
		Count   *CountCmd `arg:"subcommand:count" help:"print the number of tuples"`
		Step    *StepCmd  `arg:"subcommand:step" help:"step through the tuples interactively"`
		Verbose bool      `arg:"-v,--verbose" help:"log at debug level"`
	}
	Source struct {
		Repeat int      `arg:"-r,--repeat,env:PRODUCT_REPEAT" default:"2" help:"length of each tuple" placeholder:"K"`
		Range  *int     `arg:"--range" help:"use the integers 0..N-1 as items" placeholder:"N"`
		Items  []string `arg:"positional" help:"items to draw from" placeholder:"ITEM"`
	}
	PrintCmd struct {
		Source
		Format string `arg:"-f,--format" default:"text" help:"output format: text or json"`
		Sep    string `arg:"--sep" default:" " help:"separator between items in text format"`
		Limit  int    `arg:"-n,--limit" help:"stop after N tuples, 0 prints all" placeholder:"N"`
	}
	CountCmd struct {
		Source
	}
	StepCmd struct {
		Source
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Enumerate the Cartesian power of a list of items:",
			"every tuple of length K drawn with repetition, in lexicographic order.",
		},
		"\n",
	)
	des += "\n"
	return des
}

// Values resolves the items the command draws from and validates the
// repeat count.
func (s Source) Values() ([]string, error) {
	if s.Repeat < 0 {
		return nil, errors.Wrap(ds.ErrNegativeRepeat{Repeat: s.Repeat}, "Source.Values error")
	}
	if s.Range == nil {
		return s.Items, nil
	}
	if len(s.Items) > 0 {
		return nil, errors.New("Source.Values error: --range and positional items are mutually exclusive")
	}
	if *s.Range < 0 {
		return nil, errors.Errorf("Source.Values error: negative range %d", *s.Range)
	}
	return lo.Map(
		ds.MakeRange(0, *s.Range, 1),
		func(i int, _ int) string {
			return strconv.Itoa(i)
		},
	), nil
}

func FormatTuple(tuple []string, format string, sep string) (string, error) {
	switch format {
	case FormatText:
		return strings.Join(tuple, sep), nil
	case FormatJSON:
		bs, err := json.Marshal(tuple)
		if err != nil {
			return "", errors.Wrapf(err, `FormatTuple error marshalling %v`, tuple)
		}
		return string(bs), nil
	default:
		return "", errors.Errorf(`FormatTuple error: unknown format "%s"`, format)
	}
}

func RunPrint(w io.Writer, cmd PrintCmd) error {
	items, err := cmd.Values()
	if err != nil {
		return errors.Wrap(err, "RunPrint error")
	}
	if cmd.Format != FormatText && cmd.Format != FormatJSON {
		return errors.Errorf(`RunPrint error: unknown format "%s"`, cmd.Format)
	}

	it := product.New(items, cmd.Repeat)
	remaining, ok := it.Remaining()
	slog.Debug("Enumerating tuples.", "items", len(items), "repeat", cmd.Repeat, "total", remaining, "fits", ok)

	printed := 0
	for tuple := range it.All() {
		if cmd.Limit > 0 && printed >= cmd.Limit {
			break
		}
		line, err := FormatTuple(product.Values(tuple), cmd.Format, cmd.Sep)
		if err != nil {
			return errors.Wrap(err, "RunPrint error")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "RunPrint error writing tuple")
		}
		printed++
	}
	slog.Debug("Done enumerating.", "printed", printed, "exhausted", it.Done())
	return nil
}

func RunCount(w io.Writer, cmd CountCmd) error {
	items, err := cmd.Values()
	if err != nil {
		return errors.Wrap(err, "RunCount error")
	}
	count, ok := product.Count(len(items), cmd.Repeat)
	if !ok {
		return errors.Wrap(ds.ErrCountOverflow{N: len(items), Repeat: cmd.Repeat}, "RunCount error")
	}
	_, err = fmt.Fprintln(w, count)
	return errors.Wrap(err, "RunCount error writing count")
}

func RunStep(cmd StepCmd) error {
	items, err := cmd.Values()
	if err != nil {
		return errors.Wrap(err, "RunStep error")
	}
	return ui.StartStepper(items, cmd.Repeat)
}

// Run dispatches to the selected subcommand.
func Run(w io.Writer, args Args) error {
	switch {
	case args.Count != nil:
		return RunCount(w, *args.Count)
	case args.Step != nil:
		return RunStep(*args.Step)
	case args.Print != nil:
		return RunPrint(w, *args.Print)
	default:
		return errors.New("Run error: no subcommand given")
	}
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)
	if parser.Subcommand() == nil {
		parser.WriteHelp(os.Stderr)
		os.Exit(2)
	}

	if err := SetupLogging(args.Verbose); err != nil {
		println(err.Error())
		os.Exit(1)
	}

	if err := Run(os.Stdout, args); err != nil {
		slog.Error("Fatal error.", tint.Err(err))
		if currentLogLevel > slog.LevelDebug {
			slog.Error("Run with --verbose to get more information.")
		}
		os.Exit(1)
	}
}
