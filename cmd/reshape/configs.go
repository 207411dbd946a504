package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/reshape/report"
	"github.com/signadot/reshape/source"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render reports in color'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *source.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**source.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := source.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// explicitInFormat reports the input format forced by flags, if any.
func (cfg *MainConfig) explicitInFormat() (source.Format, bool) {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat, true
	case cfg.J:
		return source.JSONFormat, true
	case cfg.Y:
		return source.YAMLFormat, true
	}
	return 0, false
}

func (cfg *MainConfig) outFormat() source.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	switch {
	case cfg.Y:
		return source.YAMLFormat
	default:
		return source.JSONFormat
	}
}

// readDoc loads and decodes one document, "-" meaning stdin. The
// format comes from flags, then the file suffix, then sniffing.
func (cfg *MainConfig) readDoc(path string) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	f, ok := cfg.explicitInFormat()
	if !ok {
		f, err = source.FormatForPath(path)
		if err != nil {
			f = source.Sniff(data)
		}
	}
	return source.Decode(data, f)
}

// renderOpts colors reports when -color is given or when writing to a
// terminal.
func (cfg *MainConfig) renderOpts(w io.Writer) []report.Option {
	if cfg.Color {
		return []report.Option{report.WithColors(report.NewColors())}
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	if c := report.TermColors(w); c != nil {
		return []report.Option{report.WithColors(c)}
	}
	return nil
}

type CheckConfig struct {
	*MainConfig

	Sample string `cli:"name=sample desc='sample document giving the expected shape'"`
	Quiet  bool   `cli:"name=q aliases=quiet desc='suppress per-file output'"`

	Check *cli.Command
}

type ApplyConfig struct {
	*MainConfig

	Sample    string `cli:"name=sample desc='sample document giving the expected shape'"`
	ShowDiff  bool   `cli:"name=diff desc='show a diff from input to result'"`
	ShowPatch bool   `cli:"name=patch desc='show a merge patch from input to result'"`

	Apply *cli.Command
}

type ServeConfig struct {
	MainConfig *MainConfig

	Addr  string `cli:"name=addr desc='TCP address to listen on'"`
	Stdio bool   `cli:"name=stdio desc='serve a single session on stdin/stdout'"`

	Serve *cli.Command
}
