package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/reshape"
	"github.com/signadot/reshape/report"
	"github.com/signadot/reshape/source"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Sample == "" {
		return fmt.Errorf("%w: -sample is required", cli.ErrUsage)
	}
	if cfg.ShowDiff && cfg.ShowPatch {
		return fmt.Errorf("%w: -diff and -patch are mutually exclusive", cli.ErrUsage)
	}
	conv, err := sampleConverter(cfg.MainConfig, cfg.Sample)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	n := len(args)
	for i, file := range args {
		doc, err := cfg.readDoc(file)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", file, err)
		}
		res := reshape.TryConvert(conv, doc)
		if !res.Ok() {
			if err := report.Render(cc.Out, res.Errors(), cfg.renderOpts(cc.Out)...); err != nil {
				return err
			}
			return fmt.Errorf("error converting %s", file)
		}
		if err := applyOutput(cfg, cc, doc, res.Value()); err != nil {
			return err
		}
		if i < n-1 {
			fmt.Fprintln(cc.Out, "---")
		}
	}
	return nil
}

func applyOutput(cfg *ApplyConfig, cc *cli.Context, before, after any) error {
	switch {
	case cfg.ShowDiff:
		d, err := report.Diff(before, after, cfg.renderOpts(cc.Out)...)
		if err != nil {
			return err
		}
		fmt.Fprint(cc.Out, d)
		return nil
	case cfg.ShowPatch:
		p, err := report.MergePatch(before, after)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", p)
		return nil
	default:
		return source.EncodeTo(cc.Out, after, cfg.outFormat())
	}
}
