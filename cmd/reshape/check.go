package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/reshape"
	"github.com/signadot/reshape/report"
	"github.com/signadot/reshape/sample"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Sample == "" {
		return fmt.Errorf("%w: -sample is required", cli.ErrUsage)
	}
	conv, err := sampleConverter(cfg.MainConfig, cfg.Sample)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := 0
	for _, file := range args {
		doc, err := cfg.readDoc(file)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", file, err)
		}
		res := reshape.TryConvert(conv, doc)
		if res.Ok() {
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: ok\n", file)
			}
			continue
		}
		failed++
		if cfg.Quiet {
			continue
		}
		fmt.Fprintf(cc.Out, "%s:\n", file)
		if err := report.Render(cc.Out, res.Errors(), cfg.renderOpts(cc.Out)...); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(args))
	}
	return nil
}

func sampleConverter(cfg *MainConfig, samplePath string) (reshape.Converter[any, any], error) {
	doc, err := cfg.readDoc(samplePath)
	if err != nil {
		return nil, fmt.Errorf("error reading sample %s: %w", samplePath, err)
	}
	return sample.Infer(doc), nil
}
