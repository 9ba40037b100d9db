package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/domgen/internal/outfile"
	"github.com/vango-dev/domgen/pkg/compile"
)

func buildCmd(flags *globalFlags) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "build [paths...]",
		Short: "Compile documents into Go files",
		Long: `Compile parser documents into Go source files.

Paths may be document files (.yaml, .yml, .json) or directories, which
are searched recursively. Each document produces <file>.gen.go next to
it, or under --out, which may be a directory or s3://bucket/prefix.

Examples:
  domgen build
  domgen build views/ --set templateMode=true
  domgen build views/card.yaml --out s3://assets/gen`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runBuild(ctx, flags, out, args)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory or s3://bucket/prefix (default from domgen.json)")

	return cmd
}

func runBuild(ctx context.Context, flags *globalFlags, out string, paths []string) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	inputs, err := collectInputs(paths)
	if err != nil {
		return err
	}

	target := out
	if target == "" {
		target = cfg.OutputTarget()
	}
	sink, err := outfile.ParseTarget(target, outfile.S3Options{Region: cfg.S3.Region, Endpoint: cfg.S3.Endpoint})
	if err != nil {
		return err
	}

	c, err := compile.New(cfg.CompileOptions(), compile.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	start := time.Now()
	failed := 0
	for _, r := range compileInputs(ctx, c, inputs) {
		if r.err != nil {
			failed++
			errorMsg("%s", r.input)
			printErr(r.err, flags.verbose)
			continue
		}
		loc, err := sink.Write(ctx, outputName(cfg, target, r), r.source)
		if err != nil {
			failed++
			errorMsg("%s", r.input)
			printErr(err, flags.verbose)
			continue
		}
		info("%s → %s", r.input, loc)
	}

	fmt.Println()
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(inputs))
	}
	success("Built %d document(s) in %s", len(inputs), time.Since(start).Round(time.Millisecond))
	return nil
}
