package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vango-dev/domgen/pkg/compile"
)

func checkCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [paths...]",
		Short: "Validate and lower documents without writing output",
		Long: `Compile documents and report every error without writing any file.

Use this in CI to reject literals that cannot be lowered, for example
static trees that would not survive a template round trip.

Examples:
  domgen check
  domgen check views/ --set templateMode=true`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			inputs, err := collectInputs(args)
			if err != nil {
				return err
			}
			c, err := compile.New(cfg.CompileOptions(), compile.WithLogger(slog.Default()))
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range compileInputs(cmd.Context(), c, inputs) {
				if r.err != nil {
					failed++
					errorMsg("%s", r.input)
					printErr(r.err, flags.verbose)
					continue
				}
				if len(r.doc.Literals) == 0 {
					warn("%s: no literals", r.input)
					continue
				}
				info("%s: %d literal(s) ok", r.input, len(r.doc.Literals))
			}

			fmt.Println()
			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed", failed, len(inputs))
			}
			success("%d document(s) ok", len(inputs))
			return nil
		},
	}
}
