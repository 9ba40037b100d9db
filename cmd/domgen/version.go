package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/vango-dev/domgen/pkg/compile"
)

// buildInfo describes the running binary.
type buildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
	Runtime   string `json:"runtime"`
}

// currentBuild fills in module and VCS data from the binary when the
// version was not set by the linker, as with go install.
func currentBuild() buildInfo {
	info := buildInfo{
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Runtime:   compile.DefaultRuntimeImport,
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok || info.Version != "dev" {
		return info
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.time":
			info.Date = s.Value
		}
	}
	return info
}

func versionCmd() *cobra.Command {
	var short, asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print version, commit, and build information for the domgen CLI.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := currentBuild()
			w := cmd.OutOrStdout()
			switch {
			case short:
				fmt.Fprintln(w, info.Version)
			case asJSON:
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			default:
				fmt.Fprintf(w, "  Version:    %s\n", info.Version)
				fmt.Fprintf(w, "  Commit:     %s\n", info.Commit)
				fmt.Fprintf(w, "  Built:      %s\n", info.Date)
				fmt.Fprintf(w, "  Go version: %s\n", info.GoVersion)
				fmt.Fprintf(w, "  OS/Arch:    %s\n", info.Platform)
				fmt.Fprintf(w, "  Runtime:    %s\n", info.Runtime)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print build information as JSON")

	return cmd
}
