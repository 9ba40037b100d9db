package main

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vango-dev/domgen/internal/config"
	"github.com/vango-dev/domgen/internal/errors"
	"github.com/vango-dev/domgen/pkg/compile"
)

// documentExts are the extensions of parser documents.
var documentExts = []string{".yaml", ".yml", ".json"}

// collectInputs expands paths into document files. Directories are walked;
// domgen.json itself is never an input.
func collectInputs(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Name() == config.ConfigFileName || !slices.Contains(documentExts, filepath.Ext(path)) {
				return nil
			}
			out = append(out, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if len(out) == 0 {
		return nil, errors.New("E140").WithDetail("searched " + strings.Join(paths, ", "))
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

// result is the outcome of compiling one input.
type result struct {
	input  string
	doc    *compile.Document
	source []byte
	err    error
}

// compileInputs compiles every input with c. Failures are kept per input so
// that one bad document does not hide the others.
func compileInputs(ctx context.Context, c *compile.Compiler, inputs []string) []result {
	results := make([]result, 0, len(inputs))
	for _, input := range inputs {
		r := result{input: input}
		data, err := os.ReadFile(input)
		if err != nil {
			r.err = err
			results = append(results, r)
			continue
		}
		r.doc, r.err = compile.ParseDocument(data)
		if r.err == nil {
			if r.doc.File == "" {
				r.doc.File = input
			}
			r.source, r.err = c.Compile(ctx, r.doc)
		}
		results = append(results, r)
	}
	return results
}

// outputName returns the name a generated file is written under. Without an
// output target the file goes next to its input document.
func outputName(cfg *config.Config, target string, r result) string {
	name := cfg.OutputName(r.doc.File)
	if target == "" {
		return filepath.Join(filepath.Dir(r.input), name)
	}
	return name
}
