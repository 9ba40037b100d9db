// Package config provides configuration parsing for domgen.
//
// The configuration is stored in domgen.json at the project root.
// This package handles loading, saving, validating and overriding it.
//
// # Configuration File Structure
//
//	{
//	  "templateMode": true,
//	  "minifyTemplates": true,
//	  "maxDepth": 256,
//	  "placeholder": "__literal",
//	  "runtime": {
//	    "import": "github.com/vango-dev/domgen/pkg/dom",
//	    "name": "dom"
//	  },
//	  "output": {
//	    "dir": "gen",
//	    "suffix": ".gen.go"
//	  },
//	  "serve": {
//	    "addr": "localhost:7070"
//	  },
//	  "s3": {
//	    "bucket": "",
//	    "prefix": "",
//	    "region": "",
//	    "endpoint": ""
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Apply(map[string]string{"templateMode": "true"}); err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err) // every invalid field, joined
//	}
//	c, err := compile.New(cfg.CompileOptions())
package config
