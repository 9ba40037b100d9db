package outfile

import (
	"context"
	"strings"

	"github.com/vango-dev/domgen/internal/errors"
)

// Sink is the interface for output destinations.
type Sink interface {
	// Write stores data under name and returns where it was written.
	Write(ctx context.Context, name string, data []byte) (location string, err error)
}

// ParseTarget returns the sink for target: "s3://bucket[/prefix]" selects an
// S3Sink, anything else without a URL scheme is a directory. An empty target
// writes each file at the name it is given.
func ParseTarget(target string, opts S3Options) (Sink, error) {
	scheme, rest, ok := strings.Cut(target, "://")
	if !ok {
		return NewDiskSink(target), nil
	}
	if scheme != "s3" {
		return nil, errors.New("E161").WithDetailf("unsupported scheme %q in %q", scheme, target)
	}
	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return nil, errors.New("E161").WithDetailf("no bucket in %q", target)
	}
	return NewS3Sink(NewS3Client(opts), bucket, prefix), nil
}
