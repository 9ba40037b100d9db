// Package outfile writes generated Go files to their destination: a local
// directory or an S3 bucket.
//
//	sink, err := outfile.ParseTarget("s3://views/gen", outfile.S3Options{Region: "eu-west-1"})
//	if err != nil {
//	    return err
//	}
//	loc, err := sink.Write(ctx, "card.gen.go", src)
package outfile
