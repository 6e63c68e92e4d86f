package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/fieldline/docparse/internal/decoder"
	"github.com/fieldline/docparse/internal/pipeline"
)

// parsefile runs the extraction pipeline over a single document and prints
// the result envelope as JSON. No archive, no server.
func main() {
	proximity := flag.Float64("proximity", 0, "vertical line-grouping threshold in layout units (0 = default)")
	pretty := flag.Bool("pretty", true, "indent the JSON output")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <document>\n", os.Args[0])
		os.Exit(2)
	}
	path := flag.Arg(0)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read document", "path", path, "error", err)
		os.Exit(1)
	}

	pipe := pipeline.NewPipeline(logger, pipeline.Config{LineProximity: *proximity}, decoder.NewAuto())
	res := pipe.Parse(context.Background(), data)

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(res); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	if !res.Success {
		os.Exit(1)
	}
}
