// Command transitcli loads a transit request document, builds the
// catalogue and router it describes, answers every stat request and
// writes the results back out as a JSON array.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/busgraph/transitgraph/catalogue"
	"github.com/busgraph/transitgraph/iodoc"
	"github.com/busgraph/transitgraph/router"
	"github.com/busgraph/transitgraph/svgmap"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	inputPath  string
	outputPath string
	configPath string
	logLevel   string
	logFormat  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "transitcli",
		Short: "Bus transit catalogue and router CLI",
		Long: `transitcli reads a request document describing bus stops, routes
and stat queries, builds the transit catalogue and router it describes,
and writes the answer to every query as a JSON array.

Examples:
  transitcli < requests.json
  transitcli --input requests.json --output answers.json
  transitcli --config defaults.yaml --log-level debug`,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&inputPath, "input", "", "Input document path (default: stdin)")
	rootCmd.Flags().StringVar(&outputPath, "output", "", "Output path (default: stdout)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file of fallback routing/render defaults")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(logLevel, logFormat)
	if err != nil {
		return err
	}

	in, err := openInput(inputPath)
	if err != nil {
		logger.Error("cannot open input", "path", inputPath, "err", err)
		os.Exit(2)
	}
	defer in.Close()

	doc, err := iodoc.Load(in)
	if err != nil {
		logger.Error("failed to load document", "err", err)
		os.Exit(1)
	}

	var cfg *iodoc.CLIConfig
	if configPath != "" {
		cfg, err = iodoc.LoadCLIConfig(configPath)
		if err != nil {
			logger.Error("failed to load config", "err", err)
			os.Exit(1)
		}
	}

	cat := catalogue.New()
	if err := iodoc.FillCatalogue(doc, cat); err != nil {
		logger.Error("failed to build catalogue", "err", err)
		os.Exit(1)
	}
	logger.Info("catalogue built", "stops", cat.StopCount(), "buses", cat.BusCount())

	var fallbackRouting *iodoc.RoutingSettings
	var fallbackRender *iodoc.RenderSettings
	if cfg != nil {
		fallbackRouting = cfg.Routing
		fallbackRender = cfg.Render
	}

	routing, ok := iodoc.ResolveRoutingSettings(doc.RoutingSettings, fallbackRouting)
	if !ok {
		logger.Error("no routing settings available: document and config both omit them")
		os.Exit(1)
	}

	rtr, err := router.Build(cat, routing.BusWaitTime, routing.BusVelocity)
	if err != nil {
		logger.Error("failed to build router", "err", err)
		os.Exit(1)
	}

	rs := doc.RenderSettings
	if rs == nil {
		rs = fallbackRender
	}
	settings := iodoc.ResolveRenderSettings(rs)

	responses, err := answerAll(doc.StatRequests, cat, rtr, settings)
	if err != nil {
		logger.Error("failed to answer requests", "err", err)
		os.Exit(1)
	}
	logger.Info("requests answered", "count", len(responses))

	out, err := openOutput(outputPath)
	if err != nil {
		logger.Error("cannot open output", "path", outputPath, "err", err)
		os.Exit(2)
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(responses); err != nil {
		return fmt.Errorf("transitcli: writing output: %w", err)
	}

	return nil
}

// answerAll dispatches every request concurrently via an errgroup while
// preserving request order in the returned slice: each goroutine writes
// only to its own index, so the fan-out never races on shared state and
// the result is indistinguishable from sequential processing.
func answerAll(reqs []iodoc.StatRequestEnvelope, cat *catalogue.Catalogue, rtr *router.Router, settings svgmap.Settings) ([]iodoc.Response, error) {
	responses := make([]iodoc.Response, len(reqs))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			responses[i] = iodoc.Answer(req, cat, rtr, settings)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return responses, nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}

	return os.Create(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func newLogger(level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("transitcli: unknown log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		return nil, fmt.Errorf("transitcli: unknown log format %q", format)
	}

	return slog.New(handler), nil
}
