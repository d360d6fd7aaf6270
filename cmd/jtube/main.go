// Command jtube generates YouTube SEO content for a gameplay video from the
// command line, using the same generator as the server.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/phrazzld/jtube/internal/config"
	"github.com/phrazzld/jtube/internal/domain"
	"github.com/phrazzld/jtube/internal/generation"
	"github.com/phrazzld/jtube/internal/platform/gemini"
	"github.com/phrazzld/jtube/internal/platform/logger"
	"github.com/phrazzld/jtube/internal/redact"
)

// Exit codes
const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	exitFunding = 3
)

type options struct {
	configPath string
	jsonOutput bool
	logLevel   string
	request    struct {
		gameTitle, contentType, gameGenre, gameLink, donationLink, language, targetRegion string
	}
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, nil))
}

// run parses args, performs one generation and prints the result.
// A nil gen builds the Gemini generator from configuration.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, gen generation.Generator) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	ct, err := domain.ParseContentType(opts.request.contentType)
	if err != nil {
		fmt.Fprintf(stderr, "jtube: %v (valid: %s)\n", err, contentTypeIDs())
		return exitUsage
	}
	req, err := domain.NewGenerationRequest(
		opts.request.gameTitle, ct, opts.request.gameGenre, opts.request.gameLink,
		opts.request.donationLink, opts.request.language, opts.request.targetRegion,
	)
	if err != nil {
		fmt.Fprintf(stderr, "jtube: %v\n", err)
		return exitUsage
	}

	if gen == nil {
		gen, err = buildGenerator(opts, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "jtube: %v\n", err)
			return exitFailed
		}
	}

	result, err := gen.Generate(ctx, req)
	if err != nil {
		fmt.Fprintf(stderr, "jtube: %s\n", redact.Error(err))
		var funding *generation.FundingError
		if errors.As(err, &funding) {
			return exitFunding
		}
		return exitFailed
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(stderr, "jtube: failed to encode result: %v\n", err)
			return exitFailed
		}
		return exitOK
	}

	printResult(stdout, result)
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("jtube", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.request.gameTitle, "title", "", "game title (required)")
	fs.StringVar(&opts.request.contentType, "type", domain.DefaultContentType.ID(), "content type: "+contentTypeIDs())
	fs.StringVar(&opts.request.gameGenre, "genre", "", "game genre")
	fs.StringVar(&opts.request.gameLink, "link", "", "game store link")
	fs.StringVar(&opts.request.donationLink, "donation", "", "donation link for the description")
	fs.StringVar(&opts.request.language, "lang", "", "output language (default English)")
	fs.StringVar(&opts.request.targetRegion, "region", "", "target region (default Global)")
	fs.StringVar(&opts.configPath, "config", "", "path to a config file")
	fs.BoolVar(&opts.jsonOutput, "json", false, "print the result as JSON")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func buildGenerator(opts *options, stderr io.Writer) (generation.Generator, error) {
	cfg, err := config.LoadFrom(opts.configPath)
	if err != nil {
		return nil, err
	}
	cfg.Server.LogLevel = opts.logLevel

	log, err := logger.SetupWithWriter(cfg.Server, stderr)
	if err != nil {
		return nil, err
	}

	classifier := generation.NewClassifier(cfg.Funding.DonationURL, cfg.Funding.Triggers...)
	return gemini.NewGeminiGenerator(log.With(slog.String("component", "cli")), cfg.LLM,
		gemini.WithClassifier(classifier))
}

func printResult(w io.Writer, r *domain.GenerationResult) {
	fmt.Fprintln(w, generation.TitlesHeader)
	for i, t := range r.Titles {
		fmt.Fprintf(w, "%d. %s\n", i+1, t)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, generation.DescriptionHeader)
	fmt.Fprintln(w, r.Description)
	fmt.Fprintln(w)
	fmt.Fprintln(w, generation.TagsHeader)
	fmt.Fprintln(w, r.Tags)

	if sources := r.DisplayedSources(); len(sources) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Trend Sources Used:")
		for _, s := range sources {
			fmt.Fprintf(w, "- %s <%s>\n", s.Title, s.URI)
		}
	}
}

func contentTypeIDs() string {
	types := domain.ContentTypes()
	ids := make([]string, 0, len(types))
	for _, ct := range types {
		ids = append(ids, ct.ID())
	}
	return strings.Join(ids, ", ")
}
