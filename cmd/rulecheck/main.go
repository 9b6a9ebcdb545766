// Command rulecheck evaluates a YAML file of validation checks and prints
// the failing fields as JSON.
//
//	LOOKUP_DRIVER=memory rulecheck -checks checks.yaml -messages messages.yaml
//
// Exit status is 0 when every check passes, 1 when some fail and 2 on usage,
// configuration or lookup errors.
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
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/message"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitFatal   = 2
)

// appConfig is read from the environment (and .env when present).
type appConfig struct {
	Driver   string `env:"LOOKUP_DRIVER" envDefault:"none"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
}

type runIDKey struct{}

func runIDFromContext(ctx context.Context) (slog.Attr, bool) {
	id, ok := ctx.Value(runIDKey{}).(uuid.UUID)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.RunID(id.String()), true
}

// report is the JSON document written to stdout.
type report struct {
	RunID  string              `json:"run_id"`
	Valid  bool                `json:"valid"`
	Errors map[string][]string `json:"errors,omitempty"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rulecheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	checksPath := fs.String("checks", "", "path to the YAML file with checks (required)")
	messagesPath := fs.String("messages", "", "path to a YAML file overriding message templates")
	if err := fs.Parse(args); err != nil {
		return exitFatal
	}
	if *checksPath == "" {
		fmt.Fprintln(stderr, "rulecheck: -checks is required")
		fs.Usage()
		return exitFatal
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "rulecheck: %v\n", err)
		return exitFatal
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "rulecheck"),
		logger.WithOutput(stderr),
		logger.WithContextExtractors(runIDFromContext),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			fmt.Fprintf(stderr, "rulecheck: %v\n", err)
			return exitFatal
		}
		opts = append(opts, logger.WithLevel(level))
	}
	log := logger.New(opts...)

	runID := uuid.New()
	ctx = context.WithValue(ctx, runIDKey{}, runID)

	res, err := check(ctx, log, cfg.Driver, *checksPath, *messagesPath)
	if err != nil {
		log.ErrorContext(ctx, "rulecheck failed", logger.Error(err))
		return exitFatal
	}
	res.RunID = runID.String()

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		log.ErrorContext(ctx, "failed to write report", logger.Error(err))
		return exitFatal
	}

	if !res.Valid {
		return exitInvalid
	}
	return exitOK
}

func check(ctx context.Context, log *slog.Logger, driver, checksPath, messagesPath string) (*report, error) {
	start := time.Now()

	doc, err := readChecksFile(checksPath)
	if err != nil {
		return nil, err
	}
	checks, err := doc.checks()
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(messagesPath)
	if err != nil {
		return nil, err
	}

	conn, closeStore, err := openStore(ctx, driver, doc)
	if err != nil {
		return nil, err
	}
	defer closeStore()

	log.DebugContext(ctx, "running checks",
		logger.Driver(driver),
		logger.Count(len(checks)),
	)

	reg := validator.New(
		validator.WithCatalog(catalog),
		validator.WithLogger(log),
	)

	res := &report{Valid: true}
	err = reg.Validate(ctx, conn, checks...)
	switch {
	case err == nil:
	case validator.IsValidationError(err):
		res.Valid = false
		res.Errors = make(map[string][]string)
		errs := validator.ExtractValidationErrors(err)
		for _, field := range errs.Fields() {
			res.Errors[field] = errs.Get(field)
		}
	default:
		return nil, err
	}

	log.InfoContext(ctx, "checks completed",
		logger.Driver(driver),
		logger.Count(len(checks)),
		slog.Bool("valid", res.Valid),
		logger.Duration(time.Since(start)),
	)
	return res, nil
}

func loadCatalog(path string) (message.Catalog, error) {
	if path == "" {
		return message.DefaultCatalog(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(message.ErrInvalidCatalog, err)
	}
	defer f.Close()
	return message.LoadCatalog(f)
}
