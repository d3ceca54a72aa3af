package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Cyclone1070/offcode/internal/config"
	"github.com/Cyclone1070/offcode/internal/metrics"
	"github.com/Cyclone1070/offcode/internal/provider"
	"github.com/Cyclone1070/offcode/internal/provider/gemini"
	"github.com/Cyclone1070/offcode/internal/provider/openai"
	"github.com/Cyclone1070/offcode/internal/session"
	"github.com/Cyclone1070/offcode/internal/tool/pathutil"
	"github.com/Cyclone1070/offcode/internal/ui"
	"github.com/Cyclone1070/offcode/internal/workflow/confirm"
	"github.com/Cyclone1070/offcode/internal/workflow/loop"
	"github.com/Cyclone1070/offcode/internal/workflow/toolmanager"
)

type options struct {
	configPath    string
	root          string
	prompt        string
	files         []string
	autoConfirm   bool
	maxIterations int
	provider      string
	model         string
	verbose       bool
	metricsFile   string
}

// environment is the process surface run talks to, swapped out in tests.
type environment struct {
	in       io.Reader
	out      io.Writer
	renderer ui.MarkdownRenderer
	getenv   func(string) string
}

func run(ctx context.Context, cmd *cobra.Command, opts options, env environment) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	root := cfg.Sandbox.Root
	if root == "" {
		if root, err = os.Getwd(); err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
	}
	root, err = pathutil.CanonicaliseRoot(root)
	if err != nil {
		return fmt.Errorf("sandbox root: %w", err)
	}

	completer, err := newCompleter(ctx, cfg, env.getenv)
	if err != nil {
		return err
	}

	m := metrics.New()
	if cfg.Metrics.Textfile != "" {
		defer func() {
			if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
				logger.Warn("write metrics textfile", zap.String("path", cfg.Metrics.Textfile), zap.Error(err))
			}
		}()
	}

	sessionID := uuid.NewString()
	logger = logger.With(zap.String("session", sessionID))
	logger.Info("starting",
		zap.String("root", root),
		zap.String("provider", cfg.Model.Provider),
		zap.String("model", cfg.Model.Name),
		zap.Int("max_iterations", cfg.Workflow.MaxIterations))

	registry := toolmanager.NewBuiltin(cfg, root, logger, m)
	console := ui.NewConsole(env.out, env.renderer, 0)
	gate := confirm.NewGate(confirm.NewTerminalPrompter(env.in, env.out), cfg.Workflow.AutoConfirm)
	l := loop.NewLoop(completer, registry, gate, console, logger, m, loop.Options{
		MaxIterations:        cfg.Workflow.MaxIterations,
		HistoryWindow:        cfg.Workflow.HistoryWindow,
		PlaceholderThreshold: cfg.Workflow.PlaceholderThreshold,
		ReadFeedbackLimit:    cfg.Workflow.ReadFeedbackLimit,
		Params: provider.Params{
			Temperature:   cfg.Model.Temperature,
			TopP:          cfg.Model.TopP,
			TopK:          cfg.Model.TopK,
			RepeatPenalty: cfg.Model.RepeatPenalty,
			MaxTokens:     cfg.Model.MaxTokens,
			Stop:          cfg.Model.Stop,
		},
	})
	sess := session.New(sessionID, l, registry, gate, console, logger)

	for _, f := range opts.files {
		sess.Handle(ctx, "/add "+f)
	}

	if opts.prompt != "" {
		_, err := sess.Ask(ctx, opts.prompt)
		return err
	}
	return sess.Interactive(ctx, env.in, env.out)
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.NewLoader().LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Sandbox.Root = opts.root
	}
	if flags.Changed("max-iterations") {
		cfg.Workflow.MaxIterations = opts.maxIterations
	}
	if flags.Changed("auto-confirm") {
		cfg.Workflow.AutoConfirm = opts.autoConfirm
	}
	if flags.Changed("provider") {
		cfg.Model.Provider = opts.provider
	}
	if flags.Changed("model") {
		cfg.Model.Name = opts.model
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.Textfile = opts.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("logging.level: %w", err)
	}
	zc.Level = level
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if len(cfg.Logging.OutputPaths) > 0 {
		zc.OutputPaths = cfg.Logging.OutputPaths
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func newCompleter(ctx context.Context, cfg *config.Config, getenv func(string) string) (provider.Completer, error) {
	apiKey := ""
	if cfg.Model.APIKeyEnv != "" {
		apiKey = getenv(cfg.Model.APIKeyEnv)
	}
	timeout := time.Duration(cfg.Model.TimeoutSeconds) * time.Second

	var c provider.Completer
	switch cfg.Model.Provider {
	case "gemini":
		if apiKey == "" {
			return nil, fmt.Errorf("%s environment variable is required for the gemini provider", cfg.Model.APIKeyEnv)
		}
		client, err := gemini.NewRealGeminiClient(ctx, apiKey)
		if err != nil {
			return nil, err
		}
		c = gemini.New(client, cfg.Model.Name)
	case "openai":
		c = openai.New(cfg.Model.BaseURL, cfg.Model.Name, apiKey, timeout)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Model.Provider)
	}
	return provider.NewRateLimited(c, cfg.Model.RequestsPerMinute), nil
}
