// Package cli implements the khutwa terminal front end on top of the
// client library.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	clientapi "github.com/iudanet/khutwa/internal/client/api"
	"github.com/iudanet/khutwa/internal/client/auth"
	"github.com/iudanet/khutwa/internal/client/config"
	"github.com/iudanet/khutwa/internal/client/content"
	"github.com/iudanet/khutwa/internal/client/iocli"
	"github.com/iudanet/khutwa/internal/client/sensor"
	"github.com/iudanet/khutwa/internal/client/sharing"
	"github.com/iudanet/khutwa/internal/client/storage/boltdb"
	"github.com/iudanet/khutwa/internal/logging"
)

// PasswordEnv переменная окружения с паролем (для автоматизации)
const PasswordEnv = "KHUTWA_PASSWORD"

// annotationNoSession помечает команды, которым не нужна сессия
const annotationNoSession = "khutwa/no-session"

// BuildInfo описывает версию бинарника
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Options настраивает Cli
type Options struct {
	// LookupEnv читает переменные окружения; по умолчанию os.LookupEnv
	LookupEnv func(string) (string, bool)
	// LogOutput получает логи; по умолчанию os.Stderr
	LogOutput io.Writer
	Build     BuildInfo
}

// globalFlags значения persistent флагов root команды
type globalFlags struct {
	configPath   string
	server       string
	db           string
	logLevel     string
	timeout      string
	pollInterval string
	json         bool
}

// Cli связывает команды с сервисами клиента.
// Сервисы создаются в setup перед выполнением команды.
type Cli struct {
	io        iocli.IO
	lookupEnv func(string) (string, bool)
	logOutput io.Writer

	cfg       *config.Config
	logger    *slog.Logger
	store     *boltdb.Storage
	apiClient *clientapi.Client
	session   *auth.Session
	boot      *auth.Bootstrapper
	auth      *auth.Service
	sharing   *sharing.Manager
	content   *content.Service
	sensor    *sensor.Service

	build BuildInfo
	flags globalFlags
}

// New создает Cli
func New(io iocli.IO, opts Options) *Cli {
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	return &Cli{
		io:        io,
		lookupEnv: opts.LookupEnv,
		logOutput: opts.LogOutput,
		build:     opts.Build,
	}
}

// Execute runs the command line args and prints a user-facing message on
// failure. The returned error is nil on success.
func (c *Cli) Execute(ctx context.Context, args []string) error {
	defer c.close()

	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(c.io)
	root.SetErr(c.io)

	err := root.ExecuteContext(ctx)
	if err != nil {
		if msg := Describe(err); msg != "" {
			c.io.Println("Error:", msg)
		}
	}
	return err
}

// Describe returns the text shown to the user for err
func Describe(err error) string {
	var apiErr *clientapi.Error
	if errors.As(err, &apiErr) {
		return clientapi.UserMessage(err)
	}
	if errors.Is(err, context.Canceled) {
		return ""
	}
	return err.Error()
}

// setup загружает конфигурацию, открывает хранилище токена и
// выполняет bootstrap сессии
func (c *Cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.flags.configPath, c.lookupEnv)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := c.applyFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	c.cfg = cfg
	c.logger = logging.New(c.logOutput, cfg.LogLevel, cfg.LogFormat)

	ctx := cmd.Context()

	store, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open session store %s (is another khutwa process running?): %w", cfg.DBPath, err)
	}
	c.store = store

	c.apiClient = clientapi.NewClient(cfg.ServerURL, store,
		clientapi.WithTimeout(cfg.Timeout),
		clientapi.WithLogger(c.logger),
	)
	c.session = auth.NewSession()
	c.auth = auth.NewService(c.apiClient, store, c.session, c.logger)
	c.boot = auth.NewBootstrapper(store, c.apiClient, c.session, c.logger)
	c.sharing = sharing.NewManager(c.apiClient, c.logger)
	c.content = content.NewService(c.apiClient, c.logger)
	c.sensor = sensor.NewService(c.apiClient, c.logger)

	c.boot.Bootstrap(ctx)
	return nil
}

// applyFlags переопределяет конфигурацию явно заданными флагами
func (c *Cli) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("server") {
		cfg.ServerURL = c.flags.server
	}
	if flags.Changed("db") {
		cfg.DBPath = c.flags.db
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = c.flags.logLevel
	}
	if flags.Changed("timeout") {
		d, err := parseDuration("timeout", c.flags.timeout)
		if err != nil {
			return err
		}
		cfg.Timeout = d
	}
	if flags.Changed("poll-interval") {
		d, err := parseDuration("poll-interval", c.flags.pollInterval)
		if err != nil {
			return err
		}
		cfg.PollInterval = d
	}
	return nil
}

func (c *Cli) close() {
	if c.store == nil {
		return
	}
	if err := c.store.Close(); err != nil && c.logger != nil {
		c.logger.Error("failed to close session store", "error", err)
	}
	c.store = nil
}

// requireAuth возвращает ошибку, если сессия не авторизована
func (c *Cli) requireAuth() error {
	if c.session == nil || !c.session.IsAuthenticated() {
		return errors.New(`not signed in, run "khutwa signin" first`)
	}
	return nil
}
