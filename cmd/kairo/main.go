// Package main runs the kairo sandboxed terminal over an archive-backed
// virtual filesystem.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kairoterm/kairo/internal/archive"
	"github.com/kairoterm/kairo/internal/audit"
	"github.com/kairoterm/kairo/internal/config"
	"github.com/kairoterm/kairo/internal/logging"
	"github.com/kairoterm/kairo/internal/shell"
	"github.com/kairoterm/kairo/internal/ui"
	"github.com/kairoterm/kairo/internal/ui/services"
	"github.com/kairoterm/kairo/internal/vfs"
	"go.uber.org/zap"
)

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Env     config.Env
	Config  *config.Config
	Logger  *zap.Logger
	Session *shell.Session
	Exiter  *ui.Exiter
}

func newLogger(env config.Env) *zap.Logger {
	return logging.NewOrNop(logging.Config{
		Level:       env.LogLevel,
		Development: env.LogDev,
		OutputPaths: []string{"stderr"},
	})
}

// buildSession loads the archive into a tree and opens a session on it with
// the audit log of cfg.
func buildSession(cfg *config.Config, exiter *ui.Exiter, log *zap.Logger) (*shell.Session, error) {
	reader := archive.NewFileReader(cfg.TarFilePath, log)
	tree, err := vfs.Build(reader, log)
	if err != nil {
		return nil, err
	}

	recorder := audit.NewLogger(cfg.LogFilePath, cfg.Username, audit.WithDiagnostics(log))
	session := shell.NewSession(tree, recorder,
		shell.WithExit(exiter.Exit),
		shell.WithLogger(log),
	)

	log.Info("session started",
		zap.String("session_id", session.ID()),
		zap.String("user", cfg.Username),
		zap.String("archive", cfg.TarFilePath),
	)
	return session, nil
}

func setup(args []string) (*Dependencies, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}
	deps := &Dependencies{Env: env, Logger: newLogger(env), Exiter: &ui.Exiter{}}

	cfg, err := config.Load(env.ConfigPathFor(args))
	if err != nil {
		return deps, fmt.Errorf("failed to load config: %w", err)
	}
	deps.Config = cfg

	session, err := buildSession(cfg, deps.Exiter, deps.Logger)
	if err != nil {
		return deps, fmt.Errorf("failed to load archive: %w", err)
	}
	deps.Session = session
	return deps, nil
}

// run returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	deps, err := setup(args)
	if deps != nil {
		defer func() { _ = deps.Logger.Sync() }()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if deps.Env.Plain {
		err = ui.RunPlain(stdin, stdout, deps.Session, deps.Exiter, deps.Config.Username)
	} else {
		err = ui.NewUI(deps.Session, deps.Exiter, deps.Config.Username, services.NewGlamourRenderer()).Start()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return deps.Exiter.Code()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
