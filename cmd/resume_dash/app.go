package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/vkstore/resume-dashboard/internal/api"
	"github.com/vkstore/resume-dashboard/internal/config"
	"github.com/vkstore/resume-dashboard/internal/guard"
	"github.com/vkstore/resume-dashboard/internal/observability"
	"github.com/vkstore/resume-dashboard/internal/prefs"
	"github.com/vkstore/resume-dashboard/internal/screens"
	"github.com/vkstore/resume-dashboard/internal/session"
	"github.com/vkstore/resume-dashboard/internal/storage"
)

// app wires the shared components every command needs. The session context
// is constructed here, once, and handed to each screen explicitly; no screen
// reaches into ambient global state.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	session *session.Store
	prefs   *prefs.Manager
	gateway *api.Gateway
	guard   *guard.Guard
	render  *screens.Renderer
}

// newApp layers configuration (flags over config file over environment over
// defaults) and opens the shared stores.
func newApp() (*app, error) {
	cfg := config.Config{
		BaseURL:  rootBaseURL,
		StateDir: rootStateDir,
		Verbose:  rootVerbose,
	}
	if rootConfigPath != "" {
		fileCfg, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return nil, err
		}
		if err := fileCfg.Validate(); err != nil {
			return nil, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.FromEnvironment())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := observability.NewLogger(cfg.StateDir, cfg.Verbose)

	kv, err := storage.Open(cfg.StateDir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open local storage: %w", err)
	}

	sess := session.New(kv)
	return &app{
		cfg:     cfg,
		logger:  logger,
		session: sess,
		prefs:   prefs.New(kv),
		gateway: api.NewGateway(cfg.BaseURL, &api.Options{Timeout: cfg.Timeout(), Logger: logger}),
		guard:   guard.New(sess),
		render:  screens.NewRenderer(os.Stdout),
	}, nil
}

// close flushes the logger before the process exits.
func (a *app) close() {
	_ = a.logger.Sync()
}

// requireSession applies the protected-screen policy. When signed out it
// prints the sign-in notice and reports false; the command then returns
// without touching the API.
func (a *app) requireSession() bool {
	decision := a.guard.Resolve(guard.Protected)
	if !decision.Allow {
		a.render.Notice("Please sign in first: resume_dash login --email you@company.com --password ...")
		return false
	}
	return true
}

// redirectIfSignedIn applies the public-only policy: an authenticated user
// asking for sign-in or sign-up lands on the dashboard instead.
func (a *app) redirectIfSignedIn() bool {
	decision := a.guard.Resolve(guard.PublicOnly)
	if !decision.Allow {
		a.render.Notice("Already signed in; showing the dashboard.")
		a.showDashboard()
		return true
	}
	return false
}
