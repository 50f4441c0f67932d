// Package server serves mullion sessions over SSH.
package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/mullion/mullion/internal/app"
	"github.com/mullion/mullion/internal/config"
)

// Config holds the SSH server settings.
type Config struct {
	Host    string
	Port    string
	KeyPath string
	// StatePath is where each session saves and restores its layout.
	StatePath string
}

// Start runs the SSH server until the context is cancelled. Each
// connection gets its own independent workspace.
func Start(ctx context.Context, cfg Config) error {
	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("server: resolve home directory: %w", err)
		}
		hostKeyPath = filepath.Join(homeDir, ".ssh", "mullion_host_key")
	}

	srv, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(makeTeaHandler(cfg)),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("server: create: %w", err)
	}

	go func() {
		log.Info("Starting SSH server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
			log.Error("SSH server error", "err", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down SSH server")
	return srv.Shutdown(ctx)
}

// makeTeaHandler builds a fresh workspace model per SSH session.
func makeTeaHandler(srvCfg Config) bubbletea.Handler {
	return func(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, active := sshSession.Pty()
		if !active {
			return nil, nil
		}

		userConfig, err := config.LoadUserConfig()
		if err != nil {
			log.Warn("Failed to load config for SSH session, using defaults", "err", err)
			userConfig = config.DefaultConfig()
		}

		statePath := srvCfg.StatePath
		if statePath == "" {
			statePath = filepath.Join(os.TempDir(),
				fmt.Sprintf("mullion-%s-layout.yaml", sshSession.User()))
		}

		m := app.New(userConfig, statePath)
		m.Width = pty.Window.Width
		m.Height = pty.Window.Height
		m.Frame.Resize(pty.Window.Width, pty.Window.Height)

		return m, nil
	}
}
