package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/asciiwave/internal/config"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = ".ssh/asciiwave_ed25519"
)

func main() {
	addr := config.ListenAddr("SSH_HOST", "SSH_PORT", defaultHost, defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	log.Info("SSH config", "addr", addr, "hostKeyPath", hostKeyPath)

	opts := []ssh.Option{
		wish.WithAddress(addr),
		wish.WithMiddleware(
			waveMiddleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Frames are tiny and frequent; don't let Nagle batch them.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		log.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info("Starting SSH server", "addr", addr)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal("server error", "err", err)
		}
	}()

	<-done
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Fatal("shutdown error", "err", err)
	}
}

// waveMiddleware plays the animation into each interactive session.
func waveMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		// activeterm.Middleware has already rejected sessions without a PTY.
		pty, _, _ := sess.Pty()

		log.Info("New wave session", "user", sess.User(), "term", pty.Term,
			"width", pty.Window.Width, "height", pty.Window.Height)

		if err := playSession(sess.Context(), sess, pty.Window.Width); err != nil {
			log.Warn("Session stopped early", "user", sess.User(), "err", err)
		}

		log.Info("Session ended", "user", sess.User())
		next(sess)
	}
}
