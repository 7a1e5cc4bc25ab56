package main

import (
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-blog/config"
	"github.com/oksasatya/go-ddd-blog/pkg/validation"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "blog.db"))
	t.Setenv("PASSWORD_PBKDF2_ITERATIONS", "1000")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("RABBITMQ_URL", "")
	return config.Load()
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRun_InitFailureReturnsError(t *testing.T) {
	cfg := testConfig(t)
	cfg.DBDriver = "oracle"

	err := run(cfg, quietLogger())
	require.ErrorContains(t, err, "initialize")
	require.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestRun_ListenFailureReturnsInsteadOfExiting(t *testing.T) {
	validation.Init()
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	cfg := testConfig(t)
	_, port, err := net.SplitHostPort(busy.Addr().String())
	require.NoError(t, err)
	cfg.Port = port

	done := make(chan error, 1)
	go func() { done <- run(cfg, quietLogger()) }()

	select {
	case err := <-done:
		require.ErrorContains(t, err, "listen")
	case <-time.After(10 * time.Second):
		t.Fatal("run did not return after the listener failed")
	}
}
