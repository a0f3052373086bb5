package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"guardian/internal/api"
	"guardian/internal/config"
	"guardian/internal/logging"
	"guardian/internal/mediastore"
)

// Daemon owns the process-wide lock and reports runtime status.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *mediastore.Store

	lockPath string
	lock     *flock.Flock

	running atomic.Bool
}

// NewDaemon constructs the daemon around an open store.
func NewDaemon(cfg *config.Config, store *mediastore.Store, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || store == nil {
		return nil, errors.New("daemon requires config and store")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	lockPath := filepath.Join(cfg.Paths.LogDir, "guardiand.lock")
	return &Daemon{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// Start acquires the single-instance lock.
func (d *Daemon) Start() error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}
	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another guardian daemon instance is already running")
	}
	d.running.Store(true)
	d.logger.Info("guardian daemon started", slog.String("lock", d.lockPath))
	return nil
}

// Stop releases the single-instance lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", slog.String("error", err.Error()))
	}
	d.running.Store(false)
	d.logger.Info("guardian daemon stopped")
}

// LockFilePath returns the path to the single-instance lock file.
func (d *Daemon) LockFilePath() string {
	return d.lockPath
}

// Status reports runtime information for the daemon endpoint.
func (d *Daemon) Status(ctx context.Context) api.DaemonStatus {
	status := api.DaemonStatus{
		Running:      d.running.Load(),
		PID:          os.Getpid(),
		DatabasePath: d.cfg.DatabasePath(),
		LockFilePath: d.lockPath,
	}

	counts, err := d.store.Stats(ctx)
	if err != nil {
		d.logger.Warn("record counts unavailable", slog.String("error", err.Error()))
	} else {
		status.RecordCounts = make(map[string]int, len(counts))
		for key, count := range counts {
			status.RecordCounts[string(key)] = count
		}
	}

	if usage, err := diskUsage(d.cfg.Paths.DataDir); err != nil {
		d.logger.Warn("disk usage unavailable", slog.String("error", err.Error()))
	} else {
		status.Disk = usage
	}
	return status
}

func diskUsage(path string) (*api.DiskUsage, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return nil, err
	}
	blockSize := uint64(stat.Bsize)
	return &api.DiskUsage{
		TotalBytes: stat.Blocks * blockSize,
		FreeBytes:  stat.Bavail * blockSize,
	}, nil
}
