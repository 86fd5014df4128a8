package healthcheck

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/kirychukyurii/deck-status/internal/config"
)

// Pinger is the upstream probe the checker drives
type Pinger interface {
	Ping(ctx context.Context) error
}

// State is a point-in-time view of upstream health
type State struct {
	Enabled             bool
	Healthy             bool
	ConsecutiveFailures int
	LastCheck           time.Time
}

// Checker performs periodic reachability checks on the deck API
type Checker struct {
	cfg       *config.HealthCheckConfig
	pinger    Pinger
	logger    *slog.Logger
	stopCh    chan struct{}
	wg        sync.WaitGroup
	failures  int // consecutive failed probes
	lastCheck time.Time
	mu        sync.RWMutex
}

// NewChecker creates a new health checker
func NewChecker(
	cfg *config.HealthCheckConfig,
	pinger Pinger,
	logger *slog.Logger,
) *Checker {
	return &Checker{
		cfg:    cfg,
		pinger: pinger,
		logger: logger,
		stopCh: make(chan struct{}),
	}
}

// Start begins the health check loop in a background goroutine
func (c *Checker) Start(ctx context.Context) {
	if !c.cfg.Enabled {
		c.logger.Info("health check is disabled")
		return
	}

	c.logger.Info("starting health checker",
		slog.Duration("interval", c.cfg.Interval),
		slog.Int("failed_threshold", c.cfg.FailedThreshold),
	)

	c.wg.Add(1)
	go c.run(ctx)
}

// Stop gracefully stops the health checker
func (c *Checker) Stop() {
	if !c.cfg.Enabled {
		return
	}

	c.logger.Info("stopping health checker")
	close(c.stopCh)
	c.wg.Wait()
	c.logger.Info("health checker stopped")
}

// State reports the current upstream health.
// With the checker disabled the upstream is assumed healthy.
func (c *Checker) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return State{
		Enabled:             c.cfg.Enabled,
		Healthy:             !c.cfg.Enabled || c.failures < c.cfg.FailedThreshold,
		ConsecutiveFailures: c.failures,
		LastCheck:           c.lastCheck,
	}
}

// run is the main health check loop
func (c *Checker) run(ctx context.Context) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.cfg.Interval)
	defer ticker.Stop()

	c.performCheck(ctx)

	for {
		select {
		case <-c.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.performCheck(ctx)
		}
	}
}

// performCheck executes a single probe and updates the failure counter
func (c *Checker) performCheck(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, c.cfg.Interval)
	defer cancel()

	err := c.pinger.Ping(probeCtx)

	c.mu.Lock()
	c.lastCheck = time.Now()
	previousFailures := c.failures
	if err != nil {
		c.failures++
	} else {
		c.failures = 0
	}
	currentFailures := c.failures
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("deck api health check failed",
			slog.String("error", err.Error()),
			slog.Int("consecutive_failures", currentFailures),
			slog.Int("threshold", c.cfg.FailedThreshold),
		)
		if currentFailures == c.cfg.FailedThreshold {
			c.logger.Error("deck api health check threshold reached, marking upstream unhealthy",
				slog.Int("failures", currentFailures),
			)
		}
		return
	}

	if previousFailures > 0 {
		c.logger.Info("deck api health check passed - health restored",
			slog.Int("previous_failures", previousFailures),
		)
	} else {
		c.logger.Debug("deck api health check passed")
	}
}
