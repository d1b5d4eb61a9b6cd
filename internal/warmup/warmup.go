package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_text_cleaner/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Approximate sample text size for warmup, in runes
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     200,
		SampleTextSize: 1000,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Manager handles system warmup operations
type Manager struct {
	logger      ports.Logger
	cleaners    []ports.TextCleaner
	normalizers []ports.Normalizer
	differs     []ports.Differ
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterCleaner adds a cleanup pipeline to be warmed up
func (wm *Manager) RegisterCleaner(c ports.TextCleaner) {
	wm.cleaners = append(wm.cleaners, c)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(n ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, n)
}

// RegisterDiffer adds a differ to be warmed up
func (wm *Manager) RegisterDiffer(d ports.Differ) {
	wm.differs = append(wm.differs, d)
}

// WarmUp runs the warmup process for all registered components
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.cleaners)+len(wm.normalizers)+len(wm.differs),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	var warmupCtx context.Context
	var cancel context.CancelFunc
	if wm.config.Duration > 0 {
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
	} else {
		warmupCtx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	sample := sampleText(wm.config.SampleTextSize)
	cleanSample := strings.Map(func(r rune) rune {
		if r > 127 {
			return -1
		}
		return r
	}, sample)

	var wg sync.WaitGroup
	for g := 0; g < wm.config.Concurrency; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < wm.config.Iterations; i++ {
				select {
				case <-warmupCtx.Done():
					return
				default:
				}
				for _, n := range wm.normalizers {
					n.Normalize(sample)
				}
				for _, d := range wm.differs {
					_, _ = d.Diff(warmupCtx, sample, cleanSample)
				}
				for _, c := range wm.cleaners {
					_, _ = c.Clean(warmupCtx, sample)
				}
			}
		}()
	}
	wg.Wait()

	if wm.config.ForceGC {
		runtime.GC()
	}

	wm.logger.Info("System warmup complete",
		"duration", time.Since(startTime),
	)
}

// sampleText builds a warmup sample seasoned with the artifacts the rules
// target, so the hot paths through every rule get exercised.
func sampleText(size int) string {
	const chunk = "The “quick” brown fox — jumps over the **lazy** dog… "
	var sb strings.Builder
	sb.Grow(size)
	for sb.Len() < size {
		sb.WriteString(chunk)
	}
	return sb.String()
}
