package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how engagements are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes engagements.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentEngagements is the global limit of concurrent engagements
	// being processed across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentEngagements int `yaml:"max_concurrent_engagements"`

	// PollInterval is the base interval for checking pending engagements.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// EngagementTimeout is the maximum time an engagement can be processed.
	EngagementTimeout time.Duration `yaml:"engagement_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active engagements
	// to complete during shutdown. Should match EngagementTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often workers touch last_interaction_at on
	// the engagement they are processing.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for orphaned engagements.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long an engagement can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:              5,
		MaxConcurrentEngagements: 5,
		PollInterval:             1 * time.Second,
		PollIntervalJitter:       500 * time.Millisecond,
		EngagementTimeout:        1 * time.Hour,
		GracefulShutdownTimeout:  1 * time.Hour,
		HeartbeatInterval:        30 * time.Second,
		OrphanDetectionInterval:  5 * time.Minute,
		OrphanThreshold:          5 * time.Minute,
	}
}
