package arc

import "log/slog"

// DefaultLevel is the compression level used when none is set.
const DefaultLevel = 6

// compressConfig holds configuration for a compress operation.
type compressConfig struct {
	password string
	level    int
	logger   *slog.Logger
}

// CompressOption configures a compress operation.
type CompressOption func(*compressConfig)

// CompressWithPassword encrypts the archive with password using the target
// format's native scheme (AES-256 for zip). Formats without password
// support ignore the password and record a warning instead of failing.
func CompressWithPassword(password string) CompressOption {
	return func(cfg *compressConfig) {
		cfg.password = password
	}
}

// CompressWithLevel sets the compression level, 0-9. Level 0 means store:
// codecs with no literal store mode use their cheapest setting while still
// producing valid output. Values outside 0-9 are clamped.
func CompressWithLevel(level int) CompressOption {
	return func(cfg *compressConfig) {
		if level < 0 {
			level = 0
		}
		if level > 9 {
			level = 9
		}
		cfg.level = level
	}
}

// CompressWithLogger sets the logger for non-fatal conditions. Defaults to
// a discarding logger.
func CompressWithLogger(logger *slog.Logger) CompressOption {
	return func(cfg *compressConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
