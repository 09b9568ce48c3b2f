package arc

import "log/slog"

// decompressConfig holds configuration for a decompress operation.
type decompressConfig struct {
	password string
	logger   *slog.Logger
}

// DecompressOption configures a decompress operation.
type DecompressOption func(*decompressConfig)

// DecompressWithPassword supplies the password for encrypted archives.
func DecompressWithPassword(password string) DecompressOption {
	return func(cfg *decompressConfig) {
		cfg.password = password
	}
}

// DecompressWithLogger sets the logger for non-fatal conditions (skipped
// entries, rejected paths). Defaults to a discarding logger.
func DecompressWithLogger(logger *slog.Logger) DecompressOption {
	return func(cfg *decompressConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
