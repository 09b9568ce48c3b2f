package arc

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrUnsupportedOperation is returned when a format cannot perform the
	// requested operation (e.g. compressing to an extraction-only format).
	ErrUnsupportedOperation = errors.New("arc: operation not supported by format")

	// ErrUnrecognizedFormat is returned when neither magic bytes nor the
	// filename extension identify a known archive format.
	ErrUnrecognizedFormat = errors.New("arc: unrecognized archive format")

	// ErrPasswordRequired is returned when an archive is encrypted and no
	// password was supplied. Callers should re-prompt rather than abort.
	ErrPasswordRequired = errors.New("arc: password required")

	// ErrIncorrectPassword is returned when the supplied password fails to
	// decrypt an encrypted archive.
	ErrIncorrectPassword = errors.New("arc: incorrect password")

	// ErrCorruptArchive is returned when an archive fails structural or
	// checksum validation.
	ErrCorruptArchive = errors.New("arc: corrupt archive")

	// ErrUnsupportedEntry is returned when an entry uses a compression
	// method the codec does not implement. Multi-entry containers skip the
	// entry with a warning; single-entry formats fail with this error.
	ErrUnsupportedEntry = errors.New("arc: unsupported entry")

	// ErrEmptyInput is returned when compression is requested with no
	// selected files and the target format cannot represent an empty archive.
	ErrEmptyInput = errors.New("arc: no files selected")

	// ErrCompressionFailed wraps codec-level failures during compression,
	// carrying the original cause.
	ErrCompressionFailed = errors.New("arc: compression failed")
)

// Warning describes a non-fatal condition encountered during an operation:
// a skipped entry, a rejected path, or an ignored password. Operations that
// succeed may still carry warnings the caller should surface to the user.
type Warning struct {
	// Path is the archive entry or file the warning refers to, if any.
	Path string

	// Message is a human-readable description of the condition.
	Message string

	// Err classifies the warning against the package's error taxonomy
	// (e.g. ErrUnsupportedEntry for skipped entries). May be nil.
	Err error
}

func (w Warning) String() string {
	if w.Path == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.Path, w.Message)
}
