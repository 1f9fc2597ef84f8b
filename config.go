// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import "time"

// DefaultMaxBodyBytes is the default value of [Config.MaxBodyBytes] (4 MiB).
const DefaultMaxBodyBytes = 4 << 20

// Config holds common configuration for extractors, handlers and endpoints.
//
// Pass this to constructor functions to pre-wire dependencies.
// All fields have sensible defaults set by [NewConfig].
type Config struct {
	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewConfig] to [DefaultErrClassifier].
	ErrClassifier ErrClassifier

	// MaxBodyBytes is the largest request body [*Body] accepts.
	//
	// Set by [NewConfig] to [DefaultMaxBodyBytes].
	MaxBodyBytes int64

	// TimeNow returns the current time.
	//
	// Set by [NewConfig] to [time.Now].
	TimeNow func() time.Time
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		ErrClassifier: DefaultErrClassifier,
		MaxBodyBytes:  DefaultMaxBodyBytes,
		TimeNow:       time.Now,
	}
}
