// Package providers contains dependency injection providers for the GeoReads API server.
package providers

import "time"

const (
	// defaultShutdownTimeout applies when the configuration leaves it unset.
	defaultShutdownTimeout = 30 * time.Second
)
