package cmd

import "time"

// Config carries everything the application needs to start: HTTP binding,
// database connection settings, and the timing knobs for the two maintenance
// sweeps.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// PendingOrderTTL is how long an order may wait for a driver before the
	// sweep cancels it.
	PendingOrderTTL time.Duration
	// PickupTTL is how long a claimed order may wait for pickup before the
	// sweep returns it to the pool.
	PickupTTL time.Duration

	// Cron specs for the sweeps, standard five-field format.
	ExpiredPendingCronSpec string
	StaleClaimCronSpec     string
}
