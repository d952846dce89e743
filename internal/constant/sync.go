package constant

import "time"

const (
	// SyncPageSize is the number of recent activities requested from the
	// vendor in a single sync run.
	SyncPageSize = 100

	// SyncMutexPrefix prefixes the per-user redsync mutex name.
	SyncMutexPrefix = "stride:sync:user:"

	// SyncMutexExpiry must outlive the worst-case run: the lap-fetch step
	// performs one vendor call per activity, so a full page can take a while.
	SyncMutexExpiry = 10 * time.Minute

	// HeartRateZoneCount and PowerZoneCount are vendor-defined bucket counts.
	HeartRateZoneCount = 5
	PowerZoneCount     = 5
)
