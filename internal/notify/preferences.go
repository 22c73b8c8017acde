package notify

import "context"

// Preferences answers per-customer delivery questions. The engine only asks
// about weather advisories today; everything else is always delivered.
type Preferences interface {
	WeatherAlertsEnabled(ctx context.Context, customerID int64) bool
}

// AllowAll is the default policy: every customer gets weather advisories
// until a real preference store exists.
type AllowAll struct{}

func (AllowAll) WeatherAlertsEnabled(context.Context, int64) bool { return true }
