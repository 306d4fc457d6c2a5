package newrelic

import (
	"log"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/openride/tripgate/internal/pkg/models"
)

// InitNewRelic creates the New Relic application when enabled.
// Returns nil when APM is disabled; callers must tolerate a nil app.
func InitNewRelic(cfg *models.Config) *newrelic.Application {
	if !cfg.NewRelic.Enabled || cfg.NewRelic.LicenseKey == "" {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.NewRelic.AppName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(true),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Printf("Failed to initialize New Relic: %v", err)
		return nil
	}

	return app
}
