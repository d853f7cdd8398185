package integrations

import (
	"go.uber.org/zap"

	"pouringat.com/PouringAt/pkg/integrations/untappd-web"
	"pouringat.com/PouringAt/pkg/model"
)

// Integration looks breweries up in an external catalogue.
type Integration interface {
	FindBrewery(name string) ([]model.Brewery, error)
}

func GetIntegration(name string, logger *zap.Logger) Integration {
	if name == untappdweb.IntegrationName {
		return untappdweb.NewUntappedWebIntegration(logger)
	}

	return nil
}

// GetIntegrations resolves the configured names, logging and skipping unknown ones.
func GetIntegrations(names []string, logger *zap.Logger) []Integration {
	result := make([]Integration, 0, len(names))

	for _, name := range names {
		integration := GetIntegration(name, logger)
		if integration == nil {
			logger.Warn("unknown integration", zap.String("integration", name))

			continue
		}

		result = append(result, integration)
	}

	return result
}
