package config

import (
	"strings"

	"github.com/samber/oops"
)

// DefaultSecurityModel is the model applied when neither the config file
// nor the command line selects one.
const DefaultSecurityModel = SecurityMunge

// availableSecurityModels is the closed set a build ships with. Site
// defaults from the config file are validated against this list, mirroring
// the command line where only these four selectors exist.
var availableSecurityModels = []SecurityModel{
	SecurityMunge,
	SecurityKeyLMon,
	SecurityKeyFile,
	SecurityNone,
}

// AvailableSecurityModels returns a copy of the compiled-in model set.
func AvailableSecurityModels() []SecurityModel {
	models := make([]SecurityModel, len(availableSecurityModels))
	copy(models, availableSecurityModels)
	return models
}

// ParseSecurityModel maps a config-file name onto a compiled-in model.
func ParseSecurityModel(name string) (SecurityModel, error) {
	for _, m := range availableSecurityModels {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return 0, oops.Code("invalid_value").Errorf("unknown security model %q", name)
}
