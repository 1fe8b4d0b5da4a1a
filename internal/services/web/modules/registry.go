// Package modules assembles the web feature modules.
package modules

import (
	module "github.com/vinylcourses/coursehub/internal/services/web/module"
	"github.com/vinylcourses/coursehub/internal/services/web/modules/profile"
)

// Dependencies carries the gateways and options the feature modules are
// composed from. Gateways are wired by the caller; modules never dial.
type Dependencies struct {
	Interests profile.InterestsGateway
	Profile   profile.Options
}

// DefaultModules returns the stable web modules.
func DefaultModules(deps Dependencies) []module.Module {
	return []module.Module{
		profile.NewWithGateway(deps.Interests, deps.Profile),
	}
}
