package app

import (
	"github.com/vk/svchost/internal/registry"
	"github.com/vk/svchost/modules/passthrough"
)

// coreModules is the definitive list of service modules compiled into the
// svchost binary.
var coreModules = []registry.Module{
	&passthrough.Module{},
}
