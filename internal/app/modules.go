package app

import (
	"github.com/vk/loopgridgo/internal/registry"
	"github.com/vk/loopgridgo/modules/allparams"
	"github.com/vk/loopgridgo/modules/floatrange"
	"github.com/vk/loopgridgo/modules/paramsrange"
	"github.com/vk/loopgridgo/modules/samplerloop"
	"github.com/vk/loopgridgo/modules/samplerscheduler"
	"github.com/vk/loopgridgo/modules/schedulerloop"
)

// coreModules is the definitive list of loop-node modules compiled into the
// loopgridgo binary.
var coreModules = []registry.Module{
	&floatrange.Module{},
	&paramsrange.Module{},
	&samplerloop.Module{},
	&schedulerloop.Module{},
	&samplerscheduler.Module{},
	&allparams.Module{},
}
