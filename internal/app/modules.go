package app

import (
	"github.com/vk/deckgen/internal/registry"
	"github.com/vk/deckgen/modules/card"
	"github.com/vk/deckgen/modules/card_grid"
	"github.com/vk/deckgen/modules/image"
	"github.com/vk/deckgen/modules/price_card"
	"github.com/vk/deckgen/modules/shape"
	"github.com/vk/deckgen/modules/steps"
	"github.com/vk/deckgen/modules/text"
	"github.com/vk/deckgen/modules/tile_grid"
)

// coreModules is the definitive list of all element modules that are
// compiled into the deckgen binary.
var coreModules = []registry.Module{
	&text.Module{},
	&card.Module{},
	&card_grid.Module{},
	&tile_grid.Module{},
	&steps.Module{},
	&price_card.Module{},
	&shape.Module{},
	&image.Module{},
}
