package main

import (
	"fmt"
	"strings"

	"github.com/gridtoys/gridtoys/internal/games/conway"
	"github.com/gridtoys/gridtoys/internal/games/noise"
	"github.com/gridtoys/gridtoys/internal/games/particles"
	"github.com/gridtoys/gridtoys/internal/games/race"
	"github.com/gridtoys/gridtoys/internal/games/snake"
	"github.com/gridtoys/gridtoys/internal/games/tetris"
	"github.com/gridtoys/gridtoys/internal/registry"
)

// configSetters route --config to the game it was given for. Importing the
// game packages here also registers them.
var configSetters = map[string]func(string){
	"particles": particles.SetConfigPath,
	"tetris":    tetris.SetConfigPath,
	"snake":     snake.SetConfigPath,
	"conway":    conway.SetConfigPath,
	"race":      race.SetConfigPath,
	"noise":     noise.SetConfigPath,
}

// createGame looks up gameID, applies configPath and validates the
// resulting config before anything is drawn.
func createGame(gameID, configPath string) (registry.Game, error) {
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q (available: %s)", gameID, strings.Join(registry.IDs(), ", "))
	}

	if set, ok := configSetters[gameID]; ok {
		set(configPath)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}
	if c, ok := game.(registry.Checker); ok {
		if err := c.Check(); err != nil {
			return nil, fmt.Errorf("%s: %w", gameID, err)
		}
	}
	return game, nil
}
