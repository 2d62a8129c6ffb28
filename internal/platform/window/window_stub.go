//go:build !ebiten

package window

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/gridtoys/gridtoys/internal/core"
	"github.com/gridtoys/gridtoys/internal/registry"
)

// ErrNotBuilt is returned when the binary was built without window support.
var ErrNotBuilt = errors.New("window: built without window support; rebuild with -tags ebiten")

// Run reports that the window front-end requires the ebiten build tag.
func Run(registry.Game, core.RuntimeConfig, *log.Logger) error {
	return ErrNotBuilt
}
