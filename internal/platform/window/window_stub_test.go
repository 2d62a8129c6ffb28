//go:build !ebiten

package window

import (
	"errors"
	"testing"

	"github.com/gridtoys/gridtoys/internal/core"
)

func TestRunWithoutEbiten(t *testing.T) {
	err := Run(nil, core.RuntimeConfig{}, nil)
	if !errors.Is(err, ErrNotBuilt) {
		t.Errorf("Run() error = %v, want ErrNotBuilt", err)
	}
}
