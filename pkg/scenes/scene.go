// Package scenes 包含 Ebitengine 宿主的场景实现
package scenes

import (
	"github.com/decker502/memorymatch/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene
