package systems

import (
	"testing"

	"github.com/decker502/memorymatch/pkg/components"
	"github.com/decker502/memorymatch/pkg/ecs"
)

func newFlipEntity(em *ecs.EntityManager) (ecs.EntityID, *components.FlipComponent) {
	id := em.CreateEntity()
	flip := &components.FlipComponent{Duration: 1, ScaleX: 1}
	ecs.AddComponent(em, id, flip)
	return id, flip
}

func TestFlipSystemOpen(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFlipSystem(em)
	_, flip := newFlipEntity(em)

	calls := 0
	StartFlip(flip, true, func() { calls++ })

	tests := []struct {
		name     string
		dt       float64
		faceUp   bool
		scaleX   float64
		flipping bool
		calls    int
	}{
		{"前四分之一", 0.25, false, 0.75, true, 0},
		{"越过中点", 0.5, true, 0.75, true, 0},
		{"完成", 0.5, true, 1, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system.Update(tt.dt)
			if flip.FaceUp != tt.faceUp {
				t.Errorf("FaceUp = %v, want %v", flip.FaceUp, tt.faceUp)
			}
			if flip.ScaleX != tt.scaleX {
				t.Errorf("ScaleX = %v, want %v", flip.ScaleX, tt.scaleX)
			}
			if flip.Flipping != tt.flipping {
				t.Errorf("Flipping = %v, want %v", flip.Flipping, tt.flipping)
			}
			if calls != tt.calls {
				t.Errorf("callback calls = %d, want %d", calls, tt.calls)
			}
		})
	}
}

func TestFlipCloseWhileOpeningKeepsCallback(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFlipSystem(em)
	_, flip := newFlipEntity(em)

	calls := 0
	StartFlip(flip, true, func() { calls++ })
	system.Update(0.25)

	// 翻开途中被合上：折返，翻开回调在合上完成时调用
	StartFlip(flip, false, nil)
	if flip.Elapsed != 0.75 {
		t.Errorf("reversed Elapsed = %v, want 0.75", flip.Elapsed)
	}

	system.Update(0.25)
	if calls != 1 || flip.Flipping || flip.FaceUp {
		t.Errorf("after close: calls=%d flipping=%v faceUp=%v", calls, flip.Flipping, flip.FaceUp)
	}
}

func TestStartFlipAlreadyAtTarget(t *testing.T) {
	flip := &components.FlipComponent{Duration: 1, ScaleX: 1}

	calls := 0
	StartFlip(flip, false, func() { calls++ })
	if calls != 1 {
		t.Errorf("callback should fire immediately when already at target, calls=%d", calls)
	}
	if flip.Flipping {
		t.Error("no flip should start")
	}
}

func TestStartFlipChainsCallbacks(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFlipSystem(em)
	_, flip := newFlipEntity(em)

	var order []string
	StartFlip(flip, true, func() { order = append(order, "open1") })
	StartFlip(flip, false, nil)
	StartFlip(flip, true, func() { order = append(order, "open2") })

	system.Update(2)
	if len(order) != 2 || order[0] != "open1" || order[1] != "open2" {
		t.Errorf("callback order = %v", order)
	}
}
