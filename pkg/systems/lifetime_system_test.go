package systems

import (
	"testing"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/ecs"
	"github.com/decker502/cryptfall/pkg/entities"
)

func TestLifetimeCountdown(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := entities.NewRoomBanner(em, "Room 2", 2.0)

	if n := system.Update(1.5); n != 0 {
		t.Errorf("expired = %d, want 0", n)
	}

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !approxEqual(lifetime.Remaining, 0.5) {
		t.Errorf("Remaining = %f, want 0.5", lifetime.Remaining)
	}
	if lifetime.Expired() {
		t.Error("banner should not be expired yet")
	}
}

func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := entities.NewRoomBanner(em, "Room 2", 2.0)
	other := entities.NewRoomBanner(em, "Room 3", 5.0)

	if n := system.Update(2.5); n != 1 {
		t.Errorf("expired = %d, want 1", n)
	}
	em.RemoveMarkedEntities()

	if ecs.HasComponent[*components.BannerComponent](em, id) {
		t.Error("expired banner should be removed")
	}
	if !ecs.HasComponent[*components.BannerComponent](em, other) {
		t.Error("banner with time left should remain")
	}
}

func TestLifetimeAlpha(t *testing.T) {
	tests := []struct {
		name      string
		remaining float64
		want      float64
	}{
		{"full", 1.5, 1},
		{"fade start", components.BannerFadeTime, 1},
		{"half faded", components.BannerFadeTime / 2, 0.5},
		{"expired", 0, 0},
		{"overshoot", -0.1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &components.LifetimeComponent{Duration: 2, Remaining: tt.remaining}
			if got := l.Alpha(); !approxEqual(got, tt.want) {
				t.Errorf("Alpha() = %f, want %f", got, tt.want)
			}
		})
	}
}
