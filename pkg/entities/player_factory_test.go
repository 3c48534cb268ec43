package entities

import (
	"testing"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/ecs"
)

func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id, err := NewPlayerEntity(em, cfg, 1, 2)
	if err != nil {
		t.Fatalf("NewPlayerEntity failed: %v", err)
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok || pos.Pos[0] != 1 || pos.Pos[1] != 2 || pos.Pos[2] != cfg.Sprite.Depth {
		t.Errorf("Unexpected position %+v", pos)
	}

	collision, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok || collision.HalfWidth != 1.5 || collision.HalfHeight != 1.5 {
		t.Errorf("Expected 1.5 half extents, got %+v", collision)
	}

	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	if health.Health != 100 || !health.IsAlive {
		t.Errorf("Expected 100 health alive, got %+v", health)
	}

	combat, _ := ecs.GetComponent[*components.CombatComponent](em, id)
	if combat.Damage != 20 || combat.AttackSpeed != 0.5 || combat.AttackRange != 3 {
		t.Errorf("Unexpected combat stats %+v", combat)
	}

	player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
	if player.Level != 1 || player.ExpRequired != 10 || player.Exp != 0 {
		t.Errorf("Unexpected progression %+v", player)
	}

	sheet, _ := ecs.GetComponent[*components.SpriteSheetComponent](em, id)
	if sheet.CurrentCol != 1 || sheet.LastCol != 3 || sheet.Action != components.ActionIdle {
		t.Errorf("Unexpected initial animation %+v", sheet)
	}
}

func TestNewPlayerEntityRejectsNilArguments(t *testing.T) {
	if _, err := NewPlayerEntity(nil, config.DefaultGameConfig(), 0, 0); err == nil {
		t.Error("Expected error for nil entity manager")
	}
	if _, err := NewPlayerEntity(ecs.NewEntityManager(), nil, 0, 0); err == nil {
		t.Error("Expected error for nil config")
	}
}
