package perks

import (
	"testing"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/ecs"
)

func TestStatBoostApplies(t *testing.T) {
	tests := []struct {
		name  string
		stat  Stat
		check func(t *testing.T, health *components.HealthComponent, combat *components.CombatComponent)
	}{
		{
			name: "health",
			stat: StatHealth,
			check: func(t *testing.T, health *components.HealthComponent, combat *components.CombatComponent) {
				if health.Health != 110 {
					t.Errorf("Expected health 110, got %d", health.Health)
				}
			},
		},
		{
			name: "attack damage",
			stat: StatAttackDamage,
			check: func(t *testing.T, health *components.HealthComponent, combat *components.CombatComponent) {
				if combat.Damage != 30 {
					t.Errorf("Expected damage 30, got %d", combat.Damage)
				}
			},
		},
		{
			name: "movement speed",
			stat: StatMoveSpeed,
			check: func(t *testing.T, health *components.HealthComponent, combat *components.CombatComponent) {
				if combat.MoveSpeed < 0.0529 || combat.MoveSpeed > 0.0531 {
					t.Errorf("Expected move speed 0.053, got %v", combat.MoveSpeed)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cfg := newTestContext(t, &fixedRandom{index: 1})
			boost := NewStatBoost(cfg.Perks.StatBoost)
			boost.setStat(tt.stat)

			boost.Activate(ctx)

			health, _ := ecs.GetComponent[*components.HealthComponent](ctx.EntityManager, ctx.Player)
			combat, _ := ecs.GetComponent[*components.CombatComponent](ctx.EntityManager, ctx.Player)
			tt.check(t, health, combat)

			if boost.Activated() {
				t.Error("Stat boost must never become activated")
			}
			if boost.Stat() != StatAttackDamage {
				t.Errorf("Expected re-roll to Attack Damage, got %v", boost.Stat())
			}
		})
	}
}

func TestStatBoostText(t *testing.T) {
	_, cfg := newTestContext(t, &fixedRandom{})
	boost := NewStatBoost(cfg.Perks.StatBoost)

	if boost.Name() != "Stat Boost: Health" {
		t.Errorf("Unexpected name %q", boost.Name())
	}
	if boost.Description() != "Increases Health by 10." {
		t.Errorf("Unexpected description %q", boost.Description())
	}

	boost.setStat(StatMoveSpeed)
	if boost.Description() != "Increases Movement Speed by 0.003." {
		t.Errorf("Unexpected description %q", boost.Description())
	}
}
