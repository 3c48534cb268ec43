package systems

import (
	"testing"

	"github.com/decker502/cryptfall/pkg/components"
)

func TestCheckLevelUp(t *testing.T) {
	w := newTestWorld(t)
	levels := NewLevelSystem(w.em, w.cfg.Player.LevelUp)
	player := w.spawnPlayer(t, 0, 0)
	pc := mustGet[*components.PlayerComponent](t, w.em, player)

	pc.Exp = 9
	if levels.CheckLevelUp(player) {
		t.Fatal("Must not level up below the requirement")
	}

	pc.Exp = 10
	if !levels.CheckLevelUp(player) {
		t.Fatal("Expected level up at the requirement")
	}

	if pc.Level != 2 {
		t.Errorf("Expected level 2, got %d", pc.Level)
	}
	if pc.ExpRequired != 30 {
		t.Errorf("Expected next requirement 10 + 10*2 = 30, got %d", pc.ExpRequired)
	}
	if !pc.LeveledUp {
		t.Error("Expected LeveledUp flag")
	}
	if h := mustGet[*components.HealthComponent](t, w.em, player).Health; h != 110 {
		t.Errorf("Expected health 110, got %d", h)
	}
	if d := mustGet[*components.CombatComponent](t, w.em, player).Damage; d != 26 {
		t.Errorf("Expected damage 26, got %d", d)
	}

	pc.LeveledUp = false
	if levels.CheckLevelUp(player) {
		t.Error("Must not level up again until the new requirement is met")
	}
	if pc.LeveledUp {
		t.Error("LeveledUp must stay cleared")
	}
}

func TestCheckLevelUpIgnoresDeadPlayer(t *testing.T) {
	w := newTestWorld(t)
	levels := NewLevelSystem(w.em, w.cfg.Player.LevelUp)
	player := w.spawnPlayer(t, 0, 0)

	mustGet[*components.PlayerComponent](t, w.em, player).Exp = 100
	w.combat.TakeDamage(player, 500, 0)

	if levels.CheckLevelUp(player) {
		t.Error("Dead player must not level up")
	}
}
