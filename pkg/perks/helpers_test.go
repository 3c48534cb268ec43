package perks

import (
	"testing"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/ecs"
	"github.com/decker502/cryptfall/pkg/entities"
	"github.com/decker502/cryptfall/pkg/systems"
)

// fixedRandom 总是返回固定值
type fixedRandom struct {
	float float64
	index int
	draws int
}

func (r *fixedRandom) Float64() float64 {
	r.draws++
	return r.float
}

func (r *fixedRandom) Intn(n int) int {
	r.draws++
	return r.index % n
}

func newTestContext(t *testing.T, rng systems.RandomSource) (*Context, *config.GameConfig) {
	t.Helper()
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	clock := systems.NewClock()
	animation := systems.NewAnimationSystem(em)
	combat := systems.NewCombatSystem(em, clock, animation, cfg.Flash.Duration)

	player, err := entities.NewPlayerEntity(em, cfg, 0, 0)
	if err != nil {
		t.Fatalf("NewPlayerEntity failed: %v", err)
	}

	return &Context{
		EntityManager:       em,
		Combat:              combat,
		Clock:               clock,
		Rand:                rng,
		Player:              player,
		DeltaTime:           0.05,
		EffectFrameInterval: cfg.Sprite.EffectFrameInterval,
	}, cfg
}

func addEnemy(t *testing.T, ctx *Context, cfg *config.GameConfig, x, y float32) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemyEntity(ctx.EntityManager, cfg, 1, x, y)
	if err != nil {
		t.Fatalf("NewEnemyEntity failed: %v", err)
	}
	ctx.Enemies = append(ctx.Enemies, id)
	return id
}

func healthOf(t *testing.T, ctx *Context, id ecs.EntityID) int {
	t.Helper()
	h, ok := ecs.GetComponent[*components.HealthComponent](ctx.EntityManager, id)
	if !ok {
		t.Fatalf("entity %d has no health", id)
	}
	return h.Health
}
