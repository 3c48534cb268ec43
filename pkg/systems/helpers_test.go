package systems

import (
	"math"
	"testing"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/ecs"
	"github.com/decker502/cryptfall/pkg/entities"
)

const epsilon = 1e-5

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// scriptedRandom 按预设序列返回随机数，序列用完后重复最后一个值
type scriptedRandom struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[min(r.fi, len(r.floats)-1)]
	r.fi++
	return v
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[min(r.ii, len(r.ints)-1)]
	r.ii++
	return v % n
}

// testWorld 组装好的系统集合
type testWorld struct {
	em        *ecs.EntityManager
	cfg       *config.GameConfig
	clock     *Clock
	animation *AnimationSystem
	movement  *MovementSystem
	combat    *CombatSystem
	ai        *EnemyAISystem
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	clock := NewClock()
	animation := NewAnimationSystem(em)
	movement := NewMovementSystem(em, animation)
	combat := NewCombatSystem(em, clock, animation, cfg.Flash.Duration)
	return &testWorld{
		em:        em,
		cfg:       cfg,
		clock:     clock,
		animation: animation,
		movement:  movement,
		combat:    combat,
		ai:        NewEnemyAISystem(em, movement, combat, animation),
	}
}

func (w *testWorld) spawnPlayer(t *testing.T, x, y float32) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPlayerEntity(w.em, w.cfg, x, y)
	if err != nil {
		t.Fatalf("NewPlayerEntity failed: %v", err)
	}
	return id
}

func (w *testWorld) spawnEnemy(t *testing.T, x, y float32) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemyEntity(w.em, w.cfg, 1, x, y)
	if err != nil {
		t.Fatalf("NewEnemyEntity failed: %v", err)
	}
	return id
}

func mustGet[T any](t *testing.T, em *ecs.EntityManager, id ecs.EntityID) T {
	t.Helper()
	c, ok := ecs.GetComponent[T](em, id)
	if !ok {
		t.Fatalf("entity %d missing component %T", id, c)
	}
	return c
}

func position(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	return mustGet[*components.PositionComponent](t, em, id)
}
