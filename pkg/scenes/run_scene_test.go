package scenes

import (
	"math/rand"
	"testing"

	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/game"
	"github.com/decker502/cryptfall/pkg/systems"
)

func seededRandom() systems.RandomSource {
	return rand.New(rand.NewSource(7))
}

func newTestRunScene(t *testing.T) (*RunScene, *game.SceneManager) {
	t.Helper()
	cfg := config.DefaultGameConfig()
	rm := game.NewResourceManager(cfg.Sprite)
	sm := game.NewSceneManager()
	s, err := NewRunScene(rm, sm, cfg, seededRandom)
	if err != nil {
		t.Fatalf("NewRunScene failed: %v", err)
	}
	return s, sm
}

func TestNewRunSceneStartsPlaying(t *testing.T) {
	s, _ := newTestRunScene(t)

	if got := s.Director().Phase(); got != game.PhasePlaying {
		t.Errorf("phase = %s, want %s", got, game.PhasePlaying)
	}
	if s.Director().Snapshot().EnemiesRemaining != 20 {
		t.Errorf("enemies remaining = %d, want 20", s.Director().Snapshot().EnemiesRemaining)
	}
}

func TestNewRunSceneRequiresRandomFactory(t *testing.T) {
	cfg := config.DefaultGameConfig()
	if _, err := NewRunScene(game.NewResourceManager(cfg.Sprite), game.NewSceneManager(), cfg, nil); err == nil {
		t.Error("expected error for nil random factory")
	}
}

func TestRunSceneRestart(t *testing.T) {
	s, _ := newTestRunScene(t)
	first := s.Director().RunID()

	if err := s.Restart(); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	if s.Director().RunID() == first {
		t.Error("Restart should create a new run")
	}
	if s.Director().Phase() != game.PhasePlaying {
		t.Errorf("phase after restart = %s", s.Director().Phase())
	}
}

func TestChoosePerkOutsidePause(t *testing.T) {
	s, _ := newTestRunScene(t)
	if s.ChoosePerk(0) {
		t.Error("ChoosePerk should be rejected while playing")
	}
}

func TestSceneFactory(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rm := game.NewResourceManager(cfg.Sprite)
	sm := game.NewSceneManager()
	factory := NewSceneFactory(rm, sm, cfg, seededRandom)

	if _, ok := factory(game.SceneMenu).(*MenuScene); !ok {
		t.Error("menu id should create a MenuScene")
	}
	if _, ok := factory(game.SceneRun).(*RunScene); !ok {
		t.Error("run id should create a RunScene")
	}
	if s := factory("credits"); s != nil {
		t.Errorf("unknown id should create nil, got %T", s)
	}

	sm.SetSceneFactory(factory)
	if !sm.Load(game.SceneRun) {
		t.Fatal("Load(run) failed")
	}
	if _, ok := sm.GetCurrentScene().(*RunScene); !ok {
		t.Errorf("current scene = %T, want *RunScene", sm.GetCurrentScene())
	}
}
