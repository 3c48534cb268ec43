package systems

import (
	"testing"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/ecs"
)

func newSheet() *components.SpriteSheetComponent {
	return components.NewSpriteSheetComponent(8, 15, 0.1)
}

func TestRequestAnimationFlipsForRight(t *testing.T) {
	sheet := newSheet()

	if !ApplyAnimationRequest(sheet, components.DirectionRight, components.ActionMove) {
		t.Fatal("Expected transition to (right, move)")
	}

	if sheet.Row != 8 {
		t.Errorf("Expected row 8 (move set 2 * 3 + left row 2), got %d", sheet.Row)
	}
	if sheet.LastCol != 5 {
		t.Errorf("Expected lastCol 5, got %d", sheet.LastCol)
	}
	if !approxEqual(sheet.Texture.RepeatX, -0.125) {
		t.Errorf("Expected RepeatX -1/8, got %f", sheet.Texture.RepeatX)
	}
	// 翻转使用切换前的列号（初始为 1）
	if !approxEqual(sheet.Texture.OffsetX, 0.25) {
		t.Errorf("Expected OffsetX (1+1)/8, got %f", sheet.Texture.OffsetX)
	}
	if sheet.CurrentCol != 0 {
		t.Errorf("Expected CurrentCol reset to 0, got %d", sheet.CurrentCol)
	}

	// 下一次推进立即显示第一帧
	if got := AdvanceFrame(sheet, 0.016); got != FrameAdvanced {
		t.Fatalf("Expected FrameAdvanced, got %v", got)
	}
	if !approxEqual(sheet.Texture.OffsetX, 0.125) {
		t.Errorf("Expected flipped OffsetX (0+1)/8, got %f", sheet.Texture.OffsetX)
	}
	if !approxEqual(sheet.Texture.OffsetY, 1-9.0/15.0) {
		t.Errorf("Expected OffsetY 1-(8+1)/15, got %f", sheet.Texture.OffsetY)
	}
	if sheet.CurrentCol != 1 {
		t.Errorf("Expected CurrentCol 1, got %d", sheet.CurrentCol)
	}
}

func TestRequestAnimationUnflips(t *testing.T) {
	sheet := newSheet()
	ApplyAnimationRequest(sheet, components.DirectionRight, components.ActionMove)
	AdvanceFrame(sheet, 0.1)
	AdvanceFrame(sheet, 0.1) // CurrentCol = 2

	if !ApplyAnimationRequest(sheet, components.DirectionUp, components.ActionMove) {
		t.Fatal("Expected transition to (up, move)")
	}
	if !approxEqual(sheet.Texture.RepeatX, 0.125) {
		t.Errorf("Expected RepeatX 1/8, got %f", sheet.Texture.RepeatX)
	}
	if !approxEqual(sheet.Texture.OffsetX, 0.25) {
		t.Errorf("Expected OffsetX 2/8, got %f", sheet.Texture.OffsetX)
	}
	if sheet.Row != 7 {
		t.Errorf("Expected row 7, got %d", sheet.Row)
	}
}

func TestRequestAnimationGuard(t *testing.T) {
	tests := []struct {
		name      string
		prepare   func(*components.SpriteSheetComponent)
		direction components.Direction
		action    components.Action
		want      bool
	}{
		{
			name:      "same direction and action is ignored",
			prepare:   func(s *components.SpriteSheetComponent) {},
			direction: components.DirectionDown,
			action:    components.ActionIdle,
			want:      false,
		},
		{
			name: "attack in progress blocks move",
			prepare: func(s *components.SpriteSheetComponent) {
				ApplyAnimationRequest(s, components.DirectionDown, components.ActionAttack)
				AdvanceFrame(s, 0.1)
			},
			direction: components.DirectionLeft,
			action:    components.ActionMove,
			want:      false,
		},
		{
			name: "attack in progress yields to death",
			prepare: func(s *components.SpriteSheetComponent) {
				ApplyAnimationRequest(s, components.DirectionDown, components.ActionAttack)
				AdvanceFrame(s, 0.1)
			},
			direction: components.DirectionDown,
			action:    components.ActionDeath,
			want:      true,
		},
		{
			name: "attack at column zero can be replaced",
			prepare: func(s *components.SpriteSheetComponent) {
				ApplyAnimationRequest(s, components.DirectionDown, components.ActionAttack)
			},
			direction: components.DirectionUp,
			action:    components.ActionMove,
			want:      true,
		},
		{
			name:      "direction change alone transitions",
			prepare:   func(s *components.SpriteSheetComponent) {},
			direction: components.DirectionLeft,
			action:    components.ActionIdle,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := newSheet()
			tt.prepare(sheet)
			if got := ApplyAnimationRequest(sheet, tt.direction, tt.action); got != tt.want {
				t.Errorf("ApplyAnimationRequest() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequestAnimationPanicsOnInvalidInput(t *testing.T) {
	t.Run("unknown action", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic for unknown action")
			}
		}()
		ApplyAnimationRequest(newSheet(), components.DirectionDown, components.Action(42))
	})

	t.Run("no direction", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic for DirectionNone")
			}
		}()
		ApplyAnimationRequest(newSheet(), components.DirectionNone, components.ActionMove)
	})
}

func TestAdvanceFrameHoldsUntilInterval(t *testing.T) {
	sheet := newSheet()

	if got := AdvanceFrame(sheet, 0.05); got != FrameHeld {
		t.Errorf("Expected FrameHeld, got %v", got)
	}
	if sheet.CurrentCol != 1 {
		t.Errorf("Expected CurrentCol unchanged, got %d", sheet.CurrentCol)
	}
	if got := AdvanceFrame(sheet, 0.05); got != FrameAdvanced {
		t.Errorf("Expected FrameAdvanced after a full interval, got %v", got)
	}
}

func TestAdvanceLoopsWhileAlive(t *testing.T) {
	w := newTestWorld(t)
	id := w.spawnPlayer(t, 0, 0)
	sheet := mustGet[*components.SpriteSheetComponent](t, w.em, id)

	// 初始 CurrentCol = 1，待机最后一列为 3
	w.animation.Advance(id, 0.1)
	w.animation.Advance(id, 0.1)
	w.animation.Advance(id, 0.1)
	if sheet.CurrentCol != 4 {
		t.Fatalf("Expected CurrentCol 4, got %d", sheet.CurrentCol)
	}

	if got := w.animation.Advance(id, 0.1); got != FrameCycleEnded {
		t.Fatalf("Expected FrameCycleEnded, got %v", got)
	}
	if sheet.CurrentCol != 0 {
		t.Errorf("Expected loop back to column 0, got %d", sheet.CurrentCol)
	}
	if !ecs.HasComponent[*components.SpriteComponent](w.em, id) {
		t.Error("Living entity must keep its sprite")
	}
}

func TestAdvanceFinalizesDeath(t *testing.T) {
	w := newTestWorld(t)
	id := w.spawnEnemy(t, 0, 0)

	w.combat.TakeDamage(id, 1000, 0)
	sheet := mustGet[*components.SpriteSheetComponent](t, w.em, id)
	if sheet.Action != components.ActionDeath {
		t.Fatalf("Expected death animation, got %v", sheet.Action)
	}

	lifecycle := mustGet[*components.LifecycleComponent](t, w.em, id)
	for i := 0; i <= sheet.LastCol; i++ {
		w.animation.Advance(id, 0.1)
		if lifecycle.StopUpdate {
			t.Fatalf("StopUpdate set too early at frame %d", i)
		}
	}

	if got := w.animation.Advance(id, 0.1); got != FrameCycleEnded {
		t.Fatalf("Expected FrameCycleEnded, got %v", got)
	}
	if !lifecycle.StopUpdate {
		t.Error("Expected StopUpdate after the death animation")
	}
	if ecs.HasComponent[*components.SpriteComponent](w.em, id) {
		t.Error("Expected sprite to be released")
	}

	// 已释放的实体再次推进不会出错
	w.animation.Advance(id, 0.1)
	if w.animation.RequestAnimation(999, components.DirectionDown, components.ActionIdle) {
		t.Error("Missing entity must not transition")
	}
}
