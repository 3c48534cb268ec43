package systems

import (
	"log"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/ecs"
)

// FrameResult 一次帧推进的结果
type FrameResult int

const (
	// FrameHeld 未到帧间隔，保持当前帧
	FrameHeld FrameResult = iota
	// FrameAdvanced 显示了新的一帧
	FrameAdvanced
	// FrameCycleEnded 已越过最后一列，本轮动画结束
	FrameCycleEnded
)

// AnimationSystem 管理图集帧动画的状态机
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// RequestAnimation 请求切换到 (direction, action)
//
// 仅在以下条件同时满足时切换：
//   - 当前不是攻击动作，或攻击动画已完成一轮（CurrentCol == 0），或新动作是死亡
//   - 方向或动作与当前不同
//
// 返回是否发生了切换。实体没有图集组件时（已释放）静默返回 false
func (s *AnimationSystem) RequestAnimation(id ecs.EntityID, direction components.Direction, action components.Action) bool {
	sheet, ok := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id)
	if !ok {
		return false
	}
	return ApplyAnimationRequest(sheet, direction, action)
}

// ApplyAnimationRequest 在图集组件上执行切换逻辑
// 无效的方向或动作会 panic（编程错误）
func ApplyAnimationRequest(sheet *components.SpriteSheetComponent, direction components.Direction, action components.Action) bool {
	layout := action.Layout()
	rowOffset := direction.RowIndex()

	interruptible := sheet.Action != components.ActionAttack ||
		sheet.CurrentCol == 0 ||
		action == components.ActionDeath
	changed := direction != sheet.Direction || action != sheet.Action
	if !interruptible || !changed {
		return false
	}

	sheet.Row = layout.Set*3 + rowOffset
	sheet.LastCol = layout.MaxColumn

	// 右方向复用左方向的行，通过负的 RepeatX 镜像
	cols := float64(sheet.Columns)
	if direction == components.DirectionRight {
		if sheet.Texture.RepeatX > 0 {
			sheet.Texture.RepeatX = -1 / cols
			sheet.Texture.OffsetX = float64(sheet.CurrentCol+1) / cols
		}
	} else if sheet.Texture.RepeatX < 0 {
		sheet.Texture.RepeatX = 1 / cols
		sheet.Texture.OffsetX = float64(sheet.CurrentCol) / cols
	}

	sheet.Direction = direction
	sheet.Action = action
	sheet.CurrentCol = 0
	// 下一次 Advance 立即显示新动作的第一帧
	sheet.FrameTimer = sheet.FrameInterval
	return true
}

// AdvanceFrame 按帧间隔推进图集列
// 未越过最后一列时更新纹理偏移并前进一列；越过后返回 FrameCycleEnded，由调用方决定循环或结束
func AdvanceFrame(sheet *components.SpriteSheetComponent, deltaTime float64) FrameResult {
	sheet.FrameTimer += deltaTime
	if sheet.FrameTimer < sheet.FrameInterval {
		return FrameHeld
	}
	sheet.FrameTimer = 0

	if sheet.CurrentCol > sheet.LastCol {
		return FrameCycleEnded
	}

	cols := float64(sheet.Columns)
	if sheet.Texture.RepeatX > 0 {
		sheet.Texture.OffsetX = float64(sheet.CurrentCol) / cols
	} else {
		sheet.Texture.OffsetX = float64(sheet.CurrentCol+1) / cols
	}
	sheet.Texture.OffsetY = 1 - float64(sheet.Row+1)/float64(sheet.Rows)
	sheet.CurrentCol++
	return FrameAdvanced
}

// Advance 推进角色动画
// 一轮结束时：存活实体回到第 0 列循环；死亡实体释放精灵并标记 StopUpdate
func (s *AnimationSystem) Advance(id ecs.EntityID, deltaTime float64) FrameResult {
	sheet, ok := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id)
	if !ok {
		return FrameHeld
	}

	result := AdvanceFrame(sheet, deltaTime)
	if result != FrameCycleEnded {
		return result
	}

	health, hasHealth := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if !hasHealth || health.IsAlive {
		sheet.CurrentCol = 0
		return result
	}

	s.finalize(id)
	return result
}

// finalize 死亡动画播放完毕：释放渲染句柄并通知移除
func (s *AnimationSystem) finalize(id ecs.EntityID) {
	lifecycle, ok := ecs.GetComponent[*components.LifecycleComponent](s.entityManager, id)
	if ok && lifecycle.StopUpdate {
		return
	}

	ecs.RemoveComponent[*components.SpriteComponent](s.entityManager, id)
	ecs.RemoveComponent[*components.FlashEffectComponent](s.entityManager, id)
	if ok {
		lifecycle.StopUpdate = true
	}
	log.Printf("[AnimationSystem] 死亡动画结束，实体 %d 可移除", id)
}
