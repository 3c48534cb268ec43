package systems

import (
	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/ecs"
	"github.com/decker502/cryptfall/pkg/utils"
)

// PlayerControlSystem 将逻辑按键状态转换为玩家的移动与攻击意图
type PlayerControlSystem struct {
	entityManager *ecs.EntityManager
	movement      *MovementSystem
}

// NewPlayerControlSystem 创建玩家控制系统
func NewPlayerControlSystem(em *ecs.EntityManager, movement *MovementSystem) *PlayerControlSystem {
	return &PlayerControlSystem{
		entityManager: em,
		movement:      movement,
	}
}

// Apply 应用本帧的按键状态
//
// 顺序：
//  1. 攻击/交互意图跟随按键
//  2. 除攻击外没有按键时原地待机（或原地攻击）
//  3. 依次处理 W/S/A/D，同一帧可以叠加多个方向
//
// 冲刺键被读取但没有行为
func (s *PlayerControlSystem) Apply(player ecs.EntityID, keys utils.KeyState, walls []utils.AABB) {
	combat, ok := ecs.GetComponent[*components.CombatComponent](s.entityManager, player)
	if !ok {
		return
	}
	combat.IsAttacking = keys.Attack
	combat.IsInteracting = keys.Interact

	if keys.OnlyAttack() {
		s.movement.Move(player, components.DirectionNone, walls)
	}
	if keys.Forward {
		s.movement.Move(player, components.DirectionUp, walls)
	}
	if keys.Back {
		s.movement.Move(player, components.DirectionDown, walls)
	}
	if keys.Left {
		s.movement.Move(player, components.DirectionLeft, walls)
	}
	if keys.Right {
		s.movement.Move(player, components.DirectionRight, walls)
	}
}
