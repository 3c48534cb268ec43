// Package perks 实现升级时可选择的天赋
//
// 天赋生命周期：可选 → 激活（首次选择）→ 升级（再次选择）。
// 每个天赋自己管理冷却与数值，由 Director 在战斗结算之后每帧调用 Update
package perks

import (
	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/ecs"
	"github.com/decker502/cryptfall/pkg/systems"
)

// Perk 天赋的公共行为
type Perk interface {
	Name() string
	Description() string
	UpgradeDescription() string
	Level() int

	// Activated 是否已被选中（持续生效）
	Activated() bool
	// IsActive 是否正在播放可见的限时效果
	IsActive() bool

	Activate(ctx *Context)
	Upgrade()
	Update(ctx *Context)
}

// Context 天赋每帧运行所需的世界状态
type Context struct {
	EntityManager *ecs.EntityManager
	Combat        *systems.CombatSystem
	Clock         *systems.Clock
	Rand          systems.RandomSource

	Player  ecs.EntityID
	Enemies []ecs.EntityID // Director 跟踪的敌人（可能包含正在播放死亡动画的）

	DeltaTime           float64 // 本帧时长（秒），用于推进特效动画
	EffectFrameInterval float64
}

// LiveEnemies 返回仍存活的敌人
func (c *Context) LiveEnemies() []ecs.EntityID {
	live := make([]ecs.EntityID, 0, len(c.Enemies))
	for _, id := range c.Enemies {
		if health, ok := ecs.GetComponent[*components.HealthComponent](c.EntityManager, id); ok && health.IsAlive {
			live = append(live, id)
		}
	}
	return live
}

// playerPosition 返回玩家当前位置
func (c *Context) playerPosition() (*components.PositionComponent, bool) {
	return ecs.GetComponent[*components.PositionComponent](c.EntityManager, c.Player)
}

// info 天赋的展示信息与通用状态
type info struct {
	name               string
	description        string
	upgradeDescription string
	level              int
	activated          bool
	active             bool
}

func newInfo(name, description, upgradeDescription string) info {
	return info{
		name:               name,
		description:        description,
		upgradeDescription: upgradeDescription,
		level:              1,
	}
}

func (i *info) Name() string               { return i.name }
func (i *info) Description() string        { return i.description }
func (i *info) UpgradeDescription() string { return i.upgradeDescription }
func (i *info) Level() int                 { return i.level }
func (i *info) Activated() bool            { return i.activated }
func (i *info) IsActive() bool             { return i.active }
