package perks

import (
	"fmt"
	"log"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/ecs"
	"github.com/decker502/cryptfall/pkg/entities"
	"github.com/decker502/cryptfall/pkg/utils"
)

// AreaDamage 以玩家为圆心的伤害光环
// 每个冷却周期对半径内所有存活敌人造成伤害
type AreaDamage struct {
	info
	cfg config.AreaDamageConfig

	radius   float32
	damage   float64
	carry    float64 // 不足 1 点的伤害累积到下一次结算
	lastTick float64

	em   *ecs.EntityManager
	aura ecs.EntityID
}

// NewAreaDamage 创建伤害光环天赋
func NewAreaDamage(cfg config.AreaDamageConfig) *AreaDamage {
	return &AreaDamage{
		info: newInfo(
			"Damaging Circle",
			fmt.Sprintf("Damage enemies every %g seconds within the circle, player is center of circle", cfg.Cooldown),
			fmt.Sprintf("Increase radius and damage by %g", cfg.RadiusStep),
		),
		cfg:    cfg,
		radius: cfg.Radius,
		damage: cfg.Damage,
	}
}

// Radius 当前半径
func (a *AreaDamage) Radius() float32 { return a.radius }

// Damage 当前每次结算的伤害
func (a *AreaDamage) Damage() float64 { return a.damage }

// Activate 激活光环并在玩家位置创建可视化实体
func (a *AreaDamage) Activate(ctx *Context) {
	a.activated = true
	a.active = true
	a.lastTick = ctx.Clock.Now()
	a.em = ctx.EntityManager

	if pos, ok := ctx.playerPosition(); ok {
		a.aura = entities.NewAreaAura(ctx.EntityManager, pos.Pos, a.radius)
	}
	log.Printf("[Perks] %s 已激活 (半径 %.1f)", a.name, a.radius)
}

// Upgrade 半径和伤害各增加一个步长
func (a *AreaDamage) Upgrade() {
	a.radius += a.cfg.RadiusStep
	a.damage += a.cfg.DamageStep
	a.level++

	if a.em != nil {
		if aura, ok := ecs.GetComponent[*components.AuraComponent](a.em, a.aura); ok {
			aura.Radius = a.radius
		}
	}
	log.Printf("[Perks] %s 升级到 %d 级 (半径 %.1f, 伤害 %.1f)", a.name, a.level, a.radius, a.damage)
}

// Update 光环跟随玩家，冷却结束时结算伤害
func (a *AreaDamage) Update(ctx *Context) {
	if !a.activated {
		return
	}

	playerPos, ok := ctx.playerPosition()
	if !ok {
		return
	}
	if auraPos, ok := ecs.GetComponent[*components.PositionComponent](ctx.EntityManager, a.aura); ok {
		auraPos.Pos[0] = playerPos.Pos[0]
		auraPos.Pos[1] = playerPos.Pos[1]
		auraPos.Pos[2] = playerPos.Pos[2] - 0.1
	}

	if ctx.Clock.Elapsed(a.lastTick) < a.cfg.Cooldown {
		return
	}
	a.lastTick = ctx.Clock.Now()

	a.carry += a.damage
	dealt := int(a.carry)
	a.carry -= float64(dealt)
	if dealt == 0 {
		return
	}

	for _, enemy := range ctx.LiveEnemies() {
		enemyPos, ok := ecs.GetComponent[*components.PositionComponent](ctx.EntityManager, enemy)
		if !ok {
			continue
		}
		if utils.PlanarDistance(&playerPos.Pos, &enemyPos.Pos) <= a.radius {
			ctx.Combat.TakeDamage(enemy, dealt, ctx.Player)
		}
	}
}
