package perks

import (
	"fmt"
	"log"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/ecs"
)

// Stat 属性强化的目标属性
type Stat int

const (
	StatHealth Stat = iota
	StatAttackDamage
	StatMoveSpeed
)

func (s Stat) String() string {
	switch s {
	case StatHealth:
		return "Health"
	case StatAttackDamage:
		return "Attack Damage"
	case StatMoveSpeed:
		return "Movement Speed"
	}
	return fmt.Sprintf("Stat(%d)", int(s))
}

var allStats = []Stat{StatHealth, StatAttackDamage, StatMoveSpeed}

// StatBoost 一次性属性强化
// 每次选择立即生效，随后重新随机下一次要强化的属性；没有持续的激活状态
type StatBoost struct {
	info
	cfg  config.StatBoostConfig
	stat Stat
}

// NewStatBoost 创建属性强化，首次固定为生命值
func NewStatBoost(cfg config.StatBoostConfig) *StatBoost {
	b := &StatBoost{cfg: cfg}
	b.setStat(StatHealth)
	return b
}

// Stat 下一次选择时强化的属性
func (b *StatBoost) Stat() Stat { return b.stat }

func (b *StatBoost) amountText(stat Stat) string {
	switch stat {
	case StatHealth:
		return fmt.Sprintf("%d", b.cfg.Health)
	case StatAttackDamage:
		return fmt.Sprintf("%d", b.cfg.AttackDamage)
	default:
		return fmt.Sprintf("%g", b.cfg.MoveSpeed)
	}
}

func (b *StatBoost) setStat(stat Stat) {
	b.stat = stat
	b.info = newInfo(
		fmt.Sprintf("Stat Boost: %s", stat),
		fmt.Sprintf("Increases %s by %s.", stat, b.amountText(stat)),
		"",
	)
}

// Activate 对玩家应用当前属性，然后重新随机
func (b *StatBoost) Activate(ctx *Context) {
	b.apply(ctx)
	b.setStat(allStats[ctx.Rand.Intn(len(allStats))])
}

func (b *StatBoost) apply(ctx *Context) {
	switch b.stat {
	case StatHealth:
		if health, ok := ecs.GetComponent[*components.HealthComponent](ctx.EntityManager, ctx.Player); ok {
			health.Health += b.cfg.Health
		}
	case StatAttackDamage:
		if combat, ok := ecs.GetComponent[*components.CombatComponent](ctx.EntityManager, ctx.Player); ok {
			combat.Damage += b.cfg.AttackDamage
		}
	case StatMoveSpeed:
		if combat, ok := ecs.GetComponent[*components.CombatComponent](ctx.EntityManager, ctx.Player); ok {
			combat.MoveSpeed += b.cfg.MoveSpeed
		}
	}
	log.Printf("[Perks] %s", b.description)
}

// Upgrade 属性强化没有等级
func (b *StatBoost) Upgrade() {}

// Update 属性强化没有持续效果
func (b *StatBoost) Update(ctx *Context) {}
