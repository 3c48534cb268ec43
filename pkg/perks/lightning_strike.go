package perks

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/ecs"
	"github.com/decker502/cryptfall/pkg/entities"
	"github.com/decker502/cryptfall/pkg/systems"
)

// LightningStrike 周期性随机闪电打击
//
// 每个冷却周期掷一次概率，命中时对随机一个存活敌人造成伤害并播放闪电动画；
// 动画播放期间不再掷骰
type LightningStrike struct {
	info
	cfg config.LightningStrikeConfig

	cooldown   float64
	chance     float64
	damage     int
	lastStrike float64

	effect ecs.EntityID
}

// NewLightningStrike 创建闪电打击天赋
func NewLightningStrike(cfg config.LightningStrikeConfig) *LightningStrike {
	return &LightningStrike{
		info: newInfo(
			"Lightning Strike",
			fmt.Sprintf("Every %g seconds there is a chance that a random enemy will be struck by lightning", cfg.Cooldown),
			fmt.Sprintf("Reduce cooldown by %g second and increase chance by +%d%%", cfg.CooldownStep, int(math.Round(cfg.ChanceStep*100))),
		),
		cfg:      cfg,
		cooldown: cfg.Cooldown,
		chance:   cfg.Chance,
		damage:   cfg.Damage,
	}
}

// Cooldown 当前冷却（秒）
func (l *LightningStrike) Cooldown() float64 { return l.cooldown }

// Chance 当前命中概率
func (l *LightningStrike) Chance() float64 { return l.chance }

// Damage 当前伤害
func (l *LightningStrike) Damage() int { return l.damage }

// Activate 激活天赋，冷却从激活时刻开始
func (l *LightningStrike) Activate(ctx *Context) {
	l.activated = true
	l.lastStrike = ctx.Clock.Now()
	log.Printf("[Perks] %s 已激活 (冷却 %.1fs, 概率 %.0f%%)", l.name, l.cooldown, l.chance*100)
}

// Upgrade 未达上限时缩短冷却并提高概率，之后提升伤害
func (l *LightningStrike) Upgrade() {
	if l.level <= l.cfg.UpgradeCap {
		l.cooldown = math.Max(l.cfg.MinCooldown, l.cooldown-l.cfg.CooldownStep)
		l.chance = math.Min(1, l.chance+l.cfg.ChanceStep)
		if l.level == l.cfg.UpgradeCap {
			l.upgradeDescription = fmt.Sprintf("Increase damage by %d", l.cfg.DamageStep)
		}
	} else {
		l.damage += l.cfg.DamageStep
	}
	l.level++
	log.Printf("[Perks] %s 升级到 %d 级 (冷却 %.1fs, 概率 %.0f%%, 伤害 %d)",
		l.name, l.level, l.cooldown, l.chance*100, l.damage)
}

// Update 播放中的闪电继续动画，否则在冷却结束时尝试打击
func (l *LightningStrike) Update(ctx *Context) {
	if !l.activated {
		return
	}
	if l.active {
		l.animate(ctx)
		return
	}
	l.tryStrike(ctx)
}

// animate 推进闪电动画，播放完毕后移除特效
func (l *LightningStrike) animate(ctx *Context) {
	sheet, ok := ecs.GetComponent[*components.SpriteSheetComponent](ctx.EntityManager, l.effect)
	if !ok {
		l.active = false
		return
	}
	if systems.AdvanceFrame(sheet, ctx.DeltaTime) == systems.FrameCycleEnded {
		ctx.EntityManager.DestroyEntity(l.effect)
		l.active = false
	}
}

// tryStrike 冷却结束时掷一次概率；没有存活目标时本周期不消耗
func (l *LightningStrike) tryStrike(ctx *Context) {
	if ctx.Clock.Elapsed(l.lastStrike) < l.cooldown {
		return
	}
	targets := ctx.LiveEnemies()
	if len(targets) == 0 {
		return
	}

	l.lastStrike = ctx.Clock.Now()
	if ctx.Rand.Float64() >= l.chance {
		return
	}

	target := targets[ctx.Rand.Intn(len(targets))]
	pos, ok := ecs.GetComponent[*components.PositionComponent](ctx.EntityManager, target)
	if !ok {
		return
	}

	l.effect = entities.NewLightningEffect(ctx.EntityManager, pos.Pos, ctx.EffectFrameInterval)
	l.active = true
	ctx.Combat.TakeDamage(target, l.damage, ctx.Player)
	log.Printf("[Perks] 闪电击中敌人 %d, 伤害 %d", target, l.damage)
}
