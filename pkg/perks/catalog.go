package perks

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/cryptfall/pkg/config"
)

// ErrInvalidPerkIndex 选择的卡片序号超出范围
var ErrInvalidPerkIndex = errors.New("perks: invalid perk index")

// Card 展示给玩家的一张天赋卡片
type Card struct {
	Name        string
	Description string
	Level       int
	Upgrade     bool // 已激活，选择后升级
}

// Catalog 一局游戏的天赋池和玩家已获得的天赋
type Catalog struct {
	pool  []Perk
	owned []Perk
}

// NewCatalog 创建天赋池：伤害光环、闪电打击、属性强化
func NewCatalog(cfg config.PerksConfig) *Catalog {
	return &Catalog{
		pool: []Perk{
			NewAreaDamage(cfg.AreaDamage),
			NewLightningStrike(cfg.LightningStrike),
			NewStatBoost(cfg.StatBoost),
		},
	}
}

// Owned 玩家已获得的持续性天赋
func (c *Catalog) Owned() []Perk {
	return c.owned
}

// Offer 返回本次可选择的卡片
// 已激活的天赋展示升级描述，否则展示基础描述
func (c *Catalog) Offer() []Card {
	cards := make([]Card, 0, len(c.pool))
	for _, p := range c.pool {
		card := Card{Name: p.Name(), Description: p.Description(), Level: p.Level()}
		if p.Activated() {
			card.Description = p.UpgradeDescription()
			card.Upgrade = true
		}
		cards = append(cards, card)
	}
	return cards
}

// Choose 应用玩家的选择
//
//   - 已激活的天赋：升级
//   - 属性强化：立即生效
//   - 其他：加入玩家天赋列表并激活
func (c *Catalog) Choose(index int, ctx *Context) (Perk, error) {
	if index < 0 || index >= len(c.pool) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPerkIndex, index)
	}

	p := c.pool[index]
	name := p.Name()
	switch {
	case p.Activated():
		p.Upgrade()
	case isStatBoost(p):
		p.Activate(ctx)
	default:
		c.owned = append(c.owned, p)
		p.Activate(ctx)
	}
	log.Printf("[Perks] 选择天赋: %s (等级 %d)", name, p.Level())
	return p, nil
}

// Update 每帧更新玩家已获得的天赋
func (c *Catalog) Update(ctx *Context) {
	for _, p := range c.owned {
		p.Update(ctx)
	}
}

func isStatBoost(p Perk) bool {
	_, ok := p.(*StatBoost)
	return ok
}
