package entities

import (
	"image/color"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/ecs"
	"github.com/ungerik/go3d/vec3"
)

const (
	// LightningColumns 闪电图集列数（单行）
	LightningColumns = 5
	// LightningLastCol 闪电动画播放到的最后一列
	LightningLastCol = 3
	// LightningYOffset 闪电相对目标的垂直偏移
	LightningYOffset = 0.5
	// LightningScale 闪电显示尺寸
	LightningScale = 3
)

// AuraColor 伤害光环颜色（红色，约 10% 不透明度）
var AuraColor = color.RGBA{R: 255, A: 26}

// NewLightningEffect 在目标位置上方创建一次闪电动画
// 动画由 LightningStrike 天赋自行推进，结束后删除
func NewLightningEffect(em *ecs.EntityManager, target vec3.T, frameInterval float64) ecs.EntityID {
	id := em.CreateEntity()

	sheet := components.NewSpriteSheetComponent(LightningColumns, 1, frameInterval)
	sheet.LastCol = LightningLastCol

	ecs.AddComponent(em, id, &components.BehaviorComponent{Type: components.BehaviorLightningEffect})
	ecs.AddComponent(em, id, &components.PositionComponent{
		Pos: vec3.T{target[0], target[1] + LightningYOffset, target[2] + 0.1},
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{Sheet: SheetLightning, Scale: LightningScale})
	ecs.AddComponent(em, id, sheet)
	return id
}

// NewAreaAura 创建跟随玩家的伤害光环
func NewAreaAura(em *ecs.EntityManager, center vec3.T, radius float32) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.BehaviorComponent{Type: components.BehaviorAreaAura})
	ecs.AddComponent(em, id, &components.PositionComponent{Pos: vec3.T{center[0], center[1], center[2] - 0.1}})
	ecs.AddComponent(em, id, &components.AuraComponent{Radius: radius, Color: AuraColor})
	return id
}

// NewRoomBanner 创建限时显示的房间提示
func NewRoomBanner(em *ecs.EntityManager, text string, duration float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.BehaviorComponent{Type: components.BehaviorBanner})
	ecs.AddComponent(em, id, &components.BannerComponent{Text: text})
	ecs.AddComponent(em, id, components.NewLifetimeComponent(duration))
	return id
}
