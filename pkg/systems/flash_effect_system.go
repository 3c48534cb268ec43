package systems

import (
	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/ecs"
)

// FlashEffectSystem 推进受击闪烁，结束或精灵已释放时移除闪烁组件
type FlashEffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlashEffectSystem 创建闪烁效果系统
func NewFlashEffectSystem(em *ecs.EntityManager) *FlashEffectSystem {
	return &FlashEffectSystem{
		entityManager: em,
	}
}

// Update 推进所有闪烁
// 参数：
//   - dt: 时间增量（秒）
func (s *FlashEffectSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.entityManager) {
		// 精灵已释放（死亡动画结束）：没有可恢复颜色的对象
		if !ecs.HasComponent[*components.SpriteComponent](s.entityManager, id) {
			ecs.RemoveComponent[*components.FlashEffectComponent](s.entityManager, id)
			continue
		}

		flash, _ := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id)
		flash.Elapsed += dt
		if flash.Done() {
			ecs.RemoveComponent[*components.FlashEffectComponent](s.entityManager, id)
		}
	}
}
