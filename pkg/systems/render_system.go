package systems

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/ecs"
	"github.com/decker502/cryptfall/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	wallColor  = color.RGBA{R: 70, G: 62, B: 84, A: 255}
	floorColor = color.RGBA{R: 28, G: 24, B: 34, A: 255}
)

// SheetProvider 按资源名提供图集图片
type SheetProvider interface {
	SheetImage(name string) *ebiten.Image
}

// Camera 世界坐标到屏幕坐标的映射
// 世界原点位于屏幕中心，世界 Y 轴向上，屏幕 Y 轴向下
type Camera struct {
	ScreenWidth   float64
	ScreenHeight  float64
	PixelsPerUnit float64
}

// WorldToScreen 将世界坐标转换为屏幕坐标
func (c Camera) WorldToScreen(x, y float32) (float64, float64) {
	sx := c.ScreenWidth/2 + float64(x)*c.PixelsPerUnit
	sy := c.ScreenHeight/2 - float64(y)*c.PixelsPerUnit
	return sx, sy
}

// FrameRect 根据纹理坐标计算当前帧在图集图片中的像素区域
//
// 纹理坐标原点在左下角；RepeatX 为负时 OffsetX 指向帧的右边缘，
// 返回的 flipped 表示绘制时需要水平镜像
func FrameRect(texture components.TextureTransform, width, height int) (rect image.Rectangle, flipped bool) {
	left := texture.OffsetX
	if texture.Flipped() {
		left = texture.OffsetX + texture.RepeatX
		flipped = true
	}
	frameW := math.Abs(texture.RepeatX)
	top := 1 - texture.OffsetY - texture.RepeatY

	x0 := int(math.Round(left * float64(width)))
	y0 := int(math.Round(top * float64(height)))
	x1 := int(math.Round((left + frameW) * float64(width)))
	y1 := int(math.Round((top + texture.RepeatY) * float64(height)))
	return image.Rect(x0, y0, x1, y1), flipped
}

// RenderSystem 绘制房间、光环、角色与特效
type RenderSystem struct {
	entityManager *ecs.EntityManager
	sheets        SheetProvider
	camera        Camera
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager, sheets SheetProvider, camera Camera) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		sheets:        sheets,
		camera:        camera,
	}
}

// Camera 返回当前相机
func (s *RenderSystem) Camera() Camera {
	return s.camera
}

// Draw 按层绘制：地面与墙体 → 光环 → 精灵（按深度与 Y 排序）
func (s *RenderSystem) Draw(screen *ebiten.Image, walls []utils.AABB) {
	s.DrawRoom(screen, walls)
	s.DrawAuras(screen)
	s.DrawSprites(screen)
}

// DrawRoom 绘制墙体包围的地面和墙体
func (s *RenderSystem) DrawRoom(screen *ebiten.Image, walls []utils.AABB) {
	if len(walls) == 0 {
		return
	}

	bounds := walls[0]
	for _, w := range walls[1:] {
		bounds.Min[0] = float32(math.Min(float64(bounds.Min[0]), float64(w.Min[0])))
		bounds.Min[1] = float32(math.Min(float64(bounds.Min[1]), float64(w.Min[1])))
		bounds.Max[0] = float32(math.Max(float64(bounds.Max[0]), float64(w.Max[0])))
		bounds.Max[1] = float32(math.Max(float64(bounds.Max[1]), float64(w.Max[1])))
	}
	s.fillBox(screen, bounds, floorColor)

	for _, w := range walls {
		s.fillBox(screen, w, wallColor)
	}
}

func (s *RenderSystem) fillBox(screen *ebiten.Image, box utils.AABB, clr color.Color) {
	x0, y0 := s.camera.WorldToScreen(box.Min[0], box.Max[1])
	x1, y1 := s.camera.WorldToScreen(box.Max[0], box.Min[1])
	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), clr, false)
}

// DrawAuras 绘制半透明的范围光环
func (s *RenderSystem) DrawAuras(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.AuraComponent](s.entityManager)
	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		aura, _ := ecs.GetComponent[*components.AuraComponent](s.entityManager, id)

		cx, cy := s.camera.WorldToScreen(pos.Pos[0], pos.Pos[1])
		radius := float64(aura.Radius) * s.camera.PixelsPerUnit
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), aura.Color, true)
	}
}

// DrawSprites 绘制所有持有精灵与图集组件的实体
// 深度小的先画；同一深度时 Y 大（靠上）的先画，下方的实体遮挡上方
func (s *RenderSystem) DrawSprites(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.SpriteComponent,
		*components.SpriteSheetComponent,
	](s.entityManager)

	sort.SliceStable(entities, func(i, j int) bool {
		pi, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entities[i])
		pj, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entities[j])
		if pi.Pos[2] != pj.Pos[2] {
			return pi.Pos[2] < pj.Pos[2]
		}
		return pi.Pos[1] > pj.Pos[1]
	})

	for _, id := range entities {
		s.drawSprite(screen, id)
	}
}

func (s *RenderSystem) drawSprite(screen *ebiten.Image, id ecs.EntityID) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	sheet, _ := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id)

	img := s.sheets.SheetImage(sprite.Sheet)
	if img == nil {
		return
	}

	bounds := img.Bounds()
	rect, flipped := FrameRect(sheet.Texture, bounds.Dx(), bounds.Dy())
	rect = rect.Add(bounds.Min)
	if rect.Empty() {
		return
	}
	frame := img.SubImage(rect).(*ebiten.Image)

	frameW := float64(rect.Dx())
	frameH := float64(rect.Dy())
	size := float64(sprite.Scale) * s.camera.PixelsPerUnit

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-frameW/2, -frameH/2)
	if flipped {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Scale(size/frameW, size/frameH)
	sx, sy := s.camera.WorldToScreen(pos.Pos[0], pos.Pos[1])
	op.GeoM.Translate(sx, sy)

	if flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id); ok {
		op.ColorScale.ScaleWithColor(flash.CurrentTint())
	}

	screen.DrawImage(frame, op)
}
