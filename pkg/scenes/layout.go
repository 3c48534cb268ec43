package scenes

import (
	"fmt"
	"image"

	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/game"
	"github.com/decker502/cryptfall/pkg/perks"
	"github.com/decker502/cryptfall/pkg/systems"
	"github.com/decker502/cryptfall/pkg/utils"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 天赋卡片尺寸
const (
	CardWidth   = 240
	CardHeight  = 300
	CardSpacing = 32
	CardPadding = 16

	// CardTextWidth 卡片内文字可用的像素宽度
	CardTextWidth = CardWidth - 2*CardPadding
)

// NewCamera 计算能完整显示房间的相机
// 房间上下各留出 HUD 区域
func NewCamera(room config.RoomConfig) systems.Camera {
	worldW := float64(room.Width) * float64(room.TileSize)
	worldH := float64(room.Height) * float64(room.TileSize)

	ppu := 1.0
	if worldW > 0 && worldH > 0 {
		ppu = min(
			float64(config.GameWindowWidth)/worldW,
			float64(config.GameWindowHeight-2*config.HUDMargin)/worldH,
		)
	}
	return systems.Camera{
		ScreenWidth:   config.GameWindowWidth,
		ScreenHeight:  config.GameWindowHeight,
		PixelsPerUnit: ppu,
	}
}

// CardRects 计算 n 张卡片在屏幕上的位置，整体水平居中
func CardRects(n int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	total := n*CardWidth + (n-1)*CardSpacing
	x := (config.GameWindowWidth - total) / 2
	y := (config.GameWindowHeight - CardHeight) / 2

	rects := make([]image.Rectangle, n)
	for i := range rects {
		rects[i] = image.Rect(x, y, x+CardWidth, y+CardHeight)
		x += CardWidth + CardSpacing
	}
	return rects
}

// CardIndexAt 返回包含屏幕点 (x, y) 的卡片序号，未命中返回 -1
func CardIndexAt(rects []image.Rectangle, x, y int) int {
	p := image.Pt(x, y)
	for i, r := range rects {
		if p.In(r) {
			return i
		}
	}
	return -1
}

// HUDLines 生成 HUD 文字行
func HUDLines(s game.HUDSnapshot) []string {
	return []string{
		fmt.Sprintf("Room %d", s.Room),
		fmt.Sprintf("Enemies %d", s.EnemiesRemaining),
		fmt.Sprintf("Score %d", s.Score),
		fmt.Sprintf("HP %d", s.Health),
		fmt.Sprintf("Lv %d  EXP %d/%d", s.Level, s.Exp, s.ExpRequired),
	}
}

// CardLines 生成一张卡片上的文字行，描述按像素宽度折行
func CardLines(index int, card perks.Card, face *text.GoTextFace, maxWidth float64) []string {
	title := fmt.Sprintf("%d. %s", index+1, card.Name)
	level := fmt.Sprintf("Level %d", card.Level)
	if card.Upgrade {
		level = fmt.Sprintf("Level %d -> %d", card.Level, card.Level+1)
	}
	lines := []string{title, level, ""}
	return append(lines, utils.WrapText(card.Description, face, maxWidth)...)
}

// RunLabel 一局的简短标识：run ID 的前 8 位
func RunLabel(id uuid.UUID) string {
	return "Run " + id.String()[:8]
}

// GameOverLines 游戏结束面板上的统计行
func GameOverLines(s game.HUDSnapshot) []string {
	return []string{
		fmt.Sprintf("Score %d  Room %d  Level %d", s.Score, s.Room, s.Level),
		RunLabel(s.RunID),
	}
}
