package scenes

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 12, G: 10, B: 16, A: 255}
	textColor       = color.RGBA{R: 235, G: 230, B: 220, A: 255}
	accentColor     = color.RGBA{R: 240, G: 200, B: 90, A: 255}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	cardColor       = color.RGBA{R: 40, G: 34, B: 52, A: 240}
	cardBorderColor = color.RGBA{R: 150, G: 130, B: 190, A: 255}
)

// drawText 在 (x, y) 绘制单行文字，align 控制水平对齐
func drawText(screen *ebiten.Image, face *text.GoTextFace, s string, x, y float64, align text.Align, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, face, op)
}

// drawLines 自上而下绘制多行文字
func drawLines(screen *ebiten.Image, face *text.GoTextFace, lines []string, x, y, lineHeight float64, align text.Align, clr color.Color) {
	for i, line := range lines {
		drawText(screen, face, line, x, y+float64(i)*lineHeight, align, clr)
	}
}

// drawOverlay 覆盖整个屏幕的半透明遮罩
func drawOverlay(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), overlayColor, false)
}

// drawPanel 绘制带边框的面板
func drawPanel(screen *ebiten.Image, r image.Rectangle, fill, border color.Color) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 2, border, false)
}

// fade 按不透明度缩放颜色（color.RGBA 为预乘 alpha）
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
