package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // Register PNG decoder
	"log"

	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/embedded"
	"github.com/decker502/cryptfall/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SpriteDir 图集图片在嵌入数据中的目录
const SpriteDir = "data/sprites/"

// PlaceholderFrameSize 占位图集中单帧的像素边长
const PlaceholderFrameSize = 32

// SheetLayout 图集的网格布局和占位着色
type SheetLayout struct {
	Columns int
	Rows    int
	Color   color.RGBA
}

// ResourceManager is responsible for centralized management of game resources.
// It loads and caches sprite sheets and font faces so each resource is created once.
//
// Sprite sheets are looked up as "data/sprites/<name>.png" in the embedded data.
// When a sheet is missing, a placeholder sheet with the same grid layout is
// generated so the animation UVs still address valid frames.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. For the single-threaded game loop,
// no synchronization is needed.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image     // path -> Image
	sheetCache    map[string]*ebiten.Image     // sheet name -> Image
	fontFaceCache map[float64]*text.GoTextFace // size -> face
	fontSource    *text.GoTextFaceSource
	layouts       map[string]SheetLayout
}

// NewResourceManager creates a ResourceManager whose sheet layouts follow the sprite config.
func NewResourceManager(sprite config.SpriteConfig) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		sheetCache:    make(map[string]*ebiten.Image),
		fontFaceCache: make(map[float64]*text.GoTextFace),
		layouts: map[string]SheetLayout{
			entities.SheetPlayer:    {Columns: sprite.Columns, Rows: sprite.Rows, Color: color.RGBA{R: 90, G: 170, B: 230, A: 255}},
			entities.SheetEnemy:     {Columns: sprite.Columns, Rows: sprite.Rows, Color: color.RGBA{R: 120, G: 200, B: 90, A: 255}},
			entities.SheetLightning: {Columns: entities.LightningColumns, Rows: 1, Color: color.RGBA{R: 250, G: 240, B: 120, A: 255}},
		},
	}
}

// Layout 返回图集布局；未知图集返回 1x1
func (rm *ResourceManager) Layout(name string) SheetLayout {
	if layout, ok := rm.layouts[name]; ok {
		return layout
	}
	return SheetLayout{Columns: 1, Rows: 1, Color: color.RGBA{R: 255, G: 0, B: 255, A: 255}}
}

// LoadImage loads a PNG from the embedded data (or disk) and caches it.
//
// Returns an error if the file cannot be read or decoded. Does not panic.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// SheetImage 返回图集图片，实现 systems.SheetProvider
// 找不到图片文件时生成占位图集并缓存
func (rm *ResourceManager) SheetImage(name string) *ebiten.Image {
	if img, ok := rm.sheetCache[name]; ok {
		return img
	}

	img, err := rm.LoadImage(SpriteDir + name + ".png")
	if err != nil {
		log.Printf("[ResourceManager] Sheet %q not found, using placeholder: %v", name, err)
		img = ebiten.NewImageFromImage(PlaceholderSheet(rm.Layout(name)))
	}
	rm.sheetCache[name] = img
	return img
}

// PlaceholderSheet 按布局生成占位图集
//
// 每帧绘制一个身体方块和一个朝右的标记；标记位置随列变化以体现动画，
// 行越靠下颜色越暗，便于区分不同动作行
func PlaceholderSheet(layout SheetLayout) *image.RGBA {
	cols, rows := max(layout.Columns, 1), max(layout.Rows, 1)
	size := PlaceholderFrameSize
	img := image.NewRGBA(image.Rect(0, 0, cols*size, rows*size))

	for row := 0; row < rows; row++ {
		shade := 1 - 0.5*float64(row)/float64(rows)
		body := color.RGBA{
			R: uint8(float64(layout.Color.R) * shade),
			G: uint8(float64(layout.Color.G) * shade),
			B: uint8(float64(layout.Color.B) * shade),
			A: 255,
		}
		for col := 0; col < cols; col++ {
			x0, y0 := col*size, row*size
			fillRect(img, image.Rect(x0+size/4, y0+size/4, x0+size*3/4, y0+size-2), body)

			// 朝向标记，随帧上下摆动
			markY := y0 + size/4 + (col%4)*2
			fillRect(img, image.Rect(x0+size*3/4, markY, x0+size-2, markY+4), color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// LoadFont creates (or returns the cached) Go Regular face of the given size.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if cachedFace, exists := rm.fontFaceCache[size]; exists {
		return cachedFace, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}

// GetFont retrieves a previously loaded font face, or nil if not loaded.
func (rm *ResourceManager) GetFont(size float64) *text.GoTextFace {
	return rm.fontFaceCache[size]
}
