package game

import (
	"image/color"
	"testing"

	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/entities"
)

func TestResourceManagerLayout(t *testing.T) {
	rm := NewResourceManager(config.DefaultGameConfig().Sprite)

	tests := []struct {
		name string
		cols int
		rows int
	}{
		{entities.SheetPlayer, 8, 15},
		{entities.SheetEnemy, 8, 15},
		{entities.SheetLightning, entities.LightningColumns, 1},
		{"unknown", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := rm.Layout(tt.name)
			if layout.Columns != tt.cols || layout.Rows != tt.rows {
				t.Errorf("Layout(%q) = %dx%d, want %dx%d", tt.name, layout.Columns, layout.Rows, tt.cols, tt.rows)
			}
		})
	}
}

func TestPlaceholderSheet(t *testing.T) {
	layout := SheetLayout{Columns: 5, Rows: 2, Color: color.RGBA{R: 200, G: 100, B: 50, A: 255}}
	img := PlaceholderSheet(layout)

	bounds := img.Bounds()
	if bounds.Dx() != 5*PlaceholderFrameSize || bounds.Dy() != 2*PlaceholderFrameSize {
		t.Fatalf("bounds = %v, want %dx%d", bounds, 5*PlaceholderFrameSize, 2*PlaceholderFrameSize)
	}

	// 帧角落透明，帧中心为身体颜色
	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	center := img.RGBAAt(PlaceholderFrameSize/2, PlaceholderFrameSize/2)
	if center != layout.Color {
		t.Errorf("first row center = %v, want %v", center, layout.Color)
	}

	// 第二行颜色更暗
	lower := img.RGBAAt(PlaceholderFrameSize/2, PlaceholderFrameSize+PlaceholderFrameSize/2)
	if lower.R >= center.R {
		t.Errorf("second row R = %d, want darker than %d", lower.R, center.R)
	}
}

func TestPlaceholderSheetZeroLayout(t *testing.T) {
	img := PlaceholderSheet(SheetLayout{})
	if img.Bounds().Dx() != PlaceholderFrameSize || img.Bounds().Dy() != PlaceholderFrameSize {
		t.Errorf("zero layout bounds = %v, want one frame", img.Bounds())
	}
}

func TestLoadFontCaches(t *testing.T) {
	rm := NewResourceManager(config.DefaultGameConfig().Sprite)

	if rm.GetFont(18) != nil {
		t.Fatal("GetFont before LoadFont should be nil")
	}

	face, err := rm.LoadFont(18)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	if face.Size != 18 {
		t.Errorf("face size = %v, want 18", face.Size)
	}

	again, err := rm.LoadFont(18)
	if err != nil {
		t.Fatalf("second LoadFont failed: %v", err)
	}
	if again != face {
		t.Error("LoadFont should return the cached face")
	}
	if rm.GetFont(18) != face {
		t.Error("GetFont should return the loaded face")
	}

	bigger, _ := rm.LoadFont(32)
	if bigger.Source != face.Source {
		t.Error("faces of different sizes should share one source")
	}
}

func TestLoadImageMissing(t *testing.T) {
	rm := NewResourceManager(config.DefaultGameConfig().Sprite)
	if _, err := rm.LoadImage(t.TempDir() + "/missing.png"); err == nil {
		t.Error("expected error for missing image")
	}
}
