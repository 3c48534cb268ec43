// Package room 生成房间的墙体碰撞盒
package room

import "github.com/decker502/cryptfall/pkg/utils"

// Tile 房间中的一格地砖
type Tile struct {
	Box    utils.AABB
	IsWall bool
}

// Tiles 生成 width x height 的地砖，房间中心位于世界原点，最外一圈为墙
func Tiles(width, height int, tileSize float32) []Tile {
	tiles := make([]Tile, 0, width*height)
	half := tileSize / 2
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			cx := float32(x)*tileSize - float32(width)/2*tileSize + half
			cy := float32(y)*tileSize - float32(height)/2*tileSize + half
			tiles = append(tiles, Tile{
				Box:    utils.NewAABB(cx, cy, half, half),
				IsWall: x == 0 || x == width-1 || y == 0 || y == height-1,
			})
		}
	}
	return tiles
}

// Generate 返回房间外圈墙体的碰撞盒
// 生成后只读，供所有移动检测共享
func Generate(width, height int, tileSize float32) []utils.AABB {
	var walls []utils.AABB
	for _, t := range Tiles(width, height, tileSize) {
		if t.IsWall {
			walls = append(walls, t.Box)
		}
	}
	return walls
}
