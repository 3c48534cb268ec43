// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyState 当前帧的逻辑按键状态
// 由输入采集层填充，游戏核心每帧轮询
type KeyState struct {
	Forward  bool // W
	Back     bool // S
	Left     bool // A
	Right    bool // D
	Dash     bool // Q（保留，暂无行为）
	Interact bool // E
	Attack   bool // Space
}

// OnlyAttack 判断除攻击键以外是否没有任何按键按下
func (k KeyState) OnlyAttack() bool {
	return !k.Forward && !k.Back && !k.Left && !k.Right && !k.Dash && !k.Interact
}

// PollKeyState 读取 ebiten 当前的键盘状态
func PollKeyState() KeyState {
	return KeyState{
		Forward:  ebiten.IsKeyPressed(ebiten.KeyW),
		Back:     ebiten.IsKeyPressed(ebiten.KeyS),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD),
		Dash:     ebiten.IsKeyPressed(ebiten.KeyQ),
		Interact: ebiten.IsKeyPressed(ebiten.KeyE),
		Attack:   ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}
