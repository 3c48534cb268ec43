package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Phase 游戏流程状态
//
//	Menu → Playing ⇄ Paused → GameOver
//
// GameOver 为终止状态，只能从 Playing 进入
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// PauseReason 进入天赋选择的原因
type PauseReason int

const (
	PauseNone PauseReason = iota
	PauseLevelUp
	PauseRoomCleared
)

// HUDSnapshot 每帧刷新的 HUD 数据
type HUDSnapshot struct {
	RunID            uuid.UUID
	Room             int
	Difficulty       int
	EnemiesRemaining int
	Score            int
	Health           int
	Level            int
	Exp              int
	ExpRequired      int
}
