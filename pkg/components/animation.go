package components

import "fmt"

// Direction 角色朝向/移动方向
// 同时用于计算位移和选择图集行
type Direction int

const (
	// DirectionDown 向下（图集行偏移 0）
	DirectionDown Direction = iota
	// DirectionUp 向上（图集行偏移 1）
	DirectionUp
	// DirectionLeft 向左（图集行偏移 2）
	DirectionLeft
	// DirectionRight 向右：复用向左的图集行并水平翻转
	DirectionRight
	// DirectionNone 无方向输入（待机或原地攻击）
	DirectionNone
)

// RowIndex 返回方向在一个动作块中的行偏移
// 右方向复用左方向的行，由纹理翻转实现镜像
func (d Direction) RowIndex() int {
	switch d {
	case DirectionDown:
		return 0
	case DirectionUp:
		return 1
	case DirectionLeft, DirectionRight:
		return 2
	}
	panic(fmt.Sprintf("components: direction %d has no sprite row", int(d)))
}

func (d Direction) String() string {
	switch d {
	case DirectionDown:
		return "down"
	case DirectionUp:
		return "up"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionNone:
		return "none"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Action 动画类别，决定使用图集中的哪一组行
type Action int

const (
	ActionIdle Action = iota
	ActionHurt
	ActionMove
	ActionDeath
	ActionAttack
)

// ActionLayout 动作在图集中的位置
type ActionLayout struct {
	Set       int // 动作块序号，行号 = Set*3 + 方向行偏移
	MaxColumn int // 最后一帧的列号（含）
}

// Layout 返回动作的图集参数，未知动作直接 panic
func (a Action) Layout() ActionLayout {
	switch a {
	case ActionIdle:
		return ActionLayout{Set: 0, MaxColumn: 3}
	case ActionHurt:
		return ActionLayout{Set: 1, MaxColumn: 1}
	case ActionMove:
		return ActionLayout{Set: 2, MaxColumn: 5}
	case ActionDeath:
		return ActionLayout{Set: 3, MaxColumn: 7}
	case ActionAttack:
		return ActionLayout{Set: 4, MaxColumn: 3}
	}
	panic(fmt.Sprintf("components: unknown action %d", int(a)))
}

func (a Action) String() string {
	switch a {
	case ActionIdle:
		return "idle"
	case ActionHurt:
		return "hurt"
	case ActionMove:
		return "move"
	case ActionDeath:
		return "death"
	case ActionAttack:
		return "attack"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// TextureTransform 图集纹理坐标（UV，原点在左下角）
// RepeatX 为负表示水平翻转，此时 OffsetX 指向帧的右边缘
type TextureTransform struct {
	RepeatX float64
	RepeatY float64
	OffsetX float64
	OffsetY float64
}

// Flipped 纹理是否处于水平翻转状态
func (t TextureTransform) Flipped() bool {
	return t.RepeatX < 0
}

// SpriteSheetComponent 基于图集的帧动画状态
// 每帧只显示图集中的一格，由 Row/CurrentCol 决定
type SpriteSheetComponent struct {
	Columns int // 图集列数
	Rows    int // 图集行数

	Row        int // 当前动画所在行
	CurrentCol int // 下一次推进要显示的列
	LastCol    int // 当前动作的最后一列

	FrameInterval float64 // 帧间隔（秒），角色 0.1，特效 0.05
	FrameTimer    float64 // 距上次推进累计的时间（秒）

	Direction Direction // 当前朝向
	Action    Action    // 当前动作

	Texture TextureTransform
}

// NewSpriteSheetComponent 创建初始状态的图集动画（朝下待机）
func NewSpriteSheetComponent(columns, rows int, frameInterval float64) *SpriteSheetComponent {
	return &SpriteSheetComponent{
		Columns:       columns,
		Rows:          rows,
		Row:           0,
		CurrentCol:    1,
		LastCol:       ActionIdle.Layout().MaxColumn,
		FrameInterval: frameInterval,
		Direction:     DirectionDown,
		Action:        ActionIdle,
		Texture: TextureTransform{
			RepeatX: 1 / float64(columns),
			RepeatY: 1 / float64(rows),
			OffsetX: 0,
			OffsetY: 1 - 1/float64(rows),
		},
	}
}
