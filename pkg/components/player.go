package components

// PlayerComponent 玩家专属的成长数据
type PlayerComponent struct {
	Level       int // 当前等级，从 1 开始
	Exp         int // 累计经验
	ExpRequired int // 升到下一级所需的累计经验
	Score       int // 分数

	// LeveledUp 本帧达到升级条件，由天赋选择流程消费后清除
	LeveledUp bool
}
