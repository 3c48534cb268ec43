package components

// EnemyComponent 敌人专属数据
type EnemyComponent struct {
	Difficulty  int // 生成时的难度等级（>= 1）
	ExpReward   int // 击杀奖励经验
	ScoreReward int // 击杀奖励分数

	// Rewarded 奖励是否已发放，保证每次死亡只结算一次
	Rewarded bool
}
