package components

// BehaviorType 定义实体的行为类型
// 用于系统区分玩家、敌人和各类特效
type BehaviorType int

const (
	// BehaviorPlayer 玩家角色：由按键驱动移动和攻击
	BehaviorPlayer BehaviorType = iota
	// BehaviorEnemy 敌人：贪心追击玩家，近身后按冷却攻击
	BehaviorEnemy
	// BehaviorLightningEffect 闪电打击特效：播放一次后隐藏
	BehaviorLightningEffect
	// BehaviorAreaAura 伤害光环：跟随玩家的半透明圆
	BehaviorAreaAura
	// BehaviorBanner 房间提示横幅：显示固定时长后消失
	BehaviorBanner
)

// BehaviorComponent 标识实体的行为类型
type BehaviorComponent struct {
	Type BehaviorType
}
