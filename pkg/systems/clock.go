package systems

// Clock 模拟时钟（秒）
// 所有冷却都是"当前时间 - 上次触发时间"的比较，时间只随 Advance 前进，
// 因此暂停期间（不调用 Step）冷却不会流逝
type Clock struct {
	now float64
}

// NewClock 创建从 0 开始的时钟
func NewClock() *Clock {
	return &Clock{}
}

// Now 返回当前模拟时间
func (c *Clock) Now() float64 {
	return c.now
}

// Advance 推进时钟，负值被忽略
func (c *Clock) Advance(dt float64) {
	if dt > 0 {
		c.now += dt
	}
}

// Elapsed 返回自 since 以来经过的时间
func (c *Clock) Elapsed(since float64) float64 {
	return c.now - since
}

// RandomSource 系统使用的随机数来源
// *rand.Rand 满足该接口，测试中可替换为固定序列
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}
