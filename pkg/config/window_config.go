package config

// 窗口与界面布局常量（逻辑像素）
const (
	// GameWindowWidth 游戏逻辑画面宽度
	GameWindowWidth = 1024
	// GameWindowHeight 游戏逻辑画面高度
	GameWindowHeight = 576
	// HUDMargin 房间上下为 HUD 预留的像素
	HUDMargin = 48
	// GameTitle 窗口标题
	GameTitle = "Cryptfall"
)
