package components

// BannerComponent 屏幕中央的提示文字
type BannerComponent struct {
	Text string
}
