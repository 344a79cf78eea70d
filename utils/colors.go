package utils

import "github.com/fatih/color"

// InitColor 覆盖自动检测的颜色设置, nil表示保持默认(非终端时关闭)
func InitColor(force *bool) {
	if force != nil {
		color.NoColor = !*force
	}
}

func ColorEnabled() bool {
	return !color.NoColor
}
