package vtable

import "ida2vtable/utils"

const DefaultReturnType = "int"

// GuessReturnType 根据方法名猜测返回值类型.
// 只看前缀 is/has/can (区分大小写), 经常是错的, 需要准确的类型请用merge.
func GuessReturnType(name, fallback string) string {
	if utils.HasAnyPrefix(name, utils.BoolPrefixes()) {
		return "virtual bool"
	}
	if fallback == "" {
		fallback = DefaultReturnType
	}
	return "virtual " + fallback
}
