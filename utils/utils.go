package utils

import (
	"strings"

	mapset "github.com/deckarep/golang-set"
)

// GetPointerSize 根据指针宽度返回虚表槽的字节数
func GetPointerSize(is32Bit bool) int {
	if is32Bit {
		return 4
	}
	return 8
}

var (
	pureVirtualMarkers = mapset.NewSetFromSlice([]interface{}{"__cxa_pure_virtual", "_purecall"})
	offsetMarkers      = mapset.NewSetFromSlice([]interface{}{"dq offset", "dd offset"})
	boolPrefixes       = mapset.NewSetFromSlice([]interface{}{"is", "has", "can"})
)

// PureVirtualMarkers 纯虚函数桩的符号
func PureVirtualMarkers() mapset.Set {
	return pureVirtualMarkers
}

// OffsetMarkers IDA 中指针槽的限定符
func OffsetMarkers() mapset.Set {
	return offsetMarkers
}

// BoolPrefixes 通常返回bool的方法名前缀
func BoolPrefixes() mapset.Set {
	return boolPrefixes
}

// HasSymbol 判断line中是否有在set里的符号, IDA 会在符号前多加下划线
func HasSymbol(line string, set mapset.Set) bool {
	for _, field := range strings.Fields(line) {
		for s := field; s != ""; s = s[1:] {
			if set.Contains(s) {
				return true
			}
			if s[0] != '_' {
				break
			}
		}
	}
	return false
}

// HasQualifier 判断line中是否有在set里的两个词的限定符, 例如 "dq offset"
func HasQualifier(line string, set mapset.Set) bool {
	fields := strings.Fields(line)
	for i := 0; i+1 < len(fields); i++ {
		if set.Contains(fields[i] + " " + fields[i+1]) {
			return true
		}
	}
	return false
}

// HasAnyPrefix 判断name是否以set中任意一个前缀开头，区分大小写
func HasAnyPrefix(name string, set mapset.Set) bool {
	for i := 1; i <= len(name); i++ {
		if set.Contains(name[:i]) {
			return true
		}
	}
	return false
}

// FilterMethodName 过滤掉不能输出的方法名
func FilterMethodName(name string) bool {
	return len(strings.TrimSpace(name)) == 0
}
