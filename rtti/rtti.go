package rtti

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	vtableCommentRegex   = regexp.MustCompile("`vtable for'(?P<class>[\\w:]+)")
	typeinfoCommentRegex = regexp.MustCompile("`typeinfo for'(?P<class>[\\w:]+)")
	vtableSymbolRegex    = regexp.MustCompile(`\b_ZTV(?P<name>\w+)`)
	typeinfoSymbolRegex  = regexp.MustCompile(`\b_ZTI(?P<name>\w+)`)
)

// ParseVtableLine 读取 "`vtable for'X" 或 _ZTV 符号中的类名
func ParseVtableLine(line string) (string, bool) {
	return parse(line, vtableCommentRegex, vtableSymbolRegex)
}

// ParseTypeinfoLine 读取 "`typeinfo for'X" 或 _ZTI 符号中的类名
func ParseTypeinfoLine(line string) (string, bool) {
	return parse(line, typeinfoCommentRegex, typeinfoSymbolRegex)
}

func IsHeaderLine(line string) bool {
	if _, ok := ParseVtableLine(line); ok {
		return true
	}
	_, ok := ParseTypeinfoLine(line)
	return ok
}

// FindClassName 从虚表开头的rtti信息里找出类名
func FindClassName(lines []string) (string, bool) {
	for _, line := range lines {
		if name, ok := ParseVtableLine(line); ok {
			return name, true
		}
		if name, ok := ParseTypeinfoLine(line); ok {
			return name, true
		}
	}
	return "", false
}

func parse(line string, comment, symbol *regexp.Regexp) (string, bool) {
	if m := comment.FindStringSubmatch(line); m != nil {
		return m[comment.SubexpIndex("class")], true
	}
	if m := symbol.FindStringSubmatch(line); m != nil {
		return Demangle(m[symbol.SubexpIndex("name")])
	}
	return "", false
}

// Demangle 解析 Itanium 的类名部分, 例如 6Player 或 N7cocos2d4NodeE
func Demangle(mangled string) (string, bool) {
	if strings.HasPrefix(mangled, "N") {
		parts := make([]string, 0, 4)
		rest := mangled[1:]
		for len(rest) > 0 && rest[0] != 'E' {
			name, next, ok := sourceName(rest)
			if !ok {
				return "", false
			}
			parts = append(parts, name)
			rest = next
		}
		if len(rest) == 0 || len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, "::"), true
	}
	name, _, ok := sourceName(mangled)
	return name, ok
}

// sourceName 读取 <length><identifier>
func sourceName(s string) (string, string, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	// 标识符长度不会超过9位数
	if i == 0 || i > 9 {
		return "", "", false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil || n == 0 || n > len(s)-i {
		return "", "", false
	}
	return s[i : i+n], s[i+n:], true
}
