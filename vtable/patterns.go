package vtable

import (
	"regexp"
	"strings"

	"github.com/apex/log"
)

var (
	// .rodata:0000000000AB1250    dq offset _ZN6Player4JumpEi ; Player::Jump(int)
	slotRegex = regexp.MustCompile(`^\s*\.(?:rodata|data\.rel\.ro(?:\.local)?):[0-9A-Fa-f]+\s+((?:d[dq]\s+offset\s+)?[_A-Za-z0-9]+\d+\w*\s*)?;\s*(?:\w+::)+\w+\([^)]*\)?\s*$`)
	// IDA 会截断过长的注释，所以右括号是可选的
	referenceRegex   = regexp.MustCompile(`;\s*(?P<class>(?:\w+::)*\w+)::(?P<method>\w+)\((?P<args>[^)]*)\)?`)
	destructorRegex  = regexp.MustCompile(`;\s*(?P<class>(?:\w+::)*\w+)::~(?P<dtor>\w+)`)
	declarationRegex = regexp.MustCompile(`^\s*(?P<ret>virtual\s+[\w\s:*&<>,]*?[\s*&])\s*(?P<name>~?\w+)\s*\((?P<args>[^)]*)\)`)
)

func group(re *regexp.Regexp, match []string, name string) string {
	return match[re.SubexpIndex(name)]
}

// IsSlotLine 判断是否为有效的虚表槽
func IsSlotLine(line string) bool {
	return slotRegex.MatchString(line)
}

// ParseReference 解析 "; Class::Method(args)" 形式的注释
func ParseReference(line string) (*Entry, bool) {
	match := referenceRegex.FindStringSubmatch(line)
	if match == nil {
		return nil, false
	}
	return &Entry{
		Class: group(referenceRegex, match, "class"),
		Name:  group(referenceRegex, match, "method"),
		Args:  group(referenceRegex, match, "args"),
		Kind:  KindMethod,
	}, true
}

// ParseDestructor 从 "; Class::~Class" 中取出类名
func ParseDestructor(line string) (string, bool) {
	match := destructorRegex.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}
	return group(destructorRegex, match, "class"), true
}

// ParseDeclaration 解析已经生成过的声明 "virtual <type> <name>(<args>)"
func ParseDeclaration(line string) (*Entry, bool) {
	match := declarationRegex.FindStringSubmatch(line)
	if match == nil {
		return nil, false
	}
	return &Entry{
		Name:       group(declarationRegex, match, "name"),
		Args:       group(declarationRegex, match, "args"),
		ReturnType: strings.Join(strings.Fields(group(declarationRegex, match, "ret")), " "),
		Kind:       KindDeclaration,
	}, true
}

// ParseDeclarations 解析旧的虚表文件, 无法识别的行会被丢弃
func ParseDeclarations(lines []string) []*Entry {
	entries := make([]*Entry, 0, len(lines))
	for i, line := range lines {
		entry, ok := ParseDeclaration(line)
		if !ok {
			if strings.TrimSpace(line) != "" {
				log.Debugf("old table line %d is not a declaration: %q", i+1, line)
			}
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// destructorName 命名空间下的类只取最后一段
func destructorName(class string) string {
	if i := strings.LastIndex(class, "::"); i >= 0 {
		class = class[i+2:]
	}
	return "~" + class
}
