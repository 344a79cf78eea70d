package vtable

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	mapset "github.com/deckarep/golang-set"

	"ida2vtable/utils"
)

// Classifier 判断每一行属于哪种虚表槽.
// 一次运行只会产生一个析构函数, 之后的析构函数行都会被忽略.
type Classifier struct {
	ReturnType string

	destructorFound bool
	pureMarkers     mapset.Set
	offsetMarkers   mapset.Set
}

func NewClassifier(returnType string) *Classifier {
	return &Classifier{
		ReturnType:    returnType,
		pureMarkers:   utils.PureVirtualMarkers(),
		offsetMarkers: utils.OffsetMarkers(),
	}
}

func (_this *Classifier) DestructorFound() bool {
	return _this.destructorFound
}

// IsDestructorLine 含有~且是指针槽
func (_this *Classifier) IsDestructorLine(line string) bool {
	return strings.Contains(line, "~") && utils.HasQualifier(line, _this.offsetMarkers)
}

func (_this *Classifier) IsPureVirtualLine(line string) bool {
	return utils.HasSymbol(line, _this.pureMarkers)
}

// Classify 解析一行, index是当前的槽序号, 用于给纯虚函数命名
func (_this *Classifier) Classify(line string, index int) (*Entry, bool) {
	if _this.IsDestructorLine(line) {
		return _this.classifyDestructor(line)
	}

	if _this.IsPureVirtualLine(line) {
		return &Entry{
			Name:       fmt.Sprintf("Function%d", index),
			ReturnType: GuessReturnType("", _this.ReturnType),
			Kind:       KindPureVirtual,
		}, true
	}

	if !IsSlotLine(line) {
		return nil, false
	}

	entry, ok := ParseReference(line)
	if !ok {
		return nil, false
	}
	entry.ReturnType = GuessReturnType(entry.Name, _this.ReturnType)
	return entry, true
}

func (_this *Classifier) classifyDestructor(line string) (*Entry, bool) {
	if _this.destructorFound {
		log.Debugf("destructor already found, ignoring %q", strings.TrimSpace(line))
		return nil, false
	}
	class, ok := ParseDestructor(line)
	if !ok {
		return nil, false
	}
	_this.destructorFound = true
	return &Entry{
		Class:      class,
		Name:       destructorName(class),
		ReturnType: GuessReturnType("", _this.ReturnType),
		Kind:       KindDestructor,
	}, true
}

// Parse 按顺序解析所有行, 析构函数和无法识别的行不会增加槽序号
func (_this *Classifier) Parse(lines []string) []*Entry {
	entries := make([]*Entry, 0, len(lines))
	index := 0
	for i, line := range lines {
		entry, ok := _this.Classify(line, index)
		if !ok {
			if strings.TrimSpace(line) != "" {
				log.Debugf("skipping line %d: %q", i+1, line)
			}
			continue
		}
		log.Debugf("slot %d: %s", index, entry)
		entries = append(entries, entry)
		if !entry.IsDestructor() {
			index++
		}
	}
	return entries
}
