package vtable

import (
	"fmt"

	"github.com/apex/log"

	"ida2vtable/utils"
)

const DefaultIndexType = "int"

// Renderer 生成声明和索引常量
type Renderer struct {
	Offsets     bool
	PointerSize int
	IndexType   string
}

func NewRenderer(offsets, is32Bit bool, indexType string) *Renderer {
	if indexType == "" {
		indexType = DefaultIndexType
	}
	return &Renderer{
		Offsets:     offsets,
		PointerSize: utils.GetPointerSize(is32Bit),
		IndexType:   indexType,
	}
}

// walk 按槽序号遍历, 析构函数不占用序号
func (_this *Renderer) walk(entries []*Entry, fn func(e *Entry, slot int, prev *Entry)) {
	slot := 0
	var prev *Entry
	for i, e := range entries {
		if e == nil {
			log.Warnf("entry %d is empty, skipping", i)
			continue
		}
		if utils.FilterMethodName(e.Name) {
			log.Warnf("entry %d has no method name, skipping", i)
			continue
		}
		fn(e, slot, prev)
		if !e.IsDestructor() {
			slot++
		}
		prev = e
	}
}

func (_this *Renderer) Declarations(entries []*Entry) []string {
	lines := make([]string, 0, len(entries))
	_this.walk(entries, func(e *Entry, slot int, _ *Entry) {
		decl := e.Decl()
		if _this.Offsets && !e.IsDestructor() {
			decl += fmt.Sprintf(" // %d (%#x)", slot, slot*_this.PointerSize)
		}
		lines = append(lines, decl)
	})
	return lines
}

// Indexes 相邻同名的方法只输出一次
func (_this *Renderer) Indexes(entries []*Entry) []string {
	lines := make([]string, 0, len(entries))
	_this.walk(entries, func(e *Entry, slot int, prev *Entry) {
		if e.IsDestructor() {
			return
		}
		if prev != nil && prev.Name == e.Name {
			return
		}
		lines = append(lines, fmt.Sprintf("%s %s = %d;", _this.IndexType, e.Name, slot))
	})
	return lines
}
