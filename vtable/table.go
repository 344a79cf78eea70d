package vtable

import (
	"github.com/apex/log"

	"ida2vtable/rtti"
)

type Table struct {
	class      string
	entries    []*Entry
	classifier *Classifier
}

func NewTable(returnType string) *Table {
	return &Table{
		entries:    make([]*Entry, 0, 32),
		classifier: NewClassifier(returnType),
	}
}

// Parse 解析IDA导出的虚表
func (_this *Table) Parse(lines []string) {
	if name, ok := rtti.FindClassName(lines); ok {
		_this.class = name
		log.Debugf("vtable for %s", name)
	}
	_this.entries = append(_this.entries, _this.classifier.Parse(lines)...)
}

// Merge 与旧的虚表合并
func (_this *Table) Merge(old []*Entry) []Change {
	return Merge(_this.entries, old)
}

func (_this *Table) GetClass() string {
	return _this.class
}

func (_this *Table) GetEntries() []*Entry {
	return _this.entries
}
