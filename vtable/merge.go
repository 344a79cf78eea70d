package vtable

import "github.com/apex/log"

// Change 合并前后的声明
type Change struct {
	Name   string
	Before string
	After  string
}

// Merge 把旧虚表里手动修改过的参数和返回值复制到新解析的虚表.
// 按名字匹配, 每个条目最多匹配一次, 同名时按顺序取第一个.
func Merge(entries, old []*Entry) []Change {
	changes := make([]Change, 0)
	for _, newEntry := range entries {
		if newEntry == nil || newEntry.Reconciled {
			continue
		}
		for _, oldEntry := range old {
			if oldEntry == nil || oldEntry.Reconciled {
				continue
			}
			if newEntry.Name != oldEntry.Name {
				continue
			}
			before := newEntry.Decl()
			if newEntry.Args != oldEntry.Args {
				newEntry.Args = oldEntry.Args
			}
			if newEntry.ReturnType != oldEntry.ReturnType {
				newEntry.ReturnType = oldEntry.ReturnType
			}
			newEntry.Reconciled = true
			oldEntry.Reconciled = true
			if after := newEntry.Decl(); after != before {
				log.Debugf("merged %s -> %s", before, after)
				changes = append(changes, Change{Name: newEntry.Name, Before: before, After: after})
			}
			break
		}
	}
	return changes
}
