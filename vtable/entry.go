package vtable

import (
	"fmt"
	"strings"
)

type Kind int

const (
	KindMethod Kind = iota
	KindDestructor
	KindPureVirtual
	KindDeclaration
)

func (_this Kind) String() string {
	switch _this {
	case KindMethod:
		return "method"
	case KindDestructor:
		return "destructor"
	case KindPureVirtual:
		return "pure"
	case KindDeclaration:
		return "declaration"
	}
	return "unknown"
}

// Entry 虚表中的一个槽
type Entry struct {
	Class      string
	Name       string
	Args       string
	ReturnType string // 带virtual限定符, 例如 "virtual bool"
	Kind       Kind
	Reconciled bool // 合并时只会被匹配一次
}

func (_this *Entry) IsDestructor() bool {
	return strings.HasPrefix(_this.Name, "~")
}

// Decl 不带注释的声明
func (_this *Entry) Decl() string {
	return fmt.Sprintf("%s %s(%s);", _this.ReturnType, _this.Name, _this.Args)
}

func (_this *Entry) String() string {
	if _this.Class == "" {
		return _this.Decl()
	}
	return fmt.Sprintf("%s::%s", _this.Class, _this.Decl())
}
