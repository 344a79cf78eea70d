package vtable

import (
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	entries := []*Entry{
		{Class: "Player", Name: "Jump", Args: "int height", ReturnType: "virtual int"},
	}
	old := []*Entry{
		{Name: "Jump", Args: "int jumpHeight", ReturnType: "virtual void"},
	}

	changes := Merge(entries, old)

	want := &Entry{Class: "Player", Name: "Jump", Args: "int jumpHeight", ReturnType: "virtual void", Reconciled: true}
	if !reflect.DeepEqual(entries[0], want) {
		t.Errorf("merged entry = %+v, want %+v", entries[0], want)
	}
	if !old[0].Reconciled {
		t.Error("old entry was not marked reconciled")
	}
	wantChanges := []Change{{
		Name:   "Jump",
		Before: "virtual int Jump(int height);",
		After:  "virtual void Jump(int jumpHeight);",
	}}
	if !reflect.DeepEqual(changes, wantChanges) {
		t.Errorf("Merge() = %+v, want %+v", changes, wantChanges)
	}
}

func TestMergeOncePerEntry(t *testing.T) {
	entries := []*Entry{
		{Name: "Jump", Args: "int", ReturnType: "virtual int"},
	}
	old := []*Entry{
		{Name: "Jump", Args: "int a", ReturnType: "virtual void"},
		{Name: "Jump", Args: "int b", ReturnType: "virtual float"},
	}

	Merge(entries, old)
	if entries[0].Args != "int a" || entries[0].ReturnType != "virtual void" {
		t.Fatalf("first match did not win: %+v", entries[0])
	}
	if old[1].Reconciled {
		t.Error("second old entry should stay unreconciled")
	}

	// 已经合并过的条目不会再被修改
	changes := Merge(entries, []*Entry{{Name: "Jump", Args: "char c", ReturnType: "virtual char"}})
	if len(changes) != 0 {
		t.Errorf("second merge changed %+v", changes)
	}
	if entries[0].Args != "int a" || entries[0].ReturnType != "virtual void" {
		t.Errorf("reconciled entry was modified: %+v", entries[0])
	}
}

func TestMergeOverloads(t *testing.T) {
	entries := []*Entry{
		{Name: "Jump", Args: "int", ReturnType: "virtual int"},
		{Name: "Jump", Args: "float", ReturnType: "virtual int"},
		{Name: "Function2", ReturnType: "virtual int"},
	}
	old := []*Entry{
		nil,
		{Name: "Jump", Args: "int height", ReturnType: "virtual void"},
		{Name: "Jump", Args: "float height", ReturnType: "virtual void"},
		{Name: "Land", Args: "", ReturnType: "virtual void"},
	}

	changes := Merge(entries, old)

	got := []string{entries[0].Decl(), entries[1].Decl(), entries[2].Decl()}
	want := []string{
		"virtual void Jump(int height);",
		"virtual void Jump(float height);",
		"virtual int Function2();",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("merged = %v, want %v", got, want)
	}
	if len(changes) != 2 {
		t.Errorf("len(changes) = %d, want 2", len(changes))
	}
	if entries[2].Reconciled {
		t.Error("unmatched entry was marked reconciled")
	}
	if old[3].Reconciled {
		t.Error("unmatched old entry was marked reconciled")
	}
}

func TestMergeUnchanged(t *testing.T) {
	entries := []*Entry{{Name: "isDead", Args: "void", ReturnType: "virtual bool"}}
	old := []*Entry{{Name: "isDead", Args: "void", ReturnType: "virtual bool"}}

	if changes := Merge(entries, old); len(changes) != 0 {
		t.Errorf("Merge() = %+v, want no changes", changes)
	}
	if !entries[0].Reconciled || !old[0].Reconciled {
		t.Error("identical entries should still be reconciled")
	}
}
