package utils

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestGetPointerSize(t *testing.T) {
	if got := GetPointerSize(false); got != 8 {
		t.Errorf("GetPointerSize(false) = %d, want 8", got)
	}
	if got := GetPointerSize(true); got != 4 {
		t.Errorf("GetPointerSize(true) = %d, want 4", got)
	}
}

func TestHasSymbol(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"ida pure virtual", "dq offset ___cxa_pure_virtual", true},
		{"gcc pure virtual", "dq offset __cxa_pure_virtual", true},
		{"msvc pure virtual", "dd offset __purecall", true},
		{"longer symbol", "dq offset __cxa_pure_virtual_impl", false},
		{"method", "dq offset _ZN6Player4JumpEi ; Player::Jump(int)", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasSymbol(tt.line, PureVirtualMarkers()); got != tt.want {
				t.Errorf("HasSymbol() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasQualifier(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"dd offset _ZN6PlayerD2Ev", true},
		{".rodata:0000000000AB1240    dq    offset _ZN6PlayerD2Ev ; Player::~Player()", true},
		{"dq 0", false},
		{"offset", false},
		{"; Player::~Player()", false},
	}
	for _, tt := range tests {
		if got := HasQualifier(tt.line, OffsetMarkers()); got != tt.want {
			t.Errorf("HasQualifier(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestHasAnyPrefix(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"isDead", true},
		{"hasWeapon", true},
		{"canMove", true},
		{"ISReady", false},
		{"Jump", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := HasAnyPrefix(tt.name, BoolPrefixes()); got != tt.want {
			t.Errorf("HasAnyPrefix(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFilterMethodName(t *testing.T) {
	if !FilterMethodName("") || !FilterMethodName(" \t") {
		t.Error("blank names should be filtered")
	}
	if FilterMethodName("Jump") {
		t.Error("Jump should not be filtered")
	}
}

func TestReadWriteLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.txt")
	want := []string{"virtual int Jump(int height);", "", "virtual bool isDead();"}

	if err := WriteLines(path, want); err != nil {
		t.Fatalf("WriteLines() error = %v", err)
	}
	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadLines() = %#v, want %#v", got, want)
	}
}

func TestReadLinesCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	if err := os.WriteFile(path, []byte("line one\r\nline two\r\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if want := []string{"line one", "line two"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ReadLines() = %#v, want %#v", got, want)
	}
}

func TestReadLinesMissing(t *testing.T) {
	if _, err := ReadLines(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("ReadLines() on a missing file should fail")
	}
}

func TestWriteLinesBadPath(t *testing.T) {
	if err := WriteLines(filepath.Join(t.TempDir(), "missing", "out.txt"), []string{"x"}); err == nil {
		t.Error("WriteLines() into a missing directory should fail")
	}
}
