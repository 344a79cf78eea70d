package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"

	"ida2vtable/rtti"
	"ida2vtable/utils"
	"ida2vtable/vtable"
)

type Options struct {
	Input      string
	Output     string
	Merge      string
	ReturnType string
	IndexType  string
	Offsets    bool
	X86        bool
	Diff       bool
	Print      bool
}

func DeclarationPath(prefix string) string {
	return prefix + "_vtables.txt"
}

func IndexPath(prefix string) string {
	return prefix + "_indexes.txt"
}

func VtableHelper(opts *Options, w io.Writer) error {
	lines, err := utils.ReadLines(opts.Input)
	if err != nil {
		return errors.Wrap(err, "the vtable could not be read")
	}
	table := vtable.NewTable(opts.ReturnType)
	table.Parse(lines)

	// 旧虚表读不了就整体失败, 不退化成不合并
	if opts.Merge != "" {
		oldLines, err := utils.ReadLines(opts.Merge)
		if err != nil {
			return errors.Wrap(err, "the old vtable could not be read")
		}
		old := vtable.ParseDeclarations(oldLines)
		changes := table.Merge(old)
		log.WithFields(log.Fields{
			"old":     len(old),
			"changed": len(changes),
		}).Info("merged with old vtable")
		if opts.Diff {
			PrintChanges(w, changes)
		}
	}

	renderer := vtable.NewRenderer(opts.Offsets, opts.X86, opts.IndexType)
	decls := renderer.Declarations(table.GetEntries())
	indexes := renderer.Indexes(table.GetEntries())

	err = GenerateDeclarationFile(opts.Output, decls)
	if err != nil {
		return err
	}
	err = GenerateIndexFile(opts.Output, indexes)
	if err != nil {
		return err
	}
	if opts.Print {
		if err := PrintDeclarations(w, decls); err != nil {
			return err
		}
	}

	ctx := log.WithFields(log.Fields{
		"functions": len(decls),
		"indexes":   len(indexes),
	})
	if class := table.GetClass(); class != "" {
		ctx = ctx.WithField("class", class)
	}
	ctx.Info(color.New(color.Bold).Sprintf("File saved to: %s", DeclarationPath(opts.Output)))
	return nil
}

func GenerateDeclarationFile(prefix string, decls []string) error {
	return utils.WriteLines(DeclarationPath(prefix), decls)
}

func GenerateIndexFile(prefix string, indexes []string) error {
	return utils.WriteLines(IndexPath(prefix), indexes)
}

func PrintDeclarations(w io.Writer, decls []string) error {
	text := strings.Join(decls, "\n") + "\n"
	if !utils.ColorEnabled() {
		_, err := io.WriteString(w, text)
		return err
	}
	return quick.Highlight(w, text, "c++", "terminal256", "nord")
}

func PrintChanges(w io.Writer, changes []vtable.Change) {
	dmp := diffmatchpatch.New()
	for _, change := range changes {
		if !utils.ColorEnabled() {
			fmt.Fprintf(w, "- %s\n+ %s\n", change.Before, change.After)
			continue
		}
		diffs := dmp.DiffMain(change.Before, change.After, false)
		diffs = dmp.DiffCleanupSemantic(diffs)
		fmt.Fprintln(w, dmp.DiffPrettyText(diffs))
	}
}

var kindColors = map[string]*color.Color{
	"header":      color.New(color.FgHiBlue),
	"destructor":  color.New(color.FgMagenta),
	"duplicate":   color.New(color.Faint, color.FgMagenta),
	"pure":        color.New(color.FgYellow),
	"method":      color.New(color.FgGreen),
	"declaration": color.New(color.FgCyan),
	"skip":        color.New(color.Faint),
}

// InspectHelper 打印每一行的分类和对应的槽序号
func InspectHelper(ipath, returnType string, w io.Writer) error {
	lines, err := utils.ReadLines(ipath)
	if err != nil {
		return errors.Wrap(err, "the vtable could not be read")
	}
	classifier := vtable.NewClassifier(returnType)
	index := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kind, slot := "skip", ""
		entry, ok := classifier.Classify(line, index)
		switch {
		case ok:
			kind = entry.Kind.String()
			if !entry.IsDestructor() {
				slot = fmt.Sprintf("%d", index)
				index++
			}
		case classifier.IsDestructorLine(line) && classifier.DestructorFound():
			kind = "duplicate"
		case rtti.IsHeaderLine(line):
			kind = "header"
		}
		fmt.Fprintf(w, "%5d %s %4s  %s\n", i+1, kindColors[kind].Sprintf("%-10s", kind), slot, strings.TrimSpace(line))
	}
	return nil
}
