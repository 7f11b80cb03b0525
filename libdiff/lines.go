package libdiff

import (
	"io"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	}
	return " "
}

type Line struct {
	Op   Op
	Text string
}

// Diff is a line by line edit script turning one text into another.
type Diff []Line

// Lines diffs from and to line by line.
func Lines(from, to string) Diff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res Diff
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range splitLines(d.Text) {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Empty reports whether d makes no change.
func (d Diff) Empty() bool {
	for _, ln := range d {
		if ln.Op != Equal {
			return false
		}
	}
	return true
}

// Changes counts inserted and deleted lines.
func (d Diff) Changes() (ins, del int) {
	for _, ln := range d {
		switch ln.Op {
		case Insert:
			ins++
		case Delete:
			del++
		}
	}
	return
}

// Write writes d with one prefixed line per entry.  color, if not nil,
// styles each line.
func (d Diff) Write(w io.Writer, color func(Op, string) string) error {
	var sb strings.Builder
	for _, ln := range d {
		s := ln.Op.Prefix() + ln.Text
		if color != nil {
			s = color(ln.Op, s)
		}
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (d Diff) String() string {
	var sb strings.Builder
	_ = d.Write(&sb, nil)
	return sb.String()
}
