/*
File    : go-jrq/json/serialize.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package json

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// SerializeFlags controls the output form of Serialize.
type SerializeFlags uint8

const (
	// FlagTab switches from the compact single-line form to the indented
	// form (two-space indent, one element per line).
	FlagTab SerializeFlags = 1 << iota
	// FlagColors wraps values in ANSI escape pairs.
	FlagColors
)

// INDENT is the indentation unit of the FlagTab form.
const INDENT = "  "

// Color scheme of the serializer:
//
//	string value  green       (SGR 32)
//	number        cyan        (SGR 36)
//	object key    bold blue   (SGR 34;1)
//	boolean       red         (SGR 31)
//	null          italic black (SGR 30;3)
//
// The colors are forced on so that the decision whether to color lies with
// the caller's FlagColors, not with fatih/color's TTY sniffing.
var (
	stringColor = color.New(color.FgGreen)
	numberColor = color.New(color.FgCyan)
	keyColor    = color.New(color.FgBlue, color.Bold)
	boolColor   = color.New(color.FgRed)
	nullColor   = color.New(color.FgBlack, color.Italic)
)

func init() {
	stringColor.EnableColor()
	numberColor.EnableColor()
	keyColor.EnableColor()
	boolColor.EnableColor()
	nullColor.EnableColor()
}

// serializer accumulates output while walking a value tree.
type serializer struct {
	builder strings.Builder
	flags   SerializeFlags
}

// hasFlag reports whether the given flag was requested.
func (s *serializer) hasFlag(flag SerializeFlags) bool {
	return s.flags&flag != 0
}

// colored appends text through the given color when FlagColors is set,
// and verbatim otherwise.
func (s *serializer) colored(c *color.Color, text string) {
	if s.hasFlag(FlagColors) {
		s.builder.WriteString(c.Sprint(text))
	} else {
		s.builder.WriteString(text)
	}
}

// Serialize renders a JSON value as text.
//
// The compact form keeps everything on one line with a single space after
// each ':' and each ',':
//
//	{"foo": 10, "bar": [10, 4]}
//
// The FlagTab form indents with two spaces, one element per line, closing
// bracket at the parent's indent. Numbers print in their minimum exact
// representation (integer syntax when integral, otherwise trimming trailing
// zeros). Strings print verbatim with surrounding quotes; escaping is not
// re-applied, so round-trips are best-effort.
func Serialize(j Json, flags SerializeFlags) string {
	s := &serializer{flags: flags}
	s.serialize(j, 0)
	return s.builder.String()
}

func (s *serializer) serialize(j Json, depth int) {
	switch v := j.(type) {
	case *Null:
		s.colored(nullColor, "null")
	case *Boolean:
		if v.Value {
			s.colored(boolColor, "true")
		} else {
			s.colored(boolColor, "false")
		}
	case *Number:
		s.colored(numberColor, formatNumber(v.Value))
	case *String:
		s.colored(stringColor, "\""+v.Value+"\"")
	case *List:
		s.serializeList(v, depth)
	case *Object:
		s.serializeObject(v, depth)
	}
}

func (s *serializer) serializeList(l *List, depth int) {
	if len(l.Elements) == 0 {
		s.builder.WriteString("[]")
		return
	}

	s.builder.WriteString("[")
	for i, el := range l.Elements {
		if i > 0 {
			s.separator()
		}
		s.newlineIndent(depth + 1)
		s.serialize(el, depth+1)
	}
	s.newlineIndent(depth)
	s.builder.WriteString("]")
}

func (s *serializer) serializeObject(o *Object, depth int) {
	if len(o.Fields) == 0 {
		s.builder.WriteString("{}")
		return
	}

	s.builder.WriteString("{")
	for i, field := range o.Fields {
		if i > 0 {
			s.separator()
		}
		s.newlineIndent(depth + 1)
		s.colored(keyColor, "\""+field.Key+"\"")
		s.builder.WriteString(": ")
		s.serialize(field.Value, depth+1)
	}
	s.newlineIndent(depth)
	s.builder.WriteString("}")
}

// separator emits the element separator: a comma, followed by a space in the
// compact form (the newline of the indented form follows separately).
func (s *serializer) separator() {
	s.builder.WriteString(",")
	if !s.hasFlag(FlagTab) {
		s.builder.WriteString(" ")
	}
}

// newlineIndent breaks the line and indents to the given depth in the
// indented form; it is a no-op in the compact form.
func (s *serializer) newlineIndent(depth int) {
	if !s.hasFlag(FlagTab) {
		return
	}
	s.builder.WriteString("\n")
	for i := 0; i < depth; i++ {
		s.builder.WriteString(INDENT)
	}
}

// formatNumber prints a number in its minimum exact representation:
// integer syntax when the value is exactly an integer, fractional syntax with
// trailing zeros trimmed otherwise.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
