package ast

import "fmt"

// Pos is a single position in the source text.
type Pos struct {
	Offset int // 0-based byte offset
	Line   int // 1-based line number
	Column int // 0-based byte column
}

// String returns the position as line:column.
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is the half-open source range [Start, End) covered by a node.
type Span struct {
	Start Pos
	End   Pos
}

// String returns the span as start-end.
func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Text returns the source text covered by the span, or "" if src is too short.
func (s Span) Text(src []byte) string {
	if s.Start.Offset < 0 || s.End.Offset > len(src) || s.Start.Offset > s.End.Offset {
		return ""
	}
	return string(src[s.Start.Offset:s.End.Offset])
}
