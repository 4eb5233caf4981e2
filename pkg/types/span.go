package types

// Span is a half-open character range [Start, End) into the original
// template text. Offsets count characters (runes), not bytes, so spans
// stay aligned with multi-byte text.
type Span struct {
	Start int
	End   int
}

// Merge returns the union of s and a following span: the Start of s with
// the End of next. Every combinator that sequences two parsers derives the
// combined span through this helper, keeping span arithmetic in one place.
func (s Span) Merge(next Span) Span {
	return Span{Start: s.Start, End: next.End}
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}
