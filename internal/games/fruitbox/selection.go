package fruitbox

// Selection is the state of an in-progress drag. It only means anything
// while Active is set.
type Selection struct {
	Start      Point
	Current    Point
	Active     bool
	WouldMatch bool // Live preview: contained tokens currently sum to TargetSum
}

// Match describes a successful selection: the snapped rectangle and the
// tokens it cleared.
type Match struct {
	Rect   Rect
	Tokens []Token
}

// Count returns how many tokens the match cleared.
func (m Match) Count() int {
	return len(m.Tokens)
}

// Selector runs the idle -> dragging -> idle gesture lifecycle.
// It never mutates the board; the caller applies a returned Match.
type Selector struct {
	params GridParams
	sel    Selection
}

// NewSelector creates an idle selector for the given grid.
func NewSelector(params GridParams) *Selector {
	return &Selector{params: params}
}

// Selection returns a copy of the current drag state.
func (s *Selector) Selection() Selection {
	return s.sel
}

// Dragging reports whether a drag is in progress.
func (s *Selector) Dragging() bool {
	return s.sel.Active
}

// Rect returns the snapped rectangle of the current drag.
func (s *Selector) Rect() Rect {
	return SnapRect(s.sel.Start, s.sel.Current, s.params)
}

// Begin starts a drag with start and current both at p.
func (s *Selector) Begin(p Point) {
	s.sel = Selection{Start: p, Current: p, Active: true}
}

// Move updates the live point and recomputes the would-match preview.
// Ignored while idle.
func (s *Selector) Move(p Point, b Board) {
	if !s.sel.Active {
		return
	}
	s.sel.Current = p
	_, tokens := s.evaluate(b)
	s.sel.WouldMatch = Sum(tokens) == TargetSum
}

// End finishes the drag using the last reported current point and returns
// the match when the contained tokens sum to exactly TargetSum.
// The selector is idle afterwards either way.
func (s *Selector) End(b Board) (Match, bool) {
	if !s.sel.Active {
		return Match{}, false
	}
	rect, tokens := s.evaluate(b)
	s.sel = Selection{}
	if Sum(tokens) != TargetSum {
		return Match{}, false
	}
	return Match{Rect: rect, Tokens: tokens}, true
}

// Cancel drops any in-flight drag without evaluating it.
func (s *Selector) Cancel() {
	s.sel = Selection{}
}

func (s *Selector) evaluate(b Board) (Rect, []Token) {
	rect := s.Rect()
	return rect, TokensWithin(b, rect)
}
