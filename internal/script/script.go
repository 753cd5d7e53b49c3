// Package script replays drawing-board input without a window. Each step
// is one button press, colour pick, list click or pointer event, written
// as a short word such as "add:window" or "drag:250,250>400,300".
package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ha1tch/mockboard/internal/board"
)

// ErrSyntax is returned for steps that cannot be parsed.
var ErrSyntax = errors.New("syntax error")

// Kind says which input a step replays.
type Kind int

const (
	Add Kind = iota
	Color
	Toggle
	Down
	Move
	Up
	Drag
)

var kindNames = [...]string{"add", "color", "toggle", "down", "move", "up", "drag"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Step is one parsed input.
type Step struct {
	Kind   Kind
	Action string      // Add
	Hex    string      // Color
	Index  int         // Toggle
	At     board.Point // Down, Move; start of Drag
	To     board.Point // end of Drag
}

func (s Step) String() string {
	switch s.Kind {
	case Add:
		return "add:" + s.Action
	case Color:
		return "color:" + s.Hex
	case Toggle:
		return "toggle:" + strconv.Itoa(s.Index)
	case Down, Move:
		return fmt.Sprintf("%s:%g,%g", s.Kind, s.At.X, s.At.Y)
	case Drag:
		return fmt.Sprintf("drag:%g,%g>%g,%g", s.At.X, s.At.Y, s.To.X, s.To.Y)
	}
	return s.Kind.String()
}

// Parse reads one step. A word with no colon other than "up" is taken
// as an action name.
func Parse(s string) (Step, error) {
	s = strings.TrimSpace(s)
	verb, arg, hasArg := strings.Cut(s, ":")
	if !hasArg {
		if verb == "up" {
			return Step{Kind: Up}, nil
		}
		verb, arg = "add", s
	}
	switch verb {
	case "add":
		name, err := ResolveAction(arg)
		if err != nil {
			return Step{}, err
		}
		return Step{Kind: Add, Action: name}, nil
	case "color", "colour":
		if _, err := board.ParseColor(arg); err != nil {
			return Step{}, err
		}
		return Step{Kind: Color, Hex: arg}, nil
	case "toggle":
		i, err := strconv.Atoi(arg)
		if err != nil {
			return Step{}, fmt.Errorf("%w: toggle index %q", ErrSyntax, arg)
		}
		return Step{Kind: Toggle, Index: i}, nil
	case "down", "move":
		p, err := parsePoint(arg)
		if err != nil {
			return Step{}, err
		}
		k := Down
		if verb == "move" {
			k = Move
		}
		return Step{Kind: k, At: p}, nil
	case "drag":
		from, to, ok := strings.Cut(arg, ">")
		if !ok {
			return Step{}, fmt.Errorf("%w: drag wants x,y>x,y, got %q", ErrSyntax, arg)
		}
		a, err := parsePoint(from)
		if err != nil {
			return Step{}, err
		}
		b, err := parsePoint(to)
		if err != nil {
			return Step{}, err
		}
		return Step{Kind: Drag, At: a, To: b}, nil
	}
	return Step{}, fmt.Errorf("%w: unknown step %q", ErrSyntax, verb)
}

// ParseAll parses every step, reporting the first bad one by position.
func ParseAll(args []string) ([]Step, error) {
	steps := make([]Step, 0, len(args))
	for i, a := range args {
		st, err := Parse(a)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps = append(steps, st)
	}
	return steps, nil
}

func parsePoint(s string) (board.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return board.Point{}, fmt.Errorf("%w: point wants x,y, got %q", ErrSyntax, s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if errX != nil || errY != nil {
		return board.Point{}, fmt.Errorf("%w: bad point %q", ErrSyntax, s)
	}
	return board.Pt(x, y), nil
}

// ResolveAction maps name to a preset, exactly if possible and otherwise
// by the best fuzzy match ("win" finds "window").
func ResolveAction(name string) (string, error) {
	if a, ok := board.Lookup(name); ok {
		return a.Name, nil
	}
	actions := board.Actions()
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.Name
	}
	if name != "" {
		if matches := fuzzy.Find(name, names); len(matches) > 0 {
			return matches[0].Str, nil
		}
	}
	return "", fmt.Errorf("%w %q", board.ErrUnknownAction, name)
}

// Run applies steps to s in order and stops at the first error.
func Run(s *board.Session, steps []Step) error {
	log := board.Logger()
	for i, st := range steps {
		if err := apply(s, st); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st, err)
		}
		log.Debug("step applied", "n", i+1, "step", st.String())
	}
	return nil
}

func apply(s *board.Session, st Step) error {
	switch st.Kind {
	case Add:
		_, err := s.Add(st.Action)
		return err
	case Color:
		return s.SetColor(st.Hex)
	case Toggle:
		return s.Toggle(st.Index)
	case Down:
		s.PointerDown(st.At)
		return nil
	case Move:
		return s.PointerMove(st.At)
	case Up:
		s.PointerUp()
		return nil
	case Drag:
		s.PointerDown(st.At)
		defer s.PointerUp()
		return s.PointerMove(st.To)
	}
	return fmt.Errorf("%w: step kind %d", ErrSyntax, int(st.Kind))
}
