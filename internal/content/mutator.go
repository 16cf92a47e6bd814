package content

import "fmt"

// Step is one element of a path: either a field Key or a list Index.
type Step interface{ isStep() }

// Key addresses a field inside a record.
type Key string

// Index addresses a position inside an ordered list. Positions are
// zero-based and authoritative for addressing; the numeric "id" carried by
// list records is display-only and never used here.
type Index int

func (Key) isStep()   {}
func (Index) isStep() {}

// Path addresses one leaf value within a section.
type Path []Step

// ParsePath converts a JSON-decoded mixed path (strings and numbers) into a
// typed Path. Any other element type is an invalid path.
func ParsePath(raw []any) (Path, error) {
	path := make(Path, 0, len(raw))
	for _, elem := range raw {
		switch v := elem.(type) {
		case string:
			path = append(path, Key(v))
		case float64:
			path = append(path, Index(int(v)))
		case int:
			path = append(path, Index(v))
		default:
			return nil, fmt.Errorf("%w: element %v (%T)", ErrInvalidPath, elem, elem)
		}
	}
	return path, nil
}

// Apply writes value at the addressed leaf and returns a new document.
// Containers along the path are copied; everything else is shared with the
// input, which is never modified. The terminal slot is replaced in full —
// there is no deep merge, and lists grow or shrink only by replacing the
// whole list at its own path.
//
// Errors: ErrUnknownSection for a section outside the closed set,
// ErrInvalidPath when an intermediate is a scalar or a key is missing
// (intermediates are never auto-vivified), ErrOutOfRange when a list index
// is past the end.
func Apply(doc Document, section string, path Path, value any) (Document, error) {
	if !KnownSection(section) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	sec, ok := doc[section]
	if !ok {
		return nil, fmt.Errorf("%w: section %q not present in document", ErrInvalidPath, section)
	}

	newSec, err := write(sec, path, value)
	if err != nil {
		return nil, err
	}

	out := make(Document, len(doc))
	for name, s := range doc {
		out[name] = s
	}
	out[section] = newSec.(map[string]any)
	return out, nil
}

// Resolve reads the value at the addressed leaf without modifying anything.
// It shares Apply's error semantics.
func Resolve(doc Document, section string, path Path) (any, error) {
	if !KnownSection(section) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	sec, ok := doc[section]
	if !ok {
		return nil, fmt.Errorf("%w: section %q not present in document", ErrInvalidPath, section)
	}

	var node any = sec
	for _, step := range path {
		switch s := step.(type) {
		case Key:
			rec, ok := node.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %q is not a record", ErrInvalidPath, s)
			}
			child, ok := rec[string(s)]
			if !ok {
				return nil, fmt.Errorf("%w: missing field %q", ErrInvalidPath, s)
			}
			node = child
		case Index:
			list, ok := node.([]any)
			if !ok {
				return nil, fmt.Errorf("%w: index %d into non-list", ErrInvalidPath, s)
			}
			if int(s) < 0 || int(s) >= len(list) {
				return nil, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, s, len(list))
			}
			node = list[int(s)]
		}
	}
	return node, nil
}

// write recursively rebuilds the containers along path, substituting value
// at the terminal step.
func write(node any, path Path, value any) (any, error) {
	switch step := path[0].(type) {
	case Key:
		rec, ok := node.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: field %q addressed inside a non-record", ErrInvalidPath, step)
		}
		out := make(map[string]any, len(rec)+1)
		for k, v := range rec {
			out[k] = v
		}
		if len(path) == 1 {
			// Terminal key: the only slot allowed to not pre-exist.
			out[string(step)] = value
			return out, nil
		}
		child, ok := rec[string(step)]
		if !ok {
			return nil, fmt.Errorf("%w: missing intermediate field %q", ErrInvalidPath, step)
		}
		newChild, err := write(child, path[1:], value)
		if err != nil {
			return nil, err
		}
		out[string(step)] = newChild
		return out, nil

	case Index:
		list, ok := node.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: index %d addressed inside a non-list", ErrInvalidPath, step)
		}
		i := int(step)
		if i < 0 || i >= len(list) {
			return nil, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, len(list))
		}
		out := make([]any, len(list))
		copy(out, list)
		if len(path) == 1 {
			out[i] = value
			return out, nil
		}
		newChild, err := write(list[i], path[1:], value)
		if err != nil {
			return nil, err
		}
		out[i] = newChild
		return out, nil

	default:
		return nil, fmt.Errorf("%w: unsupported step %T", ErrInvalidPath, path[0])
	}
}

// Clone deep-copies a document.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for name, sec := range d {
		out[name] = cloneValue(sec).(map[string]any)
	}
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, child := range v {
			out[k] = cloneValue(child)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = cloneValue(child)
		}
		return out
	default:
		return v
	}
}
