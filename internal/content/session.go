package content

import (
	"context"
	"errors"
)

// Saver persists a full document for one owner. Commit is the only edit
// session operation that reaches it.
type Saver interface {
	Replace(ctx context.Context, ownerID string, doc Document) error
}

// ErrNotLoaded is returned when a session is used before Load.
var ErrNotLoaded = errors.New("edit session has no document loaded")

// EditSession buffers path-addressed mutations against one owner's working
// copy and persists them wholesale on Commit. A session is Clean when the
// working copy equals the last loaded or committed value and Dirty once any
// mutation has been applied, even a value-preserving one.
//
// Sessions are scoped to a single authenticated owner and are not safe for
// concurrent use. Two sessions for the same owner can race on Commit; the
// store resolves that as last-write-wins, with no version check.
type EditSession struct {
	ownerID string
	store   Saver
	working Document
	base    Document
	dirty   bool
	loaded  bool
}

// NewEditSession creates an empty session for the given owner.
func NewEditSession(ownerID string, store Saver) *EditSession {
	return &EditSession{ownerID: ownerID, store: store}
}

// OwnerID returns the owner this session belongs to.
func (s *EditSession) OwnerID() string {
	return s.ownerID
}

// Load seeds the working copy from doc and marks the session Clean. The
// input is deep-copied; later changes to it do not leak into the session.
func (s *EditSession) Load(doc Document) {
	s.base = doc.Clone()
	s.working = s.base
	s.dirty = false
	s.loaded = true
}

// Apply runs one scoped mutation against the working copy. On success the
// session is Dirty; on any mutator error the working copy is left exactly
// as it was.
func (s *EditSession) Apply(section string, path Path, value any) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	next, err := Apply(s.working, section, path, value)
	if err != nil {
		return err
	}
	s.working = next
	s.dirty = true
	return nil
}

// Commit persists the entire working copy. On success the session becomes
// Clean with the committed document as the new baseline; on failure it
// stays Dirty with every buffered edit intact, so the caller can retry.
func (s *EditSession) Commit(ctx context.Context) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	if !s.dirty {
		return nil
	}
	if err := s.store.Replace(ctx, s.ownerID, s.working); err != nil {
		return err
	}
	s.base = s.working
	s.dirty = false
	return nil
}

// Discard drops all buffered mutations, restoring the last loaded or
// committed document.
func (s *EditSession) Discard() {
	if !s.loaded {
		return
	}
	s.working = s.base
	s.dirty = false
}

// Dirty reports whether uncommitted mutations are buffered.
func (s *EditSession) Dirty() bool {
	return s.dirty
}

// Document returns the current working copy for rendering. Callers must
// treat it as read-only; all writes go through Apply.
func (s *EditSession) Document() Document {
	return s.working
}
