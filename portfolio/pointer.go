package portfolio

import "sync"

// Cursor is the pointer style shown by the window.
type Cursor int

const (
	// CursorDefault is the regular arrow.
	CursorDefault Cursor = iota
	// CursorPointer is the hand shown over interactive elements.
	CursorPointer
)

// String returns the CSS-style name of the cursor.
func (c Cursor) String() string {
	if c == CursorPointer {
		return "pointer"
	}
	return "default"
}

type pointerService struct {
	mu        *sync.Mutex
	owner     string
	listeners []func(Cursor)
}

// PointerService is the single process-wide owner of the cursor style.
// The most recently focused interactive element owns it until that same
// element releases it.
type PointerService interface {
	// Acquire makes owner the current holder and switches to the pointer cursor.
	// A later Acquire by another element takes over (last writer wins).
	//
	// Parameters:
	//   - owner: a stable identifier of the interactive element, must not be empty
	Acquire(owner string)

	// Release resets the cursor to default if owner is the current holder.
	// Releases from elements that no longer own the cursor are ignored.
	//
	// Parameters:
	//   - owner: the identifier passed to Acquire
	Release(owner string)

	// Cursor returns the current cursor style.
	//
	// Returns:
	//   - Cursor: CursorPointer while an element holds the service
	Cursor() Cursor

	// Owner returns the current holder, or "" when nobody holds it.
	//
	// Returns:
	//   - string: the owner identifier
	Owner() string

	// OnChange registers a listener invoked whenever the cursor style changes.
	//
	// Parameters:
	//   - fn: receives the new cursor style
	OnChange(fn func(Cursor))
}

var _ PointerService = &pointerService{}

// NewPointerService creates a PointerService with the default cursor.
//
// Returns:
//   - PointerService: the new service
func NewPointerService() PointerService {
	return &pointerService{mu: &sync.Mutex{}}
}

func (p *pointerService) Acquire(owner string) {
	if owner == "" {
		return
	}
	p.mu.Lock()
	wasFree := p.owner == ""
	p.owner = owner
	listeners := p.listeners
	p.mu.Unlock()

	if wasFree {
		for _, fn := range listeners {
			fn(CursorPointer)
		}
	}
}

func (p *pointerService) Release(owner string) {
	p.mu.Lock()
	if owner == "" || p.owner != owner {
		p.mu.Unlock()
		return
	}
	p.owner = ""
	listeners := p.listeners
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(CursorDefault)
	}
}

func (p *pointerService) Cursor() Cursor {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.owner == "" {
		return CursorDefault
	}
	return CursorPointer
}

func (p *pointerService) Owner() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.owner
}

func (p *pointerService) OnChange(fn func(Cursor)) {
	if fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}
