// Package gateway wraps each AI-assisted resume operation as an asynchronous
// unit of work with its own loading flag, and defines how results merge back
// into the document store. Operations are independent and may run
// concurrently with any other; two requests targeting the same experience
// item race last-writer-wins, which is accepted rather than defended against.
package gateway

import (
	"sync"

	"github.com/jonathan/resume-studio/internal/analysis"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/store"
)

// LoadingState records which operations are in flight. Flags are independent
// and multiple can be set simultaneously. Experience and Suggestions carry
// the id of the targeted item; zero means not running.
type LoadingState struct {
	Summary     bool  `json:"summary"`
	Experience  int64 `json:"experience"`
	Suggestions int64 `json:"suggestions"`
	Keywords    bool  `json:"keywords"`
	Skills      bool  `json:"skills"`
	ATS         bool  `json:"ats"`
	Match       bool  `json:"match"`
	CoverLetter bool  `json:"coverLetter"`
	Parsing     bool  `json:"parsing"`
}

// Gateway executes the AI-assisted operations against the document store and
// analysis cache.
type Gateway struct {
	store  *store.Store
	cache  *analysis.Cache
	client llm.Client

	mu          sync.Mutex
	loading     LoadingState
	coverLetter string
}

// New creates a gateway over the given store, cache and LLM client.
func New(s *store.Store, c *analysis.Cache, client llm.Client) *Gateway {
	return &Gateway{store: s, cache: c, client: client}
}

// Loading returns a copy of the current loading flags.
func (g *Gateway) Loading() LoadingState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loading
}

// CoverLetter returns the independent cover-letter content slot. On failure
// the slot holds an inline error message rather than surfacing an error.
func (g *Gateway) CoverLetter() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.coverLetter
}

func (g *Gateway) setCoverLetter(text string) {
	g.mu.Lock()
	g.coverLetter = text
	g.mu.Unlock()
}

// setFlag mutates one loading flag under the lock. Paired with a deferred
// clear so the flag is released on every exit path, success or failure.
func (g *Gateway) setFlag(fn func(*LoadingState)) {
	g.mu.Lock()
	fn(&g.loading)
	g.mu.Unlock()
}
