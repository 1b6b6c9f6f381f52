package memory

import (
	"sync"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/pkg/idgen"
)

// Identifier prefixes per collection.
const (
	PrefixUser       = "U"
	PrefixListing    = "L"
	PrefixLead       = "LEAD"
	PrefixMessage    = "MSG"
	PrefixDocument   = "DOC"
	PrefixCommission = "COM"
	PrefixVisit      = "VISIT"
)

// Store owns every collection of the mock backend. State lives only in process
// memory; build one Store per process (or per test) and hand it to the repositories.
// The store performs no validation.
type Store struct {
	mu  sync.RWMutex
	ids idgen.Generator

	used        map[string]struct{}
	users       []*domain.User
	listings    []*domain.Listing
	chats       map[string][]domain.ChatMessage
	leads       []*domain.Lead
	documents   []*domain.Document
	commissions []*domain.Commission
	visits      []*domain.Visit
	sessions    map[string]*domain.Session
}

// NewStore creates an empty store. A nil generator falls back to UUID suffixes.
func NewStore(ids idgen.Generator) *Store {
	if ids == nil {
		ids = idgen.UUID{}
	}
	return &Store{
		ids:      ids,
		used:     make(map[string]struct{}),
		chats:    make(map[string][]domain.ChatMessage),
		sessions: make(map[string]*domain.Session),
	}
}

// Stats reports collection sizes.
type Stats struct {
	Users       int `json:"users"`
	Listings    int `json:"listings"`
	Rooms       int `json:"rooms"`
	Leads       int `json:"leads"`
	Documents   int `json:"documents"`
	Commissions int `json:"commissions"`
	Visits      int `json:"visits"`
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Users:       len(s.users),
		Listings:    len(s.listings),
		Rooms:       len(s.chats),
		Leads:       len(s.leads),
		Documents:   len(s.documents),
		Commissions: len(s.commissions),
		Visits:      len(s.visits),
	}
}

// assignID returns id when it is set and unused, otherwise a fresh identifier.
// Callers must hold the write lock.
func (s *Store) assignID(prefix, id string) string {
	if id != "" {
		if _, taken := s.used[id]; !taken {
			s.used[id] = struct{}{}
			return id
		}
	}
	for {
		candidate := s.ids.Next(prefix)
		if _, taken := s.used[candidate]; taken {
			continue
		}
		s.used[candidate] = struct{}{}
		return candidate
	}
}
