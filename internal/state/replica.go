package state

import (
	"sync"

	"GeoBoard/internal/logging"

	"github.com/google/uuid"
)

// Snapshot is the point set of a shared session at one moment. Viewers
// re-derive shapes locally, so only points travel.
type Snapshot struct {
	Session string  `json:"session"`
	Seq     uint64  `json:"seq"`
	Points  []Point `json:"points"`
}

// Replica orders snapshots for one session. The host stamps outgoing
// snapshots with it; viewers use it to drop stale ones.
type Replica struct {
	siteID  string
	clock   Clock
	session string
	mu      sync.Mutex
}

// NewReplica creates a replica with a fresh random site ID.
func NewReplica() *Replica {
	return &Replica{siteID: uuid.NewString()}
}

// SiteID returns this replica's unique ID.
func (r *Replica) SiteID() string { return r.siteID }

// Session returns the session currently followed, "" before the first
// snapshot is applied.
func (r *Replica) Session() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session
}

// Stamp wraps pts into a new snapshot of this replica's own session.
func (r *Replica) Stamp(pts []Point) Snapshot {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return Snapshot{
		Session: r.siteID,
		Seq:     r.clock.Tick(),
		Points:  cp,
	}
}

// Apply records s and reports whether it is newer than anything seen for
// its session. A snapshot from a different session (a restarted host)
// replaces the followed session.
func (r *Replica) Apply(s Snapshot) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.Session != r.session {
		logging.Logger().Info("[SYNC] following session", "session", s.Session, "seq", s.Seq)
		r.session = s.Session
		r.clock.Reset()
		r.clock.Update(s.Seq)
		return true
	}
	if s.Seq <= r.clock.Now() {
		logging.Logger().Debug("[SYNC] stale snapshot dropped", "seq", s.Seq)
		return false
	}
	r.clock.Update(s.Seq)
	return true
}
