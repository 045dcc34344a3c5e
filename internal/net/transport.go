package net

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"GeoBoard/internal/logging"
	"GeoBoard/internal/state"

	"github.com/gorilla/websocket"
)

// SharePath is the websocket endpoint viewers connect to.
const SharePath = "/share"

const writeTimeout = 5 * time.Second

// peer is one connected viewer. Writes to a websocket connection must not
// overlap, so every write holds mu.
type peer struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (p *peer) send(s state.Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = p.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return p.conn.WriteJSON(s)
}

// Hub is run by the HOST. It accepts viewer connections and pushes every
// snapshot to all of them. New viewers receive the latest snapshot first.
type Hub struct {
	upgrader websocket.Upgrader
	peers    map[*peer]struct{}
	last     *state.Snapshot
	mu       sync.RWMutex
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			// Viewers are native apps on the LAN, not browsers.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		peers: make(map[*peer]struct{}),
	}
}

// Count returns the number of connected viewers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// ServeHTTP upgrades the request and keeps the viewer registered until
// its connection drops.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Logger().Warn("[HOST] upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	p := &peer{conn: conn}
	addr := conn.RemoteAddr().String()

	h.mu.Lock()
	h.peers[p] = struct{}{}
	last := h.last
	h.mu.Unlock()
	logging.Logger().Info("[HOST] viewer connected", "remote", addr)

	defer func() {
		h.remove(p)
		conn.Close()
		logging.Logger().Info("[HOST] viewer disconnected", "remote", addr)
	}()

	if last != nil {
		if err := p.send(*last); err != nil {
			return
		}
	}
	// Viewers are read-only; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(p *peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.peers, p)
}

// Broadcast sends s to every viewer and remembers it for late joiners.
// A snapshot older than the remembered one of the same session is
// discarded. Viewers that fail to receive it are dropped.
func (h *Hub) Broadcast(s state.Snapshot) {
	h.mu.Lock()
	if h.last != nil && h.last.Session == s.Session && s.Seq <= h.last.Seq {
		last := h.last.Seq
		h.mu.Unlock()
		logging.Logger().Debug("[HOST] stale snapshot dropped", "seq", s.Seq, "last", last)
		return
	}
	h.last = &s
	peers := make([]*peer, 0, len(h.peers))
	for p := range h.peers {
		peers = append(peers, p)
	}
	h.mu.Unlock()

	for _, p := range peers {
		if err := p.send(s); err != nil {
			logging.Logger().Warn("[HOST] send failed", "remote", p.conn.RemoteAddr().String(), "err", err)
			h.remove(p)
			p.conn.Close()
		}
	}
}

// Serve runs the share endpoint on ln until ctx is done.
func Serve(ctx context.Context, ln net.Listener, hub *Hub) error {
	mux := http.NewServeMux()
	mux.Handle(SharePath, hub)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logging.Logger().Info("[HOST] share server listening", "addr", ln.Addr().String())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve share: %w", err)
	}
	return nil
}

// ListenAndServe listens on port and calls Serve.
func ListenAndServe(ctx context.Context, port int, hub *Hub) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", port, err)
	}
	return Serve(ctx, ln, hub)
}

// Follow connects to the host at addr and calls onSnapshot for every
// snapshot received, until the connection drops or ctx is done.
func Follow(ctx context.Context, addr string, onSnapshot func(state.Snapshot)) error {
	url := "ws://" + addr + SharePath
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer conn.Close()
	logging.Logger().Info("[VIEWER] connected", "host", addr)

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	for {
		var s state.Snapshot
		if err := conn.ReadJSON(&s); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read snapshot: %w", err)
		}
		onSnapshot(s)
	}
}
