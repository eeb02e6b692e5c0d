// Package randsvc serves PRF draws over HTTP. The service is stateless:
// it runs the same hash-and-normalize computation the local port runs and
// returns the value already reduced to [0, 1e6); callers apply the range
// scaling themselves. Any consumer family is distinguished by the scope
// tag it sends.
package randsvc

import (
	"encoding/json"
	"math/big"
	"net/http"
	"strconv"

	"github.com/chenzhangda16/strandweave/internal/strand/prf"
	"github.com/chenzhangda16/strandweave/pkg/obs"
)

type Server struct{}

func NewServer() *Server { return &Server{} }

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/draw", s.handleDraw)
	mux.HandleFunc("/multi", s.handleMulti)
	mux.HandleFunc("/healthz", s.handleHealthz)

	return mux
}

// -------------------- helpers --------------------

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	http.Error(w, msg, http.StatusBadRequest)
}

// parseSeed accepts a non-negative decimal integer of any width.
func parseSeed(s string) (*big.Int, bool) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		return nil, false
	}
	return n, true
}

// -------------------- handlers --------------------

type drawResp struct {
	Scope string `json:"scope"`
	Value int64  `json:"value"`
}

// /draw?scope=&seed=&label=&occ= returns the normalized draw in [0, 1e6).
func (s *Server) handleDraw(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	scope := q.Get("scope")
	label := q.Get("label")
	if scope == "" || label == "" {
		badRequest(w, "scope and label are required")
		return
	}
	seed, ok := parseSeed(q.Get("seed"))
	if !ok {
		badRequest(w, "bad seed")
		return
	}
	occ, err := strconv.ParseUint(q.Get("occ"), 10, 64)
	if err != nil {
		badRequest(w, "bad occ")
		return
	}

	v := prf.Normalized(prf.Draw(scope, seed, prf.Label(label), occ))
	obs.P("draw scope=%s label=%s occ=%d -> %d", scope, label, occ, v)
	writeJSON(w, http.StatusOK, drawResp{Scope: scope, Value: v})
}

type multiResp struct {
	Seeds int   `json:"seeds"`
	Value int64 `json:"value"`
}

// /multi?seed=a&seed=b&occ=n combines an ordered seed list into one
// normalized draw. Seed order matters and is preserved from the query.
func (s *Server) handleMulti(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	raw := q["seed"]
	if len(raw) == 0 {
		badRequest(w, "at least one seed is required")
		return
	}
	seeds := make([]*big.Int, 0, len(raw))
	for _, rs := range raw {
		n, ok := parseSeed(rs)
		if !ok {
			badRequest(w, "bad seed")
			return
		}
		seeds = append(seeds, n)
	}
	occ, err := strconv.ParseUint(q.Get("occ"), 10, 64)
	if err != nil {
		badRequest(w, "bad occ")
		return
	}

	v := prf.Normalized(prf.MultiSeed(seeds, occ))
	writeJSON(w, http.StatusOK, multiResp{Seeds: len(seeds), Value: v})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
