package randomness

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/chenzhangda16/strandweave/internal/strand/prf"
)

// ErrRemoteUnavailable wraps any transport or endpoint failure. The caller
// surfaces it as fatal; a retry cannot change a deterministic result, so
// none is attempted here.
var ErrRemoteUnavailable = errors.New("randomness: remote endpoint unavailable")

// Remote delegates the normalization to the randomness service and applies
// the same range scaling the local port uses. Endpoint address is injected
// at construction, never read from ambient state.
type Remote struct {
	base  string
	scope string
	hc    *http.Client
}

func NewRemote(base string) *Remote {
	base = strings.TrimRight(base, "/")
	return &Remote{
		base:  base,
		scope: prf.ScopeTag,
		hc: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type drawResp struct {
	Scope string `json:"scope"`
	Value int64  `json:"value"`
}

func (c *Remote) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("rpc %s status=%d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Remote) RangedDraw(ctx context.Context, seed *big.Int, label prf.Label, occurrence uint64, min, max int64) (int64, error) {
	q := url.Values{}
	q.Set("scope", c.scope)
	q.Set("seed", seed.String())
	q.Set("label", string(label))
	q.Set("occ", strconv.FormatUint(occurrence, 10))

	var out drawResp
	if err := c.getJSON(ctx, "/draw?"+q.Encode(), &out); err != nil {
		return 0, fmt.Errorf("%w: draw %s/%d: %v", ErrRemoteUnavailable, label, occurrence, err)
	}
	if out.Value < 0 || out.Value >= prf.Modulus {
		return 0, fmt.Errorf("%w: value %d outside [0, %d)", ErrRemoteUnavailable, out.Value, prf.Modulus)
	}
	return prf.RangedNormalized(out.Value, min, max)
}
