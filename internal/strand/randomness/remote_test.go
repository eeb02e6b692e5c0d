package randomness

import (
	"context"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenzhangda16/strandweave/internal/randsvc"
	"github.com/chenzhangda16/strandweave/internal/strand/prf"
)

// The local and remote ports must be interchangeable without changing a
// single output — this is the property that lets deployments move the
// randomness computation behind a service.
func TestLocalRemoteEquivalence(t *testing.T) {
	srv := httptest.NewServer(randsvc.NewServer().Handler())
	defer srv.Close()

	local := NewLocal()
	remote := NewRemote(srv.URL)
	ctx := context.Background()

	seeds := []*big.Int{big.NewInt(0), big.NewInt(42), big.NewInt(987_654_321)}
	wide, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	seeds = append(seeds, wide)

	ranges := [][2]int64{{1, 50}, {0, 921}, {102, 341}, {0, 10}, {7, 7}}

	for _, seed := range seeds {
		for _, label := range prf.Labels() {
			for occ := uint64(0); occ < 3; occ++ {
				for _, r := range ranges {
					want, err := local.RangedDraw(ctx, seed, label, occ, r[0], r[1])
					require.NoError(t, err)
					got, err := remote.RangedDraw(ctx, seed, label, occ, r[0], r[1])
					require.NoError(t, err)
					assert.Equal(t, want, got, "seed=%s label=%s occ=%d range=%v", seed, label, occ, r)
				}
			}
		}
	}
}

func TestRemoteUnavailable(t *testing.T) {
	srv := httptest.NewServer(randsvc.NewServer().Handler())
	srv.Close() // endpoint is down

	remote := NewRemote(srv.URL)
	_, err := remote.RangedDraw(context.Background(), big.NewInt(1), prf.LabelStepCount, 0, 1, 50)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

// A broken endpoint returning values outside [0, 1e6) must not leak into
// geometry as a plausible draw.
func TestRemoteRejectsOutOfRangeValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"scope":"strandweave/v1","value":1000000}`))
	}))
	defer srv.Close()

	remote := NewRemote(srv.URL)
	_, err := remote.RangedDraw(context.Background(), big.NewInt(1), prf.LabelStepCount, 0, 1, 50)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}
