package templates

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/store"
)

func buildMapping(n, m int) []model.Template {
	var ts []model.Template
	for i := 0; i < n; i++ {
		t := model.Template{Name: fmt.Sprintf("Trip %d", n-i)}
		for j := 0; j < m; j++ {
			t.Items = append(t.Items, model.Item{
				ID:       fmt.Sprintf("%d-%d", i, j),
				Name:     fmt.Sprintf("Item %d", j),
				Category: model.Categories[j%len(model.Categories)],
				IsPacked: j%2 == 0,
				Quantity: 1 + j%3,
			})
		}
		ts = append(ts, t)
	}
	return ts
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 3, 12} {
		for _, m := range []int{0, 1, 5} {
			t.Run(fmt.Sprintf("%dx%d", n, m), func(t *testing.T) {
				in := buildMapping(n, m)
				b, err := Marshal(in)
				require.NoError(t, err)

				out, err := Unmarshal(b)
				require.NoError(t, err)
				if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
					t.Fatalf("round trip mismatch (-in +out):\n%s", diff)
				}
			})
		}
	}
}

func TestRoundTripThroughStore(t *testing.T) {
	in := buildMapping(4, 3)
	mem := store.NewMem()
	b, err := Marshal(in)
	require.NoError(t, err)
	require.NoError(t, mem.Write(DefaultKey, b))

	s := New(mem, WithLogger(zerolog.Nop()))
	if diff := cmp.Diff(in, s.Templates(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("store mapping mismatch (-in +got):\n%s", diff)
	}
}

func TestMarshalKeepsOrderAndShape(t *testing.T) {
	b, err := Marshal([]model.Template{
		{Name: "Zeta"},
		{Name: "Alpha", Items: []model.Item{{ID: "x", Name: "Hat", Category: model.Clothing, Quantity: 1}}},
	})
	require.NoError(t, err)
	assert.Equal(t,
		`{"Zeta":[],"Alpha":[{"id":"x","name":"Hat","category":"Clothing","isPacked":false,"quantity":1}]}`,
		string(b))
}

func TestUnmarshalNullItemsIsEmpty(t *testing.T) {
	ts, err := Unmarshal([]byte(`{"Camp":null}`))
	require.NoError(t, err)
	require.Len(t, ts, 1)
	assert.Empty(t, ts[0].Items)
}
