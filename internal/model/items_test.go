package model

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/packlist/internal/errors"
)

func sample() []Item {
	return []Item{
		{ID: "a", Name: "Passport", Category: Valuables, Quantity: 1},
		{ID: "b", Name: "Socks", Category: Clothing, Quantity: 1},
		{ID: "c", Name: "Jacket", Category: Clothing, IsPacked: true, Quantity: 1},
	}
}

func TestWithToggled(t *testing.T) {
	in := sample()
	out := WithToggled(in, "a")

	assert.True(t, out[0].IsPacked)
	assert.False(t, in[0].IsPacked, "input must not change")

	back := WithToggled(out, "a")
	assert.Equal(t, in, back)
}

func TestWithToggledUnknownID(t *testing.T) {
	in := sample()
	out := WithToggled(in, "nope")
	assert.Equal(t, in, out)
	out[0].Name = "changed"
	assert.Equal(t, "Passport", in[0].Name, "result must not alias input")
}

func TestWithRemoved(t *testing.T) {
	in := sample()
	out := WithRemoved(in, "b")
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "c", out[1].ID)
	assert.Len(t, in, 3)

	assert.Equal(t, in, WithRemoved(in, "nope"))
}

func TestNormalized(t *testing.T) {
	in := sample()
	out := Normalized(in)
	for _, it := range out {
		assert.False(t, it.IsPacked)
	}
	assert.True(t, in[2].IsPacked)
}

func TestFiltered(t *testing.T) {
	in := sample()

	got := slices.Collect(Filtered(in, FilterBy(Clothing)))
	require.Len(t, got, 2)
	assert.Equal(t, "Socks", got[0].Name)
	assert.Equal(t, "Jacket", got[1].Name)

	assert.Equal(t, in, slices.Collect(Filtered(in, FilterAll)))
	assert.Empty(t, slices.Collect(Filtered(in, FilterBy(Gadget))))
}

func TestFilteredRestartable(t *testing.T) {
	seq := Filtered(sample(), FilterAll)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	n := 0
	for range seq {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestStats(t *testing.T) {
	packed, pending := Stats(sample())
	assert.Equal(t, 1, packed)
	assert.Equal(t, 2, pending)
}

func TestNewItem(t *testing.T) {
	it, err := NewItem("x", "  Hat ", Clothing)
	require.NoError(t, err)
	assert.Equal(t, Item{ID: "x", Name: "Hat", Category: Clothing, Quantity: 1}, it)

	_, err = NewItem("x", "   ", Clothing)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = NewItem("x", "Hat", Category("Shoes"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestItemValidate(t *testing.T) {
	ok := Item{ID: "1", Name: "Tent", Category: Other, Quantity: 1}
	assert.NoError(t, ok.Validate())

	for name, it := range map[string]Item{
		"no id":       {Name: "Tent", Category: Other, Quantity: 1},
		"no name":     {ID: "1", Category: Other, Quantity: 1},
		"bad cat":     {ID: "1", Name: "Tent", Category: "Food", Quantity: 1},
		"zero amount": {ID: "1", Name: "Tent", Category: Other},
	} {
		assert.Error(t, it.Validate(), name)
	}
}
