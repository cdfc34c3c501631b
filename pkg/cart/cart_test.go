package cart

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Price
	}{
		{"decimal string", "9.99", 999},
		{"integer string", "5", 500},
		{"padded", " 12.50 ", 1250},
		{"negative", "-3.00", 0},
		{"garbage", "free", 0},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePrice(tt.in))
		})
	}
}

func TestPrice_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Price
	}{
		{"number", `{"price": 5}`, 500},
		{"decimal number", `{"price": 9.99}`, 999},
		{"string", `{"price": "9.99"}`, 999},
		{"null", `{"price": null}`, 0},
		{"absent", `{}`, 0},
		{"negative", `{"price": -1}`, 0},
		{"non-numeric string", `{"price": "n/a"}`, 0},
		{"beyond int64 cents", `{"price": 1e17}`, 0},
		{"beyond int64 cents string", `{"price": "1e300"}`, 0},
		{"large but representable", `{"price": 1e15}`, 100000000000000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var li LineItem
			require.NoError(t, json.Unmarshal([]byte(tt.in), &li))
			assert.Equal(t, tt.want, li.Price)
		})
	}
}

func TestTotal_MixedRepresentations(t *testing.T) {
	// A mixed cart: one price arrived textual, one numeric.
	var items []LineItem
	require.NoError(t, json.Unmarshal(
		[]byte(`[{"name":"tea","price":"9.99","quantity":2},{"name":"mug","price":5,"quantity":1}]`),
		&items,
	))
	assert.Equal(t, Price(2497), Total(items))
	assert.Equal(t, "$24.97", Total(items).String())
}

func TestTotal_NeverNegative(t *testing.T) {
	// A huge but well-formed payload must not wrap into a negative price
	// or a negative total.
	var li LineItem
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","price":1e17,"quantity":1}`), &li))
	assert.GreaterOrEqual(t, li.Price, Price(0))
	assert.GreaterOrEqual(t, Total([]LineItem{li}), Price(0))
}

func TestTotal_SaturatesInsteadOfWrapping(t *testing.T) {
	overflowing := []LineItem{{Name: "bulk", Price: math.MaxInt64 / 2, Quantity: 3}}
	assert.Equal(t, Price(math.MaxInt64), Total(overflowing))

	summed := []LineItem{
		{Name: "a", Price: math.MaxInt64, Quantity: 1},
		{Name: "b", Price: 100, Quantity: 1},
	}
	assert.Equal(t, Price(math.MaxInt64), Total(summed))
}

func TestTotal_EdgeCases(t *testing.T) {
	assert.Equal(t, Price(0), Total(nil))
	assert.Equal(t, Price(0), Total([]LineItem{
		{Name: "ghost", Price: 999, Quantity: 0},
		{Name: "refund", Price: 999, Quantity: -2},
	}))
}

func TestStore_Operations(t *testing.T) {
	s := NewStore()
	owner := uuid.New()

	s.Add(owner, LineItem{Name: "tea", Price: 999, Quantity: 2})
	s.Add(owner, LineItem{Name: "mug", Price: 500, Quantity: 1})
	require.Len(t, s.Items(owner), 2)
	assert.Equal(t, Price(2497), s.Total(owner))

	s.Remove(owner, 0)
	items := s.Items(owner)
	require.Len(t, items, 1)
	assert.Equal(t, "mug", items[0].Name)

	s.Remove(owner, 5) // out of range, ignored
	assert.Len(t, s.Items(owner), 1)

	s.Empty(owner)
	assert.Empty(t, s.Items(owner))
	assert.Equal(t, Price(0), s.Total(owner))
}

func TestStore_SnapshotIsolation(t *testing.T) {
	s := NewStore()
	owner := uuid.New()
	s.Add(owner, LineItem{Name: "tea", Price: 999, Quantity: 1})

	snap := s.Snapshot(owner)
	s.Empty(owner)

	// The snapshot taken for a checkout attempt does not see later mutation.
	require.Len(t, snap, 1)
	assert.Equal(t, Price(999), Total(snap))
}

func TestStore_IsolatedPerOwner(t *testing.T) {
	s := NewStore()
	a, b := uuid.New(), uuid.New()
	s.Add(a, LineItem{Name: "tea", Price: 100, Quantity: 1})
	assert.Empty(t, s.Items(b))
	s.Empty(b)
	assert.Len(t, s.Items(a), 1)
}
