package qlt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"qltview/internal/board"
)

func TestTriples_CountLaw(t *testing.T) {
	ev := NewEvaluator(nil)
	g := board.Default()

	tests := []struct {
		name  string
		exprs []string
		want  int
	}{
		{"none", nil, 0},
		{"one value", []string{"1"}, 0},
		{"two values", []string{"1", "2"}, 0},
		{"one triple", []string{"1", "2", "3"}, 1},
		{"partial second", []string{"1", "2", "3", "4"}, 1},
		{"two triples", []string{"1", "2", "3", "4", "5", "6"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := ev.Triples(Record{Exprs: tt.exprs}, g)
			assert.Len(t, ts, tt.want)
		})
	}
}

func TestTriples_PlaceholderSubstitution(t *testing.T) {
	ev := NewEvaluator(nil)
	g := board.Geometry{Width: 200, Height: 800, Thickness: 16}

	ts := ev.Triples(Record{Exprs: []string{"Dim1/2", "Dim2*2", "Dim3"}}, g)
	require.Len(t, ts, 1)
	assert.Equal(t, 400.0, ts[0].X)
	assert.Equal(t, 400.0, ts[0].Y)
	assert.Equal(t, 16.0, ts[0].Z)
}

func TestTriples_EmptySlotDropped(t *testing.T) {
	ev := NewEvaluator(nil)

	// the empty string does not occupy a buffer slot: two values remain,
	// no triple is emitted
	ts, st := ev.TriplesStats(Record{Exprs: []string{"100", "", "50"}}, board.Default())
	assert.Empty(t, ts)
	assert.Equal(t, 2, st.Resolved)
	assert.Equal(t, 1, st.Empty)
	assert.Equal(t, 2, st.Discarded)
}

func TestTriples_FailSkipContinue(t *testing.T) {
	ev := NewEvaluator(nil)

	// the malformed expression is dropped, not replaced by zero
	ts, st := ev.TriplesStats(Record{Exprs: []string{"1+1", "bad(((", "3"}}, board.Default())
	assert.Empty(t, ts)
	assert.Equal(t, 1, st.Failed)
	assert.Equal(t, 2, st.Discarded)

	// a fourth valid value completes the triple
	ts, st = ev.TriplesStats(Record{Exprs: []string{"1+1", "bad(((", "3", "4"}}, board.Default())
	require.Len(t, ts, 1)
	assert.Equal(t, Triple{X: 2, Y: 3, Z: 4}, ts[0])
	assert.Equal(t, 1, st.Failed)
}

func TestTriples_DivisionByZeroSkipped(t *testing.T) {
	ev := NewEvaluator(nil)
	ts, st := ev.TriplesStats(Record{Exprs: []string{"1/0", "1", "2", "3"}}, board.Default())
	require.Len(t, ts, 1)
	assert.Equal(t, Triple{X: 1, Y: 2, Z: 3}, ts[0])
	assert.Equal(t, 1, st.Failed)
}

func TestTriples_QuoteStripping(t *testing.T) {
	ev := NewEvaluator(nil)
	g := board.Geometry{Width: 200, Height: 800, Thickness: 16}

	ts := ev.Triples(Record{Exprs: []string{`"Dim1/2"`, `"50"`, `"0"`}}, g)
	require.Len(t, ts, 1)
	assert.Equal(t, Triple{X: 400, Y: 50, Z: 0}, ts[0])
}

func TestTriples_OrderPreserved(t *testing.T) {
	ev := NewEvaluator(nil)
	ts := ev.Triples(Record{
		Exprs: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
	}, board.Default())
	require.Len(t, ts, 3)
	assert.Equal(t, Triple{X: 1, Y: 2, Z: 3}, ts[0])
	assert.Equal(t, Triple{X: 4, Y: 5, Z: 6}, ts[1])
	assert.Equal(t, Triple{X: 7, Y: 8, Z: 9}, ts[2])
}

func TestTriples_ReportsFailures(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ev := NewEvaluator(zap.New(core))

	ev.Triples(Record{Exprs: []string{"Dim7", "1", "2"}}, board.Default())
	entries := logs.FilterMessage("expression skipped").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Dim7", entries[0].ContextMap()["expr"])
}

// The end-to-end shape of the documented sample row: an empty z keeps the
// buffer at two values, so the row plots nothing.
func TestScenario_EmptyZEmitsNoTriple(t *testing.T) {
	dec := NewDecoder(DefaultSchema(), nil)
	rows := append(headerRows(),
		[]string{"1", "1", "Top", "M3", "Through", "Dim1/2", "50", "1", "0", "0", ""})
	recs := dec.Decode(rows)
	require.Len(t, recs, 1)
	assert.Equal(t, []string{"Dim1/2", "50", ""}, recs[0].Exprs)

	ev := NewEvaluator(nil)
	ts, st := ev.TriplesStats(recs[0], board.Default())
	assert.Empty(t, ts)
	assert.Equal(t, 2, st.Resolved)
	assert.Equal(t, 1, st.Empty)
}
