package qlt

import (
	"strings"

	"go.uber.org/zap"

	"qltview/internal/board"
	"qltview/internal/expr"
)

// Evaluator resolves a record's coordinate expressions against a board
// geometry and groups the results into triples.
type Evaluator struct {
	log *zap.Logger
}

// NewEvaluator builds an evaluator. A nil logger disables diagnostics.
func NewEvaluator(log *zap.Logger) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{log: log}
}

// Stats summarizes one row evaluation.
type Stats struct {
	Resolved  int // expressions that produced a value
	Failed    int // expressions that failed to parse or evaluate
	Empty     int // empty expressions dropped without consuming a slot
	Discarded int // trailing values discarded because the buffer never filled
}

// Triples resolves every expression of rec in order and emits one Triple
// per three resolved values. Empty expressions are dropped without
// consuming a buffer slot, so rows with partially empty z-fields can shift
// later values between axes; that matches the source format's observed
// behavior and is surfaced through Stats rather than regrouped.
func (e *Evaluator) Triples(rec Record, g board.Geometry) []Triple {
	ts, _ := e.TriplesStats(rec, g)
	return ts
}

// TriplesStats is Triples plus per-row counters.
func (e *Evaluator) TriplesStats(rec Record, g board.Geometry) ([]Triple, Stats) {
	symbols := g.Symbols()
	var (
		out    []Triple
		buf    [3]float64
		filled int
		st     Stats
	)
	for _, raw := range rec.Exprs {
		if raw == "" {
			st.Empty++
			continue
		}
		src := strings.Trim(raw, `"`)
		v, err := expr.Eval(src, symbols)
		if err != nil {
			st.Failed++
			e.log.Warn("expression skipped",
				zap.String("expr", raw),
				zap.Error(err))
			continue
		}
		st.Resolved++
		buf[filled] = v
		filled++
		if filled == 3 {
			out = append(out, Triple{X: buf[0], Y: buf[1], Z: buf[2]})
			filled = 0
		}
	}
	st.Discarded = filled
	return out, st
}
