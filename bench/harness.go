package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/xid"

	"github.com/sarchlab/exactsum/accum"
)

// Result holds one oracle-comparison run: the BFlt-backed and
// BRat-backed accumulators summing the same array, reported together
// so a caller can see at a glance whether the two independent exact
// code paths agree.
type Result struct {
	RunID          xid.ID  `json:"run_id"`
	Name           string  `json:"name"`
	Dimension      int     `json:"dimension"`
	ExactValue     float64 `json:"exact_value"`
	RationalValue  float64 `json:"rational_value"`
	CompensatedVal float64 `json:"compensated_value"`
	Agree          bool    `json:"agree"`
	NoOverflow     bool    `json:"no_overflow"`
	WallTime       time.Duration `json:"wall_time_ns"`
}

// Op is the reduction under test: it folds an array into acc and
// returns the first error encountered, if any; the caller reads the
// final value from acc.
type Op func(acc accum.Accumulator, arr []float64) error

// Sum is the Op for a plain sum.
func Sum(acc accum.Accumulator, arr []float64) error {
	return accum.AddAll(acc, arr)
}

// SumOfSquares is the Op for a sum of squares, using the dedicated
// Add2 reduction rather than AddProduct(x, x).
func SumOfSquares(acc accum.Accumulator, arr []float64) error {
	return accum.Add2All(acc, arr)
}

// Case names one array to run every Op against.
type Case struct {
	Name string
	Dist Distribution
	N    int
	Scale float64
}

// Harness runs a set of Cases through Exact, RationalExact, and
// Compensated, reporting whether the two exact backends agree.
type Harness struct {
	Gen   *ArrayGen
	Cache *Cache
	Op    Op
	Cases []Case
}

// NewHarness returns a Harness seeded deterministically.
func NewHarness(seed int64, op Op, cases []Case) *Harness {
	return &Harness{
		Gen:   NewArrayGen(seed),
		Cache: NewCache(),
		Op:    op,
		Cases: cases,
	}
}

// RunAll runs every case and returns its results in order. A case whose
// Op returns an error is skipped with NoOverflow false and zero values;
// it does not abort the remaining cases.
func (h *Harness) RunAll() []Result {
	results := make([]Result, 0, len(h.Cases))
	for _, c := range h.Cases {
		results = append(results, h.runOne(c))
	}
	return results
}

func (h *Harness) runOne(c Case) Result {
	start := time.Now()
	id, arr := h.Cache.GetOrGenerate(h.Gen, c.N, c.Dist, c.Scale)

	exact := accum.NewExact()
	rational := accum.NewRationalExact()
	compensated := accum.NewCompensated()

	exactErr := h.Op(exact, arr)
	rationalErr := h.Op(rational, arr)
	compErr := h.Op(compensated, arr)

	res := Result{
		RunID:     id,
		Name:      c.Name,
		Dimension: c.N,
		WallTime:  time.Since(start),
	}

	if exactErr != nil || rationalErr != nil || compErr != nil {
		return res
	}

	ev, err := exact.DoubleValue()
	if err != nil {
		return res
	}
	rv, err := rational.DoubleValue()
	if err != nil {
		return res
	}
	cv, err := compensated.DoubleValue()
	if err != nil {
		return res
	}

	res.ExactValue = ev
	res.RationalValue = rv
	res.CompensatedVal = cv
	res.Agree = bitwiseEqual(ev, rv)
	res.NoOverflow = exact.NoOverflow() && rational.NoOverflow()
	return res
}

func bitwiseEqual(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Float64bits(a) == math.Float64bits(b)
}

// Diff reports a human-readable difference between two results, field by
// field (run id, name, values, flags and wall time alike), or the empty
// string if every field is equal. It exists so
// a disagreement (which should never happen; see accum's tests) can be
// reported with full structural context instead of a bare "got X want Y".
func Diff(a, b Result) string {
	return cmp.Diff(a, b)
}

// PrintResults writes a human-readable report of results to w.
func PrintResults(w io.Writer, results []Result) {
	for _, r := range results {
		status := "OK"
		if !r.Agree {
			status = "DISAGREE"
		}
		fmt.Fprintf(w, "%-20s n=%-8d exact=%v rational=%v compensated=%v [%s] (%v)\n",
			r.Name, r.Dimension, r.ExactValue, r.RationalValue, r.CompensatedVal, status, r.WallTime)
	}
}

// PrintCSV writes results to w in CSV format.
func PrintCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"run_id", "name", "dimension", "exact", "rational", "compensated", "agree", "no_overflow"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.RunID.String(),
			r.Name,
			fmt.Sprintf("%d", r.Dimension),
			fmt.Sprintf("%v", r.ExactValue),
			fmt.Sprintf("%v", r.RationalValue),
			fmt.Sprintf("%v", r.CompensatedVal),
			fmt.Sprintf("%v", r.Agree),
			fmt.Sprintf("%v", r.NoOverflow),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}
