package lp

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	gonumlp "gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/quantfield/collateral-allocator/pkg/constants"
)

// SimplexSolver solves problems with gonum's dense simplex implementation.
// The zero value uses the default reduced-cost tolerance. A SimplexSolver
// holds no state across calls, so a single value may be shared by concurrent
// solves.
type SimplexSolver struct {
	// Tol is the reduced-cost tolerance passed to the simplex routine.
	// Zero or negative selects constants.DefaultSimplexTolerance.
	Tol float64
}

// NewSimplexSolver returns a SimplexSolver with the given tolerance.
func NewSimplexSolver(tol float64) *SimplexSolver {
	return &SimplexSolver{Tol: tol}
}

// Solve converts prob to the standard form the gonum simplex expects
// (minimize c^T x subject to A x = b, x >= 0) and runs it. Inequality rows
// gain one slack column each; >= rows are negated to <= first. Rows and
// columns that would violate gonum's preconditions (constant rows, variables
// absent from every row) are resolved before the call.
func (s *SimplexSolver) Solve(prob *Problem) (*Solution, error) {
	n := len(prob.Variables)
	if len(prob.Objective) != n {
		return nil, fmt.Errorf("lp: objective has %d coefficients for %d variables", len(prob.Objective), n)
	}
	for _, v := range prob.Variables {
		if v.LowerBound != 0 {
			return nil, fmt.Errorf("lp: variable %q has lower bound %v; simplex solver supports only 0", v.Name, v.LowerBound)
		}
	}
	for _, con := range prob.Constraints {
		for _, t := range con.Terms {
			if t.Var < 0 || t.Var >= n {
				return nil, fmt.Errorf("lp: constraint %q references variable index %d of %d", con.Name, t.Var, n)
			}
		}
	}

	// Work on a minimization copy of the objective.
	c := make([]float64, n)
	copy(c, prob.Objective)
	if prob.Sense == Maximize {
		for i := range c {
			c[i] = -c[i]
		}
	}

	// Constant rows (no term with a nonzero coefficient) either hold
	// trivially or prove infeasibility outright; gonum rejects zero rows so
	// they never reach it.
	var rows []Constraint
	for _, con := range prob.Constraints {
		if hasNonzeroTerm(con) {
			rows = append(rows, con)
			continue
		}
		if !constantRowHolds(con) {
			return &Solution{Status: StatusInfeasible}, nil
		}
	}

	// Variables appearing in no remaining row form zero columns, which gonum
	// also rejects. Unconstrained above, they either drive the objective to
	// -inf or sit at their lower bound 0.
	used := make([]bool, n)
	for _, con := range rows {
		for _, t := range con.Terms {
			if t.Coeff != 0 {
				used[t.Var] = true
			}
		}
	}
	colOf := make([]int, n)
	nUsed := 0
	for i := 0; i < n; i++ {
		if !used[i] {
			colOf[i] = -1
			if c[i] < 0 {
				return &Solution{Status: StatusUnbounded}, nil
			}
			continue
		}
		colOf[i] = nUsed
		nUsed++
	}

	values := make([]float64, n)
	if nUsed == 0 {
		// Nothing left to optimize; every variable rests at zero.
		return &Solution{Status: StatusOptimal, Objective: 0, Values: values}, nil
	}

	nSlack := 0
	for _, con := range rows {
		if con.Op != Equal {
			nSlack++
		}
	}
	m := len(rows)
	cols := nUsed + nSlack
	if m > cols {
		return nil, fmt.Errorf("lp: %d equality-heavy rows exceed %d columns in standard form", m, cols)
	}

	a := mat.NewDense(m, cols, nil)
	b := make([]float64, m)
	cStd := make([]float64, cols)
	for i := 0; i < n; i++ {
		if colOf[i] >= 0 {
			cStd[colOf[i]] = c[i]
		}
	}

	slack := nUsed
	for r, con := range rows {
		sign := 1.0
		if con.Op == GreaterEq {
			sign = -1.0
		}
		for _, t := range con.Terms {
			if t.Coeff == 0 {
				continue
			}
			col := colOf[t.Var]
			a.Set(r, col, a.At(r, col)+sign*t.Coeff)
		}
		b[r] = sign * con.RHS
		if con.Op != Equal {
			a.Set(r, slack, 1)
			slack++
		}
	}

	tol := s.Tol
	if tol <= 0 {
		tol = constants.DefaultSimplexTolerance
	}

	optF, optX, err := gonumlp.Simplex(cStd, a, b, tol, nil)
	switch {
	case errors.Is(err, gonumlp.ErrInfeasible):
		return &Solution{Status: StatusInfeasible}, nil
	case errors.Is(err, gonumlp.ErrUnbounded):
		return &Solution{Status: StatusUnbounded}, nil
	case err != nil:
		return nil, fmt.Errorf("lp: simplex failed on problem %q: %w", prob.Name, err)
	}

	for i := 0; i < n; i++ {
		if colOf[i] >= 0 {
			values[i] = optX[colOf[i]]
		}
	}
	if prob.Sense == Maximize {
		optF = -optF
	}
	return &Solution{Status: StatusOptimal, Objective: optF, Values: values}, nil
}

func hasNonzeroTerm(con Constraint) bool {
	for _, t := range con.Terms {
		if t.Coeff != 0 {
			return true
		}
	}
	return false
}

// constantRowHolds evaluates a row whose left side is identically zero.
func constantRowHolds(con Constraint) bool {
	switch con.Op {
	case LessEq:
		return con.RHS >= 0
	case GreaterEq:
		return con.RHS <= 0
	default:
		return con.RHS == 0
	}
}
