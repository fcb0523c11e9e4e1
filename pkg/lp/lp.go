// Package lp defines a minimal linear-program description and the solver
// contract used by the allocation model. The model builder produces a
// Problem; a Solver turns it into a Solution. The package deliberately
// supports only what the bipartite allocation model needs: continuous
// variables with a finite lower bound, a linear objective, and named linear
// constraints.
package lp

import "fmt"

// Sense indicates the optimization direction of a Problem.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

// Op is the comparison operator of a Constraint.
type Op int

const (
	LessEq Op = iota
	GreaterEq
	Equal
)

func (op Op) String() string {
	switch op {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	case Equal:
		return "="
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Status is the mathematical outcome of a solve. Solver-execution failures
// are reported as errors, not statuses.
type Status int

const (
	// StatusOptimal means a best feasible solution was found.
	StatusOptimal Status = iota
	// StatusInfeasible means no point satisfies all constraints.
	StatusInfeasible
	// StatusUnbounded means the objective is unbounded over the feasible
	// region.
	StatusUnbounded
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Variable is a continuous decision variable. Upper bounds are expressed as
// constraints, never on the variable itself, so every bound stays auditable
// under a constraint name.
type Variable struct {
	Name       string
	LowerBound float64
}

// Term is one coefficient of a linear expression, referencing a variable by
// its index in Problem.Variables.
type Term struct {
	Var   int
	Coeff float64
}

// Constraint is a named linear constraint: sum(Terms) Op RHS.
type Constraint struct {
	Name  string
	Terms []Term
	Op    Op
	RHS   float64
}

// Problem is a linear program. Objective holds one cost coefficient per
// variable, aligned with Variables.
type Problem struct {
	Name        string
	Sense       Sense
	Objective   []float64
	Variables   []Variable
	Constraints []Constraint
}

// NewProblem returns an empty problem with the given name and sense.
func NewProblem(name string, sense Sense) *Problem {
	return &Problem{Name: name, Sense: sense}
}

// AddVariable appends a variable with the given objective coefficient and a
// lower bound of zero, returning its index.
func (p *Problem) AddVariable(name string, cost float64) int {
	p.Variables = append(p.Variables, Variable{Name: name})
	p.Objective = append(p.Objective, cost)
	return len(p.Variables) - 1
}

// AddConstraint appends a named constraint.
func (p *Problem) AddConstraint(name string, terms []Term, op Op, rhs float64) {
	p.Constraints = append(p.Constraints, Constraint{Name: name, Terms: terms, Op: op, RHS: rhs})
}

// Solution is a solver outcome. Objective and Values are meaningful only
// when Status is StatusOptimal; Values is aligned with Problem.Variables.
type Solution struct {
	Status    Status
	Objective float64
	Values    []float64
}

// Solver solves a linear program. Infeasibility and unboundedness are
// expected outcomes returned in Solution.Status with a nil error; a non-nil
// error means the solve itself failed and no mathematical outcome exists.
// Implementations must not retain or mutate the problem.
type Solver interface {
	Solve(prob *Problem) (*Solution, error)
}
