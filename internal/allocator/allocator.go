// Package allocator orchestrates one allocation run: validate the payload,
// build the LP, hand it to a solver, and extract the structured result.
package allocator

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quantfield/collateral-allocator/internal/config"
	"github.com/quantfield/collateral-allocator/internal/input"
	"github.com/quantfield/collateral-allocator/internal/model"
	"github.com/quantfield/collateral-allocator/pkg/constants"
	"github.com/quantfield/collateral-allocator/pkg/lp"
	"github.com/quantfield/collateral-allocator/pkg/validation"
)

// ErrInvalidInput marks payload validation failures so callers can
// distinguish them from solver execution failures.
var ErrInvalidInput = errors.New("invalid input payload")

// Runner executes allocation runs against a fixed solver. Each Run builds
// its model from scratch, so a Runner may serve concurrent calls.
type Runner struct {
	logger *zap.Logger
	solver lp.Solver
}

// NewRunner constructs a Runner with the solver selected by the
// configuration.
func NewRunner(logger *zap.Logger, conf *config.Configuration) (*Runner, error) {
	if conf == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	solver, err := newSolver(logger, conf.Solver)
	if err != nil {
		return nil, err
	}
	return &Runner{logger: logger, solver: solver}, nil
}

// NewRunnerWithSolver constructs a Runner around an explicit solver.
func NewRunnerWithSolver(logger *zap.Logger, solver lp.Solver) (*Runner, error) {
	if solver == nil {
		return nil, fmt.Errorf("solver cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, solver: solver}, nil
}

func newSolver(logger *zap.Logger, cfg config.SolverConfig) (lp.Solver, error) {
	switch cfg.Engine {
	case "", constants.DefaultSolverEngine:
		if len(cfg.Options) > 0 {
			logger.Debug("simplex engine ignores solver options",
				zap.String("op", "allocator.newSolver"),
				zap.Int("optionCount", len(cfg.Options)),
			)
		}
		return lp.NewSimplexSolver(cfg.Tolerance), nil
	default:
		return nil, fmt.Errorf("unknown solver engine %q", cfg.Engine)
	}
}

// Run validates the portfolio, builds and solves its allocation model, and
// extracts the result. Invalid input and solver execution failures return
// errors; infeasible or unbounded models return a Result carrying the
// corresponding status.
func (r *Runner) Run(portfolio *input.Portfolio) (*Result, error) {
	if err := validation.ValidatePortfolio(portfolio); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	runID := uuid.NewString()
	m := model.Build(portfolio)

	r.logger.Debug("built allocation model",
		zap.String("op", "allocator.Run"),
		zap.String("runID", runID),
		zap.Int("assets", len(portfolio.Assets)),
		zap.Int("accounts", len(portfolio.Accounts)),
		zap.Int("variables", len(m.Problem.Variables)),
		zap.Int("constraints", len(m.Problem.Constraints)),
	)

	solution, err := r.solver.Solve(m.Problem)
	if err != nil {
		return nil, fmt.Errorf("solver execution failed: %w", err)
	}

	result := extract(portfolio, m, solution)
	result.RunID = runID

	if result.Optimal() {
		r.logger.Info("allocation solved",
			zap.String("op", "allocator.Run"),
			zap.String("runID", runID),
			zap.Float64("totalCollateralCost", *result.Output.TotalCollateralCost),
		)
	} else {
		r.logger.Info("no optimal allocation",
			zap.String("op", "allocator.Run"),
			zap.String("runID", runID),
			zap.String("solverStatus", solution.Status.String()),
		)
	}

	return result, nil
}
