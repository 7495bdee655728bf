package lassolib

import "fmt"

//SolverConfig collects the tunable parameters of the ADMM iteration.
//
//MaxIter bounds the number of iterations. RhoInit, RhoMax and RhoGrowth
//describe the penalty schedule: the penalty starts at RhoInit and is
//multiplied by RhoGrowth after every iteration until it reaches RhoMax.
//A slow start avoids early numerical instability, the growth accelerates
//consensus between the primal and the sparsified variables.
//
//Tolerance enables an optional residual-based stopping rule: when both the
//primal residual |x-z| and the dual residual |rho*(z-zPrev)| fall below
//Tolerance, the loop stops early. Tolerance 0 keeps the fixed-count behavior.
//
//Zero-valued fields are replaced by the defaults at construction, so the
//zero value of SolverConfig selects the default schedule.
type SolverConfig struct {
	MaxIter   int
	RhoInit   float64
	RhoMax    float64
	RhoGrowth float64
	Tolerance float64
}

//DefaultSolverConfig returns the documented default schedule.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		MaxIter:   100,
		RhoInit:   1e-4,
		RhoMax:    5.0,
		RhoGrowth: 1.1,
		Tolerance: 0,
	}
}

//withDefaults fills zero-valued fields with their defaults.
func (cfg SolverConfig) withDefaults() SolverConfig {
	def := DefaultSolverConfig()
	if cfg.MaxIter == 0 {
		cfg.MaxIter = def.MaxIter
	}
	if cfg.RhoInit == 0 {
		cfg.RhoInit = def.RhoInit
	}
	if cfg.RhoMax == 0 {
		cfg.RhoMax = def.RhoMax
	}
	if cfg.RhoGrowth == 0 {
		cfg.RhoGrowth = def.RhoGrowth
	}
	return cfg
}

//validate rejects schedules that cannot keep the regularized system positive definite
//or that would shrink the penalty.
func (cfg SolverConfig) validate() error {
	if cfg.MaxIter < 1 {
		return fmt.Errorf("%w: MaxIter %d, want >= 1", ErrBadConfig, cfg.MaxIter)
	}
	if cfg.RhoInit < 0 {
		return fmt.Errorf("%w: RhoInit %g, want > 0", ErrBadConfig, cfg.RhoInit)
	}
	if cfg.RhoMax < cfg.RhoInit {
		return fmt.Errorf("%w: RhoMax %g below RhoInit %g", ErrBadConfig, cfg.RhoMax, cfg.RhoInit)
	}
	if cfg.RhoGrowth < 1 {
		return fmt.Errorf("%w: RhoGrowth %g, want >= 1", ErrBadConfig, cfg.RhoGrowth)
	}
	if cfg.Tolerance < 0 {
		return fmt.Errorf("%w: Tolerance %g, want >= 0", ErrBadConfig, cfg.Tolerance)
	}
	return nil
}
