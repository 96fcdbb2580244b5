package jetcluster

import (
	"math"
)

// ClusterSequence is the result of one reconstruction run: the
// algorithm/power/radius it ran under, the strategy chosen, the full
// jet store, the history, and the fixed total energy.
type ClusterSequence struct {
	Algorithm Algorithm
	P         float64
	R         float64
	Strategy  Strategy
	jets      *JetStore
	hist      *History
}

// Jets returns the full store of recombined jets (length up to 2N-1).
func (cs *ClusterSequence) Jets() []Jet { return cs.jets.All() }

// History returns every recorded merge/beam step, in order.
func (cs *ClusterSequence) History() []HistoryStep { return cs.hist.Steps() }

// Qtot is the total visible energy, fixed at seed time.
func (cs *ClusterSequence) Qtot() float64 { return cs.hist.Qtot() }

// config collects the façade's optional knobs. The zero value plus
// Option application produces the fully-resolved configuration the
// entry points validate and run.
type config[P Momentum] struct {
	p                *float64
	r                *float64
	recombine        RecombineFunc
	preprocess       PreprocessFunc[P]
	checkConsistency bool
}

// Option configures a reconstruction call.
type Option[P Momentum] func(*config[P])

// WithP fixes the generalised power for algorithms that require one
// explicitly (GenKt, EEKt). A *float64 distinguishes "not provided"
// from "provided as 0", which CA's fixed power would otherwise collide
// with.
func WithP[P Momentum](p float64) Option[P] {
	return func(c *config[P]) { c.p = &p }
}

// WithR overrides the default radius (1.0 tiled, 4.0 plain).
func WithR[P Momentum](r float64) Option[P] {
	return func(c *config[P]) { c.r = &r }
}

// WithRecombine overrides the default four-momentum-addition recombiner.
func WithRecombine[P Momentum](fn RecombineFunc) Option[P] {
	return func(c *config[P]) { c.recombine = fn }
}

// WithPreprocess overrides the default per-particle-type conversion.
func WithPreprocess[P Momentum](fn PreprocessFunc[P]) Option[P] {
	return func(c *config[P]) { c.preprocess = fn }
}

// WithConsistencyCheck runs CheckConsistency on the finished sequence
// before returning it, surfacing an *InvariantError instead of a
// silently wrong result.
func WithConsistencyCheck[P Momentum]() Option[P] {
	return func(c *config[P]) { c.checkConsistency = true }
}

func resolvedPower(alg Algorithm, p *float64) (float64, error) {
	switch alg {
	case Kt:
		return 1, nil
	case AntiKt:
		return -1, nil
	case CA:
		return 0, nil
	case Durham:
		return 1, nil
	case GenKt, EEKt:
		if p == nil {
			return 0, &ConfigError{Msg: alg.String() + " requires an explicit power (WithP)"}
		}
		return *p, nil
	default:
		return 0, &ConfigError{Msg: "unknown algorithm"}
	}
}

func buildJets[P Momentum](particles []P, cfg *config[P]) (*JetStore, *History, error) {
	if len(particles) == 0 {
		return nil, nil, &DomainError{Msg: "empty particle list"}
	}
	n := len(particles)
	store := NewJetStore(n)
	qtot := 0.0
	for i, particle := range particles {
		var j Jet
		if cfg.preprocess != nil {
			j = cfg.preprocess(particle, i)
		} else {
			j = defaultPreprocess[P](particle, i)
		}
		if math.IsNaN(j.Px()) || math.IsNaN(j.Py()) || math.IsNaN(j.Pz()) || math.IsNaN(j.E()) ||
			math.IsInf(j.Px(), 0) || math.IsInf(j.Py(), 0) || math.IsInf(j.Pz(), 0) || math.IsInf(j.E(), 0) {
			return nil, nil, &DomainError{Msg: "non-finite input coordinates"}
		}
		store.Push(j)
		qtot += j.E()
	}
	hist := NewHistory(qtot, 2*n-1)
	return store, hist, nil
}

// TiledReconstruct runs the hadron-collider (tiled) strategy over
// particles under algorithm, with R defaulting to 1.0. Valid for
// Kt/AntiKt/CA/GenKt.
func TiledReconstruct[P Momentum](particles []P, algorithm Algorithm, opts ...Option[P]) (*ClusterSequence, error) {
	switch algorithm {
	case Kt, AntiKt, CA, GenKt:
	default:
		return nil, &ConfigError{Msg: algorithm.String() + " is not a hadron-collider algorithm"}
	}

	cfg := &config[P]{recombine: AddRecombine}
	for _, o := range opts {
		o(cfg)
	}

	p, err := resolvedPower(algorithm, cfg.p)
	if err != nil {
		return nil, err
	}
	r := 1.0
	if cfg.r != nil {
		r = *cfg.r
	}

	store, hist, err := buildJets(particles, cfg)
	if err != nil {
		return nil, err
	}

	runTiled(store, hist, len(particles), r, p, cfg.recombine)

	cs := &ClusterSequence{Algorithm: algorithm, P: p, R: r, Strategy: StrategyTiled, jets: store, hist: hist}
	if cfg.checkConsistency {
		if err := CheckConsistency(cs); err != nil {
			return nil, err
		}
	}
	return cs, nil
}

// EEReconstruct runs the e+e- (plain) strategy over particles under
// algorithm, with R defaulting to 4.0 (and fixed to 4.0 for Durham).
// Valid for EEKt/Durham.
func EEReconstruct[P Momentum](particles []P, algorithm Algorithm, opts ...Option[P]) (*ClusterSequence, error) {
	switch algorithm {
	case EEKt, Durham:
	default:
		return nil, &ConfigError{Msg: algorithm.String() + " is not an e+e- algorithm"}
	}

	cfg := &config[P]{recombine: AddRecombine}
	for _, o := range opts {
		o(cfg)
	}

	p, err := resolvedPower(algorithm, cfg.p)
	if err != nil {
		return nil, err
	}
	r := 4.0
	if algorithm == Durham {
		r = 4.0
	} else if cfg.r != nil {
		r = *cfg.r
	}

	store, hist, err := buildJets(particles, cfg)
	if err != nil {
		return nil, err
	}

	runPlain(store, hist, len(particles), algorithm, r, p, cfg.recombine)

	cs := &ClusterSequence{Algorithm: algorithm, P: p, R: r, Strategy: StrategyPlain, jets: store, hist: hist}
	if cfg.checkConsistency {
		if err := CheckConsistency(cs); err != nil {
			return nil, err
		}
	}
	return cs, nil
}
