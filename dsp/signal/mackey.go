package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// MackeyGlass holds the parameters of the delay differential equation
//
//	dx/dt = Beta*x(t-Tau) / (1 + x(t-Tau)^N) - Gamma*x(t)
//
// integrated with explicit Euler steps of length Dt.
type MackeyGlass struct {
	Beta  float64
	Gamma float64
	N     float64
	Tau   float64
	Dt    float64
	// X0 is the constant initial history. The generator seed adds a small
	// perturbation so different seeds give different trajectories.
	X0 float64
}

// DefaultMackeyGlass returns the chaotic tau=17 regime sampled at dt=1.
func DefaultMackeyGlass() MackeyGlass {
	return MackeyGlass{
		Beta:  0.2,
		Gamma: 0.1,
		N:     10,
		Tau:   17,
		Dt:    1,
		X0:    1.2,
	}
}

func (p MackeyGlass) validate() error {
	switch {
	case p.Dt <= 0:
		return fmt.Errorf("mackey-glass dt must be > 0: %f", p.Dt)
	case p.Tau < p.Dt:
		return fmt.Errorf("mackey-glass tau must be >= dt: %f < %f", p.Tau, p.Dt)
	case p.Beta < 0 || p.Gamma < 0:
		return fmt.Errorf("mackey-glass rates must be >= 0: beta=%f gamma=%f", p.Beta, p.Gamma)
	}
	return nil
}

// MackeyGlass generates samples values of a Mackey-Glass trajectory, one per
// Dt, after discarding the initial history.
func (g *Generator) MackeyGlass(p MackeyGlass, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("mackey-glass samples must be > 0: %d", samples)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	delay := int(math.Round(p.Tau / p.Dt))
	rng := rand.New(rand.NewSource(g.seed))
	hist := delay + 1
	x := make([]float64, hist+samples)
	for i := range hist {
		x[i] = p.X0 + 0.1*(rng.Float64()*2-1)
	}

	for t := hist; t < len(x); t++ {
		prev := x[t-1]
		lag := x[t-1-delay]
		x[t] = prev + p.Dt*(p.Beta*lag/(1+math.Pow(lag, p.N))-p.Gamma*prev)
	}
	return x[hist:], nil
}

// MackeyGlassBatch generates batch trajectories with consecutive seeds
// starting at the generator seed.
func (g *Generator) MackeyGlassBatch(p MackeyGlass, batch, samples int) ([][]float64, error) {
	if batch <= 0 {
		return nil, fmt.Errorf("mackey-glass batch must be > 0: %d", batch)
	}
	out := make([][]float64, batch)
	for b := range out {
		sub := NewGenerator(WithSeed(g.seed+int64(b)), WithSampleRate(g.sampleRate))
		row, err := sub.MackeyGlass(p, samples)
		if err != nil {
			return nil, err
		}
		out[b] = row
	}
	return out, nil
}
