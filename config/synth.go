package config

import (
	"fmt"
	"math/rand"
)

// Synth describes a synthetic denoising problem: a grid split into vertical
// bands, one per label, observed through salt-and-pepper noise.
type Synth struct {
	Width, Height, Depth int
	Labels               int
	Noise                float64 // probability that a site is observed as a random label
	Scale                int64   // data penalty scale
	Weight               int64   // Potts weight
	Seed                 int64
}

// Truth returns the noiseless band label of every site, in site order.
func (s Synth) Truth() []int {
	depth := max(s.Depth, 1)
	out := make([]int, 0, s.Width*s.Height*depth)
	for z := 0; z < depth; z++ {
		for y := 0; y < s.Height; y++ {
			for x := 0; x < s.Width; x++ {
				out = append(out, x*s.Labels/s.Width)
			}
		}
	}
	return out
}

// Synthesize builds the problem described by s. The same Synth always yields
// the same problem. The observations double as the initial labeling.
func Synthesize(s Synth) (*Problem, error) {
	if s.Width < 1 || s.Height < 1 || s.Depth < 0 {
		return nil, fmt.Errorf("%w: synthetic grid %d×%d×%d", ErrInvalidProblem, s.Width, s.Height, s.Depth)
	}
	if s.Labels < 1 {
		return nil, fmt.Errorf("%w: synthetic labels must be at least 1, got %d", ErrInvalidProblem, s.Labels)
	}
	if s.Noise < 0 || s.Noise > 1 {
		return nil, fmt.Errorf("%w: noise %v not in [0,1]", ErrInvalidProblem, s.Noise)
	}

	r := rand.New(rand.NewSource(s.Seed))
	truth := s.Truth()
	obs := make([]int64, len(truth))
	initial := make([]int, len(truth))
	for i, l := range truth {
		if r.Float64() < s.Noise {
			l = r.Intn(s.Labels)
		}
		obs[i], initial[i] = int64(l), l
	}

	p := &Problem{
		Grid:   Grid{Width: s.Width, Height: s.Height, Depth: s.Depth},
		Labels: Labels{Count: s.Labels, InitialLabeling: initial},
		Data:   Data{Observations: obs, Scale: s.Scale},
		Smooth: Smooth{Weight: s.Weight},
		Solve:  Solve{Seed: s.Seed},
	}
	p.applyDefaults()
	if s.Depth > 1 {
		// face neighbors only; generated volumes stay cheap to solve
		p.Grid.Connectivity = "6"
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
