// Package simcheck runs a deterministic toy threat-detection probe:
// two seeded synthetic traffic distributions, a fixed threshold rule,
// and an accuracy bar the rule must clear. It smoke tests that the
// numeric stack produces stable, correct results end to end.
package simcheck

import (
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/mkeranen/setupcheck/pkg/check"
)

const (
	defaultSeed    = 42
	defaultSamples = 100

	// Synthetic traffic intensity distributions.
	baselineMean   = 0.3
	baselineStddev = 0.1
	anomalyMean    = 0.8
	anomalyStddev  = 0.2

	// Fixed classification rule and the accuracy it must reach.
	threshold   = 0.6
	accuracyBar = 0.70
)

// Check runs the threshold classifier probe.
type Check struct {
	Seed    int64 // random source seed (default: 42)
	Samples int   // total sample count, split between classes (default: 100)
}

// Run executes the probe. The outcome is deterministic for a fixed seed.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "threat detection simulation",
	}

	accuracy := c.Accuracy()
	result.AddDetailf("simulation accuracy: %.2f", accuracy)

	if accuracy <= accuracyBar {
		return result.Failf("accuracy %.2f below %.2f bar", accuracy, accuracyBar)
	}

	return result.Pass()
}

// Accuracy generates the seeded distributions, applies the threshold
// rule and returns the fraction of correctly classified samples.
func (c *Check) Accuracy() float64 {
	seed := c.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	samples := c.Samples
	if samples == 0 {
		samples = defaultSamples
	}
	half := samples / 2

	rng := rand.New(rand.NewSource(seed))

	intensity := make([]float64, 0, 2*half)
	labels := make([]bool, 0, 2*half)
	for i := 0; i < half; i++ {
		intensity = append(intensity, rng.NormFloat64()*baselineStddev+baselineMean)
		labels = append(labels, false)
	}
	for i := 0; i < half; i++ {
		intensity = append(intensity, rng.NormFloat64()*anomalyStddev+anomalyMean)
		labels = append(labels, true)
	}

	correct := make([]float64, len(intensity))
	for i, x := range intensity {
		if (x > threshold) == labels[i] {
			correct[i] = 1
		}
	}
	return stat.Mean(correct, nil)
}
