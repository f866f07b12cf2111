package planner

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// MinTransferMinutes is the minimum gap required to change lines at a stop.
const MinTransferMinutes = 5

// ReliabilityModel maps a time value in minutes to the probability that the
// associated transfer succeeds. Implementations must be pure, deterministic
// and return values within [0, 1]. The search feeds the model the scheduled
// transfer gap; same-route continuations bypass the model entirely.
type ReliabilityModel interface {
	Probability(minutes float64) float64
}

// GammaTransferModel scores a transfer gap with a gamma cumulative
// distribution over the combined arrival and departure delay. This is the
// production default.
type GammaTransferModel struct {
	dist distuv.Gamma
}

// NewGammaTransferModel returns a gamma model with the given shape and scale.
func NewGammaTransferModel(shape, scale float64) *GammaTransferModel {
	return &GammaTransferModel{
		dist: distuv.Gamma{Alpha: shape, Beta: 1 / scale},
	}
}

// DefaultTransferModel returns the gamma model with shape 2 and scale 3,
// the parameters the reliability scores were calibrated with.
func DefaultTransferModel() *GammaTransferModel {
	return NewGammaTransferModel(2, 3)
}

// Probability returns P(transfer succeeds) for the given gap in minutes.
func (m *GammaTransferModel) Probability(gap float64) float64 {
	if gap <= 0 {
		return 0
	}
	return clampProbability(m.dist.CDF(gap))
}

// NormalTransferModel scores a transfer gap against the difference of two
// normally distributed delays: the incoming vehicle's arrival delay and the
// outgoing vehicle's departure delay.
type NormalTransferModel struct {
	dist distuv.Normal
}

// NewNormalTransferModel builds the model from the assumed delay means and
// standard deviations.
func NewNormalTransferModel(meanArrivalDelay, arrivalStdDev, meanDepartureDelay, departureStdDev float64) *NormalTransferModel {
	return &NormalTransferModel{
		dist: distuv.Normal{
			Mu:    meanArrivalDelay - meanDepartureDelay,
			Sigma: math.Sqrt(arrivalStdDev*arrivalStdDev + departureStdDev*departureStdDev),
		},
	}
}

// Probability returns P(arrivalDelay - departureDelay <= gap), the chance the
// delayed arrival still makes the (possibly also delayed) departure.
func (m *NormalTransferModel) Probability(gap float64) float64 {
	return clampProbability(m.dist.CDF(gap))
}

// ArrivalDistribution models P(on-time arrival) at a scheduled time with a
// saturating exponential, floored so no segment ever scores zero.
type ArrivalDistribution struct {
	Decay  float64
	Offset float64
	Floor  float64
}

// NewArrivalDistribution returns the distribution with the default
// parameters: decay 0.1, offset 5, floor 0.1.
func NewArrivalDistribution() *ArrivalDistribution {
	return &ArrivalDistribution{
		Decay:  0.1,
		Offset: 5,
		Floor:  0.1,
	}
}

// Probability returns the on-time probability for the scheduled time.
func (m *ArrivalDistribution) Probability(minutes float64) float64 {
	p := 1 - math.Exp(-m.Decay*(minutes-m.Offset))
	if p < m.Floor {
		p = m.Floor
	}
	return clampProbability(p)
}

func clampProbability(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
