// Package stats provides the regression and extrapolation arithmetic used to
// project dashboard time series forward: plain least-squares fits, seasonal
// (per-phase) fits for periodic series, and forward extrapolation of a
// series at a fitted slope.
package stats

import (
	"errors"

	"github.com/phanxgames/maple"
)

var (
	// ErrEmpty is returned for statistics requested over no samples.
	ErrEmpty = errors.New("stats: empty input")

	// ErrDegenerate is returned when a fit is undefined, e.g. a regression
	// over samples with zero x variance.
	ErrDegenerate = errors.New("stats: degenerate input")
)

// Mean returns the average of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// LinearRegression fits y = alpha + beta*x to the samples by least squares.
func LinearRegression(samples []maple.Sample) (alpha, beta float64, err error) {
	if len(samples) == 0 {
		return 0, 0, ErrEmpty
	}

	var xSum, ySum float64
	for _, s := range samples {
		xSum += s.X
		ySum += s.Y
	}
	xMean := xSum / float64(len(samples))
	yMean := ySum / float64(len(samples))

	var num, den float64
	for _, s := range samples {
		num += (s.X - xMean) * (s.Y - yMean)
		den += (s.X - xMean) * (s.X - xMean)
	}
	if den == 0 {
		return 0, 0, ErrDegenerate
	}
	beta = num / den
	alpha = yMean - beta*xMean
	return alpha, beta, nil
}

// SeasonalRegression fits a periodic series (for example monthly data with
// period 12) by regressing each phase separately against its cycle index and
// averaging the per-phase coefficients. This suppresses the seasonal swing
// that would otherwise dominate a single fit. Samples must be consecutive,
// evenly phased, and cover at least two full periods.
func SeasonalRegression(samples []maple.Sample, period int) (alpha, beta float64, err error) {
	if period <= 0 {
		return 0, 0, ErrDegenerate
	}
	if len(samples) < 2*period {
		return 0, 0, ErrDegenerate
	}

	cycles := len(samples) / period
	var alphaSum, betaSum float64
	for phase := 0; phase < period; phase++ {
		points := make([]maple.Sample, 0, cycles)
		for c := 0; c < cycles; c++ {
			points = append(points, maple.Sample{X: float64(c), Y: samples[c*period+phase].Y})
		}
		a, b, err := LinearRegression(points)
		if err != nil {
			return 0, 0, err
		}
		alphaSum += a
		betaSum += b
	}
	return alphaSum / float64(period), betaSum / float64(period), nil
}

// Coupling converts a projected CO2 concentration into an expected
// temperature change. It pairs the slope of the CO2 fit with the intercept of
// the temperature fit; the sensitivity and offset constants come from the
// calibration against the 1975-2019 Ontario record.
type Coupling struct {
	CarbonSlope float64 // fitted per-period CO2 rise, ppm
	TempBase    float64 // fitted temperature intercept, celsius
}

// NewCoupling builds a coupling from a CO2 fit and a temperature fit, both
// over the same sample window.
func NewCoupling(carbonBeta, tempAlpha float64) Coupling {
	return Coupling{CarbonSlope: carbonBeta, TempBase: tempAlpha}
}

// Temperature returns the expected temperature change for a CO2 level
// projected step months past the fit window.
func (c Coupling) Temperature(carbon float64, step int) float64 {
	return (carbon+c.CarbonSlope*float64(step)/12)*0.018 - c.TempBase + 1.30
}

// Extrapolate extends a periodic series by steps new samples spaced stepX
// apart on the x axis, each raised by slope over the corresponding sample
// one period earlier. The first period echoes the tail of the input; after
// that the projection feeds on itself. Samples must cover at least one full
// period.
func Extrapolate(samples []maple.Sample, slope float64, steps, period int, stepX float64) ([]maple.Sample, error) {
	if period <= 0 || steps < 0 {
		return nil, ErrDegenerate
	}
	if len(samples) < period {
		return nil, ErrDegenerate
	}

	out := make([]maple.Sample, 0, steps)
	lastX := samples[len(samples)-1].X
	for i := 0; i < steps; i++ {
		var base float64
		if i < period {
			base = samples[len(samples)-period+i].Y
		} else {
			base = out[i-period].Y
		}
		out = append(out, maple.Sample{X: lastX + float64(i+1)*stepX, Y: base + slope})
	}
	return out, nil
}
