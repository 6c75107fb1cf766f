package stats

import "math"

// Summary aggregates a sample of threshold estimates.
type Summary struct {
	Trials       int
	Mean         float64
	StdDev       float64
	ConfidenceLo float64
	ConfidenceHi float64
}

// Summarize computes the mean, sample standard deviation and 95%
// confidence interval of xs. StdDev and the interval are NaN when
// len(xs) < 2; every field but Trials is NaN when xs is empty.
// The endpoints are rounded separately, so ConfidenceHi-ConfidenceLo
// equals 2·1.96·StdDev/√n only to within a few ulps.
// Complexity: O(len(xs)).
func Summarize(xs []float64) Summary {
	s := Summary{Trials: len(xs)}
	s.Mean = mean(xs)
	s.StdDev = stddev(xs, s.Mean)
	half := Confidence95 * s.StdDev / math.Sqrt(float64(len(xs)))
	s.ConfidenceLo = s.Mean - half
	s.ConfidenceHi = s.Mean + half

	return s
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// stddev uses the n-1 denominator.
func stddev(xs []float64, mu float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	var ss float64
	for _, x := range xs {
		d := x - mu
		ss += d * d
	}

	return math.Sqrt(ss / float64(len(xs)-1))
}
