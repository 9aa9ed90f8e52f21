package bench

import (
	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/labyrinth/search"
)

// summarize reduces samples to timing percentiles and averages.
func summarize(alg search.Algorithm, samples []Sample) (Summary, error) {
	sum := Summary{Solver: alg, Samples: len(samples)}
	if len(samples) == 0 {
		return sum, nil
	}

	micros := make(stats.Float64Data, 0, len(samples))
	nodes := make(stats.Float64Data, 0, len(samples))
	paths := make(stats.Float64Data, 0, len(samples))
	for _, s := range samples {
		micros = append(micros, float64(s.Duration.Nanoseconds())/1e3)
		nodes = append(nodes, float64(s.NodesExpanded))
		paths = append(paths, float64(s.PathLength))
		if s.Found {
			sum.Found++
		}
	}

	var err error
	if sum.MeanMicros, err = micros.Mean(); err != nil {
		return sum, err
	}
	if sum.MedianMicros, err = micros.Median(); err != nil {
		return sum, err
	}
	if sum.P95Micros, err = micros.Percentile(95); err != nil {
		return sum, err
	}
	if sum.MaxMicros, err = micros.Max(); err != nil {
		return sum, err
	}
	if sum.MeanNodes, err = nodes.Mean(); err != nil {
		return sum, err
	}
	if sum.MeanPath, err = paths.Mean(); err != nil {
		return sum, err
	}
	return sum, nil
}
