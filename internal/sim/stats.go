package sim

import "time"

// Stats tracks rolling run statistics for the status overlay.
type Stats struct {
	StepsPerSecond float64
	AvgPopulation  float64
	TotalSteps     int

	lastStep time.Time
}

// Record folds one completed step into the statistics.
func (st *Stats) Record(generation, population int, now time.Time) {
	st.TotalSteps = generation
	if !st.lastStep.IsZero() {
		if d := now.Sub(st.lastStep); d > 0 {
			st.StepsPerSecond = 1.0 / d.Seconds()
		}
	}
	st.lastStep = now

	// Exponential moving average keeps the overlay readable.
	if st.AvgPopulation == 0 {
		st.AvgPopulation = float64(population)
	} else {
		st.AvgPopulation = st.AvgPopulation*0.9 + float64(population)*0.1
	}
}
