package arena

// BatchStats accumulates results across many runs. It is not safe for
// concurrent use.
type BatchStats struct {
	Runs          int
	SumCleanRatio float64
	RunsAllied    int
	Alliances     int
	Moves         map[string]int
	Turns         map[string]int
	Pairs         map[string]int
}

func NewBatchStats() *BatchStats {
	return &BatchStats{
		Moves: map[string]int{},
		Turns: map[string]int{},
		Pairs: map[string]int{},
	}
}

func (st *BatchStats) Add(res SimResult) {
	st.Runs++
	st.SumCleanRatio += res.CleanRatio
	if len(res.Alliances) > 0 {
		st.RunsAllied++
	}
	st.Alliances += len(res.Alliances)
	for k, v := range res.Moves {
		st.Moves[k] += v
	}
	for k, v := range res.Turns {
		st.Turns[k] += v
	}
	for _, al := range res.Alliances {
		st.Pairs[al.Pair[0]+"+"+al.Pair[1]]++
	}
}

// Summary reports per-run averages, keyed for JSON output.
func (st *BatchStats) Summary() map[string]any {
	n := float64(st.Runs)
	if st.Runs == 0 {
		n = 1
	}
	avg := func(m map[string]int) map[string]float64 {
		out := map[string]float64{}
		for k, v := range m {
			out[k] = float64(v) / n
		}
		return out
	}
	return map[string]any{
		"runs":              st.Runs,
		"avg_clean_ratio":   st.SumCleanRatio / n,
		"alliance_run_rate": float64(st.RunsAllied) / n,
		"avg_alliances":     float64(st.Alliances) / n,
		"avg_moves":         avg(st.Moves),
		"avg_turns":         avg(st.Turns),
		"pairs":             st.Pairs,
	}
}
