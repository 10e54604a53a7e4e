package match

// suggestThreshold is the minimum similarity for a candidate to be offered.
const suggestThreshold = 0.6

// Suggest returns the candidate most similar to name, or "" if none scores
// above the threshold. Used for did-you-mean hints in mapping errors.
func Suggest(name string, candidates []string) string {
	best := ""
	bestScore := suggestThreshold

	for _, c := range candidates {
		score := Similarity(name, c)
		if score > bestScore {
			best = c
			bestScore = score
		}
	}

	return best
}
