package jetcluster

// argMin returns the index and value of the minimum of values[0:k],
// breaking ties at the lowest index. Callers guarantee no NaN is
// present; inputs that could produce NaN are excluded upstream.
func argMin(values []float64, k int) (index int, value float64) {
	index = 0
	value = values[0]
	for i := 1; i < k; i++ {
		if values[i] < value {
			value = values[i]
			index = i
		}
	}
	return index, value
}
