package output

// Downmix mixes the first len(coeffs) channels of samples into the first
// outChannels (1 or 2) channels, in place. coeffs[ch] holds the left and
// right gains of input channel ch; mono output uses only the left gain.
func Downmix(samples [][]float32, coeffs [][2]float32, outChannels, n int) {
	in := samples[:len(coeffs)]
	switch outChannels {
	case 2:
		for i := 0; i < n; i++ {
			var l, r float32
			for ch, c := range coeffs {
				l += in[ch][i] * c[0]
				r += in[ch][i] * c[1]
			}
			samples[0][i] = l
			samples[1][i] = r
		}
	case 1:
		for i := 0; i < n; i++ {
			var m float32
			for ch, c := range coeffs {
				m += in[ch][i] * c[0]
			}
			samples[0][i] = m
		}
	}
}
