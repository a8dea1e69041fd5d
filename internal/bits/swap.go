package bits

// SwapWords16 copies src into dst swapping the two bytes of every 16-bit
// word. It copies min(len(dst), len(src)) bytes; a trailing odd byte has no
// partner and is copied unchanged. It returns the number of bytes copied.
func SwapWords16(dst, src []byte) int {
	n := min(len(dst), len(src))
	i := 0
	for ; i+1 < n; i += 2 {
		dst[i], dst[i+1] = src[i+1], src[i]
	}
	if i < n {
		dst[i] = src[i]
	}
	return n
}
