// Package tables contains the constant lookup tables of the AC-3 and
// E-AC-3 bitstream formats: sample rates, bit rates, frame sizes, channel
// counts, downmix gain levels and output channel maps.
//
// Values follow ATSC A/52 (Digital Audio Compression Standard).
package tables
