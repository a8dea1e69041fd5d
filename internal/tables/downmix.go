package tables

// Gain levels referenced by index from the mix level and default downmix
// tables.
const (
	LevelPlus3dB      = float32(1.4142135623730950)
	LevelPlus1p5dB    = float32(1.1892071150027209)
	LevelOne          = float32(1.0)
	LevelMinus1p5dB   = float32(0.8408964152537145)
	LevelMinus3dB     = float32(0.7071067811865476)
	LevelMinus4p5dB   = float32(0.5946035575013605)
	LevelMinus6dB     = float32(0.5)
	LevelZero         = float32(0)
	LevelMinus9dB     = float32(0.35355339059327373)
	levelIndexMinus3  = 4
	levelIndexMinus45 = 5
	levelIndexMinus6  = 6
	levelIndexZero    = 7
)

// GainLevels is indexed by the values found in CenterMixLevels,
// SurroundMixLevels and DefaultDownmix.
var GainLevels = [9]float32{
	LevelPlus3dB,
	LevelPlus1p5dB,
	LevelOne,
	LevelMinus1p5dB,
	LevelMinus3dB,
	LevelMinus4p5dB,
	LevelMinus6dB,
	LevelZero,
	LevelMinus9dB,
}

// CenterMixLevels maps cmixlev to a GainLevels index. The reserved value 3
// is treated as -4.5 dB.
//
// Source: A/52 Table 5.9
var CenterMixLevels = [4]uint8{levelIndexMinus3, levelIndexMinus45, levelIndexMinus6, levelIndexMinus45}

// SurroundMixLevels maps surmixlev to a GainLevels index. The reserved
// value 3 is treated as -6 dB.
//
// Source: A/52 Table 5.10
var SurroundMixLevels = [4]uint8{levelIndexMinus3, levelIndexMinus6, levelIndexZero, levelIndexMinus6}

// Default mix levels used when the header carries none.
const (
	DefaultCenterMixLevel   = levelIndexMinus45
	DefaultSurroundMixLevel = levelIndexMinus6
)

// DefaultDownmix gives, per acmod and full-bandwidth channel, the
// GainLevels indices of its contribution to the left and right outputs.
var DefaultDownmix = [8][5][2]uint8{
	{{2, 7}, {7, 2}},
	{{4, 4}},
	{{2, 7}, {7, 2}},
	{{2, 7}, {5, 5}, {7, 2}},
	{{2, 7}, {7, 2}, {6, 6}},
	{{2, 7}, {5, 5}, {7, 2}, {8, 8}},
	{{2, 7}, {7, 2}, {6, 7}, {7, 6}},
	{{2, 7}, {5, 5}, {7, 2}, {6, 7}, {7, 6}},
}
