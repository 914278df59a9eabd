package common

const (
	// BaseWidth and BaseHeight are the logical window size in world units.
	BaseWidth  = 1280
	BaseHeight = 720

	TicksPerSecond = 60
	TickSeconds    = 1.0 / TicksPerSecond

	// Gravity is the magnitude of the downward world gravity.
	Gravity = 200.0

	// MetersPerUnit converts world x to travelled distance.
	MetersPerUnit = 1.0 / 100
)
