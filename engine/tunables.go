package engine

// Tunables collects the search constants a chimp.toml file is allowed
// to override at process start. They are package-level vars rather
// than consts so the config package can rewrite them before the first
// "go" command; nothing inside search.go ever mutates them.
var (
	// AspirationDelta is the half-width of the window iterative
	// deepening opens around the previous iteration's score.
	AspirationDelta Score = 50

	// RazorMargin and RazorDepth gate razoring: at depth < RazorDepth,
	// a static eval more than RazorMargin below alpha is confirmed
	// with quiescence instead of a full search.
	RazorMargin Score = 150
	RazorDepth        = 3

	// ReverseFutilityMargin scales by depth to bound how far above
	// beta a non-PV node's static eval must sit to cut immediately.
	ReverseFutilityMargin Score = 150

	// Null-move pruning's reduction is
	// NMPBaseReduction + min(NMPDepthCap, depth/NMPDepthDivisor) +
	// min(NMPEvalCap, (eval-beta)/NMPEvalDivisor).
	NMPMinDepth      = 3
	NMPBaseReduction = 5
	NMPDepthDivisor  = 5
	NMPDepthCap      = 4
	NMPEvalDivisor   = 200
	NMPEvalCap       = 3

	// LMPDepthCap and LMPQuietBase gate late-move pruning: at
	// depth <= LMPDepthCap, quiet moves beyond LMPQuietBase+depth^2
	// are skipped outright.
	LMPDepthCap  = 5
	LMPQuietBase = 4
)
