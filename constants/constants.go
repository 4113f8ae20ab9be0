package constants

// Default configuration values. The Basic band tables in bands.go and
// the NL=256 EHS window are only valid for this (Fs, NF) pair;
// analyzer.New rejects any other combination.
const (
	DefaultFs    = 48000
	DefaultNF    = 2048
	DefaultAmax  = 1.0
	DefaultLp    = 92.0
	DefaultFcL   = 1019.5
	Emin         = 1e-12
	EHSFmax      = 9000.0
	EHSEnergyMin = 8000.0
)
