package audio

// Config holds the tone-graph parameters.
type Config struct {
	// Master settings
	MasterVolume float64 // Initial master gain, 0.0 - 1.0

	// Ambient drone settings
	AmbientLowFreq      float64 // Lower sine voice (Hz)
	AmbientHighFreq     float64 // Upper sine voice (Hz), slightly off the octave for beating
	AmbientFilterCutoff float64 // Lowpass cutoff (Hz)
	AmbientVolume       float64 // Drone gain into the master bus

	// Navigation blip settings
	NavStartFreq float64 // Sweep start (Hz)
	NavEndFreq   float64 // Sweep end (Hz)
	NavStartGain float64 // Envelope start
	NavEndGain   float64 // Envelope end; exponential ramps cannot reach 0
	NavDuration  float64 // Sweep and envelope length in seconds
}

// AudioConfig is the tone graph used by every Manager.
var AudioConfig = Config{
	MasterVolume: 0.7,

	AmbientLowFreq:      40,
	AmbientHighFreq:     80.1,
	AmbientFilterCutoff: 200,
	AmbientVolume:       0.05,

	NavStartFreq: 800,
	NavEndFreq:   400,
	NavStartGain: 0.1,
	NavEndGain:   0.01,
	NavDuration:  0.2,
}
