package config

import "nba-shotviz-service/internal/domain/charts"

// ChartConfig carries the default rendering parameters consumed by the
// chart service. Requests may override any of them per call.
type ChartConfig struct {
	BinFt           float64
	VLim            float64
	SampleCap       int
	ReleaseHeightFt float64
	ArcSamples      int
	Halo            bool
	// Arcs flatten slightly under a heatmap overlay so the surface stays
	// readable; the plain mode uses the taller profile.
	HeatmapApex charts.ApexProfile
	PlainApex   charts.ApexProfile
}

func loadChart() ChartConfig {
	return ChartConfig{
		BinFt:           floatEnvOrDefault(envBinFt, defaultBinFt),
		VLim:            floatEnvOrDefault(envVLim, defaultVLim),
		SampleCap:       intEnvOrDefault(envSampleCap, defaultSampleCap),
		ReleaseHeightFt: floatEnvOrDefault(envReleaseHeight, defaultReleaseHeight),
		ArcSamples:      intEnvOrDefault(envArcSamples, defaultArcSamples),
		Halo:            boolEnvOrDefault(envHalo, defaultHalo),
		HeatmapApex:     charts.ApexProfile{Base: 10.0, Slope: 0.28, Lo: 13.0, Hi: 18.5},
		PlainApex:       charts.ApexProfile{Base: 10.5, Slope: 0.30, Lo: 14.0, Hi: 19.5},
	}
}
