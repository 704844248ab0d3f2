package analysis_test

import (
	"fmt"

	"github.com/cwbudde/algo-power/analysis"
	"github.com/cwbudde/algo-power/record"
)

func ExampleAnalyzer_Run() {
	sampleRate := 1000.0
	n := 1000

	timeBase := make([]float64, n)
	voltage := make([]float64, n)
	current := make([]float64, n)
	trip := make([]int, n)

	for i := range timeBase {
		timeBase[i] = float64(i) / sampleRate

		voltage[i] = 120
		current[i] = 100

		if i >= 400 && i < 600 {
			voltage[i] = 80
			current[i] = 900
		}

		if i >= 450 {
			trip[i] = 1
		}
	}

	rec, err := record.New(timeBase,
		map[string][]float64{"VA": voltage, "IA": current},
		map[string][]int{"TRIP": trip},
	)
	if err != nil {
		panic(err)
	}

	analyzer := analysis.New(rec,
		analysis.WithNominalVoltage(120),
		analysis.WithHighCurrentThreshold(200),
		analysis.WithExpectedDelay(0, 0.1),
	)

	report := analyzer.Run("VA", "IA", "TRIP")

	fmt.Printf("sags: %d\n", len(report.Sags))
	fmt.Printf("saturation events: %d\n", len(report.Saturation))
	fmt.Printf("relay: %s after %.3fs\n", report.Trip.Classification, report.Trip.Delay)
	// Output:
	// sags: 1
	// saturation events: 1
	// relay: on-time after 0.018s
}
