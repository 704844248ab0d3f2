// Command faultscan analyzes power-system disturbance recordings for
// electrical fault signatures: voltage sags and swells, relay trip timing,
// and current-transformer saturation.
//
// Usage:
//
//	faultscan info <recording.csv> [-meta header.yaml]
//	faultscan conformance <recording.csv> -meta header.yaml [-freq 60]
//	faultscan faults <recording.csv> -voltage-ch VA -current-ch IA -trip-ch TRIP -nominal-v 120
//	faultscan grid <recording.csv> -nominal-v 120
//
// Recordings are CSV files whose first column is "time" (seconds); further
// columns are channels, digital when prefixed with "D:". Thresholds can be
// supplied via -config pointing at a YAML file.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-power/analysis"
	"github.com/cwbudde/algo-power/record"
)

func main() {
	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}

	command := os.Args[1]
	path := os.Args[2]
	args := os.Args[3:]

	var err error

	switch command {
	case "info":
		err = runInfo(path, args)
	case "conformance":
		err = runConformance(path, args)
	case "faults":
		err = runFaults(path, args)
	case "grid":
		err = runGrid(path, args)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n\n", command)
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: faultscan <command> <recording.csv> [flags]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  info         show recording metadata and channel IDs\n")
	fmt.Fprintf(os.Stderr, "  conformance  check metadata against the data body\n")
	fmt.Fprintf(os.Stderr, "  faults       run sag/swell, relay, and saturation analysis\n")
	fmt.Fprintf(os.Stderr, "  grid         run fault analysis on all channel combinations\n")
}

func runInfo(path string, args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	metaPath := fs.String("meta", "", "YAML metadata sidecar file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	rec, err := loadCSV(path)
	if err != nil {
		return err
	}

	if *metaPath != "" {
		meta, err := loadMeta(*metaPath)
		if err != nil {
			return err
		}

		fmt.Printf("Station:     %s\n", meta.Station)
		fmt.Printf("Recorder ID: %s\n", meta.RecorderID)
		fmt.Printf("File type:   %s\n", meta.FileType)
		fmt.Printf("Frequency:   %g Hz\n", meta.Frequency)
	}

	fmt.Printf("Samples:     %d (%gs to %gs)\n", rec.Len(), rec.Time()[0], rec.Time()[rec.Len()-1])

	fmt.Println("\nAnalog channels:")
	for i, id := range rec.AnalogIDs() {
		fmt.Printf("  %d: %s\n", i+1, id)
	}

	fmt.Println("\nDigital channels:")
	for i, id := range rec.DigitalIDs() {
		fmt.Printf("  %d: %s\n", i+1, id)
	}

	return nil
}

func runConformance(path string, args []string) error {
	fs := flag.NewFlagSet("conformance", flag.ExitOnError)
	metaPath := fs.String("meta", "", "YAML metadata sidecar file (required)")
	expectedFreq := fs.Float64("freq", 60.0, "expected line frequency in Hz")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *metaPath == "" {
		return fmt.Errorf("conformance requires -meta")
	}

	rec, err := loadCSV(path)
	if err != nil {
		return err
	}

	meta, err := loadMeta(*metaPath)
	if err != nil {
		return err
	}

	issues := record.Conformance(meta, rec, *expectedFreq)
	if len(issues) == 0 {
		fmt.Println("No conformance issues found.")
		return nil
	}

	for _, issue := range issues {
		fmt.Printf("%s: %s\n", issue.Severity, issue.Message)
	}

	return nil
}

func runFaults(path string, args []string) error {
	fs := flag.NewFlagSet("faults", flag.ExitOnError)
	voltageCh := fs.String("voltage-ch", "", "voltage channel ID (required)")
	currentCh := fs.String("current-ch", "", "current channel ID (required)")
	tripCh := fs.String("trip-ch", "", "digital trip channel ID (required)")
	nominalV := fs.Float64("nominal-v", 0, "nominal voltage (required)")
	configPath := fs.String("config", "", "YAML threshold config file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *voltageCh == "" || *currentCh == "" || *tripCh == "" {
		return fmt.Errorf("faults requires -voltage-ch, -current-ch, and -trip-ch")
	}

	rec, opts, err := loadWithOptions(path, *configPath, *nominalV)
	if err != nil {
		return err
	}

	report := analysis.New(rec, opts...).Run(*voltageCh, *currentCh, *tripCh)
	printReport(report, *voltageCh, *currentCh)

	for _, problem := range report.Problems {
		fmt.Fprintf(os.Stderr, "warning: %v\n", problem)
	}

	return nil
}

func runGrid(path string, args []string) error {
	fs := flag.NewFlagSet("grid", flag.ExitOnError)
	nominalV := fs.Float64("nominal-v", 0, "nominal voltage (required)")
	configPath := fs.String("config", "", "YAML threshold config file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	rec, opts, err := loadWithOptions(path, *configPath, *nominalV)
	if err != nil {
		return err
	}

	results := analysis.New(rec, opts...).GridSearch()
	if len(results) == 0 {
		fmt.Println("No sags detected on any channel combination.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Voltage\tCurrent\tSag start [s]\tMin RMS\tSaturation\tTrips")

	for _, r := range results {
		firstSag := r.Report.Sags[0]

		trips := ""
		for i, tc := range r.TripChecks {
			if i > 0 {
				trips += ", "
			}

			trips += fmt.Sprintf("%s @%.4fs (+%.2fms)", tc.ChannelID, tc.TripTime, tc.DelaySec*1000)
		}

		fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.2f\t%d\t%s\n",
			r.VoltageID, r.CurrentID, firstSag.StartTime, firstSag.ExtremeRMS,
			len(r.Report.Saturation), trips)
	}

	return tw.Flush()
}

func loadWithOptions(path, configPath string, nominalV float64) (*record.Recording, []analysis.Option, error) {
	rec, err := loadCSV(path)
	if err != nil {
		return nil, nil, err
	}

	var opts []analysis.Option

	if configPath != "" {
		opts, err = loadThresholds(configPath)
		if err != nil {
			return nil, nil, err
		}
	}

	// The flag takes precedence over the config file.
	if nominalV > 0 {
		opts = append(opts, analysis.WithNominalVoltage(nominalV))
	}

	return rec, opts, nil
}

func printReport(report analysis.Report, voltageCh, currentCh string) {
	if len(report.Sags) == 0 {
		fmt.Printf("No voltage sags detected on %q.\n", voltageCh)
	}

	for _, e := range report.Sags {
		fmt.Printf("Voltage sag on %q: %.4fs to %.4fs, min RMS %.2f\n",
			voltageCh, e.StartTime, e.EndTime, e.ExtremeRMS)
	}

	for _, e := range report.Swells {
		fmt.Printf("Voltage swell on %q: %.4fs to %.4fs, max RMS %.2f\n",
			voltageCh, e.StartTime, e.EndTime, e.ExtremeRMS)
	}

	if report.Trip != nil {
		info := *report.Trip
		if info.Tripped {
			fmt.Printf("Relay trip at %.4fs, delay %.2fms (%s)\n",
				info.TripTime, info.Delay*1000, info.Classification)
		} else {
			fmt.Printf("Relay operation: %s\n", info.Classification)
		}
	}

	if len(report.Saturation) == 0 {
		fmt.Printf("No CT saturation detected on %q.\n", currentCh)
	}

	for _, e := range report.Saturation {
		fmt.Printf("Potential CT saturation on %q: %.4fs to %.4fs (severity %.4f)\n",
			currentCh, e.StartTime, e.EndTime, e.Severity)
	}
}
