package analysis

// GridResult is the outcome of one voltage/current channel combination in a
// grid search. Only combinations whose voltage channel produced at least one
// sag are reported.
type GridResult struct {
	VoltageID  string
	CurrentID  string
	Report     Report
	TripChecks []TripCheck
}

// TripCheck is one digital channel's relay evaluation within a grid result.
type TripCheck struct {
	ChannelID string
	TripTime  float64
	DelaySec  float64
}

// GridSearch runs sag detection on every ordered pair of distinct analog
// channels (voltage candidate, current candidate) and, for each pair with a
// detected sag, evaluates every digital channel as a trip candidate
// referenced to the first sag's start. Channels that fail to analyze are
// skipped silently, matching the exploratory nature of a grid sweep.
func (a *Analyzer) GridSearch() []GridResult {
	var results []GridResult

	for _, vID := range a.rec.AnalogIDs() {
		sags, err := a.DetectSags(vID)
		if err != nil || len(sags) == 0 {
			continue
		}

		for _, cID := range a.rec.AnalogIDs() {
			if vID == cID {
				continue
			}

			result := GridResult{VoltageID: vID, CurrentID: cID}
			result.Report.Sags = sags

			if sat, err := a.DetectSaturation(cID); err == nil {
				result.Report.Saturation = sat
			}

			for _, tID := range a.rec.DigitalIDs() {
				info, err := a.CheckRelay(tID, sags[0].StartTime)
				if err != nil || !info.Tripped {
					continue
				}

				result.TripChecks = append(result.TripChecks, TripCheck{
					ChannelID: tID,
					TripTime:  info.TripTime,
					DelaySec:  info.Delay,
				})
			}

			results = append(results, result)
		}
	}

	return results
}
