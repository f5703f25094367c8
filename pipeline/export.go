package pipeline

import (
	"encoding/csv"
	"os"
	"strconv"
)

var summaryColumns = []string{
	"run_id", "index", "code", "training_type", "duration_h", "distance_km", "speed_kmh", "calories_kcal", "message",
}

func writeSummaries(path, format, runID string, summaries []Summary) error {
	if format == "csv" {
		return writeSummaryCSV(path, runID, summaries)
	}
	return writeSummaryParquet(path, runID, summaries)
}

func writeSummaryCSV(path, runID string, summaries []Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(summaryColumns); err != nil {
		return err
	}
	for _, s := range summaries {
		row := []string{
			runID,
			strconv.Itoa(s.Index),
			s.Code,
			s.TrainingType,
			formatFloat(s.Duration),
			formatFloat(s.Distance),
			formatFloat(s.Speed),
			formatFloat(s.Calories),
			s.Message,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
