package pipeline

import (
	"os"

	parquetbuffer "github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"
)

type summaryParquetRow struct {
	RunID        string  `parquet:"name=run_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Index        int64   `parquet:"name=index, type=INT64"`
	Code         string  `parquet:"name=code, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	TrainingType string  `parquet:"name=training_type, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	DurationH    float64 `parquet:"name=duration_h, type=DOUBLE"`
	DistanceKm   float64 `parquet:"name=distance_km, type=DOUBLE"`
	SpeedKmh     float64 `parquet:"name=speed_kmh, type=DOUBLE"`
	CaloriesKcal float64 `parquet:"name=calories_kcal, type=DOUBLE"`
	Message      string  `parquet:"name=message, type=BYTE_ARRAY, convertedtype=UTF8"`
}

func writeSummaryParquet(path, runID string, summaries []Summary) error {
	data, err := marshalSummaryParquet(runID, summaries)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func marshalSummaryParquet(runID string, summaries []Summary) ([]byte, error) {
	fw := parquetbuffer.NewBufferFile()
	pw, err := writer.NewParquetWriter(fw, new(summaryParquetRow), 4)
	if err != nil {
		return nil, err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	for _, s := range summaries {
		row := summaryParquetRow{
			RunID:        runID,
			Index:        int64(s.Index),
			Code:         s.Code,
			TrainingType: s.TrainingType,
			DurationH:    s.Duration,
			DistanceKm:   s.Distance,
			SpeedKmh:     s.Speed,
			CaloriesKcal: s.Calories,
			Message:      s.Message,
		}
		if err := pw.Write(row); err != nil {
			_ = pw.WriteStop()
			return nil, err
		}
	}
	if err := pw.WriteStop(); err != nil {
		return nil, err
	}
	return fw.Bytes(), nil
}

func unmarshalSummaryParquet(data []byte) ([]summaryParquetRow, error) {
	fr := parquetbuffer.NewBufferFileFromBytes(data)
	pr, err := reader.NewParquetReader(fr, new(summaryParquetRow), 4)
	if err != nil {
		return nil, err
	}
	defer pr.ReadStop()

	rows := make([]summaryParquetRow, int(pr.GetNumRows()))
	if len(rows) == 0 {
		return rows, nil
	}
	if err := pr.Read(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}
