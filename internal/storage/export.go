package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/streamtrace/internal/dynamo"
)

type ExportData struct {
	RunMetadata
	Lines [][][3]float64 `json:"lines"`
}

func NewExportData(meta RunMetadata, lines [][]dynamo.Vec3) ExportData {
	data := ExportData{
		RunMetadata: meta,
		Lines:       make([][][3]float64, len(lines)),
	}
	for i, line := range lines {
		data.Lines[i] = make([][3]float64, len(line))
		for j, p := range line {
			data.Lines[i][j] = p
		}
	}
	return data
}

func ExportJSON(w io.Writer, meta RunMetadata, lines [][]dynamo.Vec3) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(meta, lines))
}

func ExportJSONFile(path string, meta RunMetadata, lines [][]dynamo.Vec3) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return ExportJSON(file, meta, lines)
}
