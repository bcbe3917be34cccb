package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVReader lê arquivos CSV com linhas de tamanhos variados.
type CSVReader struct{}

func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

func (r *CSVReader) Read(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o arquivo CSV: %w", err)
	}

	return rows, nil
}
