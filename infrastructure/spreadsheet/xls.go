package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"
)

// Limite defensivo de linhas lidas de uma pasta de trabalho legada.
const maxLegacyRows = 65536

// XLSReader lê pastas de trabalho legadas (container OLE2, anterior ao OOXML).
// O excelize só abre containers zip, então a extensão .xls precisa de um leitor
// próprio.
type XLSReader struct{}

func NewXLSReader() *XLSReader {
	return &XLSReader{}
}

func (r *XLSReader) Read(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir a planilha legada: %w", err)
	}

	if workbook.GetSheet(0) == nil {
		return nil, fmt.Errorf("planilha legada sem abas legíveis")
	}

	return workbook.ReadAllCells(maxLegacyRows), nil
}
