package spreadsheet

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/barberia/barber-manager-api/internal/usecases/importing"
)

// ForFilename resolve o leitor adequado pela extensão do arquivo enviado.
func ForFilename(filename string) (importing.GridReader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return NewCSVReader(), nil
	case ".xlsx":
		return NewExcelReader(), nil
	case ".xls":
		return NewXLSReader(), nil
	default:
		return nil, fmt.Errorf("extensão de arquivo não suportada: %s", ext)
	}
}
