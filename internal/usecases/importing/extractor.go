package importing

import (
	"strings"
	"unicode"
)

// ImportRow é uma linha candidata ainda não validada. Line é o número da linha
// no arquivo de origem (o cabeçalho é a linha 1), usado nos diagnósticos.
type ImportRow struct {
	Line       int
	RawDate    string
	RawAmount  string
	RawService string
}

// ColumnSpec nomeia as colunas lógicas reconhecidas no arquivo. A comparação é
// exata após normalização (trim, maiúsculas, remoção de caracteres de
// controle); nenhuma correspondência aproximada é feita.
type ColumnSpec struct {
	Date    string
	Amount  string
	Service string // opcional; vazio quando a origem não traz serviço
}

// DefaultColumns retorna os nomes de coluna observados nas planilhas da
// barbearia.
func DefaultColumns() ColumnSpec {
	return ColumnSpec{Date: "FECHA", Amount: "CORTE"}
}

// ExtractRows localiza as colunas na linha de cabeçalho e produz uma ImportRow
// por linha de dados não vazia, preservando a ordem original. A ausência de
// uma coluna obrigatória falha antes de qualquer linha ser lida.
func ExtractRows(grid [][]string, cols ColumnSpec) ([]ImportRow, error) {
	if len(grid) == 0 {
		return nil, NewUnreadableFileError("arquivo sem linha de cabeçalho")
	}

	headers := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		headers[i] = normalizeHeader(h)
	}

	dateIdx := indexOf(headers, normalizeHeader(cols.Date))
	if dateIdx < 0 {
		return nil, NewMissingColumnError(cols.Date)
	}

	amountIdx := indexOf(headers, normalizeHeader(cols.Amount))
	if amountIdx < 0 {
		return nil, NewMissingColumnError(cols.Amount)
	}

	serviceIdx := -1
	if cols.Service != "" {
		serviceIdx = indexOf(headers, normalizeHeader(cols.Service))
	}

	rows := make([]ImportRow, 0, len(grid)-1)
	for i, line := range grid[1:] {
		if isEmptyLine(line) {
			continue
		}

		row := ImportRow{
			Line:      i + 2,
			RawDate:   cellAt(line, dateIdx),
			RawAmount: cellAt(line, amountIdx),
		}
		if serviceIdx >= 0 {
			row.RawService = cellAt(line, serviceIdx)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// normalizeHeader remove caracteres de controle (como o \r de arquivos CSV
// gerados no Windows), apara espaços e converte para maiúsculas.
func normalizeHeader(h string) string {
	h = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, h)

	return strings.ToUpper(strings.TrimSpace(h))
}

func indexOf(headers []string, target string) int {
	for i, h := range headers {
		if h == target {
			return i
		}
	}
	return -1
}

func isEmptyLine(line []string) bool {
	for _, cell := range line {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cellAt(line []string, idx int) string {
	if idx < len(line) {
		return strings.TrimSpace(line[idx])
	}
	return ""
}
