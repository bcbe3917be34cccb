package importing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRows(t *testing.T) {
	cols := DefaultColumns()

	t.Run("Deve localizar colunas e numerar linhas a partir do arquivo", func(t *testing.T) {
		grid := [][]string{
			{"FECHA", "CORTE"},
			{"01/02/2026", "$1.500"},
			{"02/02/2026", "$2.000"},
		}

		rows, err := ExtractRows(grid, cols)

		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, 2, rows[0].Line) // cabeçalho é a linha 1
		assert.Equal(t, "01/02/2026", rows[0].RawDate)
		assert.Equal(t, "$1.500", rows[0].RawAmount)
		assert.Equal(t, 3, rows[1].Line)
	})

	t.Run("Cabeçalho com \\r e minúsculas deve ser normalizado", func(t *testing.T) {
		grid := [][]string{
			{" fecha ", "corte\r"},
			{"01/02/2026", "1500"},
		}

		rows, err := ExtractRows(grid, cols)

		assert.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("Linhas vazias são puladas mas mantêm a numeração original", func(t *testing.T) {
		grid := [][]string{
			{"FECHA", "CORTE"},
			{"01/02/2026", "1500"},
			{"", "  "},
			{"03/02/2026", "1800"},
		}

		rows, err := ExtractRows(grid, cols)

		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, 2, rows[0].Line)
		assert.Equal(t, 4, rows[1].Line)
	})

	t.Run("Linha de dados mais curta que o cabeçalho produz célula vazia", func(t *testing.T) {
		grid := [][]string{
			{"FECHA", "CORTE"},
			{"01/02/2026"},
		}

		rows, err := ExtractRows(grid, cols)

		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "", rows[0].RawAmount)
	})

	t.Run("Coluna de valor ausente deve falhar antes de ler linhas", func(t *testing.T) {
		grid := [][]string{
			{"FECHA", "PRECIO"},
			{"01/02/2026", "1500"},
		}

		rows, err := ExtractRows(grid, cols)

		assert.Nil(t, rows)
		assert.ErrorIs(t, err, ErrMissingColumn)

		var impErr *ImportError
		assert.ErrorAs(t, err, &impErr)
		assert.Equal(t, "CORTE", impErr.Column)
	})

	t.Run("Coluna de data ausente deve falhar", func(t *testing.T) {
		grid := [][]string{
			{"DIA", "CORTE"},
			{"01/02/2026", "1500"},
		}

		_, err := ExtractRows(grid, cols)
		assert.ErrorIs(t, err, ErrMissingColumn)
	})

	t.Run("Grade vazia é arquivo ilegível", func(t *testing.T) {
		_, err := ExtractRows(nil, cols)
		assert.ErrorIs(t, err, ErrUnreadableFile)
	})

	t.Run("Coluna de serviço opcional é capturada quando configurada", func(t *testing.T) {
		grid := [][]string{
			{"FECHA", "CORTE", "SERVICIO"},
			{"01/02/2026", "1500", "Barba"},
		}

		rows, err := ExtractRows(grid, ColumnSpec{Date: "FECHA", Amount: "CORTE", Service: "SERVICIO"})

		assert.NoError(t, err)
		assert.Equal(t, "Barba", rows[0].RawService)
	})
}
