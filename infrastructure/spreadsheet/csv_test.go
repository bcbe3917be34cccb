package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSVReaderRead(t *testing.T) {
	reader := NewCSVReader()

	t.Run("Linhas de tamanhos variados são aceitas", func(t *testing.T) {
		data := []byte("FECHA,CORTE,SERVICIO\n03/01/2026,1500\n04/01/2026,2200,Barba\n")

		rows, err := reader.Read(data)

		assert.NoError(t, err)
		assert.Len(t, rows, 3)
		assert.Equal(t, []string{"FECHA", "CORTE", "SERVICIO"}, rows[0])
		assert.Equal(t, []string{"03/01/2026", "1500"}, rows[1])
		assert.Equal(t, []string{"04/01/2026", "2200", "Barba"}, rows[2])
	})

	t.Run("Quebras de linha CRLF são normalizadas", func(t *testing.T) {
		data := []byte("FECHA,CORTE\r\n03/01/2026,1500\r\n")

		rows, err := reader.Read(data)

		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, "1500", rows[1][1])
	})

	t.Run("Espaços à esquerda dos campos são descartados", func(t *testing.T) {
		data := []byte("FECHA, CORTE\n03/01/2026,  $1.500\n")

		rows, err := reader.Read(data)

		assert.NoError(t, err)
		assert.Equal(t, "CORTE", rows[0][1])
		assert.Equal(t, "$1.500", rows[1][1])
	})

	t.Run("Arquivo vazio produz grade vazia", func(t *testing.T) {
		rows, err := reader.Read(nil)

		assert.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("Aspas malformadas são reportadas como erro", func(t *testing.T) {
		data := []byte("FECHA,CORTE\n\"03/01/2026,1500\n")

		_, err := reader.Read(data)

		assert.Error(t, err)
	})
}

func TestForFilename(t *testing.T) {
	t.Run("Extensão .csv resolve o leitor CSV", func(t *testing.T) {
		reader, err := ForFilename("ventas.csv")

		assert.NoError(t, err)
		assert.IsType(t, &CSVReader{}, reader)
	})

	t.Run("Extensão .xlsx resolve o leitor OOXML", func(t *testing.T) {
		for _, filename := range []string{"ventas.xlsx", "VENTAS.XLSX"} {
			reader, err := ForFilename(filename)

			assert.NoError(t, err)
			assert.IsType(t, &ExcelReader{}, reader)
		}
	})

	t.Run("Extensão .xls resolve o leitor legado", func(t *testing.T) {
		reader, err := ForFilename("ventas.xls")

		assert.NoError(t, err)
		assert.IsType(t, &XLSReader{}, reader)
	})

	t.Run("Extensão desconhecida é rejeitada", func(t *testing.T) {
		_, err := ForFilename("ventas.pdf")

		assert.Error(t, err)
	})
}
