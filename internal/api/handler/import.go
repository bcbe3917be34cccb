package handler

import (
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/barberia/barber-manager-api/internal/usecases/importing"
	"github.com/barberia/barber-manager-api/pkg/apiErrors"
	"github.com/barberia/barber-manager-api/pkg/utils"
)

// Limite de tamanho do upload de planilhas
const maxImportFileSize = 10 << 20 // 10 MB

// ImportFile recebe uma planilha (campo multipart "file") e importa as
// vendas válidas em lote
func ImportFile(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename, data, ok := readUploadedFile(w, r)
		if !ok {
			return
		}

		report, err := service.Import(filename, data)
		if err != nil {
			handleImportError(w, err)
			return
		}

		logrus.WithField("batch_id", report.BatchID).
			Debug(utils.PrettyJson(report))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}

// PreviewImport valida a planilha e retorna as linhas aceitas e rejeitadas
// sem persistir nada
func PreviewImport(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename, data, ok := readUploadedFile(w, r)
		if !ok {
			return
		}

		result, err := service.Preview(filename, data)
		if err != nil {
			handleImportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// readUploadedFile extrai o arquivo enviado no campo multipart "file".
// Escreve a resposta de erro e retorna ok=false quando o upload é inválido.
func readUploadedFile(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	if err := r.ParseMultipartForm(maxImportFileSize); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Upload multipart inválido", nil)
		return "", nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo não fornecido no campo 'file'", nil)
		return "", nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImportFileSize))
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao ler o arquivo enviado", nil)
		return "", nil, false
	}

	return header.Filename, data, true
}

// handleImportError trata erros do caso de uso de importação
func handleImportError(w http.ResponseWriter, err error) {
	var impErr *importing.ImportError
	if errors.As(err, &impErr) {
		var details map[string]any
		if impErr.Column != "" {
			details = map[string]any{"column": impErr.Column}
		}

		switch {
		case errors.Is(err, importing.ErrMissingColumn):
			apiErrors.WriteError(w, apiErrors.ErrMissingColumn, impErr.Error(), details)
		case errors.Is(err, importing.ErrUnreadableFile):
			apiErrors.WriteError(w, apiErrors.ErrUnreadableFile, impErr.Error(), details)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, impErr.Error(), details)
		}
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao importar planilha", nil)
}
