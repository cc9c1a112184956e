package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"kakeibo/internal/services"
)

// maxImportMemory caps the multipart form buffer; larger files spill to
// temporary storage.
const maxImportMemory = 10 << 20

func (s *Server) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart request: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "read upload: "+err.Error())
		return
	}

	var accountID *int64
	accountParam := r.URL.Query().Get("account_id")
	if accountParam == "" {
		accountParam = r.FormValue("account_id")
	}
	if accountParam != "" {
		id, err := strconv.ParseInt(accountParam, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid account_id")
			return
		}
		accountID = &id
	}

	result, err := s.importer.Import(r.Context(), header.Filename, data, accountID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidImport) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "CSV import error: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleImportTemplate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, services.Template())
}
