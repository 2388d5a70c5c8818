package handler

import (
	"net/http"

	"go-hospital-resource-management/internal/usecase"
	"go-hospital-resource-management/pkg/response"
)

type SearchHandler struct {
	searchUsecase usecase.SearchUsecase
}

func NewSearchHandler(searchUsecase usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{searchUsecase: searchUsecase}
}

// Search looks up one entity kind by term, e.g. /search?type=Patient&q=ali
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	searchType := r.URL.Query().Get("type")
	term := r.URL.Query().Get("q")

	if searchType == "" {
		response.Error(w, http.StatusBadRequest, "type is required", nil)
		return
	}

	result, err := h.searchUsecase.Search(r.Context(), searchType, term)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	message := ""
	if result.Total == 0 {
		message = "No matches found"
	}

	response.Success(w, http.StatusOK, message, result)
}
