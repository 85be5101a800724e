package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/OMD2Planner_Go/internal/catalog"
	"github.com/osse101/OMD2Planner_Go/internal/domain"
	"github.com/osse101/OMD2Planner_Go/internal/planner"
)

// CatalogResponse lists catalog items
type CatalogResponse struct {
	Count int           `json:"count"`
	Items []domain.Item `json:"items"`
}

// SearchResponse lists the items matching a search term
type SearchResponse struct {
	Term  string        `json:"term"`
	Count int           `json:"count"`
	Items []domain.Item `json:"items"`
}

// HandleListCatalog returns every item, or one category when ?category= is set
func HandleListCatalog(engine *planner.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := engine.Catalog()

		category := GetOptionalQueryParam(r, "category", "")
		if err := GetValidator().ValidateVar(category, "category"); err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidCategory, category))
			return
		}

		items := c.Items()
		if category != "" {
			items = c.ItemsByCategory(domain.Category(category))
		}
		respondJSON(w, http.StatusOK, CatalogResponse{Count: len(items), Items: items})
	}
}

// HandleGetItem returns one item by name. Unknown names get a 404 with the
// closest known name when there is a plausible one.
func HandleGetItem(engine *planner.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := engine.Catalog()
		name := chi.URLParam(r, "name")

		item, err := c.Item(name)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			resp := ErrorResponse{Error: msg}
			if status == http.StatusNotFound {
				resp.Suggestion, _ = catalog.Suggest(name, itemNames(c))
			}
			respondJSON(w, status, resp)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleSearchCatalog runs a stateless search over item texts
func HandleSearchCatalog(engine *planner.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term, ok := GetQueryParam(r, w, "q")
		if !ok {
			return
		}

		items := engine.SearchResults(term)
		if items == nil {
			items = []domain.Item{}
		}
		respondJSON(w, http.StatusOK, SearchResponse{Term: term, Count: len(items), Items: items})
	}
}

func itemNames(c *catalog.Catalog) []string {
	items := c.Items()
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}
