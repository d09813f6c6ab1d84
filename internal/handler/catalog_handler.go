package handlers

import (
	"net/http"
	"strings"

	"womenhub/internal/catalog"
)

func (h *Handlers) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.Catalog, http.StatusOK)
}

type EmergencyResponse struct {
	Country string                    `json:"country"`
	Numbers []catalog.EmergencyNumber `json:"numbers"`
}

// EmergencyNumbers answers ?country=india|usa|uk, defaulting to india. With
// country=all every country is returned.
func (h *Handlers) EmergencyNumbers(w http.ResponseWriter, r *http.Request) {
	country := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("country")))
	if country == "" {
		country = "india"
	}

	if country == "all" {
		out := make([]EmergencyResponse, 0, len(h.Catalog.Emergency))
		for _, c := range h.Catalog.Countries() {
			numbers, _ := h.Catalog.Lookup(c)
			out = append(out, EmergencyResponse{Country: c, Numbers: numbers})
		}
		writeSuccess(w, out, http.StatusOK)
		return
	}

	numbers, ok := h.Catalog.Lookup(country)
	if !ok {
		writeJSON(w, ErrorResponse{
			Error: "No emergency numbers for " + country + ". Known: " + strings.Join(h.Catalog.Countries(), ", "),
			Field: "country",
		}, http.StatusNotFound)
		return
	}

	writeSuccess(w, EmergencyResponse{Country: country, Numbers: numbers}, http.StatusOK)
}
