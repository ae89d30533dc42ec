package handlers

import (
	"net/http"
	"strings"

	"github.com/dtezcan/go-catalog/app/helpers"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/dtezcan/go-catalog/app/services"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

type LocationHandler struct {
	render  *render.Render
	service *services.LocationService
}

func NewLocationHandler(r *render.Render, s *services.LocationService) *LocationHandler {
	return &LocationHandler{render: r, service: s}
}

// Index lists country/city pairs. The join query switch picks between
// countries-with-cities only and every country.
func (h *LocationHandler) Index(w http.ResponseWriter, r *http.Request) {
	request := dto.LocationQueryRequest{
		CountryName:  strings.TrimSpace(r.URL.Query().Get("country_name")),
		CityName:     strings.TrimSpace(r.URL.Query().Get("city_name")),
		PageNumber:   helpers.QueryIntValue(r, "page_number"),
		CountPerPage: helpers.QueryIntValue(r, "count_per_page"),
		OrderBy:      r.URL.Query().Get("order_by"),
		Descending:   r.URL.Query().Get("descending") == "true",
	}

	leftJoin := r.URL.Query().Get("join") == "left"

	var (
		locations []dto.LocationResponse
		err       error
	)
	if leftJoin {
		locations, err = h.service.LeftJoinList(r.Context(), &request)
	} else {
		locations, err = h.service.InnerJoinList(r.Context(), &request)
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to list locations")
		http.Error(w, "Failed to load locations.", http.StatusInternalServerError)
		return
	}

	totalPages := 0
	if request.CountPerPage > 0 {
		totalPages = (request.TotalCount + request.CountPerPage - 1) / request.CountPerPage
	}

	h.render.HTML(w, http.StatusOK, "locations/index", helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Locations",
		"Locations":  locations,
		"Query":      request,
		"LeftJoin":   leftJoin,
		"TotalPages": totalPages,
	}))
}
