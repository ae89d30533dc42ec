package handlers

import (
	"net/http"

	"github.com/dtezcan/go-catalog/app/db/seeders"
	"github.com/dtezcan/go-catalog/app/helpers"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DatabaseHandler resets and reseeds the database with demo data. Its
// route is only registered in development.
type DatabaseHandler struct {
	db *gorm.DB
}

func NewDatabaseHandler(db *gorm.DB) *DatabaseHandler {
	return &DatabaseHandler{db: db}
}

func (h *DatabaseHandler) SeedPost(w http.ResponseWriter, r *http.Request) {
	if err := seeders.Seed(r.Context(), h.db); err != nil {
		log.Error().Err(err).Msg("failed to seed database")
		helpers.RedirectWithMessage(w, r, "/", "error", "Failed to seed database.")
		return
	}
	helpers.RedirectWithMessage(w, r, "/", "success", "Database seeded successfully.")
}
