package types

import (
	"github.com/castpage/catalog-api/internal/database"
	"github.com/castpage/catalog-api/internal/services/episodes"
	"github.com/castpage/catalog-api/internal/services/session"
	"github.com/castpage/catalog-api/internal/services/storage"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	EpisodeService *episodes.Service
	SessionService *session.Service
	ObjectStore    storage.ObjectStore
	MaxImageWidth  int
	SecureCookies  bool
}
