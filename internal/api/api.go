// Package api is the HTTP layer: routing, input validation and the
// mapping of store errors to status codes.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"digicards/internal/auth"
	"digicards/internal/card"
	"digicards/internal/collection"
	"digicards/internal/deck"
	"digicards/pkg/models"
)

//go:generate mockgen -destination=mock/accessors.go -package=mock digicards/internal/api Cards,References,Collection,Decks,Pinger

type Cards interface {
	List(ctx context.Context, opts card.ListOptions) ([]models.CardSummary, error)
	ListIDs(ctx context.Context, opts card.ListOptions) ([]models.CardRef, error)
	ListFull(ctx context.Context, opts card.ListOptions) ([]models.CardDetail, error)
	Get(ctx context.Context, cardNumber string) (models.CardDetail, error)
	Alternatives(ctx context.Context, cardNumber string) (models.AlternativeSet, error)
	Search(ctx context.Context, namePart string) ([]models.CardDetail, error)
	SearchWithAlternatives(ctx context.Context, namePart string) ([]models.CardGroup, error)
}

type References interface {
	List(ctx context.Context, table string) ([]models.Reference, error)
	Get(ctx context.Context, table string, id int64) (models.Reference, error)
}

type Collection interface {
	Add(ctx context.Context, cardNumber string, quantity int) error
	Remove(ctx context.Context, cardNumber string) error
	Update(ctx context.Context, cardNumber string, quantity int) (collection.Action, error)
	List(ctx context.Context, opts collection.ListOptions) ([]models.CollectionEntry, error)
}

type Decks interface {
	Create(ctx context.Context, d deck.NewDeck) (int64, error)
	List(ctx context.Context) ([]models.Deck, error)
	Cards(ctx context.Context, deckID int64) ([]models.DeckCard, error)
	AddCard(ctx context.Context, deckID int64, cardNumber string, quantity int) error
	UpdateCard(ctx context.Context, deckID int64, cardNumber string, quantity int) error
	RemoveCard(ctx context.Context, deckID int64, cardNumber string) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the accessors behind the routes.
type Deps struct {
	Cards      Cards
	References References
	Collection Collection
	Decks      Decks
	Store      Pinger
}

type handler struct {
	Deps
	logger *slog.Logger
}

const catalogCacheControl = "public, max-age=3600"

// NewRouter builds the engine with every route. Everything except
// /health needs a bearer token accepted by keys.
func NewRouter(deps Deps, keys auth.Keys, logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}
	registerTagNames()

	h := &handler{Deps: deps, logger: logger}

	r := gin.New()
	r.Use(RequestLogger(logger), gin.CustomRecovery(h.recovered))
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) { writeDetail(c, http.StatusNotFound, "Not Found") })
	r.NoMethod(func(c *gin.Context) { writeDetail(c, http.StatusMethodNotAllowed, "Method Not Allowed") })

	r.GET("/health", h.health)

	authed := r.Group("/", auth.RequireBearer(keys))

	cards := authed.Group("/cards", CacheControl(catalogCacheControl))
	cards.GET("/", h.listCards)
	cards.GET("/ids/", h.listCardIDs)
	cards.GET("/full/", h.listCardsFull)
	cards.GET("/search/", h.searchCards)
	cards.GET("/search-with-alternatives/", h.searchCardsWithAlternatives)
	cards.GET("/:card_number", h.getCard)
	cards.GET("/:card_number/alternatives", h.getAlternatives)

	aux := authed.Group("/aux", CacheControl(catalogCacheControl))
	aux.GET("/:table", h.listReference)
	aux.GET("/:table/:id", h.getReference)

	col := authed.Group("/collection")
	col.GET("/", h.listCollection)
	col.POST("/add", h.addToCollection)
	col.PUT("/update/:card_number", h.updateInCollection)
	col.DELETE("/delete/:card_number", h.removeFromCollection)

	decks := authed.Group("/decks")
	decks.GET("/", h.listDecks)
	decks.POST("/add", h.createDeck)
	decks.GET("/:deck_id/cards", h.deckCards)
	decks.POST("/:deck_id/cards/add", h.addDeckCard)
	decks.PUT("/:deck_id/cards/update/:card_number", h.updateDeckCard)
	decks.DELETE("/:deck_id/cards/delete/:card_number", h.removeDeckCard)

	return r
}

func (h *handler) health(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		h.logger.Error("health check failed", "error", err)
		writeDetail(c, http.StatusServiceUnavailable, "Store unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *handler) recovered(c *gin.Context, err any) {
	h.logger.Error("handler panic", "path", c.Request.URL.Path, "panic", err)
	writeDetail(c, http.StatusInternalServerError, "Internal server error")
}
