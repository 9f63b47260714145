package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"digicards/internal/deck"
)

func (h *handler) listDecks(c *gin.Context) {
	res, err := h.Decks.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to list decks")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) createDeck(c *gin.Context) {
	var q createDeckQuery
	if !bindQuery(c, &q) {
		return
	}
	id, err := h.Decks.Create(c.Request.Context(), deck.NewDeck{Name: q.Name, ColorID: q.ColorID, Image: q.Image})
	if err != nil {
		h.failWith(c, conflictOrServer(err), err, "Failed to create deck")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deck_id": id, "message": "Deck created successfully"})
}

// deckCards answers 404 both for an empty deck and for a missing one.
func (h *handler) deckCards(c *gin.Context) {
	var p deckURI
	if !bindURI(c, &p) {
		return
	}
	res, err := h.Decks.Cards(c.Request.Context(), p.DeckID)
	if err != nil {
		h.fail(c, err, "Deck not found or empty")
		return
	}
	if len(res) == 0 {
		writeDetail(c, http.StatusNotFound, "Deck not found or empty")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) addDeckCard(c *gin.Context) {
	var p deckURI
	if !bindURI(c, &p) {
		return
	}
	var q addCardQuery
	if !bindQuery(c, &q) {
		return
	}
	if err := h.Decks.AddCard(c.Request.Context(), p.DeckID, q.CardNumber, q.Quantity); err != nil {
		h.failWith(c, conflictOrServer(err), err, "Failed to add card to deck")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Card added to deck"})
}

func (h *handler) updateDeckCard(c *gin.Context) {
	var p deckCardURI
	if !bindURI(c, &p) {
		return
	}
	var q updateQuantityQuery
	if !bindQuery(c, &q) {
		return
	}
	if *q.Quantity < 0 {
		writeDetail(c, http.StatusUnprocessableEntity, "quantity must be greater than or equal to 0")
		return
	}
	if err := h.Decks.UpdateCard(c.Request.Context(), p.DeckID, p.CardNumber, *q.Quantity); err != nil {
		h.failWith(c, conflictOrServer(err), err, "Failed to update card quantity")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Card quantity updated"})
}

func (h *handler) removeDeckCard(c *gin.Context) {
	var p deckCardURI
	if !bindURI(c, &p) {
		return
	}
	if err := h.Decks.RemoveCard(c.Request.Context(), p.DeckID, p.CardNumber); err != nil {
		h.fail(c, err, "Card not found in deck")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Card removed from deck"})
}
