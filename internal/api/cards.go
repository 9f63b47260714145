package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"digicards/internal/card"
)

func (q cardListQuery) options() card.ListOptions {
	opts := card.ListOptions{IncludeAlternative: q.IncludeAlternative, Page: q.Page}
	if q.PerPage != nil {
		opts.PerPage = *q.PerPage
	}
	return opts
}

func (h *handler) listCards(c *gin.Context) {
	var q cardListQuery
	if !bindQuery(c, &q) {
		return
	}
	res, err := h.Cards.List(c.Request.Context(), q.options())
	if err != nil {
		h.fail(c, err, "Failed to list cards")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) listCardIDs(c *gin.Context) {
	var q cardListQuery
	if !bindQuery(c, &q) {
		return
	}
	res, err := h.Cards.ListIDs(c.Request.Context(), q.options())
	if err != nil {
		h.fail(c, err, "Failed to list cards")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) listCardsFull(c *gin.Context) {
	var q cardListQuery
	if !bindQuery(c, &q) {
		return
	}
	res, err := h.Cards.ListFull(c.Request.Context(), q.options())
	if err != nil {
		h.fail(c, err, "Failed to list cards")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) getCard(c *gin.Context) {
	var p cardNumberURI
	if !bindURI(c, &p) {
		return
	}
	res, err := h.Cards.Get(c.Request.Context(), p.CardNumber)
	if err != nil {
		h.fail(c, err, "Card not found")
		return
	}
	c.JSON(http.StatusOK, res)
}

// getAlternatives answers the main card followed by the stubs of its
// alternative printings, as one list.
func (h *handler) getAlternatives(c *gin.Context) {
	var p cardNumberURI
	if !bindURI(c, &p) {
		return
	}
	set, err := h.Cards.Alternatives(c.Request.Context(), p.CardNumber)
	if err != nil {
		h.fail(c, err, "Card not found")
		return
	}

	res := make([]any, 0, len(set.Alternatives)+1)
	res = append(res, set.Main)
	for _, alt := range set.Alternatives {
		res = append(res, alt)
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) searchCards(c *gin.Context) {
	var q searchQuery
	if !bindQuery(c, &q) {
		return
	}
	res, err := h.Cards.Search(c.Request.Context(), q.NamePart)
	if err != nil {
		h.fail(c, err, "Search failed")
		return
	}
	if len(res) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) searchCardsWithAlternatives(c *gin.Context) {
	var q searchQuery
	if !bindQuery(c, &q) {
		return
	}
	res, err := h.Cards.SearchWithAlternatives(c.Request.Context(), q.NamePart)
	if err != nil {
		h.fail(c, err, "Search failed")
		return
	}
	if len(res) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, res)
}
