package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"digicards/internal/collection"
)

func (h *handler) listCollection(c *gin.Context) {
	var q collectionListQuery
	if !bindQuery(c, &q) {
		return
	}
	res, err := h.Collection.List(c.Request.Context(), collection.ListOptions{
		Page:               q.Page,
		PerPage:            q.PerPage,
		IncludeAlternative: q.IncludeAlternative,
	})
	if err != nil {
		h.fail(c, err, "Failed to list collection")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) addToCollection(c *gin.Context) {
	var q addCardQuery
	if !bindQuery(c, &q) {
		return
	}
	if err := h.Collection.Add(c.Request.Context(), q.CardNumber, q.Quantity); err != nil {
		// An unknown card number is a constraint failure, not a missing row.
		h.failWith(c, conflictOrServer(err), err, "Failed to add card")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Card added to collection"})
}

func (h *handler) updateInCollection(c *gin.Context) {
	var p cardNumberURI
	if !bindURI(c, &p) {
		return
	}
	var q updateQuantityQuery
	if !bindQuery(c, &q) {
		return
	}
	action, err := h.Collection.Update(c.Request.Context(), p.CardNumber, *q.Quantity)
	if err != nil {
		h.fail(c, err, "Card not found in collection")
		return
	}

	msg := "Card quantity updated"
	if action == collection.ActionRemoved {
		msg = "Card removed from collection"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "action": action})
}

func (h *handler) removeFromCollection(c *gin.Context) {
	var p cardNumberURI
	if !bindURI(c, &p) {
		return
	}
	if err := h.Collection.Remove(c.Request.Context(), p.CardNumber); err != nil {
		h.fail(c, err, "Card not found in collection")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Card removed from collection"})
}

// conflictOrServer is the status for writes whose only client-side
// failure is a rejected insert.
func conflictOrServer(err error) int {
	if status := statusFor(err); status != http.StatusInternalServerError {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
