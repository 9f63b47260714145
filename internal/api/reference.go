package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handler) listReference(c *gin.Context) {
	var p referenceURI
	if !bindURI(c, &p) {
		return
	}
	res, err := h.References.List(c.Request.Context(), p.Table)
	if err != nil {
		h.fail(c, err, "Table not found")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) getReference(c *gin.Context) {
	var p referenceURI
	if !bindURI(c, &p) {
		return
	}
	res, err := h.References.Get(c.Request.Context(), p.Table, p.ID)
	if err != nil {
		h.fail(c, err, "Entry not found")
		return
	}
	c.JSON(http.StatusOK, res)
}
