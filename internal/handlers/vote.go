package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"hunthub/internal/services"
	"hunthub/internal/utils"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	votes *services.VoteService
}

func NewVoteHandler(votes *services.VoteService) *VoteHandler {
	return &VoteHandler{votes: votes}
}

// Upvote casts a vote and redirects back to the detail page. Unknown product,
// self-vote and duplicate vote all collapse into the same 404 outcome, so a
// caller cannot probe which of the three occurred.
func (h *VoteHandler) Upvote(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/accounts/login")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Product not found")
		return
	}

	if err := h.votes.Cast(user.ID, uint(id)); err != nil {
		RenderError(c, http.StatusNotFound, "Product not found")
		return
	}

	utils.GetCache().DeletePrefix(feedCachePrefix)
	c.Redirect(http.StatusFound, fmt.Sprintf("/products/%d", id))
}
