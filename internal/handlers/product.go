package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"hunthub/internal/services"
	"hunthub/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const feedCachePrefix = "feed:page:"

type ProductHandler struct {
	catalog *services.CatalogService
	feed    *services.FeedService
	votes   *services.VoteService
}

func NewProductHandler(catalog *services.CatalogService, feed *services.FeedService, votes *services.VoteService) *ProductHandler {
	return &ProductHandler{catalog: catalog, feed: feed, votes: votes}
}

// Home renders the ranked, paginated feed. Page data is cached briefly; the
// one-shot flash message is read per request and never cached.
func (h *ProductHandler) Home(c *gin.Context) {
	pageParam := c.Query("page")

	var page services.FeedPage
	cacheKey := feedCachePrefix + pageParam
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		page = cached.(services.FeedPage)
	} else {
		var err error
		page, err = h.feed.Page(pageParam)
		if err != nil {
			RenderError(c, http.StatusInternalServerError, "Something went wrong, please try again")
			return
		}
		utils.GetCache().Set(cacheKey, page, time.Minute)
	}

	data := gin.H{
		"Products":    page.Products,
		"CurrentPage": page.CurrentPage,
		"TotalPages":  page.TotalPages,
		"HasPages":    page.HasPages(),
	}

	// Flashes() clears on read within the same session save.
	session := sessions.Default(c)
	if flashes := session.Flashes(); len(flashes) > 0 {
		session.Save()
		data["Flash"] = flashes[0]
	}

	Render(c, http.StatusOK, "product/home.html", data)
}

func (h *ProductHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "product/create.html", nil)
}

func (h *ProductHandler) Create(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/accounts/login")
		return
	}

	icon, _ := c.FormFile("icon")
	image, _ := c.FormFile("image")
	input := services.CreateProductInput{
		Title: c.PostForm("title"),
		Body:  c.PostForm("body"),
		URL:   c.PostForm("url"),
		Icon:  icon,
		Image: image,
	}

	product, err := h.catalog.Create(user.ID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFieldsMissing):
			Render(c, http.StatusOK, "product/create.html", gin.H{"Error": "All fields are required"})
		case errors.Is(err, services.ErrInvalidURL):
			Render(c, http.StatusOK, "product/create.html", gin.H{"Error": "URL must be valid"})
		default:
			Render(c, http.StatusOK, "product/create.html", gin.H{"Error": "Something went wrong, please try again"})
		}
		return
	}

	utils.GetCache().DeletePrefix(feedCachePrefix)
	c.Redirect(http.StatusFound, fmt.Sprintf("/products/%d", product.ID))
}

// Detail renders a product page with the voting affordance state: the vote
// button is hidden for anonymous visitors and disabled for the hunter or a
// user who already voted.
func (h *ProductHandler) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.catalog.Get(uint(id))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Product not found")
		return
	}

	data := gin.H{
		"Product":  product,
		"BodyHTML": utils.RenderMarkdown(product.Body),
	}
	if user := currentUser(c); user != nil {
		data["IsHunter"] = product.HunterID == user.ID
		voted, err := h.votes.HasVoted(user.ID, product.ID)
		if err != nil {
			RenderError(c, http.StatusInternalServerError, "Something went wrong, please try again")
			return
		}
		data["HasVoted"] = voted
	}

	Render(c, http.StatusOK, "product/detail.html", data)
}
