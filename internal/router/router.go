package router

import (
	"hunthub/internal/handlers"
	"hunthub/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, auth *handlers.AuthHandler, products *handlers.ProductHandler, votes *handlers.VoteHandler) {
	// Public Routes
	r.GET("/", products.Home)
	r.GET("/products/:id", products.Detail)

	r.GET("/accounts/signup", auth.ShowSignup)
	r.POST("/accounts/signup", auth.Signup)
	r.GET("/accounts/login", auth.ShowLogin)
	r.POST("/accounts/login", auth.Login)
	r.POST("/accounts/logout", auth.Logout) // POST only, GET 404s

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/products/create", products.ShowCreate)
		authorized.POST("/products/create", products.Create)
		authorized.POST("/products/:id/upvote", votes.Upvote) // POST only, GET 404s
	}
}
