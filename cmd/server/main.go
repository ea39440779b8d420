package main

import (
	"html/template"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"hunthub/internal/db"
	"hunthub/internal/handlers"
	"hunthub/internal/middleware"
	"hunthub/internal/router"
	"hunthub/internal/services"
	"hunthub/internal/store"
	"hunthub/internal/utils"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	// Initialize Database
	db.Init()

	// Repositories
	users := store.NewGormUsers(db.DB)
	products := store.NewGormProducts(db.DB)
	votes := store.NewGormVotes(db.DB)

	// Media storage
	mediaDir := os.Getenv("MEDIA_DIR")
	if mediaDir == "" {
		mediaDir = "./media"
	}
	media, err := services.NewLocalMediaStore(mediaDir, "/media")
	if err != nil {
		log.Fatalf("Failed to init media store: %v", err)
	}

	// Core services
	catalog := services.NewCatalogService(products, media)
	feed := services.NewFeedService(products)
	ledger := services.NewVoteService(products, votes)

	// Warm the page cache singleton before the first request.
	utils.GetCache()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	cookieStore := cookie.NewStore([]byte(secret))
	cookieStore.Options(sessions.Options{HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("hunthub_session", cookieStore))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates("./web/templates")

	// Static Assets + uploaded media
	r.Static("/static", "./web/static")
	r.Static("/media", mediaDir)

	// Middleware
	r.Use(middleware.LoadUser(users))

	// Handlers
	authHandler := handlers.NewAuthHandler(users)
	productHandler := handlers.NewProductHandler(catalog, feed, ledger)
	voteHandler := handlers.NewVoteHandler(ledger)

	router.RegisterRoutes(r, authHandler, productHandler, voteHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("HuntHub server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	// Helper to assemble files
	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+1)
		files = append(files, layouts...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"italicFirst": utils.ItalicFirst,
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}

	// Auth
	r.AddFromFilesFuncs("auth/login.html", funcMap, assemble(templatesDir+"/views/auth/login.html")...)
	r.AddFromFilesFuncs("auth/signup.html", funcMap, assemble(templatesDir+"/views/auth/signup.html")...)

	// Products
	r.AddFromFilesFuncs("product/home.html", funcMap, assemble(templatesDir+"/views/product/home.html")...)
	r.AddFromFilesFuncs("product/create.html", funcMap, assemble(templatesDir+"/views/product/create.html")...)
	r.AddFromFilesFuncs("product/detail.html", funcMap, assemble(templatesDir+"/views/product/detail.html")...)

	// Error
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
