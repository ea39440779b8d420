package handlers_test

import (
	"bytes"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"hunthub/internal/handlers"
	"hunthub/internal/middleware"
	"hunthub/internal/router"
	"hunthub/internal/services"
	"hunthub/internal/store"
	"hunthub/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// testTemplates is a stripped-down template set with the same names the real
// views register, enough for assertions on the rendered output.
const testTemplates = `
{{define "auth/signup.html"}}signup {{.Error}}{{end}}
{{define "auth/login.html"}}login {{.Error}}{{end}}
{{define "product/home.html"}}{{if .Flash}}{{.Flash}} {{end}}{{range .Products}}[{{.Title}}]{{end}}{{if .HasPages}}page {{.CurrentPage}} of {{.TotalPages}}{{end}}{{if not .Products}}There are no products yet.{{end}}{{end}}
{{define "product/create.html"}}create {{.Error}}{{end}}
{{define "product/detail.html"}}{{.Product.Title}} votes={{.Product.VotesTotal}} hunter={{.IsHunter}} voted={{.HasVoted}}{{end}}
{{define "error.html"}}{{.Error}}{{end}}
`

type testApp struct {
	engine  *gin.Engine
	mem     *store.Memory
	catalog *services.CatalogService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// The page cache is a process-wide singleton; drop feed pages left over
	// from other tests.
	utils.GetCache().DeletePrefix(handlers.FeedCachePrefix)

	mem := store.NewMemory()
	media, err := services.NewLocalMediaStore(t.TempDir(), "/media")
	if err != nil {
		t.Fatalf("media store: %v", err)
	}
	catalog := services.NewCatalogService(mem.Products(), media)
	feed := services.NewFeedService(mem.Products())
	ledger := services.NewVoteService(mem.Products(), mem.Votes())

	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test_secret"))))
	r.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplates)))
	r.Use(middleware.LoadUser(mem.Users()))

	router.RegisterRoutes(r,
		handlers.NewAuthHandler(mem.Users()),
		handlers.NewProductHandler(catalog, feed, ledger),
		handlers.NewVoteHandler(ledger))

	return &testApp{engine: r, mem: mem, catalog: catalog}
}

// do performs a request, carrying any session cookies collected earlier.
func (a *testApp) do(method, target, contentType string, body io.Reader, cookies []string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, c := range cookies {
		req.Header.Add("Cookie", c)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testApp) postForm(target string, form url.Values, cookies []string) *httptest.ResponseRecorder {
	return a.do(http.MethodPost, target, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()), cookies)
}

func sessionCookies(w *httptest.ResponseRecorder) []string {
	var cookies []string
	for _, c := range w.Result().Cookies() {
		cookies = append(cookies, c.Name+"="+c.Value)
	}
	return cookies
}

// signup registers a user through the endpoint and returns the session cookies.
func (a *testApp) signup(t *testing.T, username string) []string {
	t.Helper()
	w := a.postForm("/accounts/signup", url.Values{
		"username":  {username},
		"password1": {"secret"},
		"password2": {"secret"},
	}, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("signup %q: status %d, body %q", username, w.Code, w.Body.String())
	}
	return sessionCookies(w)
}

// createProduct submits the creation form with valid uploads and returns the
// redirect target.
func (a *testApp) createProduct(t *testing.T, cookies []string, title, body, rawURL string) string {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("title", title)
	mw.WriteField("body", body)
	mw.WriteField("url", rawURL)
	for _, field := range []string{"icon", "image"} {
		fw, err := mw.CreateFormFile(field, field+".png")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		fw.Write([]byte("file_content"))
	}
	mw.Close()

	w := a.do(http.MethodPost, "/products/create", mw.FormDataContentType(), &buf, cookies)
	if w.Code != http.StatusFound {
		t.Fatalf("create product: status %d, body %q", w.Code, w.Body.String())
	}
	return w.Header().Get("Location")
}
