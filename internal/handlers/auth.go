package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"hunthub/internal/models"
	"hunthub/internal/store"
	"hunthub/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users store.UserRepository
}

func NewAuthHandler(users store.UserRepository) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	Render(c, http.StatusOK, "auth/signup.html", nil)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	username := c.PostForm("username")
	password1 := c.PostForm("password1")
	password2 := c.PostForm("password2")

	if username == "" {
		Render(c, http.StatusOK, "auth/signup.html", gin.H{"Error": "Username must be provided"})
		return
	}
	if password1 == "" || password2 == "" {
		Render(c, http.StatusOK, "auth/signup.html", gin.H{"Error": "Password must be provided"})
		return
	}
	if password1 != password2 {
		Render(c, http.StatusOK, "auth/signup.html", gin.H{"Error": "Passwords are not equal"})
		return
	}

	hash, err := utils.HashPassword(password1)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}

	user := models.User{Username: username, Password: hash}
	if err := h.users.Create(&user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			Render(c, http.StatusOK, "auth/signup.html", gin.H{"Error": "Username has already been taken"})
			return
		}
		RenderError(c, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.AddFlash(fmt.Sprintf("Welcome, %s!", user.Username))
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" {
		Render(c, http.StatusOK, "auth/login.html", gin.H{"Error": "Username must be provided"})
		return
	}
	if password == "" {
		Render(c, http.StatusOK, "auth/login.html", gin.H{"Error": "Password must be provided"})
		return
	}

	user, err := h.users.ByUsername(username)
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		Render(c, http.StatusOK, "auth/login.html", gin.H{"Error": "Username login or password is incorrect"})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

// Logout destroys the session. POST only; a GET falls through to Gin's 404.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}
