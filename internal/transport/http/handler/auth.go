package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carpoolhub/internal/app"
	"carpoolhub/internal/transport/http/session"
)

type AuthHandler struct {
	authService *app.AuthService
}

type RegisterForm struct {
	Username string `form:"username" binding:"required,min=4,max=20"`
	Password string `form:"password" binding:"required,min=8,max=20"`
	Email    string `form:"email" binding:"required,min=10,max=40"`
}

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func NewAuthHandler(authService *app.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error": "username and password are required",
		})
		return
	}

	user, err := h.authService.Login(app.LoginInput{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput), errors.Is(err, app.ErrInvalidCredential):
			// One generic message: never reveal which field was wrong.
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"Error": "invalid username or password",
			})
		default:
			c.HTML(http.StatusInternalServerError, "login.html", gin.H{
				"Error": "login failed, please try again",
			})
		}
		return
	}

	if err := session.SetLoginUser(c, user.ID); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "login failed, please try again",
		})
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Error": "username must be 4-20 characters, password 8-20, email 10-40",
		})
		return
	}

	_, err := h.authService.Register(app.RegisterInput{
		Username: form.Username,
		Password: form.Password,
		Email:    form.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			c.HTML(http.StatusBadRequest, "register.html", gin.H{
				"Error": "username must be 4-20 characters, password 8-20, email 10-40",
			})
		case errors.Is(err, app.ErrUsernameExists):
			c.HTML(http.StatusBadRequest, "register.html", gin.H{
				"Error": "that username already exists, please choose a different one",
			})
		case errors.Is(err, app.ErrEmailExists):
			c.HTML(http.StatusBadRequest, "register.html", gin.H{
				"Error": "that email is already registered",
			})
		default:
			c.HTML(http.StatusInternalServerError, "register.html", gin.H{
				"Error": "registration failed, please try again",
			})
		}
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.Clear(c); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "logout failed, please try again",
		})
		return
	}
	c.Redirect(http.StatusFound, "/login")
}
