package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carpoolhub/internal/app"
)

type AccountHandler struct {
	accountService *app.AccountService
	board          *BoardHandler
}

type EditAccountForm struct {
	Username string `form:"username" binding:"required,min=4,max=20"`
	Password string `form:"password" binding:"omitempty,min=8,max=20"`
	Email    string `form:"email" binding:"required,min=10,max=40"`
}

func NewAccountHandler(accountService *app.AccountService, board *BoardHandler) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		board:          board,
	}
}

func (h *AccountHandler) ShowEdit(c *gin.Context) {
	user, ok := h.board.currentUser(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "edit_account.html", gin.H{"User": user})
}

func (h *AccountHandler) Edit(c *gin.Context) {
	user, ok := h.board.currentUser(c)
	if !ok {
		return
	}

	var form EditAccountForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "edit_account.html", gin.H{
			"User":  user,
			"Error": "username must be 4-20 characters, email 10-40, password 8-20 if set",
		})
		return
	}

	_, err := h.accountService.Update(app.UpdateAccountInput{
		UserID:   user.ID,
		Username: form.Username,
		Password: form.Password,
		Email:    form.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			c.HTML(http.StatusBadRequest, "edit_account.html", gin.H{
				"User":  user,
				"Error": "username must be 4-20 characters, email 10-40, password 8-20 if set",
			})
		case errors.Is(err, app.ErrUsernameExists):
			c.HTML(http.StatusBadRequest, "edit_account.html", gin.H{
				"User":  user,
				"Error": "that username already exists, please choose a different one",
			})
		case errors.Is(err, app.ErrEmailExists):
			c.HTML(http.StatusBadRequest, "edit_account.html", gin.H{
				"User":  user,
				"Error": "that email is already registered",
			})
		default:
			c.HTML(http.StatusInternalServerError, "edit_account.html", gin.H{
				"User":  user,
				"Error": "could not update the account, please try again",
			})
		}
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}
