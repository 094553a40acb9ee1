package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carpoolhub/internal/app"
	"carpoolhub/internal/model"
	"carpoolhub/internal/transport/http/session"
)

type BoardHandler struct {
	authService *app.AuthService
	postService *app.PostService
}

type CreatePostForm struct {
	Location string `form:"location" binding:"required"`
}

func NewBoardHandler(authService *app.AuthService, postService *app.PostService) *BoardHandler {
	return &BoardHandler{authService: authService, postService: postService}
}

func (h *BoardHandler) Dashboard(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	posts, err := h.postService.ListAll()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "dashboard.html", gin.H{
			"User":  user,
			"Error": "could not load posts",
		})
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":  user,
		"Posts": posts,
	})
}

func (h *BoardHandler) ShowCreate(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "create_pool.html", gin.H{"User": user})
}

func (h *BoardHandler) Create(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var form CreatePostForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "create_pool.html", gin.H{
			"User":  user,
			"Error": "location is required",
		})
		return
	}

	_, err := h.postService.Create(app.CreatePostInput{
		UserID:   user.ID,
		Location: form.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrLocationEmpty):
			c.HTML(http.StatusBadRequest, "create_pool.html", gin.H{
				"User":  user,
				"Error": "location is required",
			})
		default:
			c.HTML(http.StatusInternalServerError, "create_pool.html", gin.H{
				"User":  user,
				"Error": "could not create the post, please try again",
			})
		}
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// currentUser resolves the session user ID to its row. A session pointing at a
// missing row is treated as logged out.
func (h *BoardHandler) currentUser(c *gin.Context) (*model.User, bool) {
	userID, ok := session.LoginUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return nil, false
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil || user == nil {
		_ = session.Clear(c)
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return nil, false
	}
	return user, true
}
