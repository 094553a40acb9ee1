// Package session binds an authenticated user ID to the request's session.
// Only the ID is stored; every request re-reads the user row, so identity can
// never leak between concurrent users.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUserKey = "LOGIN_USER_ID"

func SetLoginUser(c *gin.Context, userID uint) error {
	s := sessions.Default(c)
	s.Set(loginUserKey, userID)
	return s.Save()
}

func LoginUserID(c *gin.Context) (uint, bool) {
	s := sessions.Default(c)
	if obj := s.Get(loginUserKey); obj != nil {
		if id, ok := obj.(uint); ok && id != 0 {
			return id, true
		}
	}
	return 0, false
}

func IsLogin(c *gin.Context) bool {
	_, ok := LoginUserID(c)
	return ok
}

func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
