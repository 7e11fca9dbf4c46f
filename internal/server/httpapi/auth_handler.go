package httpapi

import (
	"net/http"

	"github.com/avelichko/garagevault/internal/server/users"
	"github.com/labstack/echo/v4"
)

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPart struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type authResp struct {
	Token string   `json:"token"`
	User  userPart `json:"user"`
}

func toAuthResp(res *users.AuthResult) authResp {
	return authResp{
		Token: res.Token,
		User:  userPart{ID: res.User.ID, Email: res.User.Email},
	}
}

func (s *Server) handleRegister(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	res, err := s.users.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toAuthResp(res))
}

func (s *Server) handleLogin(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	res, err := s.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, toAuthResp(res))
}

func (s *Server) handleMe(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"userId": currentUserID(c)})
}
