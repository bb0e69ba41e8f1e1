package controller

import (
	"github.com/digimenu/catalog-service/internal/dto"
	"github.com/digimenu/catalog-service/internal/service"
	"github.com/digimenu/catalog-service/pkg/errs"
	"github.com/digimenu/catalog-service/pkg/response"
	"github.com/digimenu/catalog-service/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	service service.AuthService
}

func CreateAuthController(e *echo.Group, service service.AuthService, isLoggedIn echo.MiddlewareFunc) {
	c := AuthController{
		service: service,
	}
	e.POST("/auth/login", c.Login)
	e.GET("/auth/session", c.GetSession, isLoggedIn)
}

func (c *AuthController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	respPayload, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *AuthController) GetSession(e echo.Context) error {
	username, role := utils.ExtractTokenRole(e)
	if role == "" {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	return response.WriteSuccessResponse(e, "", dto.SessionResponse{
		Username: username,
		Role:     role,
	})
}
