package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/table-booking/internal/domain/identity"
	"github.com/BruksfildServices01/table-booking/internal/dto"
	"github.com/BruksfildServices01/table-booking/internal/httperr"
	"github.com/BruksfildServices01/table-booking/internal/httpresp"
	ucAuth "github.com/BruksfildServices01/table-booking/internal/usecase/auth"
)

type AuthHandler struct {
	signUp *ucAuth.SignUp
	signIn *ucAuth.SignIn
	log    logrus.FieldLogger
}

func NewAuthHandler(signUp *ucAuth.SignUp, signIn *ucAuth.SignIn, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{signUp: signUp, signIn: signIn, log: log}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Fail(c, h.log, httperr.Validation("body", err.Error()))
		return
	}

	err := h.signUp.Execute(c.Request.Context(), identity.SignUpInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		httperr.Fail(c, h.log, err)
		return
	}

	httpresp.Empty(c)
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Fail(c, h.log, httperr.Validation("body", err.Error()))
		return
	}

	token, err := h.signIn.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Fail(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.SignInResponse{AccessToken: token})
}
