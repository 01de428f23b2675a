package controllers

import (
	"net/http"

	"github.com/htoohtoo/storefront/app/store"
	"github.com/htoohtoo/storefront/pkg/auth"
	"github.com/htoohtoo/storefront/pkg/bind"
	"github.com/htoohtoo/storefront/pkg/logger"
	"github.com/htoohtoo/storefront/pkg/response"
	"github.com/htoohtoo/storefront/pkg/session"
)

type AuthController struct {
	manager *store.Manager
}

func NewAuthController(manager *store.Manager) *AuthController {
	return &AuthController{manager: manager}
}

func (c *AuthController) container(r *http.Request) *store.Container {
	return c.manager.Get(session.FromCtx(r.Context()))
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates the session. The response carries the public identity
// and a bearer token for the admin API.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	ctr := c.container(r)
	if !ctr.Auth.Login(body.Email, body.Password) {
		response.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	user, _ := ctr.Auth.User()
	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		logger.Error("auth: token generation failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	response.Success(w, map[string]any{
		"user":  user,
		"token": token,
	})
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register creates a customer account and signs it in.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	ctr := c.container(r)
	if !ctr.Auth.Register(body.Name, body.Email, body.Password) {
		response.Error(w, http.StatusConflict, "an account with this email already exists")
		return
	}

	user, _ := ctr.Auth.User()
	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		logger.Error("auth: token generation failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	response.Created(w, map[string]any{
		"user":  user,
		"token": token,
	})
}

// Logout clears the identity and its snapshot.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	c.container(r).Auth.Logout()
	response.NoContent(w)
}

// Me returns the current identity, 401 when signed out.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := c.container(r).Auth.User()
	if !ok {
		response.Unauthorized(w)
		return
	}
	response.Success(w, user)
}

// UpdateProfile merges the provided fields into the current identity.
func (c *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var body store.ProfileUpdate
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	ctr := c.container(r)
	if !ctr.Auth.IsAuthenticated() {
		response.Unauthorized(w)
		return
	}
	if !ctr.Auth.UpdateProfile(body) {
		response.Error(w, http.StatusConflict, "email already in use")
		return
	}

	user, _ := ctr.Auth.User()
	response.Success(w, user)
}
