package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fullstack-game/api/internal/application"
	repo "github.com/fullstack-game/api/internal/domain/repository"
	"github.com/fullstack-game/api/pkg/response"
	"github.com/fullstack-game/api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Nombre   string `json:"nombre" binding:"required"`
	Correo   string `json:"correo" binding:"required"`
	Password string `json:"password" binding:"required"`
	Rol      string `json:"rol"`
}

// loginRequest carries no presence constraints: a missing correo resolves to
// an unknown user and reports 401, matching the deployed behavior.
type loginRequest struct {
	Correo   string `json:"correo"`
	Password string `json:"password"`
}

// replaceUserRequest limits replacement to name and email; role and password
// are never touched through this route.
type replaceUserRequest struct {
	Nombre *string `json:"nombre"`
	Correo *string `json:"correo"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "Faltan datos para crear el usuario", response.KindValidation, validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Nombre, req.Correo, req.Password, req.Rol)
	if err != nil {
		h.Logger.WithError(err).Error("create user failed")
		response.Fail(c, http.StatusInternalServerError, "Error al crear el usuario", response.KindStore)
		return
	}
	response.OK(c, http.StatusCreated, "Usuario creado exitosamente", gin.H{"usuario": u})
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list users failed")
		response.Fail(c, http.StatusInternalServerError, "Error al obtener los usuarios", response.KindStore)
		return
	}
	response.OK(c, http.StatusOK, "Usuarios obtenidos", gin.H{"usuarios": users})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "Faltan datos para iniciar sesión", response.KindValidation, validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Login(c.Request.Context(), req.Correo, req.Password)
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		response.Fail(c, http.StatusUnauthorized, "Usuario no encontrado", response.KindAuthFailed)
		return
	case errors.Is(err, application.ErrWrongPassword):
		response.Fail(c, http.StatusUnauthorized, "Contraseña incorrecta", response.KindAuthFailed)
		return
	case err != nil:
		h.Logger.WithError(err).Error("login failed")
		response.Fail(c, http.StatusInternalServerError, "Error en el servidor", response.KindStore)
		return
	}
	response.OK(c, http.StatusOK, "Inicio de sesión exitoso", gin.H{"usuario": u})
}

func (h *UserHandler) Replace(c *gin.Context) {
	var req replaceUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "Faltan datos del usuario", response.KindValidation, validation.ToDetails(err))
		return
	}

	fields := repo.UserFields{Name: req.Nombre, Email: req.Correo}
	u, err := h.Svc.Replace(c.Request.Context(), c.Param("id"), fields)
	if errors.Is(err, application.ErrUserNotFound) {
		response.Fail(c, http.StatusNotFound, "Usuario no encontrado", response.KindNotFound)
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("replace user failed")
		response.Fail(c, http.StatusInternalServerError, "Error al actualizar el usuario", response.KindStore)
		return
	}
	response.OK(c, http.StatusOK, "Usuario actualizado", gin.H{"usuario": u})
}

func (h *UserHandler) Delete(c *gin.Context) {
	_, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, application.ErrUserNotFound) {
		response.Fail(c, http.StatusNotFound, "Usuario no encontrado", response.KindNotFound)
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("delete user failed")
		response.Fail(c, http.StatusInternalServerError, "Error al eliminar el usuario", response.KindStore)
		return
	}
	response.OK(c, http.StatusOK, "Usuario eliminado con éxito", nil)
}
