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

type ProductHandler struct {
	Svc    *application.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

type createProductRequest struct {
	Nombre      string  `json:"nombre" binding:"required"`
	Precio      float64 `json:"precio" binding:"required"`
	Descripcion string  `json:"descripcion" binding:"required"`
}

// replaceProductRequest uses pointers so absent fields stay untouched.
type replaceProductRequest struct {
	Nombre      *string  `json:"nombre"`
	Precio      *float64 `json:"precio"`
	Descripcion *string  `json:"descripcion"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "Faltan datos del producto", response.KindValidation, validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), req.Nombre, req.Precio, req.Descripcion)
	if err != nil {
		h.Logger.WithError(err).Error("create product failed")
		response.Fail(c, http.StatusInternalServerError, "Error al agregar el producto", response.KindStore)
		return
	}
	response.OK(c, http.StatusCreated, "Producto agregado exitosamente", gin.H{"producto": p})
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list products failed")
		response.Fail(c, http.StatusInternalServerError, "Error al obtener los productos", response.KindStore)
		return
	}
	response.OK(c, http.StatusOK, "Productos obtenidos", gin.H{"productos": products})
}

func (h *ProductHandler) Replace(c *gin.Context) {
	var req replaceProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "Faltan datos del producto", response.KindValidation, validation.ToDetails(err))
		return
	}

	fields := repo.ProductFields{Name: req.Nombre, Price: req.Precio, Description: req.Descripcion}
	p, err := h.Svc.Replace(c.Request.Context(), c.Param("id"), fields)
	if errors.Is(err, application.ErrProductNotFound) {
		response.Fail(c, http.StatusNotFound, "Producto no encontrado", response.KindNotFound)
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("replace product failed")
		response.Fail(c, http.StatusInternalServerError, "Error al actualizar el producto", response.KindStore)
		return
	}
	response.OK(c, http.StatusOK, "Producto actualizado", gin.H{"producto": p})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	p, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, application.ErrProductNotFound) {
		response.Fail(c, http.StatusNotFound, "Producto no encontrado", response.KindNotFound)
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("delete product failed")
		response.Fail(c, http.StatusInternalServerError, "Error al eliminar el producto", response.KindStore)
		return
	}
	response.OK(c, http.StatusOK, "Producto eliminado", gin.H{"producto": p})
}
