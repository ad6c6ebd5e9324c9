package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	villauc "villa-service/internal/usecase/villa"
)

const villaController = "VillaAPIController"

// VillaHandler handles HTTP requests for villa operations
type VillaHandler struct {
	uc  villauc.Service
	log *zap.Logger
}

// NewVillaHandler creates a new VillaHandler instance
func NewVillaHandler(uc villauc.Service, log *zap.Logger) *VillaHandler {
	return &VillaHandler{
		uc:  uc,
		log: log,
	}
}

// ListVillas handles GET /api/v1/villas
func (h *VillaHandler) ListVillas(c *gin.Context) {
	respond(c, h.log, villaController, "ListVillas", func(resp *envelope) error {
		var req villauc.ListVillasRequest

		occupancy, ok, err := queryInt(c, "occupancy")
		if err != nil {
			return err
		}
		if ok {
			req.Occupancy = &occupancy
		}
		req.Search = c.Query("search")
		if req.PageNumber, req.PageSize, err = pageQuery(c); err != nil {
			return err
		}

		out, err := h.uc.ListVillas(c.Request.Context(), req)
		if err != nil {
			return err
		}

		setPagination(c, out.Page)
		resp.Succeed(http.StatusOK, out.Villas)
		return nil
	})
}

// GetVilla handles GET /api/v1/villas/:id
func (h *VillaHandler) GetVilla(c *gin.Context) {
	respond(c, h.log, villaController, "GetVilla", func(resp *envelope) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		out, err := h.uc.GetVilla(c.Request.Context(), id)
		if err != nil {
			return err
		}

		resp.Succeed(http.StatusOK, out)
		return nil
	})
}

// CreateVilla handles POST /api/v1/villas
func (h *VillaHandler) CreateVilla(c *gin.Context) {
	respond(c, h.log, villaController, "CreateVilla", func(resp *envelope) error {
		in, err := decodeBody[villauc.VillaCreateDTO](c)
		if err != nil {
			return err
		}

		out, err := h.uc.CreateVilla(c.Request.Context(), in)
		if err != nil {
			return err
		}

		c.Header("Location", location(c, out.ID))
		resp.Succeed(http.StatusCreated, out)
		return nil
	})
}

// UpdateVilla handles PUT /api/v1/villas/:id
func (h *VillaHandler) UpdateVilla(c *gin.Context) {
	respond(c, h.log, villaController, "UpdateVilla", func(resp *envelope) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}
		in, err := decodeBody[villauc.VillaUpdateDTO](c)
		if err != nil {
			return err
		}

		if err := h.uc.UpdateVilla(c.Request.Context(), id, in); err != nil {
			return err
		}

		resp.Succeed(http.StatusOK, nil)
		return nil
	})
}

// DeleteVilla handles DELETE /api/v1/villas/:id
func (h *VillaHandler) DeleteVilla(c *gin.Context) {
	respond(c, h.log, villaController, "DeleteVilla", func(resp *envelope) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		if err := h.uc.DeleteVilla(c.Request.Context(), id); err != nil {
			return err
		}

		resp.Succeed(http.StatusOK, nil)
		return nil
	})
}
