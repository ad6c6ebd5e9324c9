package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"villa-service/internal/usecase/villanumber"
)

const villaNumberController = "VillaNumberAPIController"

// VillaNumberHandler handles HTTP requests for villa number operations
type VillaNumberHandler struct {
	uc  villanumber.Service
	log *zap.Logger
}

// NewVillaNumberHandler creates a new VillaNumberHandler instance
func NewVillaNumberHandler(uc villanumber.Service, log *zap.Logger) *VillaNumberHandler {
	return &VillaNumberHandler{
		uc:  uc,
		log: log,
	}
}

// ListVillaNumbers handles GET /api/v1/villa-numbers
func (h *VillaNumberHandler) ListVillaNumbers(c *gin.Context) {
	respond(c, h.log, villaNumberController, "ListVillaNumbers", func(resp *envelope) error {
		var req villanumber.ListVillaNumbersRequest

		villaID, _, err := queryInt(c, "villaId")
		if err != nil {
			return err
		}
		req.VillaID = villaID
		if req.PageNumber, req.PageSize, err = pageQuery(c); err != nil {
			return err
		}

		out, err := h.uc.ListVillaNumbers(c.Request.Context(), req)
		if err != nil {
			return err
		}

		setPagination(c, out.Page)
		resp.Succeed(http.StatusOK, out.VillaNumbers)
		return nil
	})
}

// GetVillaNumber handles GET /api/v1/villa-numbers/:id
func (h *VillaNumberHandler) GetVillaNumber(c *gin.Context) {
	respond(c, h.log, villaNumberController, "GetVillaNumber", func(resp *envelope) error {
		villaNo, err := pathID(c)
		if err != nil {
			return err
		}

		out, err := h.uc.GetVillaNumber(c.Request.Context(), villaNo)
		if err != nil {
			return err
		}

		resp.Succeed(http.StatusOK, out)
		return nil
	})
}

// CreateVillaNumber handles POST /api/v1/villa-numbers
func (h *VillaNumberHandler) CreateVillaNumber(c *gin.Context) {
	respond(c, h.log, villaNumberController, "CreateVillaNumber", func(resp *envelope) error {
		in, err := decodeBody[villanumber.VillaNumberCreateDTO](c)
		if err != nil {
			return err
		}

		out, err := h.uc.CreateVillaNumber(c.Request.Context(), in)
		if err != nil {
			return err
		}

		c.Header("Location", location(c, out.VillaNo))
		resp.Succeed(http.StatusCreated, out)
		return nil
	})
}

// UpdateVillaNumber handles PUT /api/v1/villa-numbers/:id
func (h *VillaNumberHandler) UpdateVillaNumber(c *gin.Context) {
	respond(c, h.log, villaNumberController, "UpdateVillaNumber", func(resp *envelope) error {
		villaNo, err := pathID(c)
		if err != nil {
			return err
		}
		in, err := decodeBody[villanumber.VillaNumberUpdateDTO](c)
		if err != nil {
			return err
		}

		if err := h.uc.UpdateVillaNumber(c.Request.Context(), villaNo, in); err != nil {
			return err
		}

		resp.Succeed(http.StatusOK, nil)
		return nil
	})
}

// DeleteVillaNumber handles DELETE /api/v1/villa-numbers/:id
func (h *VillaNumberHandler) DeleteVillaNumber(c *gin.Context) {
	respond(c, h.log, villaNumberController, "DeleteVillaNumber", func(resp *envelope) error {
		villaNo, err := pathID(c)
		if err != nil {
			return err
		}

		if err := h.uc.DeleteVillaNumber(c.Request.Context(), villaNo); err != nil {
			return err
		}

		resp.Succeed(http.StatusOK, nil)
		return nil
	})
}
