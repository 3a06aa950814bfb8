package handler

import (
	"net/http"

	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListSpots(c *ginext.Context) {
	spots, err := h.spotService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSpotListResponse(spots))
}

func (h *Handler) ListCurrentUserSpots(c *ginext.Context) {
	spots, err := h.spotService.ListByOwner(c.Request.Context(), currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSpotListResponse(spots))
}

func (h *Handler) GetSpot(c *ginext.Context) {
	spotID, ok := pathID(c, "spotId")
	if !ok {
		return
	}

	details, err := h.spotService.GetDetails(c.Request.Context(), spotID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSpotDetailsResponse(details))
}

func (h *Handler) CreateSpot(c *ginext.Context) {
	var req dto.SpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}

	spot, err := h.spotService.Create(c.Request.Context(), currentUser(c), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSpotResponse(spot))
}

func (h *Handler) UpdateSpot(c *ginext.Context) {
	spotID, ok := pathID(c, "spotId")
	if !ok {
		return
	}

	var req dto.SpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}

	spot, err := h.spotService.Update(c.Request.Context(), spotID, currentUser(c), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSpotResponse(spot))
}

func (h *Handler) DeleteSpot(c *ginext.Context) {
	spotID, ok := pathID(c, "spotId")
	if !ok {
		return
	}

	if err := h.spotService.Delete(c.Request.Context(), spotID, currentUser(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Deleted())
}

func (h *Handler) AddSpotImage(c *ginext.Context) {
	spotID, ok := pathID(c, "spotId")
	if !ok {
		return
	}

	var req dto.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}

	img, err := h.spotService.AddImage(c.Request.Context(), spotID, currentUser(c), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSpotImageResponse(img))
}

func (h *Handler) DeleteSpotImage(c *ginext.Context) {
	imageID, ok := pathID(c, "imageId")
	if !ok {
		return
	}

	if err := h.spotService.DeleteImage(c.Request.Context(), imageID, currentUser(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Deleted())
}
