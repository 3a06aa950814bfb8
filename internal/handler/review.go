package handler

import (
	"net/http"

	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListSpotReviews(c *ginext.Context) {
	spotID, ok := pathID(c, "spotId")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListBySpot(c.Request.Context(), spotID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewListResponse(reviews))
}

func (h *Handler) ListCurrentUserReviews(c *ginext.Context) {
	reviews, err := h.reviewService.ListByUser(c.Request.Context(), currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewListResponse(reviews))
}

func (h *Handler) CreateReview(c *ginext.Context) {
	spotID, ok := pathID(c, "spotId")
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), spotID, currentUser(c), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *Handler) UpdateReview(c *ginext.Context) {
	reviewID, ok := pathID(c, "reviewId")
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), reviewID, currentUser(c), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

func (h *Handler) DeleteReview(c *ginext.Context) {
	reviewID, ok := pathID(c, "reviewId")
	if !ok {
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), reviewID, currentUser(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Deleted())
}

func (h *Handler) AddReviewImage(c *ginext.Context) {
	reviewID, ok := pathID(c, "reviewId")
	if !ok {
		return
	}

	var req dto.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}

	img, err := h.reviewService.AddImage(c.Request.Context(), reviewID, currentUser(c), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewImageResponse(img))
}

func (h *Handler) DeleteReviewImage(c *ginext.Context) {
	imageID, ok := pathID(c, "imageId")
	if !ok {
		return
	}

	if err := h.reviewService.DeleteImage(c.Request.Context(), imageID, currentUser(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Deleted())
}
