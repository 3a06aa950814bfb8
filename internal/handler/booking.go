package handler

import (
	"net/http"

	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListCurrentUserBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListByUser(c.Request.Context(), currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserBookingsResponse(bookings))
}

// ListSpotBookings shows the spot owner every booking with its guest, and
// anyone else only the booked date ranges.
func (h *Handler) ListSpotBookings(c *ginext.Context) {
	spotID, ok := pathID(c, "spotId")
	if !ok {
		return
	}

	bookings, isOwner, err := h.bookingService.ListBySpot(c.Request.Context(), spotID, currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	if isOwner {
		c.JSON(http.StatusOK, dto.ToOwnerBookingsResponse(bookings))
		return
	}

	c.JSON(http.StatusOK, dto.ToGuestBookingsResponse(bookings))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	spotID, ok := pathID(c, "spotId")
	if !ok {
		return
	}

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}

	dates, err := req.DateRange()
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), spotID, currentUser(c), dates)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}

	dates, err := req.DateRange()
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.Update(c.Request.Context(), bookingID, currentUser(c), dates)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), bookingID, currentUser(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Deleted())
}
