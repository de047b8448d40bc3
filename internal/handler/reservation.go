package handler

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lluanbs/celestial-resort/internal/usecase"
)

// maxReceiptBytes caps uploaded payment receipts at 5MiB.
const maxReceiptBytes = 5 << 20

// receiptExtensions lists the accepted payment receipt formats.
var receiptExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ReservationHandler exposes the reservation lifecycle endpoints. JWT
// authentication has already run by the time these handlers execute.
type ReservationHandler struct {
	Create    *usecase.CreateReservation
	Confirm   *usecase.ConfirmReservation
	CheckIn   *usecase.CheckInReservation
	Download  *usecase.DownloadReservation
	UploadDir string
}

func NewReservationHandler(create *usecase.CreateReservation, confirm *usecase.ConfirmReservation, checkIn *usecase.CheckInReservation, download *usecase.DownloadReservation, uploadDir string) *ReservationHandler {
	return &ReservationHandler{
		Create:    create,
		Confirm:   confirm,
		CheckIn:   checkIn,
		Download:  download,
		UploadDir: uploadDir,
	}
}

// CreateReservation handles POST /v1/reservation.
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req usecase.CreateReservationInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.UserID == "" || len(req.Rooms) == 0 || req.CheckInDate == "" || req.CheckOutDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id/rooms/check_in_date/check_out_date required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	v, err := h.Create.Run(ctx, req)
	if err != nil {
		return internalError(c)
	}
	return writeVerdict(c, v)
}

// ConfirmReservation handles POST /v1/reservation/verification. The
// multipart payment_receipt file is validated and stored before the
// reservation is confirmed; the use case itself never sees the file.
func (h *ReservationHandler) ConfirmReservation(c echo.Context) error {
	reservationID := strings.TrimSpace(c.FormValue("id"))
	if reservationID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id required"})
	}

	file, err := c.FormFile("payment_receipt")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "payment_receipt file is required"})
	}
	if file.Size > maxReceiptBytes {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "payment_receipt exceeds the 5MB limit"})
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !receiptExtensions[ext] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "payment_receipt must be pdf, jpg, jpeg or png"})
	}
	if err := h.saveReceipt(file, reservationID+ext); err != nil {
		return internalError(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v, err := h.Confirm.Run(ctx, reservationID)
	if err != nil {
		return internalError(c)
	}
	return writeVerdict(c, v)
}

// CheckInReservation handles POST /v1/reservation/checkin.
func (h *ReservationHandler) CheckInReservation(c echo.Context) error {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v, err := h.CheckIn.Run(ctx, req.ID)
	if err != nil {
		return internalError(c)
	}
	return writeVerdict(c, v)
}

// DownloadReservation handles POST /v1/reservation/download. On success
// the confirmation PDF is streamed as an attachment; otherwise the
// verdict is written as JSON.
func (h *ReservationHandler) DownloadReservation(c echo.Context) error {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id required"})
	}

	v, err := h.Download.Run(c.Request().Context(), req.ID)
	if err != nil {
		return internalError(c)
	}
	if path, ok := v.Data.(string); ok && v.Status == http.StatusOK {
		return c.Attachment(path, filepath.Base(path))
	}
	return writeVerdict(c, v)
}

func (h *ReservationHandler) saveReceipt(file *multipart.FileHeader, name string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return err
	}
	dst, err := os.Create(filepath.Join(h.UploadDir, name))
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}
