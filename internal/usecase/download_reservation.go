package usecase

import (
	"context"
	"net/http"
	"os"

	"github.com/lluanbs/celestial-resort/internal/document"
)

// DownloadReservation locates a previously generated confirmation
// document by its deterministic name (<id>.pdf) in the download
// directory. A missing document is not treated as a fault: the verdict
// carries success=true with a 400 status and a negative-result message,
// which is how the API has always reported it.
type DownloadReservation struct {
	dir string
}

func NewDownloadReservation(dir string) *DownloadReservation {
	return &DownloadReservation{dir: dir}
}

func (uc *DownloadReservation) Run(_ context.Context, reservationID string) (Verdict, error) {
	path := document.Path(uc.dir, reservationID)
	if _, err := os.Stat(path); err != nil {
		return Verdict{Status: http.StatusBadRequest, Success: true, Message: "Reservation confirmation not found!"}, nil
	}
	return success("Reservation downloaded successfully!", path), nil
}
