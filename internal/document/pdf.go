// Package document renders reservation confirmation documents. Files are
// named <reservation id>.pdf inside the download directory, which is also
// how the download endpoint locates them later.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Confirmation holds the fields printed on a confirmation document.
// Dates arrive already formatted as DD/MM/YYYY HH:MM:SS and Total as a
// localized currency string.
type Confirmation struct {
	ReservationID string
	UserName      string
	CheckInDate   string
	CheckOutDate  string
	RoomNumbers   []string
	Total         string
}

// Path returns the deterministic location of a confirmation document for
// a reservation id inside dir. It does not check existence.
func Path(dir, reservationID string) string {
	return filepath.Join(dir, reservationID+".pdf")
}

// RenderConfirmation writes the confirmation PDF for a reservation into
// dir, creating the directory if needed.
func RenderConfirmation(dir string, c Confirmation) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	// Single landscape-ish 600x400pt page, text lines from the top left.
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: 600, Ht: 400},
	})
	pdf.AddPage()

	const margin = 50.0
	y := 50.0
	line := func(text string, size float64) {
		pdf.SetFont("Helvetica", "", size)
		pdf.Text(margin, y, text)
		y += size + 10
	}

	line(fmt.Sprintf("Reserva Confirmada para: %s", c.UserName), 24)
	line(fmt.Sprintf("Data de checkin: %s", c.CheckInDate), 16)
	line(fmt.Sprintf("Data de checkout: %s", c.CheckOutDate), 16)
	line(fmt.Sprintf("Quartos: %s", strings.Join(c.RoomNumbers, ", ")), 16)
	line(fmt.Sprintf("Valor: %s", c.Total), 16)

	return pdf.OutputFileAndClose(Path(dir, c.ReservationID))
}
