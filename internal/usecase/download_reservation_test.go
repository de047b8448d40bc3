package usecase

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownload_MissingDocument(t *testing.T) {
	uc := NewDownloadReservation(t.TempDir())
	v, err := uc.Run(context.Background(), "res-1")

	assert.NoError(t, err)
	// A missing document is reported with success=true and a 400: the
	// lookup worked, there is just nothing to hand back.
	assert.True(t, v.Success)
	assert.Equal(t, http.StatusBadRequest, v.Status)
	assert.Equal(t, "Reservation confirmation not found!", v.Message)
	assert.Nil(t, v.Data)
}

func TestDownload_DocumentPresent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "res-1.pdf")
	assert.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))

	uc := NewDownloadReservation(dir)
	v, err := uc.Run(context.Background(), "res-1")

	assert.NoError(t, err)
	assert.True(t, v.Success)
	assert.Equal(t, http.StatusOK, v.Status)
	assert.Equal(t, "Reservation downloaded successfully!", v.Message)
	assert.Equal(t, path, v.Data)
}
