package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"frontdesk/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type identityResponse struct {
	Status   string `json:"status"`
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
	Error    string `json:"error"`
	Data     struct {
		Name      string `json:"name"`
		DocNumber string `json:"doc_number"`
	} `json:"data"`
}

type identityFixture struct {
	directory *fakeDirectory
	extractor *fakeExtractor
	repo      *fakeBookingRepo
	router    *gin.Engine
}

func newIdentityFixture(t *testing.T) *identityFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &identityFixture{
		directory: &fakeDirectory{result: onlineKiosk()},
		extractor: &fakeExtractor{},
		repo:      &fakeBookingRepo{},
	}
	h := NewIdentityHandler(f.directory, f.extractor, f.repo, zap.NewNop())

	f.router = gin.New()
	f.router.POST("/api/v1/identity/scan", h.ScanIdentity)
	return f
}

func scanRequest(t *testing.T, serial, bookingID string, withImage bool) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if serial != "" {
		require.NoError(t, w.WriteField("serial_number", serial))
	}
	if bookingID != "" {
		require.NoError(t, w.WriteField("booking_id", bookingID))
	}
	if withImage {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="id_card_image"; filename="id.jpg"`)
		hdr.Set("Content-Type", "image/jpeg")
		part, err := w.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write([]byte{0xFF, 0xD8, 0xFF, 0xE0})
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/identity/scan", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func doScan(t *testing.T, f *identityFixture, req *http.Request) (*httptest.ResponseRecorder, identityResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var resp identityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestScanIdentityVerifiesMatchingName(t *testing.T) {
	f := newIdentityFixture(t)
	f.repo.seed(models.Booking{
		Code: "1001", HotelID: "hotel-1",
		GuestName: "Sarah Connor", Status: models.BookingConfirmed,
	})
	f.extractor.doc = &models.IdentityDocument{FullName: "Sarah Connor", DocumentNumber: "X123456"}

	rec, resp := doScan(t, f, scanRequest(t, "ATC-SN-2026-001", "1001", true))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "success", resp.Status)
	assert.True(t, resp.Verified)
	assert.Equal(t, "Identity Verified Successfully", resp.Message)
	assert.Equal(t, "Sarah Connor", resp.Data.Name)
	assert.Equal(t, "X123456", resp.Data.DocNumber)
	assert.True(t, f.repo.bookings[0].IdentityVerified)
}

func TestScanIdentityAcceptsPartialNameContainment(t *testing.T) {
	f := newIdentityFixture(t)
	f.repo.seed(models.Booking{
		Code: "1001", HotelID: "hotel-1",
		GuestName: "Sarah Connor", Status: models.BookingConfirmed,
	})
	// The document carries the full legal name in a different casing; the
	// booking name is contained within it.
	f.extractor.doc = &models.IdentityDocument{FullName: "SARAH CONNOR-REESE", DocumentNumber: "X123456"}

	rec, resp := doScan(t, f, scanRequest(t, "ATC-SN-2026-001", "1001", true))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Verified)
}

func TestScanIdentityRejectsMismatch(t *testing.T) {
	f := newIdentityFixture(t)
	f.repo.seed(models.Booking{
		Code: "1001", HotelID: "hotel-1",
		GuestName: "Sarah Connor", Status: models.BookingConfirmed,
	})
	f.extractor.doc = &models.IdentityDocument{FullName: "John Doe", DocumentNumber: "Y999"}

	rec, resp := doScan(t, f, scanRequest(t, "ATC-SN-2026-001", "1001", true))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "failed", resp.Status)
	assert.False(t, resp.Verified)
	assert.Equal(t, "Name Mismatch: Booking says 'Sarah Connor', ID says 'John Doe'", resp.Message)
	assert.False(t, f.repo.bookings[0].IdentityVerified)
}

func TestScanIdentityUnknownBooking(t *testing.T) {
	f := newIdentityFixture(t)
	f.extractor.doc = &models.IdentityDocument{FullName: "Sarah Connor"}

	rec, resp := doScan(t, f, scanRequest(t, "ATC-SN-2026-001", "9999", true))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Booking not found", resp.Error)
}

func TestScanIdentityMissingFields(t *testing.T) {
	f := newIdentityFixture(t)
	f.extractor.doc = &models.IdentityDocument{FullName: "Sarah Connor"}

	cases := []struct {
		name string
		req  *http.Request
		want string
	}{
		{"missing serial", scanRequest(t, "", "1001", true), "serial_number is required"},
		{"missing booking id", scanRequest(t, "ATC-SN-2026-001", "", true), "Missing booking_id"},
		{"missing image", scanRequest(t, "ATC-SN-2026-001", "1001", false), "No ID image uploaded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp := doScan(t, f, tc.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.want, resp.Error)
		})
	}
}

func TestScanIdentityExtractionFailure(t *testing.T) {
	f := newIdentityFixture(t)
	f.repo.seed(models.Booking{Code: "1001", HotelID: "hotel-1", GuestName: "Sarah Connor"})
	f.extractor.err = assert.AnError

	rec, resp := doScan(t, f, scanRequest(t, "ATC-SN-2026-001", "1001", true))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Identity Verification Failed", resp.Error)
}
