// Package httpapi exposes the encode and decode pipelines over HTTP,
// accepting multipart image uploads and returning JSON with the result
// image as a PNG data URL.
package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	pixelveil "github.com/pixelveil/pixelveil-go"
	"github.com/pixelveil/pixelveil-go/internal/imaging"
)

// DefaultMaxUploadBytes caps multipart request bodies at 32 MiB.
const DefaultMaxUploadBytes = 32 << 20

// Handler serves the steganography endpoints.
type Handler struct {
	log            *slog.Logger
	maxUploadBytes int64
}

// New creates a Handler. A nil logger disables request logging.
func New(log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		log:            log,
		maxUploadBytes: DefaultMaxUploadBytes,
	}
}

// Routes returns the handler's route table.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /encode", h.handleEncode)
	mux.HandleFunc("POST /decode", h.handleDecode)
	return h.logRequests(mux)
}

// encodeResponse is the body returned by POST /encode.
type encodeResponse struct {
	EncodedImage string `json:"encoded_image"`
}

// decodeResponse is the body returned by POST /decode.
type decodeResponse struct {
	DecodedMessage string `json:"decoded_message"`
}

// errorResponse is the body returned for every failure.
type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleEncode(w http.ResponseWriter, r *http.Request) {
	pix, width, height, ok := h.readImage(w, r)
	if !ok {
		return
	}

	message, hasMessage := formValue(r, "message")
	password, hasPassword := formValue(r, "password")
	if !hasMessage || !hasPassword {
		writeError(w, http.StatusBadRequest, "missing data")
		return
	}

	encoded, err := pixelveil.Encode(pix, message, password, pixelveil.WithInPlace())
	if err != nil {
		switch {
		case errors.Is(err, pixelveil.ErrImageTooSmall),
			errors.Is(err, pixelveil.ErrMessageTooLarge):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			h.log.Error("encode failed", "error", err)
			writeError(w, http.StatusInternalServerError, "encoding failed")
		}
		return
	}

	var png bytes.Buffer
	if err := imaging.EncodePNG(&png, encoded, width, height); err != nil {
		h.log.Error("png encode failed", "error", err)
		writeError(w, http.StatusInternalServerError, "encoding failed")
		return
	}

	writeJSON(w, http.StatusOK, encodeResponse{
		EncodedImage: imaging.ToDataURL(png.Bytes()),
	})
}

func (h *Handler) handleDecode(w http.ResponseWriter, r *http.Request) {
	pix, _, _, ok := h.readImage(w, r)
	if !ok {
		return
	}

	password, hasPassword := formValue(r, "password")
	if !hasPassword {
		writeError(w, http.StatusBadRequest, "missing image or password")
		return
	}

	message, err := pixelveil.Decode(pix, password)
	if err != nil {
		// All decode failures surface the one generic message; the status
		// code carries no extra information either.
		writeError(w, http.StatusUnprocessableEntity, pixelveil.ErrNoHiddenMessage.Error())
		return
	}

	writeJSON(w, http.StatusOK, decodeResponse{DecodedMessage: message})
}

// readImage parses the multipart form and flattens the uploaded image.
// On failure it writes the error response and returns ok=false.
func (h *Handler) readImage(w http.ResponseWriter, r *http.Request) (pix []byte, width, height int, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "missing data")
		return nil, 0, 0, false
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing data")
		return nil, 0, 0, false
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unsupported or corrupt image file")
		return nil, 0, 0, false
	}

	pix, width, height, err = imaging.Flatten(img)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unsupported or corrupt image file")
		return nil, 0, 0, false
	}

	return pix, width, height, true
}

// formValue reports a form field and whether it was present at all, so an
// empty message or password is still accepted.
func formValue(r *http.Request, key string) (string, bool) {
	vs, ok := r.MultipartForm.Value[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		h.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
