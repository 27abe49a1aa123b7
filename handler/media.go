package handler

import (
	"bytes"
	baseHttp "net/http"
	"time"

	"golang.org/x/image/webp"

	"github.com/Samuel-Loga/Personal-Website/handler/payload"
	"github.com/Samuel-Loga/Personal-Website/pkg/endpoint"
	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
	"github.com/Samuel-Loga/Personal-Website/pkg/storage"
)

// maxUploadSize caps editor image uploads.
const maxUploadSize = 5 << 20

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// MediaHandler receives editor image uploads and pushes them to the object
// store under a timestamped name.
type MediaHandler struct {
	Store storage.ObjectStore
}

func MakeMediaHandler(store storage.ObjectStore) MediaHandler {
	return MediaHandler{Store: store}
}

func (h *MediaHandler) Upload(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return endpoint.LogBadRequestError("invalid multipart form", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return endpoint.LogBadRequestError("missing file field", err)
	}
	defer portal.CloseWithLog(file)

	raw, err := portal.ReadWithSizeLimit(file, maxUploadSize)
	if err != nil {
		return endpoint.LogBadRequestError("the file is too large", err)
	}

	contentType := baseHttp.DetectContentType(raw)

	if _, ok := allowedImageTypes[contentType]; !ok {
		return endpoint.BadRequestError("only jpeg, png, gif and webp images are accepted")
	}

	// DetectContentType only checks magic bytes; make sure webp payloads
	// actually decode before shipping them.
	if contentType == "image/webp" {
		if _, err := webp.DecodeConfig(bytes.NewReader(raw)); err != nil {
			return endpoint.LogBadRequestError("the webp image is corrupted", err)
		}
	}

	name := storage.ObjectName(time.Now(), header.Filename)

	if err := h.Store.Upload(r.Context(), name, bytes.NewReader(raw), contentType); err != nil {
		return endpoint.LogInternalError("Error storing the image", err)
	}

	data := payload.MediaResponse{
		Name: name,
		URL:  h.Store.PublicURL(name),
	}

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondCreated(data); err != nil {
		return endpoint.LogInternalError("failed to encode response", err)
	}

	return nil
}
