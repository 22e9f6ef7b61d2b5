package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"chassisml.io/coreservice/internal/buildserver/contextcache"
	"chassisml.io/coreservice/internal/buildserver/manager"
)

// build decodes the multipart /build request: a build_config JSON part
// bounded at 1 MiB followed by a build_context binary part bounded at
// 20 GiB. Multipart parts are only valid for reading until the next part
// is requested, so build_context is streamed straight into the manager as
// soon as it is encountered rather than buffered — the client is expected
// to send build_config first, matching the only client this server talks
// to. A missing or unrecognized User-Agent is rejected before either part
// is read, so a bad client never causes a disk write.
func (h *handlers) build(w http.ResponseWriter, r *http.Request) {
	if r.UserAgent() != requiredUserAgent {
		writeText(w, http.StatusBadRequest, rejectedUserAgentBody)
		return
	}

	reader, err := r.MultipartReader()
	if err != nil {
		writeText(w, http.StatusBadRequest, "expected a multipart/form-data request")
		return
	}

	var config manager.BuildConfig
	var haveConfig bool

	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			if !haveConfig {
				writeText(w, http.StatusBadRequest, "request is missing the build_config part")
			} else {
				writeText(w, http.StatusBadRequest, "request is missing the build_context part")
			}
			return
		}
		if err != nil {
			writeText(w, http.StatusBadRequest, "malformed multipart body")
			return
		}

		switch part.FormName() {
		case "build_config":
			limited := &io.LimitedReader{R: part, N: maxConfigSize + 1}
			body, err := io.ReadAll(limited)
			if err != nil {
				writeText(w, http.StatusBadRequest, "could not read build_config")
				return
			}
			if limited.N <= 0 {
				writeText(w, http.StatusBadRequest, "build_config exceeds 1 MiB limit")
				return
			}
			if err := json.Unmarshal(body, &config); err != nil {
				writeText(w, http.StatusBadRequest, "build_config is not valid JSON")
				return
			}
			if config.ImageName == "" || config.Tag == "" {
				writeText(w, http.StatusBadRequest, "build_config must set image_name and tag")
				return
			}
			haveConfig = true

		case "build_context":
			if !haveConfig {
				writeText(w, http.StatusBadRequest, "build_context must follow build_config")
				return
			}
			contextLimit := &io.LimitedReader{R: part, N: maxContextSize + 1}
			h.acceptBuild(w, r, config, contextLimit)
			return
		}
	}
}

func (h *handlers) acceptBuild(w http.ResponseWriter, r *http.Request, config manager.BuildConfig, context *io.LimitedReader) {
	buildID, err := manager.Build(r.Context(), h.state, config, context)
	if err != nil {
		status := http.StatusInternalServerError
		message := err.Error()
		if errors.Is(err, contextcache.ErrContextTooLarge) {
			status = http.StatusBadRequest
			message = "build_context exceeds 20 GiB limit"
		} else {
			h.state.Log.Error("build orchestration failed", zap.Error(err))
		}
		writeJSON(w, status, manager.BuildStatusResponse{
			Completed:    true,
			Success:      false,
			ErrorMessage: message,
		})
		return
	}

	writeJSON(w, http.StatusOK, manager.BuildStatusResponse{
		Completed:     false,
		Success:       false,
		RemoteBuildID: buildID,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
