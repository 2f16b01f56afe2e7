// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/internal/utils"
	"github.com/MKhiriev/go-whitelist-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.services.WhitelistService.List(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listNames", err)
		return
	}

	utils.WriteJSON(w, models.NamesResponse{Names: nonNil(names), Length: len(names)}, http.StatusOK)
}

func (h *Handler) addName(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.addName", err)
		return
	}

	var req models.NameRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.addName", fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}

	change, err := h.services.WhitelistService.AddName(r.Context(), actor, req.Name)
	if err != nil {
		writeError(w, r, "*Handler.addName", err)
		return
	}

	status := http.StatusOK
	if change.Changed {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, change, status)
}

func (h *Handler) removeName(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.removeName", err)
		return
	}

	change, err := h.services.WhitelistService.RemoveName(r.Context(), actor, chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, "*Handler.removeName", err)
		return
	}

	utils.WriteJSON(w, change, http.StatusOK)
}

func (h *Handler) listRemoteNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.services.WhitelistService.RemoteList(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listRemoteNames", err)
		return
	}

	utils.WriteJSON(w, models.RemoteListResponse{Names: nonNil(names), Length: len(names)}, http.StatusOK)
}

func (h *Handler) exportNames(w http.ResponseWriter, r *http.Request) {
	format := models.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = models.ExportJSON
	}

	export, err := h.services.WhitelistService.ExportAll(r.Context(), format)
	if err != nil {
		writeError(w, r, "*Handler.exportNames", err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	w.WriteHeader(http.StatusOK)
	w.Write(export.Content)
}

// importNames reads the raw upload, bounded by maxImportBytes, and hands it
// to the import pipeline.
func (h *Handler) importNames(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.importNames", err)
		return
	}

	applyRemote, err := boolOrDefault(r, "apply_remote", false)
	if err != nil {
		writeError(w, r, "*Handler.importNames", err)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxImportBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			err = fmt.Errorf("%w: limit is %s bytes", errBodyTooLarge, strconv.FormatInt(maxErr.Limit, 10))
		}
		writeError(w, r, "*Handler.importNames", err)
		return
	}

	log.Info().
		Str("func", "*Handler.importNames").
		Str("filename", r.URL.Query().Get("filename")).
		Int("bytes", len(data)).
		Bool("apply_remote", applyRemote).
		Msg("import received")

	result, err := h.services.WhitelistService.ImportBulk(r.Context(), actor, data, applyRemote)
	if err != nil {
		writeError(w, r, "*Handler.importNames", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func nonNil(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
