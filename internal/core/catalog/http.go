// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/taibuivan/locallibrary/internal/platform/view"
)

type Handler struct {
	service *Service
	view    *view.Renderer
}

func NewHandler(service *Service, renderer *view.Renderer) *Handler {
	return &Handler{service: service, view: renderer}
}

// Index renders the home page with the collection counts.
func (handler *Handler) Index(writer http.ResponseWriter, request *http.Request) {
	counts, err := handler.service.Counts(request.Context())
	if err != nil {
		handler.view.Error(writer, request, err)
		return
	}

	handler.view.HTML(writer, request, http.StatusOK, "index", view.Data{
		"title":  "nav.brand",
		"counts": counts,
	})
}
