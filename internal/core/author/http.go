// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	requestutil "github.com/taibuivan/locallibrary/internal/platform/request"
	"github.com/taibuivan/locallibrary/internal/platform/session"
	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/internal/platform/view"
	"github.com/taibuivan/locallibrary/pkg/pagination"
)

type Handler struct {
	service *Service
	view    *view.Renderer
}

func NewHandler(service *Service, renderer *view.Renderer) *Handler {
	return &Handler{service: service, view: renderer}
}

var fallback = view.Fallback{URL: ListURL, FlashKey: FlashNotFound}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listAuthors)
	router.Get("/new", handler.newAuthor)
	router.Post("/store", handler.storeAuthor)
	router.Get("/{id}", handler.getAuthor)
	router.Get("/update/{id}", handler.editAuthor)
	router.Put("/update/{id}", handler.updateAuthor)
	router.Get("/delete/{id}", handler.confirmDelete)
	router.Delete("/remove/{id}", handler.removeAuthor)

	return router
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	authors, meta, err := handler.service.ListAuthors(request.Context(), pagination.FromRequest(request))
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.HTML(writer, request, http.StatusOK, "author/list", view.Data{
		"title":   "page.author_list",
		"authors": authors,
		"meta":    meta,
	})
}

func (handler *Handler) getAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.ID(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	author, books, err := handler.service.GetAuthorDetail(request.Context(), authorID)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.HTML(writer, request, http.StatusOK, "author/detail", view.Data{
		"title":  "page.author_detail",
		"author": author,
		"books":  books,
	})
}

func (handler *Handler) newAuthor(writer http.ResponseWriter, request *http.Request) {
	handler.view.HTML(writer, request, http.StatusOK, "author/form", createData(validate.Values{}))
}

func (handler *Handler) storeAuthor(writer http.ResponseWriter, request *http.Request) {
	raw, err := requestutil.Form(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	result := DecodeForm(raw)
	if !result.OK() {
		handler.view.Invalid(writer, request, "author", "author/form", result.Violations, createData(result.Values))
		return
	}

	if _, err := handler.service.CreateAuthor(request.Context(), result.Candidate); err != nil {
		if apperr.HasCode(err, apperr.CodeValidation) {
			handler.view.Invalid(writer, request, "author", "author/form", validate.FieldErrors(err), createData(result.Values))
			return
		}
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.Flash(request, session.KindSuccess, "flash.author_created")
	handler.view.Redirect(writer, request, ListURL)
}

func (handler *Handler) editAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.ID(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	author, err := handler.service.GetAuthor(request.Context(), authorID)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.HTML(writer, request, http.StatusOK, "author/form", updateData(authorID, FormValues(author)))
}

func (handler *Handler) updateAuthor(writer http.ResponseWriter, request *http.Request) {
	// The id is checked before the body is even read
	authorID, err := requestutil.ID(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	raw, err := requestutil.Form(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	result := DecodeForm(raw)
	if !result.OK() {
		handler.view.Invalid(writer, request, "author", "author/form", result.Violations, updateData(authorID, result.Values))
		return
	}

	if _, err := handler.service.UpdateAuthor(request.Context(), authorID, result.Candidate); err != nil {
		if apperr.HasCode(err, apperr.CodeValidation) {
			handler.view.Invalid(writer, request, "author", "author/form", validate.FieldErrors(err), updateData(authorID, result.Values))
			return
		}
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.Flash(request, session.KindSuccess, "flash.author_updated")
	handler.view.Redirect(writer, request, ListURL)
}

func (handler *Handler) confirmDelete(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.ID(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	author, err := handler.service.GetAuthor(request.Context(), authorID)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	dependents, err := handler.service.Dependents(request.Context(), authorID)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.HTML(writer, request, http.StatusOK, "author/delete", view.Data{
		"title":      "page.author_delete",
		"author":     author,
		"dependents": dependents,
	})
}

func (handler *Handler) removeAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.ID(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	outcome, err := handler.service.DeleteAuthor(request.Context(), authorID)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	if outcome.Blocked() {
		author, err := handler.service.GetAuthor(request.Context(), authorID)
		if err != nil {
			handler.view.Fail(writer, request, err, fallback)
			return
		}

		handler.view.HTML(writer, request, http.StatusOK, "author/delete", view.Data{
			"title":      "page.author_delete",
			"author":     author,
			"dependents": outcome.Dependents,
		})
		return
	}

	handler.view.Flash(request, session.KindSuccess, "flash.author_deleted")
	handler.view.Redirect(writer, request, ListURL)
}

func createData(values validate.Values) view.Data {
	return view.Data{
		"title":  "page.author_create",
		"form":   values,
		"action": ListURL + "/store",
	}
}

func updateData(id int, values validate.Values) view.Data {
	return view.Data{
		"title":  "page.author_update",
		"form":   values,
		"action": ListURL + "/update/" + strconv.Itoa(id),
		"update": true,
	}
}
