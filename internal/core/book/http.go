// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

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

	router.Get("/", handler.listBooks)
	router.Get("/new", handler.newBook)
	router.Post("/store", handler.storeBook)
	router.Get("/{id}", handler.getBook)
	router.Get("/update/{id}", handler.editBook)
	router.Put("/update/{id}", handler.updateBook)
	router.Get("/delete/{id}", handler.confirmDelete)
	router.Delete("/remove/{id}", handler.removeBook)

	return router
}

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	books, meta, err := handler.service.ListBooks(request.Context(), pagination.FromRequest(request))
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.HTML(writer, request, http.StatusOK, "book/list", view.Data{
		"title": "page.book_list",
		"books": books,
		"meta":  meta,
	})
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.ID(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	book, copies, err := handler.service.GetBookDetail(request.Context(), bookID)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.HTML(writer, request, http.StatusOK, "book/detail", view.Data{
		"title":  "page.book_detail",
		"book":   book,
		"copies": copies,
	})
}

func (handler *Handler) newBook(writer http.ResponseWriter, request *http.Request) {
	handler.renderForm(writer, request, http.StatusOK, createData(validate.Values{}), nil)
}

func (handler *Handler) storeBook(writer http.ResponseWriter, request *http.Request) {
	raw, err := requestutil.Form(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	result := DecodeForm(raw)
	if !result.OK() {
		handler.renderForm(writer, request, http.StatusBadRequest, createData(result.Values), result.Violations)
		return
	}

	if _, err := handler.service.CreateBook(request.Context(), result.Candidate); err != nil {
		if apperr.HasCode(err, apperr.CodeValidation) {
			handler.renderForm(writer, request, http.StatusBadRequest, createData(result.Values), validate.FieldErrors(err))
			return
		}
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.Flash(request, session.KindSuccess, "flash.book_created")
	handler.view.Redirect(writer, request, ListURL)
}

func (handler *Handler) editBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.ID(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	book, err := handler.service.GetBook(request.Context(), bookID)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.renderForm(writer, request, http.StatusOK, updateData(bookID, FormValues(book)), nil)
}

func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.ID(request)
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
		handler.renderForm(writer, request, http.StatusBadRequest, updateData(bookID, result.Values), result.Violations)
		return
	}

	book, err := handler.service.UpdateBook(request.Context(), bookID, result.Candidate)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeValidation) {
			handler.renderForm(writer, request, http.StatusBadRequest, updateData(bookID, result.Values), validate.FieldErrors(err))
			return
		}
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.Flash(request, session.KindSuccess, "flash.book_updated")
	handler.view.Redirect(writer, request, book.URL())
}

func (handler *Handler) confirmDelete(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.ID(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	book, err := handler.service.GetBook(request.Context(), bookID)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	dependents, err := handler.service.Dependents(request.Context(), bookID)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.HTML(writer, request, http.StatusOK, "book/delete", view.Data{
		"title":      "page.book_delete",
		"book":       book,
		"dependents": dependents,
	})
}

func (handler *Handler) removeBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.ID(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	outcome, err := handler.service.DeleteBook(request.Context(), bookID)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	if outcome.Blocked() {
		book, err := handler.service.GetBook(request.Context(), bookID)
		if err != nil {
			handler.view.Fail(writer, request, err, fallback)
			return
		}

		handler.view.HTML(writer, request, http.StatusOK, "book/delete", view.Data{
			"title":      "page.book_delete",
			"book":       book,
			"dependents": outcome.Dependents,
		})
		return
	}

	handler.view.Flash(request, session.KindSuccess, "flash.book_deleted")
	handler.view.Redirect(writer, request, ListURL)
}

// renderForm adds the author and genre choices, then renders the form.
// Violations turn the render into a rejected submission.
func (handler *Handler) renderForm(writer http.ResponseWriter, request *http.Request, status int, data view.Data, violations []apperr.FieldError) {
	options, err := handler.service.FormOptions(request.Context())
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}
	data["authors"] = options.Authors
	data["genres"] = options.Genres

	if len(violations) > 0 {
		handler.view.Invalid(writer, request, "book", "book/form", violations, data)
		return
	}
	handler.view.HTML(writer, request, status, "book/form", data)
}

func createData(values validate.Values) view.Data {
	return view.Data{
		"title":  "page.book_create",
		"form":   values,
		"action": ListURL + "/store",
	}
}

func updateData(id int, values validate.Values) view.Data {
	return view.Data{
		"title":  "page.book_update",
		"form":   values,
		"action": ListURL + "/update/" + strconv.Itoa(id),
		"update": true,
	}
}
