// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

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

	router.Get("/", handler.listGenres)
	router.Get("/new", handler.newGenre)
	router.Post("/store", handler.storeGenre)
	router.Get("/{id}", handler.getGenre)
	router.Get("/update/{id}", handler.editGenre)
	router.Put("/update/{id}", handler.updateGenre)
	router.Get("/delete/{id}", handler.confirmDelete)
	router.Delete("/remove/{id}", handler.removeGenre)

	return router
}

func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	genres, meta, err := handler.service.ListGenres(request.Context(), pagination.FromRequest(request))
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.HTML(writer, request, http.StatusOK, "genre/list", view.Data{
		"title":  "page.genre_list",
		"genres": genres,
		"meta":   meta,
	})
}

func (handler *Handler) getGenre(writer http.ResponseWriter, request *http.Request) {
	genreID, err := requestutil.ID(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	genre, books, err := handler.service.GetGenreDetail(request.Context(), genreID)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.HTML(writer, request, http.StatusOK, "genre/detail", view.Data{
		"title": "page.genre_detail",
		"genre": genre,
		"books": books,
	})
}

func (handler *Handler) newGenre(writer http.ResponseWriter, request *http.Request) {
	handler.view.HTML(writer, request, http.StatusOK, "genre/form", createData(validate.Values{}))
}

func (handler *Handler) storeGenre(writer http.ResponseWriter, request *http.Request) {
	raw, err := requestutil.Form(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	result := DecodeForm(raw)
	if !result.OK() {
		handler.view.Invalid(writer, request, "genre", "genre/form", result.Violations, createData(result.Values))
		return
	}

	genre, existed, err := handler.service.CreateGenre(request.Context(), result.Candidate)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	if existed {
		handler.view.Flash(request, session.KindError, "flash.genre_exists")
		handler.view.Redirect(writer, request, genre.URL())
		return
	}

	handler.view.Flash(request, session.KindSuccess, "flash.genre_created")
	handler.view.Redirect(writer, request, ListURL)
}

func (handler *Handler) editGenre(writer http.ResponseWriter, request *http.Request) {
	genreID, err := requestutil.ID(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	genre, err := handler.service.GetGenre(request.Context(), genreID)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.HTML(writer, request, http.StatusOK, "genre/form", updateData(genreID, FormValues(genre)))
}

func (handler *Handler) updateGenre(writer http.ResponseWriter, request *http.Request) {
	genreID, err := requestutil.ID(request)
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
		handler.view.Invalid(writer, request, "genre", "genre/form", result.Violations, updateData(genreID, result.Values))
		return
	}

	if _, err := handler.service.UpdateGenre(request.Context(), genreID, result.Candidate); err != nil {
		if apperr.HasCode(err, apperr.CodeValidation) {
			handler.view.Invalid(writer, request, "genre", "genre/form", validate.FieldErrors(err), updateData(genreID, result.Values))
			return
		}
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.Flash(request, session.KindSuccess, "flash.genre_updated")
	handler.view.Redirect(writer, request, ListURL)
}

func (handler *Handler) confirmDelete(writer http.ResponseWriter, request *http.Request) {
	genreID, err := requestutil.ID(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	genre, err := handler.service.GetGenre(request.Context(), genreID)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	dependents, err := handler.service.Dependents(request.Context(), genreID)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.HTML(writer, request, http.StatusOK, "genre/delete", view.Data{
		"title":      "page.genre_delete",
		"genre":      genre,
		"dependents": dependents,
	})
}

func (handler *Handler) removeGenre(writer http.ResponseWriter, request *http.Request) {
	genreID, err := requestutil.ID(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	outcome, err := handler.service.DeleteGenre(request.Context(), genreID)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	if outcome.Blocked() {
		genre, err := handler.service.GetGenre(request.Context(), genreID)
		if err != nil {
			handler.view.Fail(writer, request, err, fallback)
			return
		}

		handler.view.HTML(writer, request, http.StatusOK, "genre/delete", view.Data{
			"title":      "page.genre_delete",
			"genre":      genre,
			"dependents": outcome.Dependents,
		})
		return
	}

	handler.view.Flash(request, session.KindSuccess, "flash.genre_deleted")
	handler.view.Redirect(writer, request, ListURL)
}

func createData(values validate.Values) view.Data {
	return view.Data{
		"title":  "page.genre_create",
		"form":   values,
		"action": ListURL + "/store",
	}
}

func updateData(id int, values validate.Values) view.Data {
	return view.Data{
		"title":  "page.genre_update",
		"form":   values,
		"action": ListURL + "/update/" + strconv.Itoa(id),
		"update": true,
	}
}
