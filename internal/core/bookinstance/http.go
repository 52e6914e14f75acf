// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookinstance

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

	router.Get("/", handler.listInstances)
	router.Get("/new", handler.newInstance)
	router.Post("/store", handler.storeInstance)
	router.Get("/{id}", handler.getInstance)
	router.Get("/update/{id}", handler.editInstance)
	router.Put("/update/{id}", handler.updateInstance)
	router.Get("/delete/{id}", handler.confirmDelete)
	router.Delete("/remove/{id}", handler.removeInstance)

	return router
}

func (handler *Handler) listInstances(writer http.ResponseWriter, request *http.Request) {
	instances, meta, err := handler.service.ListInstances(request.Context(), pagination.FromRequest(request))
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.HTML(writer, request, http.StatusOK, "bookinstance/list", view.Data{
		"title":     "page.bookinstance_list",
		"instances": instances,
		"meta":      meta,
	})
}

func (handler *Handler) getInstance(writer http.ResponseWriter, request *http.Request) {
	instance, ok := handler.load(writer, request)
	if !ok {
		return
	}

	handler.view.HTML(writer, request, http.StatusOK, "bookinstance/detail", view.Data{
		"title":    "page.bookinstance_detail",
		"instance": instance,
	})
}

func (handler *Handler) newInstance(writer http.ResponseWriter, request *http.Request) {
	values := validate.Values{FieldStatus: {DefaultStatus}}

	// "Add copy" links on a book page preselect that book
	if bookID := request.URL.Query().Get(FieldBook); bookID != "" {
		values[FieldBook] = []string{bookID}
	}

	handler.renderForm(writer, request, http.StatusOK, createData(values), nil)
}

func (handler *Handler) storeInstance(writer http.ResponseWriter, request *http.Request) {
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

	if _, err := handler.service.CreateInstance(request.Context(), result.Candidate); err != nil {
		if apperr.HasCode(err, apperr.CodeValidation) {
			handler.renderForm(writer, request, http.StatusBadRequest, createData(result.Values), validate.FieldErrors(err))
			return
		}
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.Flash(request, session.KindSuccess, "flash.bookinstance_created")
	handler.view.Redirect(writer, request, ListURL)
}

func (handler *Handler) editInstance(writer http.ResponseWriter, request *http.Request) {
	instance, ok := handler.load(writer, request)
	if !ok {
		return
	}

	handler.renderForm(writer, request, http.StatusOK, updateData(instance.ID, FormValues(instance)), nil)
}

func (handler *Handler) updateInstance(writer http.ResponseWriter, request *http.Request) {
	instanceID, err := requestutil.ID(request)
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
		handler.renderForm(writer, request, http.StatusBadRequest, updateData(instanceID, result.Values), result.Violations)
		return
	}

	instance, err := handler.service.UpdateInstance(request.Context(), instanceID, result.Candidate)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeValidation) {
			handler.renderForm(writer, request, http.StatusBadRequest, updateData(instanceID, result.Values), validate.FieldErrors(err))
			return
		}
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.Flash(request, session.KindSuccess, "flash.bookinstance_updated")
	handler.view.Redirect(writer, request, instance.URL())
}

func (handler *Handler) confirmDelete(writer http.ResponseWriter, request *http.Request) {
	instance, ok := handler.load(writer, request)
	if !ok {
		return
	}

	handler.view.HTML(writer, request, http.StatusOK, "bookinstance/delete", view.Data{
		"title":    "page.bookinstance_delete",
		"instance": instance,
	})
}

func (handler *Handler) removeInstance(writer http.ResponseWriter, request *http.Request) {
	instanceID, err := requestutil.ID(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	if err := handler.service.DeleteInstance(request.Context(), instanceID); err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}

	handler.view.Flash(request, session.KindSuccess, "flash.bookinstance_deleted")
	handler.view.Redirect(writer, request, ListURL)
}

// load parses the path ID and fetches the copy, handling every failure.
func (handler *Handler) load(writer http.ResponseWriter, request *http.Request) (*BookInstance, bool) {
	instanceID, err := requestutil.ID(request)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return nil, false
	}

	instance, err := handler.service.GetInstance(request.Context(), instanceID)
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return nil, false
	}
	return instance, true
}

func (handler *Handler) renderForm(writer http.ResponseWriter, request *http.Request, status int, data view.Data, violations []apperr.FieldError) {
	books, err := handler.service.FormOptions(request.Context())
	if err != nil {
		handler.view.Fail(writer, request, err, fallback)
		return
	}
	data["books"] = books
	data["statuses"] = Statuses

	if len(violations) > 0 {
		handler.view.Invalid(writer, request, "bookinstance", "bookinstance/form", violations, data)
		return
	}
	handler.view.HTML(writer, request, status, "bookinstance/form", data)
}

func createData(values validate.Values) view.Data {
	return view.Data{
		"title":  "page.bookinstance_create",
		"form":   values,
		"action": ListURL + "/store",
	}
}

func updateData(id int, values validate.Values) view.Data {
	return view.Data{
		"title":  "page.bookinstance_update",
		"form":   values,
		"action": ListURL + "/update/" + strconv.Itoa(id),
		"update": true,
	}
}
