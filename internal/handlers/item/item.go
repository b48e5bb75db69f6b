package item

import (
	"net/http"
	"strconv"

	"scaffold/infras/otel"
	"scaffold/internal/domains/item/model/dto"
	"scaffold/internal/domains/item/service"
	"scaffold/shared"
	"scaffold/shared/constant"
	"scaffold/shared/validator"
	"scaffold/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const messageDeleted = "Item deleted successfully"

type Handler struct {
	service service.Item
	otel    otel.Otel
}

func New(service service.Item, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/items", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetItems)
		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Get("/{id}", handler.GetItemByID)
		routerGroup.Put("/{id}", handler.UpdateItem)
		routerGroup.Delete("/{id}", handler.DeleteItem)
	})
}

// GetItems lists every item.
// @Summary List items
// @Description Returns all items in the order they were created.
// @Tags Item
// @Produce json
// @Success 200 {array} dto.ItemResponse
// @Router /api/items [get]
func (handler *Handler) GetItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	items, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get items")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, items)
}

// GetItemByID returns one item.
// @Summary Get an item
// @Tags Item
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /api/items/{id} [get]
func (handler *Handler) GetItemByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemByID")
	defer scope.End()

	id, err := shared.ParseID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	item, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, item)
}

// CreateItem stores a new item.
// @Summary Create an item
// @Description is_active defaults to true and description to null when omitted.
// @Tags Item
// @Accept json
// @Produce json
// @Param request body dto.CreateItemRequest true "Item to create"
// @Success 200 {object} dto.ItemResponse
// @Failure 422 {object} response.Error
// @Router /api/items [post]
func (handler *Handler) CreateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	req := dto.CreateItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	item, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create item")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Item created with id " + strconv.Itoa(item.ID))

	response.WithJSON(writer, http.StatusOK, item)
}

// UpdateItem replaces an item.
// @Summary Replace an item
// @Description Every field is overwritten; omitted optional fields return to their defaults.
// @Tags Item
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body dto.CreateItemRequest true "Replacement item"
// @Success 200 {object} dto.ItemResponse
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /api/items/{id} [put]
func (handler *Handler) UpdateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	id, err := shared.ParseID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.CreateItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	item, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, item)
}

// DeleteItem removes an item.
// @Summary Delete an item
// @Tags Item
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /api/items/{id} [delete]
func (handler *Handler) DeleteItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	id, err := shared.ParseID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, messageDeleted)
}
