package todo

import (
	"net/http"
	"strconv"

	"scaffold/infras/otel"
	"scaffold/internal/domains/todo/model/dto"
	"scaffold/internal/domains/todo/service"
	"scaffold/shared"
	"scaffold/shared/constant"
	"scaffold/shared/validator"
	"scaffold/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const messageDeleted = "Todo deleted successfully"

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Get("/{id}", handler.GetTodoByID)
		routerGroup.Put("/{id}", handler.UpdateTodo)
		routerGroup.Delete("/{id}", handler.DeleteTodo)
	})
}

// GetTodos lists every todo.
// @Summary List todos
// @Description Returns all todos in the order they were created.
// @Tags Todo
// @Produce json
// @Success 200 {array} dto.TodoResponse
// @Router /api/todos [get]
func (handler *Handler) GetTodos(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	todos, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todos")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, todos)
}

// GetTodoByID returns one todo.
// @Summary Get a todo
// @Tags Todo
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} dto.TodoResponse
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /api/todos/{id} [get]
func (handler *Handler) GetTodoByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodoByID")
	defer scope.End()

	id, err := shared.ParseID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	todo, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, todo)
}

// CreateTodo stores a new todo.
// @Summary Create a todo
// @Description completed defaults to false; created_at and updated_at are set by the server.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.CreateTodoRequest true "Todo to create"
// @Success 200 {object} dto.TodoResponse
// @Failure 422 {object} response.Error
// @Router /api/todos [post]
func (handler *Handler) CreateTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req := dto.CreateTodoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	todo, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todo created with id " + strconv.Itoa(todo.ID))

	response.WithJSON(writer, http.StatusOK, todo)
}

// UpdateTodo replaces a todo.
// @Summary Replace a todo
// @Description Every field is overwritten; created_at is kept and updated_at refreshed.
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path int true "Todo ID"
// @Param request body dto.CreateTodoRequest true "Replacement todo"
// @Success 200 {object} dto.TodoResponse
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /api/todos/{id} [put]
func (handler *Handler) UpdateTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	id, err := shared.ParseID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.CreateTodoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	todo, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, todo)
}

// DeleteTodo removes a todo.
// @Summary Delete a todo
// @Tags Todo
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /api/todos/{id} [delete]
func (handler *Handler) DeleteTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
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
