package housekeeping

import (
	"net/http"
	"time"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/housekeeping/model"
	"frontdesk/internal/domains/housekeeping/model/dto"
	"frontdesk/internal/domains/housekeeping/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Housekeeping
	otel    otel.Otel
}

func New(service service.Housekeeping, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/housekeeping", func(routerGroup chi.Router) {
		routerGroup.Get("/board", handler.GetBoard)

		routerGroup.Route("/tasks", func(tasks chi.Router) {
			tasks.Post("/", handler.CreateTask)
			tasks.Get("/", handler.GetTasks)
			tasks.Get("/{id}", handler.GetTaskByID)
			tasks.Patch("/{id}", handler.AdvanceTask)
		})

		routerGroup.Route("/staff", func(staff chi.Router) {
			staff.Post("/", handler.AddStaff)
			staff.Get("/", handler.GetStaff)
			staff.Patch("/{id}", handler.SetStaffActive)
		})
	})
}

// GetBoard returns the housekeeping view of every room.
// @Summary Housekeeping board
// @Tags Housekeeping
// @Produce json
// @Success 200 {object} response.Data[[]model.BoardEntry]
// @Router /v1/housekeeping/board [get]
func (handler *Handler) GetBoard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBoard")
	defer scope.End()

	board, err := handler.service.RoomBoard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build housekeeping board")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, board)
}

// CreateTask schedules a housekeeping task for a room.
// @Summary Create task
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Create Task Request"
// @Success 201 {object} response.Data[model.Task]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/housekeeping/tasks [post]
func (handler *Handler) CreateTask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTask")
	defer scope.End()

	req := dto.CreateTaskRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	var scheduledAt time.Time
	if req.ScheduledAt != nil {
		scheduledAt = *req.ScheduledAt
	}

	task, err := handler.service.CreateTask(ctx, service.CreateTaskInput{
		RoomID:      req.RoomID,
		Kind:        req.Kind,
		AssigneeID:  req.AssigneeID,
		Notes:       req.Notes,
		ScheduledAt: scheduledAt,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str(constant.LogFieldRoomID, req.RoomID).Msg("failed to create task")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, task)
}

// GetTasks lists tasks.
// @Summary List tasks
// @Tags Housekeeping
// @Produce json
// @Param room_id query string false "Room ID"
// @Param status query string false "Task status"
// @Param kind query string false "Task kind"
// @Success 200 {object} response.Data[[]model.Task]
// @Failure 400 {object} response.Error
// @Router /v1/housekeeping/tasks [get]
func (handler *Handler) GetTasks(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTasks")
	defer scope.End()

	query := request.URL.Query()
	filter := model.TaskFilter{
		RoomID: query.Get(constant.RequestParamRoom),
		Status: model.Status(query.Get(constant.RequestParamStatus)),
		Kind:   model.Kind(query.Get(constant.RequestParamKind)),
	}

	if err := validator.ValidateStruct(&filter); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid task filter")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, handler.service.Tasks(ctx, filter))
}

// GetTaskByID returns a single task.
// @Summary Get task
// @Tags Housekeeping
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Data[model.Task]
// @Failure 404 {object} response.Error
// @Router /v1/housekeeping/tasks/{id} [get]
func (handler *Handler) GetTaskByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTaskByID")
	defer scope.End()

	task, err := handler.service.Task(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get task")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, task)
}

// AdvanceTask moves a task to its next status. Completing a cleaning task frees the room.
// @Summary Advance task
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.AdvanceTaskRequest true "Advance Task Request"
// @Success 200 {object} response.Data[model.Task]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/housekeeping/tasks/{id} [patch]
func (handler *Handler) AdvanceTask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdvanceTask")
	defer scope.End()

	req := dto.AdvanceTaskRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)

	task, err := handler.service.AdvanceTask(ctx, id, req.Status, req.CompletedAt)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str(constant.LogFieldTaskID, id).Msg("failed to advance task")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, task)
}

// AddStaff registers a staff member.
// @Summary Add staff
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param request body dto.AddStaffRequest true "Add Staff Request"
// @Success 201 {object} response.Data[model.Staff]
// @Failure 400 {object} response.Error
// @Router /v1/housekeeping/staff [post]
func (handler *Handler) AddStaff(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddStaff")
	defer scope.End()

	req := dto.AddStaffRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	member, err := handler.service.AddStaff(ctx, service.AddStaffInput{Name: req.Name, Role: req.Role})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add staff")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, member)
}

// GetStaff lists staff members, optionally only those on or off duty.
// @Summary List staff
// @Tags Housekeeping
// @Produce json
// @Param active query bool false "On duty"
// @Success 200 {object} response.Data[[]model.Staff]
// @Router /v1/housekeeping/staff [get]
func (handler *Handler) GetStaff(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaff")
	defer scope.End()

	staff := handler.service.Staff(ctx)

	active := shared.ConvertStringToBool(request.URL.Query().Get(constant.RequestParamActive))
	if active == nil {
		response.WithJSON(writer, http.StatusOK, staff)

		return
	}

	filtered := make([]model.Staff, 0, len(staff))
	for _, member := range staff {
		if member.Active == *active {
			filtered = append(filtered, member)
		}
	}

	response.WithJSON(writer, http.StatusOK, filtered)
}

// SetStaffActive puts a staff member on or off duty.
// @Summary Set staff active
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param request body dto.SetStaffActiveRequest true "Set Staff Active Request"
// @Success 200 {object} response.Data[model.Staff]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/housekeeping/staff/{id} [patch]
func (handler *Handler) SetStaffActive(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetStaffActive")
	defer scope.End()

	req := dto.SetStaffActiveRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	member, err := handler.service.SetStaffActive(ctx, chi.URLParam(request, constant.RequestParamID), *req.Active)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update staff")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, member)
}
