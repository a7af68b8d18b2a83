// Package http exposes the application use cases over a REST API.
// Handlers stay thin: bind the request, build a command or query, run the
// handler, and map the outcome to a wire response. All authorization runs
// in the requireRole middleware plus the checks the use cases already make.
package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/ports"
)

// Server wires HTTP routes to command and query handlers.
type Server struct {
	registerAccountHandler  commands.RegisterAccountCommandHandler
	createParcelHandler     commands.CreateParcelCommandHandler
	editParcelHandler       commands.EditParcelCommandHandler
	assignRiderHandler      commands.AssignRiderCommandHandler
	transitionStatusHandler commands.TransitionStatusCommandHandler

	loginHandler            queries.LoginQueryHandler
	trackParcelHandler      queries.TrackParcelQueryHandler
	customerParcelsHandler  queries.GetCustomerParcelsQueryHandler
	allParcelsHandler       queries.GetAllParcelsQueryHandler
	ridersHandler           queries.GetRidersQueryHandler
	riderAssignmentsHandler queries.GetRiderAssignmentsQueryHandler

	accounts accountResolver
	signer   ports.TokenSigner
	logger   *slog.Logger
}

// NewServer creates the HTTP server with all required handlers.
func NewServer(
	registerAccountHandler commands.RegisterAccountCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	editParcelHandler commands.EditParcelCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	transitionStatusHandler commands.TransitionStatusCommandHandler,
	loginHandler queries.LoginQueryHandler,
	trackParcelHandler queries.TrackParcelQueryHandler,
	customerParcelsHandler queries.GetCustomerParcelsQueryHandler,
	allParcelsHandler queries.GetAllParcelsQueryHandler,
	ridersHandler queries.GetRidersQueryHandler,
	riderAssignmentsHandler queries.GetRiderAssignmentsQueryHandler,
	accounts ports.AccountRepository,
	signer ports.TokenSigner,
	logger *slog.Logger,
) *Server {
	return &Server{
		registerAccountHandler:  registerAccountHandler,
		createParcelHandler:     createParcelHandler,
		editParcelHandler:       editParcelHandler,
		assignRiderHandler:      assignRiderHandler,
		transitionStatusHandler: transitionStatusHandler,
		loginHandler:            loginHandler,
		trackParcelHandler:      trackParcelHandler,
		customerParcelsHandler:  customerParcelsHandler,
		allParcelsHandler:       allParcelsHandler,
		ridersHandler:           ridersHandler,
		riderAssignmentsHandler: riderAssignmentsHandler,
		accounts:                accounts,
		signer:                  signer,
		logger:                  logger,
	}
}

// RegisterRoutes attaches every route to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/auth/register", s.RegisterAccount)
	api.POST("/auth/login", s.Login)
	api.GET("/parcels/track/:code", s.TrackParcel)

	customer := api.Group("/customer", s.requireRole(account.Customer))
	customer.POST("/parcels", s.CreateParcel)
	customer.GET("/parcels", s.GetCustomerParcels)

	staff := api.Group("/staff", s.requireRole(account.Staff))
	staff.POST("/parcels", s.CreateParcelForCustomer)
	staff.GET("/parcels", s.GetAllParcels)
	staff.PUT("/parcels/:id", s.EditParcel)
	staff.GET("/riders", s.GetRiders)
	staff.POST("/assignments", s.AssignRider)

	rider := api.Group("/rider", s.requireRole(account.Rider))
	rider.GET("/assignments", s.GetRiderAssignments)
	rider.PUT("/parcels/:id/status", s.TransitionStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterAccount handles POST /api/v1/auth/register.
func (s *Server) RegisterAccount(ctx echo.Context) error {
	var request RegisterAccountRequest
	if err := ctx.Bind(&request); err != nil {
		return handleBadRequest(ctx, err)
	}

	role, err := account.RoleFromString(request.Role)
	if err != nil {
		return handleBadRequest(ctx, err)
	}

	command, err := commands.NewRegisterAccountCommand(
		kernel.NewUUID(),
		request.Name,
		request.Email,
		request.Phone,
		request.Password,
		role,
	)
	if err != nil {
		return handleBadRequest(ctx, err)
	}

	registered, err := s.registerAccountHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return s.handleFailure(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AccountView{
		ID:    registered.ID().String(),
		Name:  registered.Name(),
		Email: registered.Email(),
		Phone: registered.Phone(),
		Role:  registered.Role().String(),
	})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return handleBadRequest(ctx, err)
	}

	query, err := queries.NewLoginQuery(request.Email, request.Password)
	if err != nil {
		return handleBadRequest(ctx, err)
	}

	response, err := s.loginHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleFailure(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AuthResponse{
		Token:   response.Token,
		Account: accountViewFromResponse(response.Account),
	})
}

// TrackParcel handles GET /api/v1/parcels/track/:code.
func (s *Server) TrackParcel(ctx echo.Context) error {
	query, err := queries.NewTrackParcelQuery(ctx.Param("code"))
	if err != nil {
		return handleBadRequest(ctx, err)
	}

	response, err := s.trackParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleFailure(ctx, err)
	}

	history := make([]HistoryEntryView, len(response.History))
	for i, entry := range response.History {
		history[i] = HistoryEntryView{
			Status:     entry.Status.String(),
			RecordedAt: entry.RecordedAt,
		}
	}

	return ctx.JSON(http.StatusOK, TrackParcelResponse{
		Parcel:  parcelViewFromResponse(response.Parcel),
		History: history,
	})
}

// CreateParcel handles POST /api/v1/customer/parcels. The sender is the
// authenticated customer.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var request CreateParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return handleBadRequest(ctx, err)
	}

	command, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		authedAccount(ctx).ID(),
		request.ReceiverName,
		request.ReceiverPhone,
		request.ReceiverAddress,
		request.WeightKg,
	)
	if err != nil {
		return handleBadRequest(ctx, err)
	}

	created, err := s.createParcelHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return s.handleFailure(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, parcelViewFromModel(created))
}

// CreateParcelForCustomer handles POST /api/v1/staff/parcels. Staff books
// on behalf of an existing customer named in the body.
func (s *Server) CreateParcelForCustomer(ctx echo.Context) error {
	var request StaffCreateParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return handleBadRequest(ctx, err)
	}

	senderID, err := kernel.UUIDFromString(request.SenderID)
	if err != nil {
		return handleBadRequest(ctx, err)
	}

	command, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		senderID,
		request.ReceiverName,
		request.ReceiverPhone,
		request.ReceiverAddress,
		request.WeightKg,
	)
	if err != nil {
		return handleBadRequest(ctx, err)
	}

	created, err := s.createParcelHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return s.handleFailure(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, parcelViewFromModel(created))
}

// GetCustomerParcels handles GET /api/v1/customer/parcels.
func (s *Server) GetCustomerParcels(ctx echo.Context) error {
	query, err := queries.NewGetCustomerParcelsQuery(authedAccount(ctx).ID())
	if err != nil {
		return handleBadRequest(ctx, err)
	}

	parcels, err := s.customerParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleFailure(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelViewsFromResponses(parcels))
}

// GetAllParcels handles GET /api/v1/staff/parcels.
func (s *Server) GetAllParcels(ctx echo.Context) error {
	parcels, err := s.allParcelsHandler.Handle(ctx.Request().Context(), queries.NewGetAllParcelsQuery())
	if err != nil {
		return s.handleFailure(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelViewsFromResponses(parcels))
}

// EditParcel handles PUT /api/v1/staff/parcels/:id.
func (s *Server) EditParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return handleBadRequest(ctx, err)
	}

	var request EditParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return handleBadRequest(ctx, err)
	}

	command, err := commands.NewEditParcelCommand(
		parcelID,
		request.ReceiverName,
		request.ReceiverPhone,
		request.ReceiverAddress,
		request.WeightKg,
	)
	if err != nil {
		return handleBadRequest(ctx, err)
	}

	edited, err := s.editParcelHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return s.handleFailure(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelViewFromModel(edited))
}

// GetRiders handles GET /api/v1/staff/riders.
func (s *Server) GetRiders(ctx echo.Context) error {
	riders, err := s.ridersHandler.Handle(ctx.Request().Context(), queries.NewGetRidersQuery())
	if err != nil {
		return s.handleFailure(ctx, err)
	}

	views := make([]AccountView, len(riders))
	for i, rider := range riders {
		views[i] = accountViewFromResponse(rider)
	}

	return ctx.JSON(http.StatusOK, views)
}

// AssignRider handles POST /api/v1/staff/assignments.
func (s *Server) AssignRider(ctx echo.Context) error {
	var request AssignRiderRequest
	if err := ctx.Bind(&request); err != nil {
		return handleBadRequest(ctx, err)
	}

	parcelID, err := kernel.UUIDFromString(request.ParcelID)
	if err != nil {
		return handleBadRequest(ctx, err)
	}

	riderID, err := kernel.UUIDFromString(request.RiderID)
	if err != nil {
		return handleBadRequest(ctx, err)
	}

	command, err := commands.NewAssignRiderCommand(kernel.NewUUID(), parcelID, riderID)
	if err != nil {
		return handleBadRequest(ctx, err)
	}

	assigned, err := s.assignRiderHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return s.handleFailure(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, assignmentViewFromModel(assigned))
}

// GetRiderAssignments handles GET /api/v1/rider/assignments.
func (s *Server) GetRiderAssignments(ctx echo.Context) error {
	query, err := queries.NewGetRiderAssignmentsQuery(authedAccount(ctx).ID())
	if err != nil {
		return handleBadRequest(ctx, err)
	}

	assignments, err := s.riderAssignmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleFailure(ctx, err)
	}

	views := make([]RiderAssignmentView, len(assignments))
	for i, assigned := range assignments {
		views[i] = RiderAssignmentView{
			AssignmentID: assigned.AssignmentID.String(),
			AssignedAt:   assigned.AssignedAt,
			Parcel:       parcelViewFromResponse(assigned.Parcel),
		}
	}

	return ctx.JSON(http.StatusOK, views)
}

// TransitionStatus handles PUT /api/v1/rider/parcels/:id/status. Only the
// assigned rider passes the handler's ownership check.
func (s *Server) TransitionStatus(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return handleBadRequest(ctx, err)
	}

	var request TransitionStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return handleBadRequest(ctx, err)
	}

	newStatus, err := parcel.StatusFromString(request.Status)
	if err != nil {
		return handleBadRequest(ctx, err)
	}

	command, err := commands.NewTransitionStatusCommand(parcelID, authedAccount(ctx).ID(), newStatus)
	if err != nil {
		return handleBadRequest(ctx, err)
	}

	transitioned, err := s.transitionStatusHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return s.handleFailure(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelViewFromModel(transitioned))
}
