package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/persondex/persondex"
	"github.com/persondex/persondex/internal/domain"
	"github.com/persondex/persondex/internal/present/rest/presenter"
	"github.com/persondex/persondex/internal/service"
	"github.com/persondex/persondex/internal/usecase"
)

type Handler struct {
	persons   *usecase.PersonUsecase
	countries *usecase.CountryUsecase
	signal    *service.SignalService
}

func NewHandler(
	persons *usecase.PersonUsecase,
	countries *usecase.CountryUsecase,
	signal *service.SignalService,
) *Handler {
	return &Handler{
		persons:   persons,
		countries: countries,
		signal:    signal,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/persons", h.handlePersonList)
	e.POST("/api/v1/persons", h.handlePersonCreate)
	e.GET("/api/v1/persons/export/csv", h.handlePersonsCSV)
	e.GET("/api/v1/persons/export/excel", h.handlePersonsExcel)
	e.GET("/api/v1/persons/:id", h.handlePersonGet)
	e.PUT("/api/v1/persons/:id", h.handlePersonUpdate)
	e.DELETE("/api/v1/persons/:id", h.handlePersonDelete)
	e.GET("/api/v1/countries", h.handleCountryList)
	e.POST("/api/v1/countries", h.handleCountryCreate)
	e.POST("/api/v1/countries/upload", h.handleCountryUpload)
	e.GET("/realtime", h.handleRealtime)
}

// handlePersonList narrows and orders the stored persons by the
// searchBy/searchString/sortBy/sortOrder query parameters. Sorting
// defaults to PersonName ascending.
func (h *Handler) handlePersonList(c echo.Context) error {
	ctx := c.Request().Context()

	searchBy := c.QueryParam("searchBy")
	searchString := c.QueryParam("searchString")
	sortBy := c.QueryParam("sortBy")
	if sortBy == "" {
		sortBy = "PersonName"
	}
	sortOrder := persondex.ParseSortOrder(c.QueryParam("sortOrder"))

	persons, err := h.persons.GetFilteredPersons(ctx, searchBy, searchString)
	if err != nil {
		return h.respondError(c, err)
	}

	return presenter.OK(c, h.persons.GetSortedPersons(persons, sortBy, sortOrder))
}

func (h *Handler) handlePersonCreate(c echo.Context) error {
	ctx := c.Request().Context()

	var request persondex.PersonAddRequest
	if err := c.Bind(&request); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	person, err := h.persons.AddPerson(ctx, &request)
	if err != nil {
		return h.respondError(c, err)
	}

	h.publish(ctx, persondex.Event{Type: persondex.EventPersonCreated, Body: person})
	return presenter.Created(c, person)
}

func (h *Handler) handlePersonGet(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid person id")
	}

	person, err := h.persons.GetPersonByID(ctx, id)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, person)
}

func (h *Handler) handlePersonUpdate(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid person id")
	}

	var request persondex.PersonUpdateRequest
	if err := c.Bind(&request); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}
	request.PersonID = id

	person, err := h.persons.UpdatePerson(ctx, &request)
	if err != nil {
		return h.respondError(c, err)
	}

	h.publish(ctx, persondex.Event{Type: persondex.EventPersonUpdated, Body: person})
	return presenter.OK(c, person)
}

func (h *Handler) handlePersonDelete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid person id")
	}

	deleted, err := h.persons.DeletePerson(ctx, id)
	if err != nil {
		return h.respondError(c, err)
	}
	if !deleted {
		return presenter.NotFound(c, "person not found")
	}

	h.publish(ctx, persondex.Event{Type: persondex.EventPersonDeleted, Body: echo.Map{"personID": id}})
	return presenter.OK(c, echo.Map{"deleted": true})
}

func (h *Handler) handlePersonsCSV(c echo.Context) error {
	ctx := c.Request().Context()

	stream, err := h.persons.GetPersonsCSV(ctx)
	if err != nil {
		return h.respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="persons.csv"`)
	return c.Stream(http.StatusOK, "text/csv", stream)
}

func (h *Handler) handlePersonsExcel(c echo.Context) error {
	ctx := c.Request().Context()

	stream, err := h.persons.GetPersonsSheet(ctx)
	if err != nil {
		return h.respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="persons.xlsx"`)
	return c.Stream(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", stream)
}

func (h *Handler) handleCountryList(c echo.Context) error {
	ctx := c.Request().Context()

	countries, err := h.countries.GetAllCountries(ctx)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, countries)
}

func (h *Handler) handleCountryCreate(c echo.Context) error {
	ctx := c.Request().Context()

	var request persondex.CountryAddRequest
	if err := c.Bind(&request); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	country, err := h.countries.AddCountry(ctx, &request)
	if err != nil {
		return h.respondError(c, err)
	}

	h.publish(ctx, persondex.Event{Type: persondex.EventCountryCreated, Body: country})
	return presenter.Created(c, country)
}

func (h *Handler) handleCountryUpload(c echo.Context) error {
	ctx := c.Request().Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return presenter.BadRequestMessage(c, "missing file upload")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return presenter.BadRequestMessage(c, "unreadable file upload")
	}
	defer file.Close()

	added, err := h.countries.UploadFromExcel(ctx, file)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, echo.Map{"added": added})
}

func (h *Handler) respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return presenter.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrMissingInput), errors.Is(err, domain.ErrInvalidField):
		return presenter.BadRequest(c, err)
	default:
		return presenter.InternalError(c, err)
	}
}

func (h *Handler) publish(ctx context.Context, event persondex.Event) {
	if err := h.signal.Publish(ctx, service.EventChannel, event); err != nil {
		slog.ErrorContext(
			ctx, "Failed to publish event",
			slog.String("error", err.Error()),
			slog.String("module", "signal"),
		)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) handleRealtime(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"Failed to upgrade WebSocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return err
	}
	defer func() {
		ws.Close()
	}()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	output := make(chan persondex.Event)

	go h.signal.Realtime(ctx, output)

	quit := make(chan struct{})

	go func() {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {

				wsErr, ok := err.(*websocket.CloseError)
				if ok {
					if !(wsErr.Code == websocket.CloseNormalClosure || wsErr.Code == websocket.CloseGoingAway) {
						slog.DebugContext(
							ctx, "WebSocket closed",
							slog.String("error", wsErr.Error()),
							slog.String("module", "socket"),
						)
					}
				} else {
					slog.ErrorContext(
						ctx, "Error reading message",
						slog.String("error", err.Error()),
						slog.String("module", "socket"),
					)
				}

				close(quit)
				break
			}
		}
	}()

	for {
		select {
		case <-quit:
			return nil
		case event := <-output:
			err := ws.WriteJSON(event)
			if err != nil {
				slog.ErrorContext(
					ctx, "Error writing message",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				return nil
			}
		}
	}
}
