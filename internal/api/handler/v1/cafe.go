package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/cafe-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/cafe-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/cafe-api/internal/config"
	"github.com/vietanh2810/cafe-api/internal/domain"
	"github.com/vietanh2810/cafe-api/internal/service"
)

const (
	msgNoCafeAtLocation = "Sorry, we don't have a cafe at that location."
	msgCafeIDNotFound   = "Sorry a cafe with that id was not found in the database."
	msgNoCafes          = "Sorry, there are no cafes in the database yet."
	msgCafeNameExists   = "Sorry, a cafe with that name already exists."

	msgCafeAdded   = "Successfully added the new cafe."
	msgPriceUpdate = "Successfully updated the price."
	msgCafeDeleted = "Successfully deleted the cafe from the database."
)

type CafeService interface {
	GetRandomCafe(ctx context.Context) (domain.Cafe, error)
	GetAllCafes(ctx context.Context) ([]domain.Cafe, error)
	SearchByLocation(ctx context.Context, location string) ([]domain.Cafe, error)
	AddCafe(ctx context.Context, cafe domain.Cafe) (domain.Cafe, error)
	UpdateCoffeePrice(ctx context.Context, id uint, price *string) error
	ReportClosed(ctx context.Context, id uint) error
	Ping(ctx context.Context) error
}

type CafeHandler struct {
	svc                CafeService
	strictFormBooleans bool
}

func NewCafeHandler(conf *config.APIConfig, svc CafeService) *CafeHandler {
	return &CafeHandler{
		svc:                svc,
		strictFormBooleans: conf.StrictFormBooleans,
	}
}

// HandleHome renders the landing page.
func (h *CafeHandler) HandleHome(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", nil)
}

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Healthcheck
// @Failure      503  {object}  response.Err
// @Router       /healthcheck [get]
func (h *CafeHandler) HandleHealthcheck(ctx *gin.Context) {
	if err := h.svc.Ping(ctx.Request.Context()); err != nil {
		err = fmt.Errorf("HandleHealthcheck -> h.svc.Ping -> %w", err)
		response.RenderErr(ctx, response.ErrServiceUnavailable(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Healthcheck{Status: "ok"})
}

// HandleGetRandomCafe godoc
// @Summary      Get a random cafe
// @Tags         cafes
// @Produce      json
// @Success      200  {object}  response.CafeResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /random [get]
func (h *CafeHandler) HandleGetRandomCafe(ctx *gin.Context) {
	cafe, err := h.svc.GetRandomCafe(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoCafes) {
			response.RenderErr(ctx, response.ErrNotFound(msgNoCafes))
			return
		}

		err = fmt.Errorf("HandleGetRandomCafe -> h.svc.GetRandomCafe -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.CafeResponse{Cafe: response.NewCafe(cafe)})
}

// HandleGetAllCafes godoc
// @Summary      Get all cafes
// @Description  Returns every cafe ordered by name.
// @Tags         cafes
// @Produce      json
// @Success      200  {object}  response.CafesResponse
// @Failure      500  {object}  response.Err
// @Router       /all [get]
func (h *CafeHandler) HandleGetAllCafes(ctx *gin.Context) {
	cafes, err := h.svc.GetAllCafes(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetAllCafes -> h.svc.GetAllCafes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewCafes(cafes))
}

// HandleSearchCafes godoc
// @Summary      Search cafes by location
// @Description  Exact, case-sensitive match on the location.
// @Tags         cafes
// @Produce      json
// @Param        loc  query     string  true  "Location, e.g. Peckham"
// @Success      200  {object}  response.CafesResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /search [get]
func (h *CafeHandler) HandleSearchCafes(ctx *gin.Context) {
	loc, ok := ctx.GetQuery("loc")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound(msgNoCafeAtLocation))
		return
	}

	cafes, err := h.svc.SearchByLocation(ctx.Request.Context(), loc)
	if err != nil {
		if errors.Is(err, service.ErrNoCafeAtLocation) {
			response.RenderErr(ctx, response.ErrNotFound(msgNoCafeAtLocation))
			return
		}

		err = fmt.Errorf("HandleSearchCafes -> h.svc.SearchByLocation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewCafes(cafes))
}

// HandleAddCafe godoc
// @Summary      Add a cafe
// @Tags         cafes
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        name          formData  string  true   "Name"
// @Param        map_url       formData  string  true   "Map URL"
// @Param        img_url       formData  string  true   "Image URL"
// @Param        loc           formData  string  true   "Location"
// @Param        seats         formData  string  true   "Seats, e.g. 20-30"
// @Param        sockets       formData  string  false  "Has sockets"
// @Param        toilet        formData  string  false  "Has toilet"
// @Param        wifi          formData  string  false  "Has wifi"
// @Param        calls         formData  string  false  "Can take calls"
// @Param        coffee_price  formData  string  false  "Coffee price, e.g. £2.40"
// @Success      200  {object}  response.Success
// @Failure      400  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /add [post]
func (h *CafeHandler) HandleAddCafe(ctx *gin.Context) {
	var req request.AddCafeRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if price, ok := ctx.GetPostForm("coffee_price"); ok {
		req.CoffeePrice = &price
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	cafe, err := req.ToDomain(h.strictFormBooleans)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if _, err = h.svc.AddCafe(ctx.Request.Context(), cafe); err != nil {
		if errors.Is(err, service.ErrCafeNameExists) {
			response.RenderErr(ctx, response.ErrConflict(msgCafeNameExists, err))
			return
		}

		err = fmt.Errorf("HandleAddCafe -> h.svc.AddCafe -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(msgCafeAdded))
}

// HandleUpdatePrice godoc
// @Summary      Update the coffee price of a cafe
// @Tags         cafes
// @Produce      json
// @Param        cafe_id    path   int     true   "Cafe ID"
// @Param        new_price  query  string  false  "New price, e.g. £5.67"
// @Success      200  {object}  response.Success
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /update-price/{cafe_id} [patch]
func (h *CafeHandler) HandleUpdatePrice(ctx *gin.Context) {
	cafeID, ok := parseCafeID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound(msgCafeIDNotFound))
		return
	}

	var price *string
	if p, ok := ctx.GetQuery("new_price"); ok {
		price = &p
	}

	if err := h.svc.UpdateCoffeePrice(ctx.Request.Context(), cafeID, price); err != nil {
		if errors.Is(err, service.ErrCafeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(msgCafeIDNotFound))
			return
		}

		err = fmt.Errorf("HandleUpdatePrice -> h.svc.UpdateCoffeePrice -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(msgPriceUpdate))
}

// HandleReportClosed godoc
// @Summary      Delete a closed cafe
// @Description  Requires the shared api key.
// @Tags         cafes
// @Produce      json
// @Param        cafe_id  path   int     true  "Cafe ID"
// @Param        api-key  query  string  true  "API key"
// @Success      200  {object}  response.Success
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /report-closed/{cafe_id} [delete]
func (h *CafeHandler) HandleReportClosed(ctx *gin.Context) {
	cafeID, ok := parseCafeID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound(msgCafeIDNotFound))
		return
	}

	if err := h.svc.ReportClosed(ctx.Request.Context(), cafeID); err != nil {
		if errors.Is(err, service.ErrCafeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(msgCafeIDNotFound))
			return
		}

		err = fmt.Errorf("HandleReportClosed -> h.svc.ReportClosed -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(msgCafeDeleted))
}

// parseCafeID reports false for anything that is not a positive integer.
// Such ids can never match a row, so callers answer 404.
func parseCafeID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("cafe_id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}
