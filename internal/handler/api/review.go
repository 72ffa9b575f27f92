package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	reqdto "product-reviews/internal/handler/dto/request"
	resdto "product-reviews/internal/handler/dto/response"
	"product-reviews/internal/handler/httperr"
	"product-reviews/internal/handler/middleware"
	"product-reviews/internal/usecase/commands"
	"product-reviews/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// The wrong-secret and out-of-window messages come from the same family on
// purpose: the response must not reveal which gate rejected the submission.
const (
	msgNotAuthorized      = "Sorry, you are not authorized to review this product."
	msgSomethingWentWrong = "Sorry, something went wrong."
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary List product reviews
// @Description List visible reviews of a product, 10 per page, best rated first
// @Tags reviews
// @Produce json
// @Param product_id path string true "Product external ID"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} resdto.ListReviewsResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{product_id}/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	productID := c.Param("product_id")

	// Non-numeric page input degrades to the first page.
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	requester := middleware.GetSellerID(c)
	pagination, items, err := h.q.ListByProduct(c.Request.Context(), productID, requester, page)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		case errors.Is(err, queries.ErrReviewsHidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewList(pagination, items))
}

// @Summary Get review
// @Description Get a single visible review by external ID
// @Tags reviews
// @Produce json
// @Param id path string true "Review external ID"
// @Success 200 {object} resdto.GetReviewResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	requester := middleware.GetSellerID(c)
	view, err := h.q.GetByExternalID(c.Request.Context(), c.Param("id"), requester)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReviewNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		case errors.Is(err, queries.ErrReviewsHidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Submit review
// @Description Create or update the review for a purchase. Failures are reported in-band via success=false.
// @Tags reviews
// @Accept json
// @Produce json
// @Param product_id path string true "Product external ID"
// @Param request body reqdto.SubmitReviewRequest true "Submit review request"
// @Success 200 {object} resdto.SubmitReviewResponse
// @Router /products/{product_id}/reviews [post]
func (h *ReviewHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, resdto.SubmitFailure(msgSomethingWentWrong))
		return
	}

	cmd, err := req.ToCommand(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusOK, resdto.SubmitFailure(err.Error()))
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), cmd)
	if err != nil {
		c.JSON(http.StatusOK, resdto.SubmitFailure(submitFailureMessage(c, err)))
		return
	}

	form, err := h.q.GetFormByID(c.Request.Context(), result.ReviewID)
	if err != nil {
		slog.Error("failed to load submitted review", "error", err, "request_id", middleware.GetRequestID(c))
		c.JSON(http.StatusOK, resdto.SubmitFailure(msgSomethingWentWrong))
		return
	}

	c.JSON(http.StatusOK, resdto.SubmitSuccess(form))
}

// submitFailureMessage normalizes every submit-path failure into the
// in-band shape. Only validation failures may carry their specific reason;
// everything else collapses into one of the two generic texts.
func submitFailureMessage(c *gin.Context, err error) string {
	var vErr *commands.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Reason
	case errors.Is(err, commands.ErrNotAuthorized):
		return msgNotAuthorized
	case errors.Is(err, commands.ErrNotEligible),
		errors.Is(err, commands.ErrPurchaseNotFound),
		errors.Is(err, commands.ErrProductNotFound):
		return msgSomethingWentWrong
	default:
		slog.Error("review submission failed", "error", err, "request_id", middleware.GetRequestID(c))
		return msgSomethingWentWrong
	}
}
