//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"product-reviews/internal/handler/api"
	resdto "product-reviews/internal/handler/dto/response"
	"product-reviews/internal/usecase/commands"
	"product-reviews/internal/usecase/queries"
	"product-reviews/tests/common/builder"
	"product-reviews/tests/common/httptest"
	"product-reviews/tests/common/testutil"
	commandsmock "product-reviews/tests/mock/commands"
	queriesmock "product-reviews/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	msgNotAuthorized      = "Sorry, you are not authorized to review this product."
	msgSomethingWentWrong = "Sorry, something went wrong."
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	sellerID     uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.sellerID = uuid.New()

	// Stand-in for the optional auth middleware: any bearer token resolves
	// to the suite's seller.
	optionalAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("seller_id", s.sellerID)
		}
		c.Next()
	}

	s.router.GET("/api/products/:product_id/reviews", optionalAuth, s.handler.List)
	s.router.POST("/api/products/:product_id/reviews", optionalAuth, s.handler.Submit)
	s.router.GET("/api/reviews/:id", optionalAuth, s.handler.Get)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReviewHandlerTestSuite) TestList() {
	b := builder.NewReviewBuilder()
	url := "/api/products/" + b.ProductExternalID + "/reviews"

	s.Run("success: returns reviews with pagination", func() {
		items := []*queries.ReviewListItem{b.BuildListItem(), b.BuildListItem()}
		pagination := queries.NewPagination(1, 2)

		s.mockQueries.EXPECT().ListByProduct(gomock.Any(), b.ProductExternalID, nil, 1).
			Return(pagination, items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.ListReviewsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Reviews, 2)
		s.Equal(1, body.Pagination.Page)
		s.Equal(int64(2), body.Pagination.Count)
	})

	s.Run("success: page query parameter is forwarded", func() {
		s.mockQueries.EXPECT().ListByProduct(gomock.Any(), b.ProductExternalID, nil, 3).
			Return(queries.NewPagination(3, 25), []*queries.ReviewListItem{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?page=3", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: non-numeric page degrades to the first page", func() {
		s.mockQueries.EXPECT().ListByProduct(gomock.Any(), b.ProductExternalID, nil, 1).
			Return(queries.NewPagination(1, 0), []*queries.ReviewListItem{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?page=abc", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: authenticated requester is passed through", func() {
		s.mockQueries.EXPECT().ListByProduct(gomock.Any(), b.ProductExternalID, gomock.Not(gomock.Nil()), 1).
			Return(queries.NewPagination(1, 0), []*queries.ReviewListItem{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "seller-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 for unknown product", func() {
		s.mockQueries.EXPECT().ListByProduct(gomock.Any(), b.ProductExternalID, nil, 1).
			Return(queries.Pagination{}, nil, queries.ErrProductNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 403 when reviews are hidden", func() {
		s.mockQueries.EXPECT().ListByProduct(gomock.Any(), b.ProductExternalID, nil, 1).
			Return(queries.Pagination{}, nil, queries.ErrReviewsHidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockQueries.EXPECT().ListByProduct(gomock.Any(), b.ProductExternalID, nil, 1).
			Return(queries.Pagination{}, nil, errors.New("boom"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReviewHandlerTestSuite) TestGet() {
	view := builder.NewReviewBuilder().BuildView()
	url := "/api/reviews/" + view.ExternalID

	s.Run("success: returns the review", func() {
		s.mockQueries.EXPECT().GetByExternalID(gomock.Any(), view.ExternalID, nil).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.GetReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ExternalID, body.Review.ID)
		s.Equal(view.ProductExternalID, body.Review.ProductID)
		s.Equal(view.Rating, body.Review.Rating)
	})

	s.Run("error: 404 for unknown or invisible review", func() {
		s.mockQueries.EXPECT().GetByExternalID(gomock.Any(), view.ExternalID, nil).
			Return(nil, queries.ErrReviewNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 403 when the product hides reviews", func() {
		s.mockQueries.EXPECT().GetByExternalID(gomock.Any(), view.ExternalID, nil).
			Return(nil, queries.ErrReviewsHidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *ReviewHandlerTestSuite) TestSubmit() {
	b := builder.NewReviewBuilder()
	url := "/api/products/" + b.ProductExternalID + "/reviews"
	reqBody := b.BuildSubmitRequestDTO()

	s.Run("success: returns the saved review in the form shape", func() {
		form := b.BuildFormView()

		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(&commands.SubmitReviewResult{ReviewID: form.ID}, nil)
		s.mockQueries.EXPECT().GetFormByID(gomock.Any(), form.ID).Return(form, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.SubmitReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Empty(body.Message)
		s.Require().NotNil(body.Review)
		s.Equal(form.ExternalID, body.Review.ID)
	})

	s.Run("failure: validation reason is surfaced verbatim", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(nil, &commands.ValidationError{Reason: "rating must be between 1 and 5"})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.SubmitReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Success)
		s.Equal("rating must be between 1 and 5", body.Message)
		s.Nil(body.Review)
	})

	s.Run("failure: wrong digest yields the authorization message", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrNotAuthorized)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.SubmitReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Success)
		s.Equal(msgNotAuthorized, body.Message)
	})

	s.Run("failure: ineligible purchase yields the generic message", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrNotEligible)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.SubmitReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Success)
		s.Equal(msgSomethingWentWrong, body.Message)
	})

	s.Run("failure: missing purchase yields the generic message", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrPurchaseNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.SubmitReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Success)
		s.Equal(msgSomethingWentWrong, body.Message)
	})

	s.Run("failure: unexpected error yields the generic message", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.SubmitReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Success)
		s.Equal(msgSomethingWentWrong, body.Message)
	})

	s.Run("failure: malformed body yields the generic message, still HTTP 200", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("purchase_id", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

		var body resdto.SubmitReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Success)
		s.Equal(msgSomethingWentWrong, body.Message)
	})

	s.Run("failure: create op without a url reports the specific reason", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("video_options", map[string]any{
				"create": []map[string]any{{"url": "   "}},
			}))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

		var body resdto.SubmitReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Success)
		s.Equal("video url is required", body.Message)
	})

	s.Run("success: long message is forwarded untouched", func() {
		form := b.BuildFormView()
		long := strings.Repeat("a", 2000)

		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, cmd commands.SubmitReviewRequest) (*commands.SubmitReviewResult, error) {
				s.Equal(long, cmd.Message)
				return &commands.SubmitReviewResult{ReviewID: form.ID}, nil
			})
		s.mockQueries.EXPECT().GetFormByID(gomock.Any(), form.ID).Return(form, nil)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("message", long))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}
