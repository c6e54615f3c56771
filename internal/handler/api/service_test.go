//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"servemart/internal/domain/user"
	"servemart/internal/handler/api"
	resdto "servemart/internal/handler/dto/response"
	"servemart/internal/pkg/errs"
	"servemart/internal/usecase/queries"
	"servemart/tests/common/builder"
	"servemart/tests/common/httptest"
	"servemart/tests/common/testutil"
	commandsmock "servemart/tests/mock/commands"
	queriesmock "servemart/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockServiceCommands
	mockQueries  *queriesmock.MockServiceQueries
	handler      *api.ServiceHandler
	providerID   uuid.UUID
}

func (s *ServiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockServiceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockServiceQueries(s.mockCtrl)
	s.handler = api.NewServiceHandler(s.mockCommands, s.mockQueries)
	s.providerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.providerID)
		c.Set("user_role", user.RoleProvider)
		c.Next()
	}

	// Catalog reads are public; writes sit behind the provider guard
	s.router.GET("/services", s.handler.ListServices)
	s.router.GET("/services/:id", s.handler.GetService)
	s.router.POST("/services", authMiddleware, s.handler.CreateService)
	s.router.POST("/services/:id/availability", authMiddleware, s.handler.SetAvailability)
}

func (s *ServiceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestServiceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ServiceHandlerTestSuite))
}

// ================================================================================
// TestListServices
// ================================================================================

func (s *ServiceHandlerTestSuite) TestListServices() {
	url := "/services"

	s.Run("success: returns 200 OK with the full catalog", func() {
		views := []*queries.ServiceView{
			builder.NewServiceBuilder().BuildView(),
			builder.NewServiceBuilder().WithPriceSubunits(120000).AsUnavailable().BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)

		expected := resdto.FromServiceViews(views)
		s.Empty(cmp.Diff(expected, response))
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGetService
// ================================================================================

func (s *ServiceHandlerTestSuite) TestGetService() {
	view := builder.NewServiceBuilder().BuildView()
	url := fmt.Sprintf("/services/%s", view.ID)

	s.Run("success: returns 200 OK with the service", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Title, response.Title)
		s.Equal(view.PriceSubunits, response.PriceSubunits)
	})

	s.Run("error: 400 Bad Request on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid service ID format")
	})

	s.Run("error: 404 Not Found on unknown service", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, errs.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})
}

// ================================================================================
// TestCreateService
// ================================================================================

func (s *ServiceHandlerTestSuite) TestCreateService() {
	url := "/services"

	reqBody := builder.NewServiceBuilder().BuildCreateRequestDTO()
	serviceID := uuid.New()

	s.Run("success: returns 201 Created with the new ID", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.providerID, gomock.Any()).
			Return(serviceID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response struct {
			ID string `json:"id"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(serviceID.String(), response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: title (required)", mutate: testutil.Field("title", nil)},
			{name: "missing field: category (required)", mutate: testutil.Field("category", nil)},
			{name: "negative price_subunits", mutate: testutil.Field("price_subunits", -1)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request on domain rejection", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.providerID, gomock.Any()).
			Return(uuid.Nil, errors.New("invalid service: invalid service category")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid service data")
	})
}

// ================================================================================
// TestSetAvailability
// ================================================================================

func (s *ServiceHandlerTestSuite) TestSetAvailability() {
	serviceID := uuid.New()
	url := fmt.Sprintf("/services/%s/availability", serviceID)
	reqBody := map[string]any{"available": false}

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().SetAvailability(gomock.Any(), s.providerID, serviceID, false).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response struct {
			Message string `json:"message"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Service availability updated", response.Message)
	})

	s.Run("error: 400 Bad Request on missing flag", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 404 Not Found when the listing belongs to someone else", func() {
		s.mockCommands.EXPECT().SetAvailability(gomock.Any(), s.providerID, serviceID, false).
			Return(errs.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})
}
