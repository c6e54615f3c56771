//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"servemart/internal/domain/user"
	"servemart/internal/handler/api"
	resdto "servemart/internal/handler/dto/response"
	"servemart/internal/pkg/errs"
	"servemart/internal/usecase/commands"
	"servemart/internal/usecase/queries"
	"servemart/tests/common/builder"
	"servemart/tests/common/httptest"
	commandsmock "servemart/tests/mock/commands"
	queriesmock "servemart/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProfileHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockBookingQueries
	mockSweeper *commandsmock.MockSweeperCommands
	handler     *api.ProfileHandler
	userID      uuid.UUID
}

func (s *ProfileHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockSweeper = commandsmock.NewMockSweeperCommands(s.mockCtrl)
	s.handler = api.NewProfileHandler(s.mockQueries, s.mockSweeper)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleClient)
		c.Next()
	}

	s.router.GET("/profile", authMiddleware, s.handler.GetProfile)
}

func (s *ProfileHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProfileHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}

func (s *ProfileHandlerTestSuite) TestGetProfile() {
	url := "/profile"

	profileView := &queries.ProfileView{
		User: builder.NewUserBuilder().BuildView(),
		ActiveBookings: []*queries.BookingListItem{
			builder.NewBookingBuilder().BuildListItem(),
		},
		ConfirmedBookings: []*queries.BookingListItem{
			builder.NewBookingBuilder().AsConfirmed().BuildListItem(),
		},
	}

	s.Run("success: sweeps expired bookings before loading the profile", func() {
		gomock.InOrder(
			s.mockSweeper.EXPECT().SweepExpired(gomock.Any()).
				Return(&commands.SweepResult{Deleted: 2, Completed: 1}, nil).Times(1),
			s.mockQueries.EXPECT().Profile(gomock.Any(), s.userID, user.RoleClient).
				Return(profileView, nil).Times(1),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.ActiveBookings, 1)
		s.Len(response.ConfirmedBookings, 1)
	})

	s.Run("success: a failed sweep degrades to a stale profile", func() {
		s.mockSweeper.EXPECT().SweepExpired(gomock.Any()).
			Return(nil, errors.New("deadlock detected")).Times(1)
		s.mockQueries.EXPECT().Profile(gomock.Any(), s.userID, user.RoleClient).
			Return(profileView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 Not Found when the user row is gone", func() {
		s.mockSweeper.EXPECT().SweepExpired(gomock.Any()).
			Return(&commands.SweepResult{}, nil).Times(1)
		s.mockQueries.EXPECT().Profile(gomock.Any(), s.userID, user.RoleClient).
			Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
