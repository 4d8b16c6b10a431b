package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/komisi-informasi/case-management-api/internal/constants"
	"github.com/komisi-informasi/case-management-api/internal/models"
	"github.com/komisi-informasi/case-management-api/internal/repository"
	"github.com/komisi-informasi/case-management-api/internal/services"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// HandlerTestSuite carries the shared test environment: an in-memory
// SQLite database and the full service/handler wiring.
type HandlerTestSuite struct {
	suite.Suite
	db *gorm.DB

	authHandler    *AuthHandler
	userHandler    *UserHandler
	disputeHandler *DisputeHandler
	partyHandler   *PartyHandler
	hearingHandler *HearingHandler

	authService    *services.AuthService
	disputeService *services.DisputeService
}

// SetupTest runs before each test
func (suite *HandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Dispute{},
		&models.Party{},
		&models.Hearing{},
	)
	suite.Require().NoError(err)

	userRepo := repository.NewUserRepository(suite.db)
	disputeRepo := repository.NewDisputeRepository(suite.db)
	partyRepo := repository.NewPartyRepository(suite.db)
	hearingRepo := repository.NewHearingRepository(suite.db)

	suite.authService = services.NewAuthService(userRepo)
	suite.disputeService = services.NewDisputeService(disputeRepo)

	suite.authHandler = NewAuthHandler(suite.authService)
	suite.userHandler = NewUserHandler(services.NewUserService(userRepo))
	suite.disputeHandler = NewDisputeHandler(suite.disputeService)
	suite.partyHandler = NewPartyHandler(services.NewPartyService(partyRepo, disputeRepo))
	suite.hearingHandler = NewHearingHandler(services.NewHearingService(hearingRepo, disputeRepo))

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *HandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper functions to create test data

func (suite *HandlerTestSuite) createTestUser(username string, role models.UserRole) *models.User {
	user := &models.User{
		Username:     username,
		Email:        username + "@komisi.example",
		FullName:     "Test " + username,
		Role:         role,
		PasswordHash: "hashedpassword",
		IsActive:     true,
	}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

func (suite *HandlerTestSuite) createTestDispute(number string, createdBy uint64) *models.Dispute {
	dispute := &models.Dispute{
		DisputeNumber:    number,
		DisputeType:      models.DisputeTypeSengketaInformasi,
		RegistrationDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Status:           models.DisputeStatusBaru,
		CreatedBy:        createdBy,
	}
	suite.Require().NoError(suite.db.Create(dispute).Error)
	return dispute
}

func (suite *HandlerTestSuite) createTestHearing(disputeID, createdBy uint64, hearingDate time.Time, agenda string) *models.Hearing {
	hearing := &models.Hearing{
		DisputeID:   disputeID,
		HearingDate: hearingDate,
		Agenda:      agenda,
		CreatedBy:   createdBy,
	}
	suite.Require().NoError(suite.db.Create(hearing).Error)
	return hearing
}

func (suite *HandlerTestSuite) createTestParty(disputeID uint64, name string, role models.PartyRole) *models.Party {
	party := &models.Party{
		Name:      name,
		PartyType: models.PartyTypeIndividu,
		Role:      role,
		DisputeID: disputeID,
	}
	suite.Require().NoError(suite.db.Create(party).Error)
	return party
}

// createActorContext builds a request context carrying the resolved actor,
// simulating the RequireAuth middleware.
func (suite *HandlerTestSuite) createActorContext(method, url string, body []byte, actor services.Actor) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, actor.ID)
	c.Set(constants.ContextKeyActor, actor)

	return c, w
}

func actorFor(user *models.User) services.Actor {
	return services.Actor{ID: user.ID, Role: user.Role}
}

func setIDParam(c *gin.Context, id uint64) {
	c.Params = gin.Params{{Key: "id", Value: strconv.FormatUint(id, 10)}}
}
