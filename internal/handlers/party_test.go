package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/komisi-informasi/case-management-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type PartyHandlerTestSuite struct {
	HandlerTestSuite
}

func (suite *PartyHandlerTestSuite) TestCreateParty_Success() {
	clerk := suite.createTestUser("panitera", models.RolePanitera)
	dispute := suite.createTestDispute("001/KIP/2024", clerk.ID)

	requestBody := map[string]interface{}{
		"name":       "Budi Santoso",
		"party_type": "individu",
		"role":       "pemohon",
		"dispute_id": dispute.ID,
		"email":      "budi@example.com",
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createActorContext("POST", "/api/parties", body, actorFor(clerk))
	suite.partyHandler.CreateParty(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response models.Party
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Budi Santoso", response.Name)
	assert.Equal(suite.T(), models.PartyTypeIndividu, response.PartyType)
	assert.Equal(suite.T(), models.PartyRolePemohon, response.Role)
	assert.Equal(suite.T(), dispute.ID, response.DisputeID)
	assert.Nil(suite.T(), response.Address)
}

func (suite *PartyHandlerTestSuite) TestCreateParty_DisputeNotFound() {
	clerk := suite.createTestUser("panitera", models.RolePanitera)

	requestBody := map[string]interface{}{
		"name":       "Budi Santoso",
		"party_type": "individu",
		"role":       "pemohon",
		"dispute_id": 999,
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createActorContext("POST", "/api/parties", body, actorFor(clerk))
	suite.partyHandler.CreateParty(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var count int64
	suite.db.Model(&models.Party{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *PartyHandlerTestSuite) TestCreateParty_InvalidRole() {
	clerk := suite.createTestUser("panitera", models.RolePanitera)
	dispute := suite.createTestDispute("002/KIP/2024", clerk.ID)

	requestBody := map[string]interface{}{
		"name":       "Budi Santoso",
		"party_type": "individu",
		"role":       "saksi",
		"dispute_id": dispute.ID,
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createActorContext("POST", "/api/parties", body, actorFor(clerk))
	suite.partyHandler.CreateParty(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *PartyHandlerTestSuite) TestCreateParty_ForbiddenForCommissioner() {
	// Party registration is a registry task; commissioners only manage
	// disputes and hearings.
	commissioner := suite.createTestUser("komisioner", models.RoleKomisioner)
	dispute := suite.createTestDispute("003/KIP/2024", commissioner.ID)

	requestBody := map[string]interface{}{
		"name":       "PT Terang",
		"party_type": "badan_hukum",
		"role":       "termohon",
		"dispute_id": dispute.ID,
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createActorContext("POST", "/api/parties", body, actorFor(commissioner))
	suite.partyHandler.CreateParty(c)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *PartyHandlerTestSuite) TestListPartiesByDispute() {
	clerk := suite.createTestUser("panitera", models.RolePanitera)
	dispute := suite.createTestDispute("004/KIP/2024", clerk.ID)
	suite.createTestParty(dispute.ID, "Budi Santoso", models.PartyRolePemohon)
	suite.createTestParty(dispute.ID, "Dinas PU", models.PartyRoleTermohon)

	c, w := suite.createActorContext("GET", "/api/disputes/1/parties", nil, actorFor(clerk))
	setIDParam(c, dispute.ID)
	suite.partyHandler.ListPartiesByDispute(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []models.Party
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response, 2)
	assert.Equal(suite.T(), "Budi Santoso", response[0].Name)
	assert.Equal(suite.T(), "Dinas PU", response[1].Name)
}

func (suite *PartyHandlerTestSuite) TestListPartiesByDispute_UnknownDispute() {
	clerk := suite.createTestUser("panitera", models.RolePanitera)

	c, w := suite.createActorContext("GET", "/api/disputes/999/parties", nil, actorFor(clerk))
	setIDParam(c, 999)
	suite.partyHandler.ListPartiesByDispute(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []models.Party
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Empty(suite.T(), response)
}

func TestPartyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PartyHandlerTestSuite))
}
