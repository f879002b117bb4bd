package http

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"toolbox-api/internal/application/command"
	"toolbox-api/internal/application/services"
	"toolbox-api/internal/infrastructure"
	"toolbox-api/internal/infrastructure/db/postgres"
)

type testServer struct {
	server *Server
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	personRepo := postgres.NewPersonRepository(db)
	townRepo := postgres.NewTownRepository(db)
	countryRepo := postgres.NewCountryRepository(db)
	groupRepo := postgres.NewGroupRepository(db)
	toolRepo := postgres.NewToolRepository(db)
	searchRepo := postgres.NewSearchRepository(db)

	tokenService := infrastructure.NewTokenService("test-secret", time.Hour)
	redisService := infrastructure.NewRedisService()
	mailer := infrastructure.NewMailer()
	rateLimiter := infrastructure.NewRateLimiter(time.Minute, 100)

	bundle := Services{
		Account: services.NewAccountService(personRepo, townRepo, tokenService, redisService, mailer, rateLimiter),
		Search:  services.NewSearchService(townRepo, searchRepo),
		Group:   services.NewGroupService(groupRepo, townRepo, personRepo, toolRepo),
		Tool:    services.NewToolService(toolRepo, groupRepo, personRepo),
		Catalog: services.NewCatalogService(townRepo, countryRepo),
	}

	return &testServer{
		server: NewServer(tokenService, bundle, 1000, 1000),
		db:     db,
	}
}

func (ts *testServer) do(t *testing.T, method, target, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.server.Echo().ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) registerPerson(t *testing.T, email, alias string) *command.RegisterPersonCommandResult {
	t.Helper()

	rec := ts.do(t, nethttp.MethodPost, "/api/persons", "", command.RegisterPersonCommand{
		Email:     email,
		Alias:     alias,
		FirstName: "Test",
		LastName:  "Person",
		Password:  "secret",
	})
	require.Equal(t, nethttp.StatusCreated, rec.Code, rec.Body.String())

	var result command.RegisterPersonCommandResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)
	return &result
}

func (ts *testServer) makeAdmin(t *testing.T, personID uint) {
	t.Helper()

	err := ts.db.Model(&postgres.PersonModel{}).Where("id = ?", personID).Update("is_admin", true).Error
	require.NoError(t, err)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Error)
	return envelope.Error
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	registered := ts.registerPerson(t, "alice@example.com", "alice")

	rec := ts.do(t, nethttp.MethodGet, "/api/persons/login?email=alice@example.com&pwd=secret", "", nil)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())

	var login command.LoginCommandResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.Equal(t, registered.Result.ID, login.Person.ID)
	assert.NotEmpty(t, login.Token)
}

func TestLoginBadCredentials(t *testing.T) {
	ts := newTestServer(t)
	ts.registerPerson(t, "alice@example.com", "alice")

	wrongPassword := ts.do(t, nethttp.MethodGet, "/api/persons/login?email=alice@example.com&pwd=nope", "", nil)
	unknownEmail := ts.do(t, nethttp.MethodGet, "/api/persons/login?email=nobody@example.com&pwd=secret", "", nil)

	assert.Equal(t, nethttp.StatusNotFound, wrongPassword.Code)
	assert.Equal(t, nethttp.StatusNotFound, unknownEmail.Code)
	assert.Equal(t, decodeError(t, wrongPassword), decodeError(t, unknownEmail))
}

func TestRegisterConflict(t *testing.T) {
	ts := newTestServer(t)
	ts.registerPerson(t, "alice@example.com", "alice")

	rec := ts.do(t, nethttp.MethodPost, "/api/persons", "", command.RegisterPersonCommand{
		Email:    "alice@example.com",
		Alias:    "alice2",
		Password: "secret",
	})
	assert.Equal(t, nethttp.StatusConflict, rec.Code)
	assert.Contains(t, decodeError(t, rec), "email")
}

func TestAuthenticatedEndpointRequiresToken(t *testing.T) {
	ts := newTestServer(t)
	registered := ts.registerPerson(t, "alice@example.com", "alice")

	noToken := ts.do(t, nethttp.MethodGet, "/api/persons/1", "", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, noToken.Code)
	decodeError(t, noToken)

	badToken := ts.do(t, nethttp.MethodGet, "/api/persons/1", "not-a-token", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, badToken.Code)

	ok := ts.do(t, nethttp.MethodGet, "/api/persons/1", registered.Token, nil)
	assert.Equal(t, nethttp.StatusOK, ok.Code, ok.Body.String())
}

func TestAdminOnlyEndpoint(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.registerPerson(t, "alice@example.com", "alice")
	admin := ts.registerPerson(t, "root@example.com", "root")
	ts.makeAdmin(t, admin.Result.ID)

	noToken := ts.do(t, nethttp.MethodGet, "/api/persons", "", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, noToken.Code)

	nonAdmin := ts.do(t, nethttp.MethodGet, "/api/persons", alice.Token, nil)
	assert.Equal(t, nethttp.StatusForbidden, nonAdmin.Code)
	assert.Contains(t, decodeError(t, nonAdmin), "admin")

	asAdmin := ts.do(t, nethttp.MethodGet, "/api/persons", admin.Token, nil)
	assert.Equal(t, nethttp.StatusOK, asAdmin.Code, asAdmin.Body.String())
}

func TestInvalidIDParam(t *testing.T) {
	ts := newTestServer(t)
	registered := ts.registerPerson(t, "alice@example.com", "alice")

	rec := ts.do(t, nethttp.MethodGet, "/api/persons/abc", registered.Token, nil)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	decodeError(t, rec)
}

func TestLoginWithRegisteredCase(t *testing.T) {
	ts := newTestServer(t)
	registered := ts.registerPerson(t, "Alice@Example.com", "alice")

	rec := ts.do(t, nethttp.MethodGet, "/api/persons/login?email=Alice@Example.com&pwd=secret", "", nil)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())

	var login command.LoginCommandResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.Equal(t, registered.Result.ID, login.Person.ID)
}

func TestUpdateProfileOwnershipEnforced(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.registerPerson(t, "alice@example.com", "alice")
	bob := ts.registerPerson(t, "bob@example.com", "bob")

	path := "/api/persons/" + itoa(bob.Result.ID)
	cmd := command.UpdateProfileCommand{FirstName: "Robert", LastName: "Builder"}

	forbidden := ts.do(t, nethttp.MethodPut, path, alice.Token, cmd)
	assert.Equal(t, nethttp.StatusForbidden, forbidden.Code)

	noToken := ts.do(t, nethttp.MethodPut, path, "", cmd)
	assert.Equal(t, nethttp.StatusUnauthorized, noToken.Code)

	own := ts.do(t, nethttp.MethodPut, path, bob.Token, cmd)
	require.Equal(t, nethttp.StatusOK, own.Code, own.Body.String())
	assert.Contains(t, own.Body.String(), "Robert")

	fetched := ts.do(t, nethttp.MethodGet, path, bob.Token, nil)
	require.Equal(t, nethttp.StatusOK, fetched.Code)
	assert.Contains(t, fetched.Body.String(), "Builder")
}

func TestAddToolOwnershipEnforced(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.registerPerson(t, "alice@example.com", "alice")
	bob := ts.registerPerson(t, "bob@example.com", "bob")

	path := "/api/persons/" + itoa(bob.Result.ID) + "/tools"
	forbidden := ts.do(t, nethttp.MethodPost, path, alice.Token, command.CreateToolCommand{Name: "Drill"})
	assert.Equal(t, nethttp.StatusForbidden, forbidden.Code)

	own := ts.do(t, nethttp.MethodPost, path, bob.Token, command.CreateToolCommand{Name: "Drill"})
	assert.Equal(t, nethttp.StatusCreated, own.Code, own.Body.String())
}

func TestGroupMemberLifecycleOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.registerPerson(t, "alice@example.com", "alice")

	town := ts.do(t, nethttp.MethodPost, "/api/towns", alice.Token, command.CreateTownCommand{
		Name: "Brussels", CountryCode: "BE", Latitude: 50.85, Longitude: 4.35,
	})
	require.Equal(t, nethttp.StatusCreated, town.Code, town.Body.String())
	var townResult command.CreateTownCommandResult
	require.NoError(t, json.Unmarshal(town.Body.Bytes(), &townResult))

	group := ts.do(t, nethttp.MethodPost, "/api/groups", alice.Token, command.CreateGroupCommand{
		Name: "Woodworkers", Type: "public", TownID: townResult.Result.ID, Radius: 10,
	})
	require.Equal(t, nethttp.StatusCreated, group.Code, group.Body.String())

	added := ts.do(t, nethttp.MethodPost, "/api/groups/members", alice.Token, command.AddGroupMemberCommand{
		GroupName: "Woodworkers", PersonID: alice.Result.ID, GroupAdmin: true,
	})
	require.Equal(t, nethttp.StatusCreated, added.Code, added.Body.String())

	removePath := "/api/groups/members?groupName=Woodworkers&id_person=" + itoa(alice.Result.ID)
	removed := ts.do(t, nethttp.MethodDelete, removePath, alice.Token, nil)
	assert.Equal(t, nethttp.StatusNoContent, removed.Code)

	again := ts.do(t, nethttp.MethodDelete, removePath, alice.Token, nil)
	assert.Equal(t, nethttp.StatusNotFound, again.Code)
	assert.Contains(t, decodeError(t, again), "does not exist in group")
}

func TestSearchEndToEnd(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.registerPerson(t, "owner@example.com", "owner")

	brussels := ts.do(t, nethttp.MethodPost, "/api/towns", owner.Token, command.CreateTownCommand{
		Name: "Brussels", CountryCode: "BE", Latitude: 50.85, Longitude: 4.35,
	})
	require.Equal(t, nethttp.StatusCreated, brussels.Code)

	waterloo := ts.do(t, nethttp.MethodPost, "/api/towns", owner.Token, command.CreateTownCommand{
		Name: "Waterloo", CountryCode: "BE", Latitude: 50.80, Longitude: 4.40,
	})
	require.Equal(t, nethttp.StatusCreated, waterloo.Code)
	var waterlooResult command.CreateTownCommandResult
	require.NoError(t, json.Unmarshal(waterloo.Body.Bytes(), &waterlooResult))

	group := ts.do(t, nethttp.MethodPost, "/api/groups", owner.Token, command.CreateGroupCommand{
		Name: "Wide Reach", Type: "public", TownID: waterlooResult.Result.ID, Radius: 10,
	})
	require.Equal(t, nethttp.StatusCreated, group.Code)

	toolPath := "/api/persons/" + itoa(owner.Result.ID) + "/tools"
	tool := ts.do(t, nethttp.MethodPost, toolPath, owner.Token, command.CreateToolCommand{Name: "Claw Hammer"})
	require.Equal(t, nethttp.StatusCreated, tool.Code)
	var toolResult command.CreateToolCommandResult
	require.NoError(t, json.Unmarshal(tool.Body.Bytes(), &toolResult))

	linked := ts.do(t, nethttp.MethodPost, "/api/groups/tools", owner.Token, command.AddGroupToolCommand{
		GroupName: "Wide Reach", ToolID: toolResult.Result.ID,
	})
	require.Equal(t, nethttp.StatusCreated, linked.Code)

	// search is public, no token needed
	rec := ts.do(t, nethttp.MethodGet, "/api/search?what=hammer&where=Brussels", "", nil)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())

	var searchResult struct {
		Result []struct {
			Group struct {
				Name string `json:"groupName"`
			} `json:"group"`
			Town struct {
				Name string `json:"name"`
			} `json:"town"`
			DistanceKm float64 `json:"distance_km"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &searchResult))
	require.Len(t, searchResult.Result, 1)
	assert.Equal(t, "Wide Reach", searchResult.Result[0].Group.Name)
	assert.Equal(t, "Waterloo", searchResult.Result[0].Town.Name)
	assert.InDelta(t, 6.5, searchResult.Result[0].DistanceKm, 0.3)

	empty := ts.do(t, nethttp.MethodGet, "/api/search?what=hammer&where=Atlantis", "", nil)
	require.Equal(t, nethttp.StatusOK, empty.Code)
	assert.JSONEq(t, `{"result":[]}`, empty.Body.String())
}

func TestCreateCountryIsAdminOnly(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.registerPerson(t, "alice@example.com", "alice")
	admin := ts.registerPerson(t, "root@example.com", "root")
	ts.makeAdmin(t, admin.Result.ID)

	cmd := command.CreateCountryCommand{Code: "BE", Name: "Belgium"}

	denied := ts.do(t, nethttp.MethodPost, "/api/countries", alice.Token, cmd)
	assert.Equal(t, nethttp.StatusForbidden, denied.Code)

	created := ts.do(t, nethttp.MethodPost, "/api/countries", admin.Token, cmd)
	assert.Equal(t, nethttp.StatusCreated, created.Code, created.Body.String())

	// listing countries is public
	listed := ts.do(t, nethttp.MethodGet, "/api/countries", "", nil)
	assert.Equal(t, nethttp.StatusOK, listed.Code)
	assert.Contains(t, listed.Body.String(), "Belgium")
}

func TestTokenViaQueryParamFallback(t *testing.T) {
	ts := newTestServer(t)
	registered := ts.registerPerson(t, "alice@example.com", "alice")

	rec := ts.do(t, nethttp.MethodGet, "/api/persons/1?token="+registered.Token, "", nil)
	assert.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
}

func TestLoginByToken(t *testing.T) {
	ts := newTestServer(t)
	registered := ts.registerPerson(t, "alice@example.com", "alice")

	rec := ts.do(t, nethttp.MethodGet, "/api/persons/login_token?token="+registered.Token, "", nil)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"alice"`)

	bad := ts.do(t, nethttp.MethodGet, "/api/persons/login_token?token=garbage", "", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, bad.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
