package http

import (
	"github.com/labstack/echo/v4"

	"toolbox-api/internal/apperrors"
)

// Level is the minimum capability an operation demands. Levels are
// ordered: Public < Authenticated < AdminOnly.
type Level int

const (
	LevelPublic Level = iota
	LevelAuthenticated
	LevelAdminOnly
)

// Operation names, one per routed endpoint. The policy table below is
// the single source of truth for who may call what.
const (
	OpListPersons    = "persons.list"
	OpRegisterPerson = "persons.register"
	OpGetPerson      = "persons.get"
	OpUpdatePerson   = "persons.update"
	OpListAliases    = "persons.aliases"
	OpLogin          = "persons.login"
	OpLoginByToken   = "persons.login_token"
	OpPersonTools    = "persons.tools"
	OpPersonReviews  = "persons.reviews"
	OpPersonTowns    = "persons.towns"
	OpPersonGroups   = "persons.groups"
	OpListTools      = "tools.list"
	OpToolImages     = "tools.images"
	OpToolImagesAdd  = "tools.images.add"
	OpToolReviews    = "tools.reviews"
	OpToolReviewsAdd = "tools.reviews.add"
	OpToolGroups     = "tools.groups"
	OpListGroups     = "groups.list"
	OpCreateGroup    = "groups.create"
	OpPublicGroups   = "groups.public"
	OpPrivateGroups  = "groups.private"
	OpGroupMembers   = "groups.members"
	OpGroupAdmins    = "groups.admins"
	OpGroupTools     = "groups.tools"
	OpListTowns      = "towns.list"
	OpCreateTown     = "towns.create"
	OpListCountries  = "countries.list"
	OpCreateCountry  = "countries.create"
	OpSearch         = "search"
)

var policy = map[string]Level{
	OpListPersons:    LevelAdminOnly,
	OpRegisterPerson: LevelPublic,
	OpGetPerson:      LevelAuthenticated,
	OpUpdatePerson:   LevelAuthenticated,
	OpListAliases:    LevelPublic,
	OpLogin:          LevelPublic,
	OpLoginByToken:   LevelPublic,
	OpPersonTools:    LevelAuthenticated,
	OpPersonReviews:  LevelAuthenticated,
	OpPersonTowns:    LevelAuthenticated,
	OpPersonGroups:   LevelAuthenticated,
	OpListTools:      LevelPublic,
	OpToolImages:     LevelPublic,
	OpToolImagesAdd:  LevelAuthenticated,
	OpToolReviews:    LevelPublic,
	OpToolReviewsAdd: LevelAuthenticated,
	OpToolGroups:     LevelPublic,
	OpListGroups:     LevelPublic,
	OpCreateGroup:    LevelAuthenticated,
	OpPublicGroups:   LevelPublic,
	OpPrivateGroups:  LevelAuthenticated,
	OpGroupMembers:   LevelAuthenticated,
	OpGroupAdmins:    LevelAuthenticated,
	OpGroupTools:     LevelAuthenticated,
	OpListTowns:      LevelPublic,
	OpCreateTown:     LevelAuthenticated,
	OpListCountries:  LevelPublic,
	OpCreateCountry:  LevelAdminOnly,
	OpSearch:         LevelPublic,
}

// enforce wraps a handler with the access check for one operation. It
// runs before the handler touches any data: Public passes through,
// Authenticated needs a verifiable bearer token, AdminOnly additionally
// needs the resolved person's admin flag.
func (s *Server) enforce(operation string, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		level, ok := policy[operation]
		if !ok {
			// Unlisted operations are a programming error; deny.
			return apperrors.Forbidden("operation not permitted")
		}

		if level == LevelPublic {
			return next(c)
		}

		token := bearerToken(c)
		if token == "" {
			return apperrors.Unauthorized("missing bearer token")
		}

		personID, err := s.tokenService.Verify(token)
		if err != nil {
			return apperrors.Unauthorized("invalid or expired token")
		}
		c.Set(contextKeyPersonID, personID)

		if level == LevelAdminOnly {
			person, err := s.accountService.GetPerson(c.Request().Context(), personID)
			if err != nil {
				return apperrors.Unauthorized("invalid or expired token")
			}
			if !person.Result.IsAdmin {
				return apperrors.Forbidden("admin access required")
			}
		}

		return next(c)
	}
}
