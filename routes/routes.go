package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/coog-esports/admin-api/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers bundles every entity handler wired into the router.
type Handlers struct {
	Users           *handlers.UserHandler
	Roles           *handlers.RoleHandler
	ShirtSizes      *handlers.ShirtSizeHandler
	Games           *handlers.GameHandler
	Sponsors        *handlers.SponsorHandler
	AcademicTerms   *handlers.AcademicTermHandler
	Officers        *handlers.OfficerHandler
	Coordinators    *handlers.CoordinatorHandler
	Memberships     *handlers.MembershipHandler
	TeamMemberships *handlers.TeamMembershipHandler
	Teams           *handlers.TeamHandler
	Opponents       *handlers.OpponentHandler
	Matches         *handlers.MatchHandler
	Events          *handlers.EventHandler
	EventAttendees  *handlers.EventAttendeeHandler
	Media           *handlers.MediaHandler
}

func New(h Handlers, allowedOrigins []string, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(requestLogger(logger))
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/users", func(r chi.Router) {
		r.Post("/", h.Users.CreateUser)
		r.Get("/", h.Users.ListUsers)
		r.Get("/email/{email}", h.Users.GetUserByEmail)
		r.Route("/{userID}", func(r chi.Router) {
			r.Get("/", h.Users.GetUserByID)
			r.Put("/", h.Users.UpdateUser)
			r.Delete("/", h.Users.DeleteUser)
		})
	})

	router.Route("/roles", func(r chi.Router) {
		r.Post("/", h.Roles.CreateRole)
		r.Get("/", h.Roles.ListRoles)
		r.Route("/{roleID}", func(r chi.Router) {
			r.Get("/", h.Roles.GetRoleByID)
			r.Put("/", h.Roles.UpdateRole)
			r.Delete("/", h.Roles.DeleteRole)
		})
	})

	router.Route("/shirt-sizes", func(r chi.Router) {
		r.Post("/", h.ShirtSizes.CreateShirtSize)
		r.Get("/", h.ShirtSizes.ListShirtSizes)
		r.Route("/{sizeID}", func(r chi.Router) {
			r.Get("/", h.ShirtSizes.GetShirtSizeByID)
			r.Put("/", h.ShirtSizes.UpdateShirtSize)
			r.Delete("/", h.ShirtSizes.DeleteShirtSize)
		})
	})

	router.Route("/games", func(r chi.Router) {
		r.Post("/", h.Games.CreateGame)
		r.Get("/", h.Games.ListGames)
		r.Route("/{gameID}", func(r chi.Router) {
			r.Get("/", h.Games.GetGameByID)
			r.Put("/", h.Games.UpdateGame)
			r.Delete("/", h.Games.DeleteGame)
			r.Post("/background", h.Games.UploadBackground)
		})
	})

	router.Route("/sponsors", func(r chi.Router) {
		r.Post("/", h.Sponsors.CreateSponsor)
		r.Get("/", h.Sponsors.ListSponsors)
		r.Get("/active", h.Sponsors.ListActiveSponsors)
		r.Route("/{sponsorID}", func(r chi.Router) {
			r.Get("/", h.Sponsors.GetSponsorByID)
			r.Put("/", h.Sponsors.UpdateSponsor)
			r.Delete("/", h.Sponsors.DeleteSponsor)
			r.Post("/logo", h.Sponsors.UploadLogo)
		})
	})

	router.Route("/academic-terms", func(r chi.Router) {
		r.Post("/", h.AcademicTerms.CreateAcademicTerm)
		r.Get("/", h.AcademicTerms.ListAcademicTerms)
		r.Route("/{termID}", func(r chi.Router) {
			r.Get("/", h.AcademicTerms.GetAcademicTermByID)
			r.Put("/", h.AcademicTerms.UpdateAcademicTerm)
			r.Delete("/", h.AcademicTerms.DeleteAcademicTerm)
		})
	})

	router.Route("/officers", func(r chi.Router) {
		r.Post("/", h.Officers.CreateOfficer)
		r.Get("/", h.Officers.ListOfficers)
		r.Get("/user/{userID}", h.Officers.ListOfficersByUser)
		r.Route("/{officerID}", func(r chi.Router) {
			r.Get("/", h.Officers.GetOfficerByID)
			r.Put("/", h.Officers.UpdateOfficer)
			r.Delete("/", h.Officers.DeleteOfficer)
			r.Post("/image", h.Officers.UploadImage)
		})
	})

	router.Route("/coordinators", func(r chi.Router) {
		r.Post("/", h.Coordinators.CreateCoordinator)
		r.Get("/", h.Coordinators.ListCoordinators)
		r.Get("/game/{gameID}", h.Coordinators.ListCoordinatorsByGame)
		r.Route("/{coordinatorID}", func(r chi.Router) {
			r.Get("/", h.Coordinators.GetCoordinatorByID)
			r.Put("/", h.Coordinators.UpdateCoordinator)
			r.Delete("/", h.Coordinators.DeleteCoordinator)
		})
	})

	router.Route("/memberships", func(r chi.Router) {
		r.Post("/", h.Memberships.CreateMembership)
		r.Get("/", h.Memberships.ListMemberships)
		r.Get("/user/{userID}", h.Memberships.ListMembershipsByUser)
		r.Route("/{membershipID}", func(r chi.Router) {
			r.Get("/", h.Memberships.GetMembershipByID)
			r.Put("/", h.Memberships.UpdateMembership)
			r.Delete("/", h.Memberships.DeleteMembership)
		})
	})

	router.Route("/team-memberships", func(r chi.Router) {
		r.Post("/", h.TeamMemberships.CreateTeamMembership)
		r.Get("/", h.TeamMemberships.ListTeamMemberships)
		r.Get("/team/{teamID}", h.TeamMemberships.ListTeamMembershipsByTeam)
		r.Route("/{teamID}/{membershipID}", func(r chi.Router) {
			r.Get("/", h.TeamMemberships.GetTeamMembership)
			r.Put("/", h.TeamMemberships.UpdateTeamMembership)
			r.Delete("/", h.TeamMemberships.DeleteTeamMembership)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Post("/", h.Teams.CreateTeam)
		r.Get("/", h.Teams.ListTeams)
		r.Get("/game/{gameID}", h.Teams.ListTeamsByGame)
		r.Route("/{teamID}", func(r chi.Router) {
			r.Get("/", h.Teams.GetTeamByID)
			r.Put("/", h.Teams.UpdateTeam)
			r.Delete("/", h.Teams.DeleteTeam)
		})
	})

	router.Route("/opponents", func(r chi.Router) {
		r.Post("/", h.Opponents.CreateOpponent)
		r.Get("/", h.Opponents.ListOpponents)
		r.Get("/game/{gameID}", h.Opponents.ListOpponentsByGame)
		r.Route("/{opponentID}", func(r chi.Router) {
			r.Get("/", h.Opponents.GetOpponentByID)
			r.Put("/", h.Opponents.UpdateOpponent)
			r.Delete("/", h.Opponents.DeleteOpponent)
			r.Post("/logo", h.Opponents.UploadLogo)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Post("/", h.Matches.CreateMatch)
		r.Get("/", h.Matches.ListMatches)
		r.Get("/upcoming", h.Matches.ListUpcomingMatches)
		r.Get("/past", h.Matches.ListPastMatches)
		r.Get("/team/{teamID}", h.Matches.ListMatchesByTeam)
		r.Get("/game/{gameID}", h.Matches.ListMatchesByGame)
		r.Route("/{matchID}", func(r chi.Router) {
			r.Get("/", h.Matches.GetMatchByID)
			r.Put("/", h.Matches.UpdateMatch)
			r.Delete("/", h.Matches.DeleteMatch)
		})
	})

	router.Route("/events", func(r chi.Router) {
		r.Post("/", h.Events.CreateEvent)
		r.Get("/", h.Events.ListEvents)
		r.Get("/upcoming", h.Events.ListUpcomingEvents)
		r.Get("/past", h.Events.ListPastEvents)
		r.Get("/officer/{officerID}", h.Events.ListEventsByOfficer)
		r.Route("/{eventID}", func(r chi.Router) {
			r.Get("/", h.Events.GetEventByID)
			r.Put("/", h.Events.UpdateEvent)
			r.Delete("/", h.Events.DeleteEvent)
		})
	})

	router.Route("/event-attendees", func(r chi.Router) {
		r.Post("/", h.EventAttendees.CreateEventAttendee)
		r.Get("/", h.EventAttendees.ListEventAttendees)
		r.Get("/event/{eventID}", h.EventAttendees.ListAttendeesByEvent)
		r.Route("/{eventID}/{userID}", func(r chi.Router) {
			r.Get("/", h.EventAttendees.GetEventAttendee)
			r.Delete("/", h.EventAttendees.DeleteEventAttendee)
		})
	})

	router.Route("/media", func(r chi.Router) {
		r.Post("/", h.Media.CreateMedia)
		r.Get("/", h.Media.ListMedia)
		r.Get("/term/{termID}", h.Media.ListMediaByTerm)
		r.Route("/{mediaID}", func(r chi.Router) {
			r.Get("/", h.Media.GetMediaByID)
			r.Put("/", h.Media.UpdateMedia)
			r.Delete("/", h.Media.DeleteMedia)
			r.Post("/image", h.Media.UploadImage)
		})
	})

	return router
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", chiMiddleware.GetReqID(r.Context())),
			)
		})
	}
}
