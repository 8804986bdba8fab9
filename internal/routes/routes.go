package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/table-booking/internal/audit"
	"github.com/BruksfildServices01/table-booking/internal/config"
	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
	"github.com/BruksfildServices01/table-booking/internal/domain/identity"
	"github.com/BruksfildServices01/table-booking/internal/handlers"
	"github.com/BruksfildServices01/table-booking/internal/httperr"
	"github.com/BruksfildServices01/table-booking/internal/middleware"
	ucAuth "github.com/BruksfildServices01/table-booking/internal/usecase/auth"
	ucReservation "github.com/BruksfildServices01/table-booking/internal/usecase/reservation"
	ucTable "github.com/BruksfildServices01/table-booking/internal/usecase/table"
)

// Deps are the collaborators chosen by configuration.
type Deps struct {
	Config       *config.Config
	Log          logrus.FieldLogger
	Tables       domain.TableRepository
	Reservations domain.ReservationRepository
	Identity     identity.Provider
	// Verifier may be nil when the provider cannot check tokens locally.
	Verifier identity.TokenVerifier
	Locker   domain.Locker
	Audit    *audit.Dispatcher
}

// NewRouter builds a gin engine with the global middleware and every route.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	r.Use(middleware.Recovery(d.Log))
	r.Use(middleware.RequestLogger(d.Log))

	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// USE CASES
	// ======================================================
	var dirOpts []ucTable.Option
	if d.Config.EnforceUniqueTableNumber {
		dirOpts = append(dirOpts, ucTable.WithUniqueNumbers())
	}
	directory := ucTable.NewDirectory(d.Tables, d.Audit, d.Log, dirOpts...)

	ledger := ucReservation.NewLedger(d.Reservations)
	bookTableUC := ucReservation.NewBookTable(directory, ledger, d.Locker, d.Audit, d.Log)

	signUpUC := ucAuth.NewSignUp(d.Identity, d.Log)
	signInUC := ucAuth.NewSignIn(d.Identity)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(signUpUC, signInUC, d.Log)
	tableHandler := handlers.NewTableHandler(directory, d.Log)
	reservationHandler := handlers.NewReservationHandler(bookTableUC, ledger, d.Log)

	authLimiter := middleware.NewRateLimiter(d.Config.AuthRatePerMinute)

	r.GET("/health", handlers.Health)

	// The API gateway stage may or may not strip the /api prefix.
	for _, prefix := range []string{"", "/api"} {
		g := r.Group(prefix)

		// ------------------------------
		// AUTH
		// ------------------------------
		g.POST("/signup", authLimiter.Middleware(), authHandler.SignUp)
		g.POST("/signin", authLimiter.Middleware(), authHandler.SignIn)

		// ------------------------------
		// BOOKING
		// ------------------------------
		booking := g.Group("")
		if d.Config.RequireAuth && d.Verifier != nil {
			booking.Use(middleware.AuthMiddleware(d.Verifier, d.Log))
		}
		{
			booking.GET("/tables", tableHandler.List)
			booking.POST("/tables", tableHandler.Create)
			booking.GET("/tables/:id", tableHandler.Get)

			booking.POST("/reservations", reservationHandler.Create)
			booking.GET("/reservations", reservationHandler.List)
		}
	}

	r.NoRoute(httperr.NotFound)
}
