package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"github.com/dinakar-24/sse-pay/internal/models"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.UserTypeStudent))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.UserTypeAdmin))

	mux := pat.New()

	// Auth
	mux.Post("/auth/student/sign_in", standardMiddleware.ThenFunc(app.authHandler.StudentSignIn))
	mux.Post("/auth/admin/sign_in", standardMiddleware.ThenFunc(app.authHandler.AdminSignIn))
	mux.Post("/auth/refresh", standardMiddleware.ThenFunc(app.authHandler.Refresh))
	mux.Post("/auth/sign_out", standardMiddleware.ThenFunc(app.authHandler.SignOut))
	mux.Get("/auth/sessions", authMiddleware.ThenFunc(app.authHandler.GetSessions))
	mux.Del("/auth/sessions/:id", authMiddleware.ThenFunc(app.authHandler.RevokeSession))
	mux.Post("/auth/request_reset", standardMiddleware.ThenFunc(app.authHandler.RequestPasswordReset))
	mux.Post("/auth/reset_password", standardMiddleware.ThenFunc(app.authHandler.ResetPassword))

	// Admins
	mux.Post("/admin", adminAuthMiddleware.ThenFunc(app.adminHandler.CreateAdmin))
	mux.Get("/admin", adminAuthMiddleware.ThenFunc(app.adminHandler.GetAdmins))
	mux.Get("/admin/:id", adminAuthMiddleware.ThenFunc(app.adminHandler.GetAdmin))

	// Students
	mux.Post("/student", adminAuthMiddleware.ThenFunc(app.studentHandler.CreateStudent))
	mux.Get("/student/me", authMiddleware.ThenFunc(app.studentHandler.GetProfile))
	mux.Get("/student/me/summary", authMiddleware.ThenFunc(app.studentHandler.GetDueSummary))
	mux.Get("/student/roll/:roll_no", adminAuthMiddleware.ThenFunc(app.studentHandler.GetStudentByRollNo))
	mux.Get("/student/:id", adminAuthMiddleware.ThenFunc(app.studentHandler.GetStudent))
	mux.Get("/student", adminAuthMiddleware.ThenFunc(app.studentHandler.GetStudents))
	mux.Put("/student/:id", adminAuthMiddleware.ThenFunc(app.studentHandler.UpdateStudent))
	mux.Del("/student/:id", adminAuthMiddleware.ThenFunc(app.studentHandler.DeleteStudent))

	// Events
	mux.Post("/event", adminAuthMiddleware.ThenFunc(app.eventHandler.CreateEvent))
	mux.Get("/event", authMiddleware.ThenFunc(app.eventHandler.GetEvents))
	mux.Get("/event/:id", authMiddleware.ThenFunc(app.eventHandler.GetEvent))
	mux.Put("/event/:id", adminAuthMiddleware.ThenFunc(app.eventHandler.UpdateEvent))
	mux.Del("/event/:id", adminAuthMiddleware.ThenFunc(app.eventHandler.DeleteEvent))
	mux.Post("/event/:id/assign", adminAuthMiddleware.ThenFunc(app.eventHandler.AssignToRollSeries))
	mux.Get("/event/:id/dues", adminAuthMiddleware.ThenFunc(app.dueHandler.GetDuesByEvent))
	mux.Get("/event/:event_id/payments", adminAuthMiddleware.ThenFunc(app.paymentHandler.GetEventReport))

	// Dues
	mux.Post("/due", adminAuthMiddleware.ThenFunc(app.dueHandler.CreateDue))
	mux.Get("/due/my", authMiddleware.ThenFunc(app.dueHandler.GetMyDues))
	mux.Get("/due/:id", authMiddleware.ThenFunc(app.dueHandler.GetDue))
	mux.Get("/due/student/:id", adminAuthMiddleware.ThenFunc(app.dueHandler.GetDuesByStudent))

	// Payments
	mux.Post("/payment/order", authMiddleware.ThenFunc(app.paymentHandler.CreateOrder))
	mux.Post("/payment/verify", authMiddleware.ThenFunc(app.paymentHandler.VerifyPayment))
	mux.Get("/payment/history", authMiddleware.ThenFunc(app.paymentHandler.GetHistory))

	// Complaints
	mux.Post("/complaint", authMiddleware.ThenFunc(app.complaintHandler.CreateComplaint))
	mux.Get("/complaint/my", authMiddleware.ThenFunc(app.complaintHandler.GetMyComplaints))
	mux.Get("/complaint", adminAuthMiddleware.ThenFunc(app.complaintHandler.GetAllComplaints))
	mux.Post("/complaint/:id/resolve", adminAuthMiddleware.ThenFunc(app.complaintHandler.Resolve))
	mux.Del("/complaint/:id", adminAuthMiddleware.ThenFunc(app.complaintHandler.DeleteComplaint))

	// Library
	mux.Post("/library/book", adminAuthMiddleware.ThenFunc(app.libraryHandler.CreateBook))
	mux.Get("/library/book", adminAuthMiddleware.ThenFunc(app.libraryHandler.GetBooks))
	mux.Get("/library/my", authMiddleware.ThenFunc(app.libraryHandler.GetMyBooks))
	mux.Put("/library/book/:id", adminAuthMiddleware.ThenFunc(app.libraryHandler.UpdateBook))
	mux.Del("/library/book/:id", adminAuthMiddleware.ThenFunc(app.libraryHandler.DeleteBook))
	mux.Post("/library/book/:id/fine", adminAuthMiddleware.ThenFunc(app.libraryHandler.ChargeOverdueFine))

	// College info
	mux.Get("/college", standardMiddleware.ThenFunc(app.collegeHandler.GetCollegeInfo))
	mux.Put("/college", adminAuthMiddleware.ThenFunc(app.collegeHandler.SaveCollegeInfo))

	// Push tokens
	mux.Post("/notification/token", authMiddleware.ThenFunc(app.notificationHandler.RegisterToken))
	mux.Del("/notification/token", authMiddleware.ThenFunc(app.notificationHandler.RemoveToken))

	return mux
}
