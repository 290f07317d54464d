package api

import (
	"github.com/gorilla/mux"

	"github.com/quizmint/quizadmin-api/internal/handlers"
	"github.com/quizmint/quizadmin-api/internal/middleware"
	"github.com/quizmint/quizadmin-api/internal/models"
)

// SetupRoutes configures all API routes. Every protected route names the
// permission code it requires; PermNone routes only require authentication.
func SetupRoutes(
	router *mux.Router,
	auth *middleware.AuthMiddleware,
	authHandler *handlers.AuthHandler,
	adminHandler *handlers.AdminHandler,
	roleHandler *handlers.RoleHandler,
	countryHandler *handlers.CountryHandler,
	topicHandler *handlers.TopicHandler,
	docHandler *handlers.DocumentationHandler,
	questionHandler *handlers.QuestionHandler,
	testHandler *handlers.TestHandler,
	playerHandler *handlers.PlayerHandler,
	feedbackHandler *handlers.FeedbackHandler,
	uploadHandler *handlers.UploadHandler,
) {
	v1 := router.PathPrefix("/api/v1").Subrouter()

	// Authentication (public)
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	v1.HandleFunc("/auth/change_password", auth.Guard(authHandler.ChangePassword, models.PermNone)).Methods("POST")

	// Admins
	v1.HandleFunc("/admins", auth.Guard(adminHandler.CreateAdmin, models.PermAddAdmin)).Methods("POST")
	v1.HandleFunc("/admins", auth.Guard(adminHandler.ListAdmins, models.PermViewAdmin)).Methods("GET")
	v1.HandleFunc("/admins/{id}", auth.Guard(adminHandler.GetAdmin, models.PermViewAdmin)).Methods("GET")
	v1.HandleFunc("/admins/{id}", auth.Guard(adminHandler.UpdateAdmin, models.PermEditAdmin)).Methods("PUT")
	v1.HandleFunc("/admins/{id}", auth.Guard(adminHandler.DeleteAdmin, models.PermDeleteAdmin)).Methods("DELETE")

	// Roles
	v1.HandleFunc("/roles", auth.Guard(roleHandler.CreateRole, models.PermAddRole)).Methods("POST")
	v1.HandleFunc("/roles", auth.Guard(roleHandler.ListRoles, models.PermViewRole)).Methods("GET")
	v1.HandleFunc("/roles/{id}", auth.Guard(roleHandler.GetRole, models.PermViewRole)).Methods("GET")
	v1.HandleFunc("/roles/{id}", auth.Guard(roleHandler.UpdateRole, models.PermEditRole)).Methods("PUT")
	v1.HandleFunc("/roles/{id}", auth.Guard(roleHandler.DeleteRole, models.PermDeleteRole)).Methods("DELETE")

	// Countries
	v1.HandleFunc("/countries", auth.Guard(countryHandler.CreateCountry, models.PermAddCountry)).Methods("POST")
	v1.HandleFunc("/countries", auth.Guard(countryHandler.ListCountries, models.PermViewCountry)).Methods("GET")
	v1.HandleFunc("/countries/{id}", auth.Guard(countryHandler.GetCountry, models.PermViewCountry)).Methods("GET")
	v1.HandleFunc("/countries/{id}", auth.Guard(countryHandler.UpdateCountry, models.PermEditCountry)).Methods("PUT")
	v1.HandleFunc("/countries/{id}", auth.Guard(countryHandler.DeleteCountry, models.PermDeleteCountry)).Methods("DELETE")

	// Topics
	v1.HandleFunc("/topics", auth.Guard(topicHandler.CreateTopic, models.PermAddTopic)).Methods("POST")
	v1.HandleFunc("/topics", auth.Guard(topicHandler.ListTopics, models.PermViewTopic)).Methods("GET")
	v1.HandleFunc("/topics/{id}", auth.Guard(topicHandler.GetTopic, models.PermViewTopic)).Methods("GET")
	v1.HandleFunc("/topics/{id}", auth.Guard(topicHandler.UpdateTopic, models.PermEditTopic)).Methods("PUT")
	v1.HandleFunc("/topics/{id}", auth.Guard(topicHandler.DeleteTopic, models.PermDeleteTopic)).Methods("DELETE")

	// Documentation
	v1.HandleFunc("/documentation", auth.Guard(docHandler.CreateDocumentation, models.PermAddDocumentation)).Methods("POST")
	v1.HandleFunc("/documentation", auth.Guard(docHandler.ListDocumentation, models.PermViewDocumentation)).Methods("GET")
	v1.HandleFunc("/documentation/{id}", auth.Guard(docHandler.GetDocumentation, models.PermViewDocumentation)).Methods("GET")
	v1.HandleFunc("/documentation/{id}", auth.Guard(docHandler.UpdateDocumentation, models.PermEditDocumentation)).Methods("PUT")
	v1.HandleFunc("/documentation/{id}", auth.Guard(docHandler.DeleteDocumentation, models.PermDeleteDocumentation)).Methods("DELETE")

	// Questions
	v1.HandleFunc("/questions", auth.Guard(questionHandler.CreateQuestion, models.PermAddQuestion)).Methods("POST")
	v1.HandleFunc("/questions", auth.Guard(questionHandler.ListQuestions, models.PermViewQuestion)).Methods("GET")
	v1.HandleFunc("/questions/{id}", auth.Guard(questionHandler.GetQuestion, models.PermViewQuestion)).Methods("GET")
	v1.HandleFunc("/questions/{id}", auth.Guard(questionHandler.UpdateQuestion, models.PermEditQuestion)).Methods("PUT")
	v1.HandleFunc("/questions/{id}", auth.Guard(questionHandler.DeleteQuestion, models.PermDeleteQuestion)).Methods("DELETE")
	v1.HandleFunc("/questions/{id}/grade", auth.Guard(questionHandler.GradeQuestion, models.PermViewQuestion)).Methods("POST")

	// Tests
	v1.HandleFunc("/tests", auth.Guard(testHandler.CreateTest, models.PermAddTest)).Methods("POST")
	v1.HandleFunc("/tests", auth.Guard(testHandler.ListTests, models.PermViewTest)).Methods("GET")
	v1.HandleFunc("/tests/{id}", auth.Guard(testHandler.GetTest, models.PermViewTest)).Methods("GET")
	v1.HandleFunc("/tests/{id}", auth.Guard(testHandler.UpdateTest, models.PermEditTest)).Methods("PUT")
	v1.HandleFunc("/tests/{id}", auth.Guard(testHandler.DeleteTest, models.PermDeleteTest)).Methods("DELETE")

	// Players
	v1.HandleFunc("/players", auth.Guard(playerHandler.CreatePlayer, models.PermAddPlayer)).Methods("POST")
	v1.HandleFunc("/players", auth.Guard(playerHandler.ListPlayers, models.PermViewPlayer)).Methods("GET")
	v1.HandleFunc("/players/{id}", auth.Guard(playerHandler.GetPlayer, models.PermViewPlayer)).Methods("GET")
	v1.HandleFunc("/players/{id}", auth.Guard(playerHandler.UpdatePlayer, models.PermEditPlayer)).Methods("PUT")
	v1.HandleFunc("/players/{id}", auth.Guard(playerHandler.DeletePlayer, models.PermDeletePlayer)).Methods("DELETE")

	// Feedback
	v1.HandleFunc("/feedback", auth.Guard(feedbackHandler.CreateFeedback, models.PermAddFeedback)).Methods("POST")
	v1.HandleFunc("/feedback", auth.Guard(feedbackHandler.ListFeedback, models.PermViewFeedback)).Methods("GET")
	v1.HandleFunc("/feedback/{id}", auth.Guard(feedbackHandler.GetFeedback, models.PermViewFeedback)).Methods("GET")
	v1.HandleFunc("/feedback/{id}", auth.Guard(feedbackHandler.UpdateFeedback, models.PermEditFeedback)).Methods("PUT")
	v1.HandleFunc("/feedback/{id}", auth.Guard(feedbackHandler.DeleteFeedback, models.PermDeleteFeedback)).Methods("DELETE")

	// Media uploads
	v1.HandleFunc("/upload", auth.Guard(uploadHandler.UploadFile, models.PermAddQuestion)).Methods("POST")
}
