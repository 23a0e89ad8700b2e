package errors

// Error codes for standardized error responses
const (
	// Authentication errors
	ErrCodeUnauthorized           = "unauthorized"
	ErrCodeInvalidToken           = "invalid_token"
	ErrCodeTokenExpired           = "token_expired"
	ErrCodeAuthenticationRequired = "authentication_required"
	ErrCodeInvalidCredentials     = "invalid_credentials"

	// Validation errors
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeMissingField     = "missing_field"

	// Resource errors
	ErrCodeNotFound      = "not_found"
	ErrCodeAlreadyExists = "already_exists"

	// Game errors
	ErrCodeGameNotFound         = "game_not_found"
	ErrCodeGameNotActive        = "game_not_active"
	ErrCodeNoQuestionsAvailable = "no_questions_available"
	ErrCodeNoMatchingQuestions  = "no_matching_questions"

	// Question/score errors
	ErrCodeQuestionNotFound  = "question_not_found"
	ErrCodeScoreSubmitFailed = "score_submit_failed"

	// User errors
	ErrCodeRegistrationFailed = "registration_failed"
	ErrCodeLoginFailed        = "login_failed"
	ErrCodeEmailTaken         = "email_taken"
	ErrCodeUsernameTaken      = "username_taken"
	ErrCodeUserNotFound       = "user_not_found"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
)
