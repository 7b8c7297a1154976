package apierr

const (
	InvalidTimeRangeMessage = "End time must not be before start time"
	InvalidColorMessage     = "Plan entry color must be one of RED, GREEN, BLUE"
)

var (
	BadRequest = APIError{
		Code:    "INVALID_REQUEST",
		Message: "invalid request body",
	}
	ValidationFailed = APIError{
		Code:    "VALIDATION_FAILED",
		Message: "request validation failed",
	}
	Unauthorized = APIError{
		Code:    "UNAUTHORIZED_REQUEST",
		Message: "unauthorized request",
	}
	InvalidCredentials = APIError{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid username or password",
	}
	Forbidden = APIError{
		Code:    "FORBIDDEN",
		Message: "insufficient scope",
	}
	NotFound = APIError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
	UserNotFound = APIError{
		Code:    "USER_NOT_FOUND",
		Message: "User not found",
	}
	TeamNotFound = APIError{
		Code:    "TEAM_NOT_FOUND",
		Message: "Team not found",
	}
	PlanEntryNotFound = APIError{
		Code:    "PLAN_ENTRY_NOT_FOUND",
		Message: "Plan entry not found",
	}
	UsernameTaken = APIError{
		Code:    "USERNAME_TAKEN",
		Message: "Username is already used",
	}
	TeamNameTaken = APIError{
		Code:    "TEAM_NAME_TAKEN",
		Message: "Team name is already used",
	}
	InternalServerError = APIError{
		Code:    "INTERNAL_SERVER_ERROR",
		Message: "internal server error",
	}
)
