package api

import "github.com/pinpoint-labs/pinpoint-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrUserNotFound.Error(),
		1101: store.ErrUsernameTaken.Error(),
		1102: store.ErrEmailTaken.Error(),
		1103: "no valid fields to update",

		1200: store.ErrPointNotFound.Error(),
		1201: store.ErrDuplicateCoordinates.Error(),

		1300: store.ErrAlreadyCheckedIn.Error(),
		1301: store.ErrCheckinNotFound.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorUserNotFound     = errorJSON(1100)
	errorUsernameTaken    = errorJSON(1101)
	errorEmailTaken       = errorJSON(1102)
	errorNoFieldsToUpdate = errorJSON(1103)

	errorPointNotFound        = errorJSON(1200)
	errorDuplicateCoordinates = errorJSON(1201)

	errorAlreadyCheckedIn    = errorJSON(1300)
	errorCheckoutNotPossible = errorJSON(1301)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
