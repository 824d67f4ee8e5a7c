package api

import "github.com/bitmark-inc/flo-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "invalid reading",

		1100: "this account has been registered or has been taken",
		1101: "account not found",
		1102: "the account role is not allowed to access this resource",
		1103: "query score error",
		1104: "unknown account timezone",

		1200: store.ErrReadingNotFound.Error(),
		1201: store.ErrAlertNotFound.Error(),

		1300: "patient is not in the care team",

		1400: "fail to generate insight",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken           = errorJSON(1100)
	errorAccountNotFound        = errorJSON(1101)
	errorRoleNotAllowed         = errorJSON(1102)
	errorScore                  = errorJSON(1103)
	errorUnknownAccountTimezone = errorJSON(1104)

	errorReadingNotFound = errorJSON(1200)
	errorAlertNotFound   = errorJSON(1201)

	errorPatientNotInCareTeam = errorJSON(1300)

	errorInsightGeneration = errorJSON(1400)
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

// errorInvalidReading carries the validation message so that clients can
// show it as is
func errorInvalidReading(err error) ErrorResponse {
	r := errorJSON(1012)
	r.Message = err.Error()
	return r
}
