package errors

import "net/http"

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                    Code = "OK"
	CodeInvalidArgument       Code = "INVALID_ARGUMENT"
	CodeInvalidConfig         Code = "INVALID_CONFIG"
	CodeOutOfRange            Code = "OUT_OF_RANGE"
	CodeNotFound              Code = "NOT_FOUND"
	CodePlacementExhausted    Code = "PLACEMENT_EXHAUSTED"
	CodeConnectivityExhausted Code = "CONNECTIVITY_EXHAUSTED"
	CodeAssetMapping          Code = "ASSET_MAPPING"
	CodeInternal              Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the corresponding HTTP status code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidArgument, CodeInvalidConfig, CodeOutOfRange:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodePlacementExhausted, CodeConnectivityExhausted:
		// the request was well formed but no level fits it
		return http.StatusUnprocessableEntity
	case CodeAssetMapping:
		return http.StatusFailedDependency
	case CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
