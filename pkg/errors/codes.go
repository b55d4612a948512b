package errors

import "strings"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal      ErrorCode = "COMMON_001"
	ErrCodeValidation    ErrorCode = "COMMON_002"
	ErrCodeNotFound      ErrorCode = "COMMON_003"
	ErrCodeConfigInvalid ErrorCode = "COMMON_004"
	ErrCodeSerialization ErrorCode = "COMMON_005"
)

// Sentinel pseudo-codes used by chain inspection helpers.
const (
	CodeOK      = ErrorCode("OK")
	CodeUnknown = ErrorCode("UNKNOWN")
)

// Geometry Module Error Codes
const (
	ErrCodeDMSOutOfRange       ErrorCode = "GEO_001"
	ErrCodeLongitudeOutOfRange ErrorCode = "GEO_002"
)

// Aspect Module Error Codes
const (
	ErrCodeBodyInvalid        ErrorCode = "ASP_001"
	ErrCodeAspectOrbInvalid   ErrorCode = "ASP_002"
	ErrCodeAspectAngleInvalid ErrorCode = "ASP_003"
	ErrCodeAspectTypeUnknown  ErrorCode = "ASP_004"
)

// Pattern Module Error Codes
const (
	ErrCodePatternConfigInvalid ErrorCode = "PAT_001"
	ErrCodePatternKindUnknown   ErrorCode = "PAT_002"
)

// Dasha Module Error Codes
const (
	ErrCodeEpochInvalid       ErrorCode = "DSH_001"
	ErrCodeSchemeInvalid      ErrorCode = "DSH_002"
	ErrCodeFractionOutOfRange ErrorCode = "DSH_003"
	ErrCodeDepthExceeded      ErrorCode = "DSH_004"
)

// Influence Module Error Codes
const (
	ErrCodeWeightOutOfRange ErrorCode = "INF_001"
)

// Pipeline Module Error Codes
const (
	ErrCodeForecastRangeInvalid ErrorCode = "FCT_001"
	ErrCodeGranularityUnknown   ErrorCode = "FCT_002"
	ErrCodeEphemerisFailed      ErrorCode = "FCT_003"
)

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:      "internal engine error",
	ErrCodeValidation:    "validation failed",
	ErrCodeNotFound:      "resource not found",
	ErrCodeConfigInvalid: "invalid configuration",
	ErrCodeSerialization: "serialization failed",

	ErrCodeDMSOutOfRange:       "DMS component out of range",
	ErrCodeLongitudeOutOfRange: "longitude out of [0, 360)",

	ErrCodeBodyInvalid:        "invalid body record",
	ErrCodeAspectOrbInvalid:   "aspect orb out of (0, 15]",
	ErrCodeAspectAngleInvalid: "aspect nominal angle out of [0, 180]",
	ErrCodeAspectTypeUnknown:  "unknown aspect type",

	ErrCodePatternConfigInvalid: "invalid pattern configuration",
	ErrCodePatternKindUnknown:   "unknown pattern kind",

	ErrCodeEpochInvalid:       "invalid epoch",
	ErrCodeSchemeInvalid:      "invalid dasha scheme",
	ErrCodeFractionOutOfRange: "fractional position out of [0, 1)",
	ErrCodeDepthExceeded:      "nesting depth exceeds hard cap",

	ErrCodeWeightOutOfRange: "base weight out of [0, 1]",

	ErrCodeForecastRangeInvalid: "forecast range invalid",
	ErrCodeGranularityUnknown:   "unknown granularity",
	ErrCodeEphemerisFailed:      "ephemeris provider failed",
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

//Personal.AI order the ending
