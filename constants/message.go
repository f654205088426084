package constants

const (
	NO_DATA                    = "no data"
	ERROR_INPUT                = "input invalid"
	ERROR_PARSE_DATA_TO_LOCALS = "can not read request data"
	ERROR_INTERNAL_ERROR       = "internal error"
	DATA_INPUT_IS_NOT_NUMBER   = "input is not a number"
	NOT_FOUND_RECORDS          = "record not found"
	UNKNOWN_SUMMARY_TAB        = "unknown summary tab"
	ERROR_EXPORT               = "export failed"
	ERROR_SEND_MAIL            = "send mail failed"
	MAIL_NOT_CONFIGURED        = "mail is not configured"
	ERROR_LOAD_DATASET         = "load dataset failed"
	MISSING_TOKEN              = "Missing token"
	INVALID_TOKEN              = "Invalid token"
)
