package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
	ValidationErrorCode     = 422

	DateTimeFormat = "2006-01-02T15:04:05Z07:00"
)
