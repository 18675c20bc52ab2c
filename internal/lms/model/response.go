package model

// Response is the envelope every endpoint returns, success or failure.
// Clients rely on one parsing path: statusCode/error/message vary, data
// carries the payload and is null on rejection.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    any    `json:"message"`
	Data       any    `json:"data"`
}

func OK(status int, message string, data any) Response {
	return Response{StatusCode: status, Message: message, Data: data}
}
