package errors

// ErrorBody is the JSON body of every non-2xx response.
type ErrorBody struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
