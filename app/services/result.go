package services

// Result is the outcome of a create/update/delete style command.
// Expected business failures (duplicate natural key, blocked delete,
// not found, bad credentials) are surfaced through it instead of
// errors, so handlers can re-render the form with the message inline.
type Result struct {
	Successful bool
	Message    string
	ID         uint
}

func success(message string, id uint) Result {
	return Result{Successful: true, Message: message, ID: id}
}

func failure(message string) Result {
	return Result{Successful: false, Message: message}
}
