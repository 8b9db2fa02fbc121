package response

const (
	MessageSuccess      = "Success"
	MessageUnauthorized = "Unauthorized"
)
