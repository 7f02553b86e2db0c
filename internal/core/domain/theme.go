package domain

const (
	// DefaultTheme is returned for users who never saved a theme.
	DefaultTheme = "dark"

	// PingUsername is a reserved username clients send to getTheme as a liveness probe.
	PingUsername = "__ping__"
)
