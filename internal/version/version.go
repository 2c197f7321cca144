package version

const (
	AppName    = "Pokébase"
	AppVersion = "0.4.1"
)
