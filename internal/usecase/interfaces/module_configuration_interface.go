package interfaces

// IModuleConfiguration exposes the integration flags.
type IModuleConfiguration interface {
	IsCreateOrderEnabled() bool
	IsAntifraudEnabled() bool
	IsSaveCards() bool
}
