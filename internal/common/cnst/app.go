package cnst

const (
	AppName     = "inventory"
	CommandName = "inventory"
)
