package cnst

// ActionType represents the kind of mutation performed on an entity
type ActionType string

const (
	ActionCreate ActionType = "create"
	ActionUpdate ActionType = "update"
	ActionDelete ActionType = "delete"
)
