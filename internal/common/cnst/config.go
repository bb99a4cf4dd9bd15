package cnst

const (
	// InventoryYaml is the default configuration file name
	InventoryYaml = "inventory.yaml"
)

const (
	SessionTypeMemory = "memory"
	SessionTypeRedis  = "redis"
)
