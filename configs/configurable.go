package configs

// Configurable is implemented by typed configuration values that know
// which config expression they are bound to.
type Configurable interface {
	ConfigExpr() string
}
