package schema

// Well-known configuration keys shared by every block instance.
const (
	ConfigKeyID         = "id"
	ConfigKeyType       = "type"
	ConfigKeyVariant    = "variant"
	ConfigKeyEnabled    = "enabled"
	ConfigKeyAdminLabel = "adminLabel"
)

// Config is the flat key-value configuration of a single block instance:
// {id, type, variant?, enabled, ...field values}. Its shape is the
// interchange format between this module and the storefront content API, so
// keys map one-to-one onto field names.
type Config map[string]any

// ID returns the instance identifier, empty when unset.
func (c Config) ID() string {
	return c.stringValue(ConfigKeyID)
}

// BlockType returns the block type selecting the governing schema.
func (c Config) BlockType() string {
	return c.stringValue(ConfigKeyType)
}

// Variant returns the active variant id, empty when none is set.
func (c Config) Variant() string {
	return c.stringValue(ConfigKeyVariant)
}

// Enabled reports whether the instance is enabled. A missing key counts as
// disabled.
func (c Config) Enabled() bool {
	enabled, _ := c[ConfigKeyEnabled].(bool)
	return enabled
}

// Clone returns a shallow copy of the configuration.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	out := make(Config, len(c))
	for key, value := range c {
		out[key] = value
	}
	return out
}

func (c Config) stringValue(key string) string {
	value, _ := c[key].(string)
	return value
}
