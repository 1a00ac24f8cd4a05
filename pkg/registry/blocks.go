package registry

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/commercekit/blockforge/pkg/schema"
)

// DefaultConfig materialises a fresh configuration for a block type:
// {id, type, enabled: true} plus the schema's authored defaults. The variant
// key is set to the explicit variant, else the schema's default variant, else
// left unset. Unknown types yield an empty configuration.
func (r *Registry) DefaultConfig(blockType, variant string) schema.Config {
	blockSchema, ok := r.schemas[blockType]
	if !ok {
		return schema.Config{}
	}

	config := schema.Config{
		schema.ConfigKeyID:      fmt.Sprintf("block-%d", time.Now().UnixMilli()),
		schema.ConfigKeyType:    blockType,
		schema.ConfigKeyEnabled: true,
	}
	for key, value := range blockSchema.DefaultConfig {
		config[key] = value
	}

	switch {
	case variant != "":
		config[schema.ConfigKeyVariant] = variant
	case blockSchema.DefaultVariant != "":
		config[schema.ConfigKeyVariant] = blockSchema.DefaultVariant
	}

	return config
}

// CreateBlock materialises a default configuration, shallow-merges overrides
// on top, and guarantees a unique instance id. A caller-supplied id in
// overrides wins. The result is not validated; callers opt into
// ValidateConfig separately.
func (r *Registry) CreateBlock(blockType, variant string, overrides schema.Config) schema.Config {
	config := r.DefaultConfig(blockType, variant)
	for key, value := range overrides {
		config[key] = value
	}
	if id, supplied := overrides[schema.ConfigKeyID].(string); !supplied || id == "" {
		config[schema.ConfigKeyID] = newBlockID()
	}
	return config
}

// DuplicateBlock shallow-clones an existing instance under a new unique id.
// When the source carries an admin label, the clone's label gains a
// " (Copy)" suffix so the page composer can tell the two apart. The clone is
// not validated.
func DuplicateBlock(block schema.Config) schema.Config {
	clone := block.Clone()
	if clone == nil {
		clone = schema.Config{}
	}
	clone[schema.ConfigKeyID] = newBlockID()
	if label, ok := clone[schema.ConfigKeyAdminLabel].(string); ok && label != "" {
		clone[schema.ConfigKeyAdminLabel] = label + " (Copy)"
	}
	return clone
}

func newBlockID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("block-%d-%s", time.Now().UnixMilli(), suffix)
}
