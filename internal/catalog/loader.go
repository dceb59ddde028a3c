package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/validation"
)

// Load reads the catalog at path, or the embedded default when path is empty
func Load(ctx context.Context, path string) (*Catalog, error) {
	data := defaultCatalog
	source := "embedded"
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrMsgReadCatalogFailed, path, err)
		}
		source = path
	}

	c, err := Parse(data)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded,
		"source", source,
		"version", c.Version,
		"cases", len(c.CaseList),
		"upgrade_targets", len(c.Targets),
		"contract_outcomes", len(c.Outcomes))
	return c, nil
}

// Default returns the embedded catalog
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse validates data against the catalog schema and the semantic rules
func Parse(data []byte) (*Catalog, error) {
	v := validation.NewSchemaValidator()
	if err := v.RegisterSchema(SchemaName, catalogSchema); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRegisterSchema, err)
	}
	if err := v.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSchemaInvalid, err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseCatalogFailed, err)
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return &c, nil
}
