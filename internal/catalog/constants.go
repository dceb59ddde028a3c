package catalog

// SchemaName is the name the catalog schema is registered under
const SchemaName = "catalog.schema.json"

// Error messages
const (
	ErrMsgReadCatalogFailed   = "failed to read catalog file"
	ErrMsgParseCatalogFailed  = "failed to parse catalog"
	ErrMsgSchemaInvalid       = "catalog failed schema validation"
	ErrMsgRegisterSchema      = "failed to register catalog schema"
	ErrFmtDuplicateCaseID     = "%w: duplicate case id %q"
	ErrFmtDuplicateItemID     = "%w: duplicate item id %q in case %q"
	ErrFmtDuplicateTargetID   = "%w: duplicate upgrade target id %q"
	ErrFmtInvalidCase         = "case %q: %w"
	ErrFmtInvalidTargetRarity = "%w: upgrade target %q has unknown rarity %q"
	ErrFmtDuplicateOutcomeID  = "%w: duplicate contract outcome id %q"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Catalog loaded"
)
