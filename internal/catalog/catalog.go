// Package catalog supplies the read-only case, upgrade-target and contract
// outcome definitions. The default catalog is embedded in the binary; an
// operator can point CATALOG_PATH at a replacement file with the same schema.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
)

//go:embed catalog.json
var defaultCatalog []byte

//go:embed catalog.schema.json
var catalogSchema []byte

// ErrInvalidCatalog is returned when a catalog passes the schema but breaks a semantic rule
var ErrInvalidCatalog = errors.New("invalid catalog")

// Provider is the read side of the catalog used by the coordinator and handlers.
// Returned slices must not be modified.
type Provider interface {
	Cases() []domain.Case
	Case(id string) (domain.Case, error)
	UpgradeTargets() []domain.Item
	UpgradeTarget(id string) (domain.Item, error)
	ContractOutcomes() []domain.ContractOutcome
}

// Catalog is an immutable, validated catalog document
type Catalog struct {
	Version  string                   `json:"version"`
	CaseList []domain.Case            `json:"cases"`
	Targets  []domain.Item            `json:"upgrade_targets"`
	Outcomes []domain.ContractOutcome `json:"contract_outcomes"`

	caseIndex   map[string]int
	targetIndex map[string]int
}

func (c *Catalog) Cases() []domain.Case { return c.CaseList }

// Case returns domain.ErrCaseNotFound for an unknown id
func (c *Catalog) Case(id string) (domain.Case, error) {
	i, ok := c.caseIndex[id]
	if !ok {
		return domain.Case{}, domain.ErrCaseNotFound
	}
	return c.CaseList[i], nil
}

func (c *Catalog) UpgradeTargets() []domain.Item { return c.Targets }

// UpgradeTarget returns domain.ErrTargetNotFound for an unknown id
func (c *Catalog) UpgradeTarget(id string) (domain.Item, error) {
	i, ok := c.targetIndex[id]
	if !ok {
		return domain.Item{}, domain.ErrTargetNotFound
	}
	return c.Targets[i], nil
}

func (c *Catalog) ContractOutcomes() []domain.ContractOutcome { return c.Outcomes }

// index validates the semantic rules the schema cannot express and builds the lookup maps
func (c *Catalog) index() error {
	c.caseIndex = make(map[string]int, len(c.CaseList))
	for i, cs := range c.CaseList {
		if _, dup := c.caseIndex[cs.ID]; dup {
			return fmt.Errorf(ErrFmtDuplicateCaseID, ErrInvalidCatalog, cs.ID)
		}
		if err := cs.Validate(); err != nil {
			return fmt.Errorf(ErrFmtInvalidCase, cs.ID, err)
		}
		seen := make(map[string]struct{}, len(cs.Items))
		for _, it := range cs.Items {
			if _, dup := seen[it.ID]; dup {
				return fmt.Errorf(ErrFmtDuplicateItemID, ErrInvalidCatalog, it.ID, cs.ID)
			}
			seen[it.ID] = struct{}{}
		}
		c.caseIndex[cs.ID] = i
	}

	c.targetIndex = make(map[string]int, len(c.Targets))
	for i, t := range c.Targets {
		if _, dup := c.targetIndex[t.ID]; dup {
			return fmt.Errorf(ErrFmtDuplicateTargetID, ErrInvalidCatalog, t.ID)
		}
		if !t.Rarity.Valid() {
			return fmt.Errorf(ErrFmtInvalidTargetRarity, ErrInvalidCatalog, t.ID, t.Rarity)
		}
		c.targetIndex[t.ID] = i
	}

	outcomeIDs := make(map[string]struct{}, len(c.Outcomes))
	for _, o := range c.Outcomes {
		if _, dup := outcomeIDs[o.ID]; dup {
			return fmt.Errorf(ErrFmtDuplicateOutcomeID, ErrInvalidCatalog, o.ID)
		}
		outcomeIDs[o.ID] = struct{}{}
	}
	return nil
}
