// Package catalog builds and owns the canonical ShippingService set:
// the alias table, the factory that turns extracted price data into
// services, and the repository the query path reads from.
package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"ratefinder/internal/errors"
)

// VariantTable maps a canonical service name to its known aliases. It is
// plain data so deployments can swap it without touching extraction logic.
type VariantTable map[string][]string

// DefaultVariants returns the built-in alias table for FedEx domestic
// services.
func DefaultVariants() VariantTable {
	return VariantTable{
		"FedEx First Overnight": {
			"FedEx First Overnight", "First Overnight", "FO",
		},
		"FedEx Priority Overnight": {
			"FedEx Priority Overnight", "Priority Overnight", "PO",
		},
		"FedEx Standard Overnight": {
			"FedEx Standard Overnight", "Standard Overnight", "SO",
		},
		"FedEx 2Day A.M.": {
			"FedEx 2Day A.M.", "FedEx 2Day AM", "2Day A.M.", "2Day AM",
		},
		"FedEx 2Day": {
			"FedEx 2Day", "2Day", "FedEx Second Day",
		},
		"FedEx Express Saver": {
			"FedEx Express Saver", "Express Saver", "ES",
		},
		"FedEx Ground": {
			"FedEx Ground", "Ground",
		},
	}
}

// LoadVariants reads an alias table from a YAML file of the form
// canonical-name -> list of aliases.
func LoadVariants(path string) (VariantTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("reading variants file", err)
	}

	table := make(VariantTable)
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, errors.Config("parsing variants file", err)
	}

	return table, nil
}

// For returns the aliases of a canonical name, or nil when unknown.
func (t VariantTable) For(canonical string) []string {
	return t[canonical]
}
