package registry

import (
	"fmt"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/log"
)

// MissingGroup is the bucket name used when a record has no value for the
// profile's group field.
const MissingGroup = "(missing)"

// Profile describes what a registry's records are expected to contain.
type Profile struct {
	Name              string
	RequiredFields    []string
	IntFields         []string // must hold an integer
	NullableIntFields []string // must hold an integer or null
	AliasField        string   // checked for cross-record duplicates; empty disables
	GroupField        string   // field for the breakdown section
}

// ModelsProfile covers the model registry (Models.json).
var ModelsProfile = Profile{
	Name: "models",
	RequiredFields: []string{
		"model", "alias", "parent", "model_category", "family", "series",
		"url", "apikey", "available", "enabled",
	},
	IntFields:         []string{"vision", "available", "enabled"},
	NullableIntFields: []string{"context_window", "max_output_tokens"},
	AliasField:        "alias",
	GroupField:        "parent",
}

// AgentsProfile covers the agent registry (Agents.json).
var AgentsProfile = Profile{
	Name: "agents",
	RequiredFields: []string{
		"category", "model", "systemprompt", "max_tokens", "temperature",
	},
	IntFields:  []string{"max_tokens"},
	GroupField: "category",
}

// Finding is a single per-record lint issue.
type Finding struct {
	RecordID string
	Field    string
	Problem  string
}

// AliasClash reports one alias value shared by several records.
type AliasClash struct {
	Alias     string
	RecordIDs []string
}

// GroupCount is one bucket of the breakdown section.
type GroupCount struct {
	Group string
	Count int
}

// Report collects everything Lint found. All slices follow registry order
// so output is deterministic.
type Report struct {
	Records          int
	DuplicateAliases []AliasClash
	MissingFields    []Finding
	TypeIssues       []Finding
	Groups           []GroupCount
}

// Clean reports whether the registry passed every check.
func (r *Report) Clean() bool {
	return len(r.DuplicateAliases) == 0 && len(r.MissingFields) == 0 && len(r.TypeIssues) == 0
}

// Lint checks every record against the profile: required fields present,
// integer fields integer-typed, aliases unique. It never fails the load;
// findings are reported, not returned as errors.
func Lint(reg *Registry, p Profile) *Report {
	report := &Report{Records: reg.Len()}

	aliasOwners := make(map[string][]string)
	var aliasOrder []string
	groupCounts := make(map[string]int)
	var groupOrder []string

	for _, id := range reg.IDs() {
		rec, _ := reg.Get(id)

		for _, field := range p.RequiredFields {
			if _, ok := rec.Attr(field); !ok {
				report.MissingFields = append(report.MissingFields, Finding{
					RecordID: id, Field: field, Problem: "missing required field",
				})
			}
		}

		for _, field := range p.IntFields {
			if v, ok := rec.Attr(field); ok && !isInteger(v) {
				report.TypeIssues = append(report.TypeIssues, Finding{
					RecordID: id, Field: field,
					Problem: fmt.Sprintf("should be integer, got %T", v),
				})
			}
		}

		for _, field := range p.NullableIntFields {
			if v, ok := rec.Attr(field); ok && v != nil && !isInteger(v) {
				report.TypeIssues = append(report.TypeIssues, Finding{
					RecordID: id, Field: field,
					Problem: fmt.Sprintf("should be integer or null, got %T", v),
				})
			}
		}

		if p.AliasField != "" {
			if v, ok := rec.Attr(p.AliasField); ok {
				if alias, ok := v.(string); ok && alias != "" {
					if _, seen := aliasOwners[alias]; !seen {
						aliasOrder = append(aliasOrder, alias)
					}
					aliasOwners[alias] = append(aliasOwners[alias], id)
				}
			}
		}

		if p.GroupField != "" {
			group := MissingGroup
			if v, ok := rec.Attr(p.GroupField); ok {
				if s, ok := v.(string); ok && s != "" {
					group = s
				}
			}
			if _, seen := groupCounts[group]; !seen {
				groupOrder = append(groupOrder, group)
			}
			groupCounts[group]++
		}
	}

	for _, alias := range aliasOrder {
		if owners := aliasOwners[alias]; len(owners) > 1 {
			report.DuplicateAliases = append(report.DuplicateAliases, AliasClash{
				Alias: alias, RecordIDs: owners,
			})
		}
	}

	for _, group := range groupOrder {
		report.Groups = append(report.Groups, GroupCount{Group: group, Count: groupCounts[group]})
	}

	log.Debug(log.CatRegistry, "lint finished",
		"profile", p.Name,
		"records", report.Records,
		"duplicate_aliases", len(report.DuplicateAliases),
		"missing_fields", len(report.MissingFields),
		"type_issues", len(report.TypeIssues))

	return report
}

func isInteger(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}
