package converter

import (
	"encoding/json"
	"sort"

	"medusaseed/internal/models"
)

// ExtractAxes derives a product group's option schema. Axis names come from
// the representative (first) row's OptionN Name slots; a slot contributes
// an axis only if its name is non-empty, and a name repeated in a later
// slot re-binds the axis to that slot. Axis values are the distinct
// non-empty values of the slot's value column across the whole group,
// sorted for determinism. Axes without any observed value are dropped.
func ExtractAxes(rows []models.Row) []models.OptionAxis {
	if len(rows) == 0 {
		return nil
	}

	rep := rows[0]

	var axes []models.OptionAxis

	index := make(map[string]int)

	for slot := 0; slot < models.OptionSlots; slot++ {
		name := rep.OptionNames[slot]
		if name == "" {
			continue
		}

		if i, ok := index[name]; ok {
			axes[i].Slot = slot

			continue
		}

		index[name] = len(axes)
		axes = append(axes, models.OptionAxis{Name: name, Slot: slot})
	}

	var out []models.OptionAxis

	for _, axis := range axes {
		seen := make(map[string]bool)

		for _, row := range rows {
			if v := row.OptionValues[axis.Slot]; v != "" && !seen[v] {
				seen[v] = true
				axis.Values = append(axis.Values, v)
			}
		}

		if len(axis.Values) == 0 {
			continue
		}

		sort.Strings(axis.Values)
		out = append(out, axis)
	}

	return out
}

// VariantAssignment maps axis names to the values a single variant row
// takes. Axes the row leaves empty are omitted rather than defaulted, so
// each variant may populate a different subset.
func VariantAssignment(row models.Row, axes []models.OptionAxis) map[string]string {
	assignment := make(map[string]string, len(axes))

	for _, axis := range axes {
		if v := row.OptionValues[axis.Slot]; v != "" {
			assignment[axis.Name] = v
		}
	}

	return assignment
}

// EncodeAxes serializes an option schema as compact JSON, e.g.
// [{"name":"Color","values":["Blue","Red"]}].
func EncodeAxes(axes []models.OptionAxis) string {
	if len(axes) == 0 {
		return "[]"
	}

	data, err := json.Marshal(axes)
	if err != nil {
		return "[]"
	}

	return string(data)
}

// EncodeAssignment serializes a variant's option assignment as compact
// JSON, e.g. {"Color":"Red"}.
func EncodeAssignment(assignment map[string]string) string {
	if len(assignment) == 0 {
		return "{}"
	}

	data, err := json.Marshal(assignment)
	if err != nil {
		return "{}"
	}

	return string(data)
}
