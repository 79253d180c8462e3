// Package recon estimates reconditioning cost and aftermarket value for a
// vehicle from its detected condition tags.
package recon

import (
	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

// ruleTable lists every known condition tag in vocabulary order.
var ruleTable = []domain.CostRule{
	// Exterior
	{Tag: "scratches_bumper", Category: domain.CategoryPaint, RepairCost: 450, Description: "Bumper scratch repair and paint"},
	{Tag: "scratches_door", Category: domain.CategoryPaint, RepairCost: 400, Description: "Door scratch repair and paint"},
	{Tag: "dent_door", Category: domain.CategoryBodywork, RepairCost: 350, Description: "Door dent removal (PDR)"},
	{Tag: "dent_hood", Category: domain.CategoryBodywork, RepairCost: 400, Description: "Hood dent removal"},
	{Tag: "paint_fade", Category: domain.CategoryPaint, RepairCost: 800, Description: "Paint fade correction (full panel)"},
	{Tag: "rust_spots", Category: domain.CategoryBodywork, RepairCost: 600, Description: "Rust repair and treatment"},
	{Tag: "cracked_windshield", Category: domain.CategoryGlass, RepairCost: 350, Description: "Windshield replacement"},

	// Wheels and tires
	{Tag: "curb_rash", Category: domain.CategoryWheels, RepairCost: 150, Description: "Wheel curb rash repair (per wheel)"},
	{Tag: "worn_tires", Category: domain.CategoryTires, RepairCost: 600, Description: "Tire replacement (set of 4)"},

	// Interior
	{Tag: "seat_wear", Category: domain.CategoryInterior, RepairCost: 250, Description: "Seat wear repair/reconditioning"},
	{Tag: "seat_tear", Category: domain.CategoryInterior, RepairCost: 400, Description: "Seat tear/rip repair"},
	{Tag: "seat_stain", Category: domain.CategoryInterior, RepairCost: 200, Description: "Seat stain removal and cleaning"},
	{Tag: "dashboard_crack", Category: domain.CategoryInterior, RepairCost: 350, Description: "Dashboard crack repair"},
	{Tag: "trim_damage", Category: domain.CategoryInterior, RepairCost: 150, Description: "Interior trim replacement"},
	{Tag: "carpet_stain", Category: domain.CategoryInterior, RepairCost: 150, Description: "Carpet deep cleaning"},

	// Mechanical
	{Tag: "fluid_leak", Category: domain.CategoryMechanical, RepairCost: 500, Description: "Fluid leak diagnosis and repair"},
	{Tag: "engine_corrosion", Category: domain.CategoryMechanical, RepairCost: 800, Description: "Engine bay corrosion treatment"},

	// Aftermarket (adds value)
	{Tag: "aftermarket_wheels", Category: domain.CategoryAftermarket, ValueAdded: 800, Description: "Aftermarket wheels (adds value)"},
	{Tag: "aftermarket_audio", Category: domain.CategoryAftermarket, ValueAdded: 300, Description: "Aftermarket audio system (adds value)"},
	{Tag: "aftermarket_spoiler", Category: domain.CategoryAftermarket, ValueAdded: 200, Description: "Aftermarket spoiler (adds value)"},
	{Tag: "window_tint", Category: domain.CategoryAftermarket, ValueAdded: 150, Description: "Window tint (adds value)"},
}

// rulesByTag indexes ruleTable. Built once at init and never written again.
var rulesByTag = func() map[domain.ConditionTag]domain.CostRule {
	m := make(map[domain.ConditionTag]domain.CostRule, len(ruleTable))
	for _, r := range ruleTable {
		m[r.Tag] = r
	}
	return m
}()

// Rules returns a copy of the rule table in vocabulary order.
func Rules() []domain.CostRule {
	out := make([]domain.CostRule, len(ruleTable))
	copy(out, ruleTable)
	return out
}

// Vocabulary returns every known condition tag in vocabulary order.
func Vocabulary() []domain.ConditionTag {
	out := make([]domain.ConditionTag, len(ruleTable))
	for i, r := range ruleTable {
		out[i] = r.Tag
	}
	return out
}

// Lookup returns the rule for a tag after normalization.
func Lookup(tag domain.ConditionTag) (domain.CostRule, bool) {
	r, ok := rulesByTag[NormalizeTag(tag)]
	return r, ok
}

// IsKnown reports whether the tag (after normalization) is in the vocabulary.
func IsKnown(tag domain.ConditionTag) bool {
	_, ok := Lookup(tag)
	return ok
}
