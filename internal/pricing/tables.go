package pricing

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

type PriceCategory string

const (
	CategoryEACCitizen            PriceCategory = "Rwandan/EAC Citizen"
	CategoryEACResident           PriceCategory = "Rwandan/EAC Resident"
	CategoryInternational         PriceCategory = "International Visitor"
	CategoryPanAfrican            PriceCategory = "Pan-African (out of EAC)"
	CategoryPanAfricanEACResident PriceCategory = "Pan-African/EAC Resident"
)

type AgeRange string

const (
	AgeRangeAdults   AgeRange = "adults"
	AgeRangeChildren AgeRange = "children"
)

// Valid reports whether r is one of the known age ranges.
func (r AgeRange) Valid() bool {
	return r == AgeRangeAdults || r == AgeRangeChildren
}

// Tiers holds a price per stay-length bucket: 1 night, 2 nights, 3+ nights.
type Tiers [3]float64

// StayFee is the per-person stay price of one category.
type StayFee struct {
	Adults   Tiers `toml:"adults"`
	Children Tiers `toml:"children"`
}

// EntryFee is the park entry price for one nationality band.
type EntryFee struct {
	Adult float64 `toml:"adult"`
	Child float64 `toml:"child"`
}

type EntryFees struct {
	EAC           EntryFee `toml:"eac"`
	African       EntryFee `toml:"african"`
	International float64  `toml:"international"`
}

// VehicleFees are USD per vehicle.
type VehicleFees struct {
	EACBus         float64 `toml:"eac_bus"`
	EACOther       float64 `toml:"eac_other"`
	ForeignMinibus float64 `toml:"foreign_minibus"`
	ForeignOther   float64 `toml:"foreign_other"`
}

type BehindTheScenesFees struct {
	Adult float64 `toml:"adult"`
	Child float64 `toml:"child"`
}

// Tables is the full set of static rates the engine prices against. A Tables
// value must not be mutated once handed to an Engine.
type Tables struct {
	Stay            map[PriceCategory]StayFee `toml:"stay"`
	Entry           EntryFees                 `toml:"entry"`
	Vehicle         VehicleFees               `toml:"vehicle"`
	BehindTheScenes BehindTheScenesFees       `toml:"behind_the_scenes"`
}

var defaultTables = Tables{
	Stay: map[PriceCategory]StayFee{
		CategoryEACCitizen: {
			Adults:   Tiers{16, 24, 32},
			Children: Tiers{11, 16, 21},
		},
		CategoryEACResident: {
			Adults:   Tiers{50, 75, 100},
			Children: Tiers{30, 45, 60},
		},
		CategoryInternational: {
			Adults:   Tiers{100, 150, 200},
			Children: Tiers{50, 75, 100},
		},
		CategoryPanAfrican: {
			Adults:   Tiers{50, 75, 100},
			Children: Tiers{30, 45, 60},
		},
		// Not produced by Category; kept so the rate stays on record.
		CategoryPanAfricanEACResident: {
			Adults:   Tiers{25, 38, 50},
			Children: Tiers{15, 23, 30},
		},
	},
	Entry: EntryFees{
		EAC:           EntryFee{Adult: 32, Child: 16},
		African:       EntryFee{Adult: 50, Child: 25},
		International: 64,
	},
	Vehicle: VehicleFees{
		EACBus:         20,
		EACOther:       10,
		ForeignMinibus: 40,
		ForeignOther:   100,
	},
	BehindTheScenes: BehindTheScenesFees{Adult: 40, Child: 20},
}

// DefaultTables returns a copy of the built-in rate tables.
func DefaultTables() Tables {
	t := defaultTables
	t.Stay = make(map[PriceCategory]StayFee, len(defaultTables.Stay))
	for k, v := range defaultTables.Stay {
		t.Stay[k] = v
	}
	return t
}

// LoadTables reads a TOML rate file on top of the defaults. Keys absent from
// the file keep their default values, including a tier array left out of a
// stay category the file does name.
func LoadTables(path string) (Tables, error) {
	t := DefaultTables()
	defaults := DefaultTables()

	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return Tables{}, fmt.Errorf("decode rate file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Tables{}, fmt.Errorf("unknown rate file key %q", undecoded[0].String())
	}
	for category := range t.Stay {
		if !knownCategory(category) {
			return Tables{}, fmt.Errorf("unknown price category %q", category)
		}
	}

	// A decoded [stay."..."] table starts from zero values, not the defaults.
	for category, fee := range t.Stay {
		def := defaults.Stay[category]
		if !md.IsDefined("stay", string(category), "adults") {
			fee.Adults = def.Adults
		}
		if !md.IsDefined("stay", string(category), "children") {
			fee.Children = def.Children
		}
		t.Stay[category] = fee
	}

	if err := t.validate(); err != nil {
		return Tables{}, err
	}
	return t, nil
}

func knownCategory(c PriceCategory) bool {
	switch c {
	case CategoryEACCitizen, CategoryEACResident, CategoryInternational,
		CategoryPanAfrican, CategoryPanAfricanEACResident:
		return true
	}
	return false
}

var errNegativeRate = errors.New("rates must not be negative")

func (t Tables) validate() error {
	for category, fee := range t.Stay {
		for i := range fee.Adults {
			if fee.Adults[i] < 0 || fee.Children[i] < 0 {
				return fmt.Errorf("stay %q: %w", category, errNegativeRate)
			}
		}
	}
	if _, ok := t.Stay[CategoryInternational]; !ok {
		return fmt.Errorf("stay table is missing %q", CategoryInternational)
	}

	flat := []struct {
		key   string
		value float64
	}{
		{"entry.eac.adult", t.Entry.EAC.Adult},
		{"entry.eac.child", t.Entry.EAC.Child},
		{"entry.african.adult", t.Entry.African.Adult},
		{"entry.african.child", t.Entry.African.Child},
		{"entry.international", t.Entry.International},
		{"vehicle.eac_bus", t.Vehicle.EACBus},
		{"vehicle.eac_other", t.Vehicle.EACOther},
		{"vehicle.foreign_minibus", t.Vehicle.ForeignMinibus},
		{"vehicle.foreign_other", t.Vehicle.ForeignOther},
		{"behind_the_scenes.adult", t.BehindTheScenes.Adult},
		{"behind_the_scenes.child", t.BehindTheScenes.Child},
	}
	for _, f := range flat {
		if f.value < 0 {
			return fmt.Errorf("%s: %w", f.key, errNegativeRate)
		}
	}
	return nil
}
