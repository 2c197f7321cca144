package pokeapi

// NamedResource is PokeAPI's ubiquitous {name, url} pair.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LocalizedName is a display name tagged with a language code.
type LocalizedName struct {
	Name     string        `json:"name"`
	Language NamedResource `json:"language"`
}

type Pokemon struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Height    int    `json:"height"` // decimeters
	Weight    int    `json:"weight"` // hectograms
	Types     []struct {
		Type NamedResource `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability  NamedResource `json:"ability"`
		IsHidden bool          `json:"is_hidden"`
	} `json:"abilities"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Stat     NamedResource `json:"stat"`
	} `json:"stats"`
	Moves []struct {
		Move NamedResource `json:"move"`
	} `json:"moves"`
	HeldItems []struct {
		Item           NamedResource `json:"item"`
		VersionDetails []struct {
			Rarity int `json:"rarity"`
		} `json:"version_details"`
	} `json:"held_items"`
	LocationAreaEncounters string `json:"location_area_encounters"`
}

type Species struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	GenderRate    int             `json:"gender_rate"` // -1 = genderless, else female eighths
	BaseHappiness int             `json:"base_happiness"`
	CaptureRate   int             `json:"capture_rate"`
	Names         []LocalizedName `json:"names"`
	Genera        []struct {
		Genus    string        `json:"genus"`
		Language NamedResource `json:"language"`
	} `json:"genera"`
	FlavorTextEntries []struct {
		FlavorText string        `json:"flavor_text"`
		Language   NamedResource `json:"language"`
	} `json:"flavor_text_entries"`
	EvolutionChain struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
}

type ChainLink struct {
	Species   NamedResource `json:"species"`
	EvolvesTo []ChainLink   `json:"evolves_to"`
}

type EvolutionChain struct {
	Chain ChainLink `json:"chain"`
}

type EffectEntry struct {
	Effect      string        `json:"effect"`
	ShortEffect string        `json:"short_effect"`
	Language    NamedResource `json:"language"`
}

type Ability struct {
	Name          string        `json:"name"`
	EffectEntries []EffectEntry `json:"effect_entries"`
	Generation    NamedResource `json:"generation"`
	Pokemon       []struct {
		Pokemon  NamedResource `json:"pokemon"`
		IsHidden bool          `json:"is_hidden"`
	} `json:"pokemon"`
}

type Move struct {
	Name             string          `json:"name"`
	Accuracy         int             `json:"accuracy"`
	Power            int             `json:"power"`
	PP               int             `json:"pp"`
	EffectChance     int             `json:"effect_chance"`
	EffectEntries    []EffectEntry   `json:"effect_entries"`
	Generation       NamedResource   `json:"generation"`
	Type             NamedResource   `json:"type"`
	ContestType      NamedResource   `json:"contest_type"`
	DamageClass      NamedResource   `json:"damage_class"`
	LearnedByPokemon []NamedResource `json:"learned_by_pokemon"`
}

type Item struct {
	Name          string          `json:"name"`
	Cost          int             `json:"cost"`
	Category      NamedResource   `json:"category"`
	EffectEntries []EffectEntry   `json:"effect_entries"`
	Attributes    []NamedResource `json:"attributes"`
	FlingPower    int             `json:"fling_power"`
	FlingEffect   NamedResource   `json:"fling_effect"`
	HeldByPokemon []struct {
		Pokemon NamedResource `json:"pokemon"`
	} `json:"held_by_pokemon"`
}

type ItemCategory struct {
	Name  string          `json:"name"`
	Items []NamedResource `json:"items"`
}

// Encounter is one entry of a pokémon's location-area-encounters document.
type Encounter struct {
	LocationArea   NamedResource `json:"location_area"`
	VersionDetails []struct {
		Version NamedResource `json:"version"`
	} `json:"version_details"`
}

type LocationArea struct {
	Location NamedResource `json:"location"`
}

type Location struct {
	Names []LocalizedName `json:"names"`
}

// EnglishName returns the English-tagged entry of names, or "" when absent.
func EnglishName(names []LocalizedName) string {
	for _, n := range names {
		if n.Language.Name == "en" {
			return n.Name
		}
	}
	return ""
}

// EnglishEffect returns the English effect entry, or zero value when absent.
func EnglishEffect(entries []EffectEntry) EffectEntry {
	for _, e := range entries {
		if e.Language.Name == "en" {
			return e
		}
	}
	return EffectEntry{}
}
