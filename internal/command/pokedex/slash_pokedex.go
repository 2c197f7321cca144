package pokedex

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"pokebase/internal/bot"
	"pokebase/internal/command"
	"pokebase/internal/game"
	"pokebase/internal/middleware"
	"pokebase/internal/pokeapi"

	"github.com/bwmarrin/discordgo"
)

type PokedexCommand struct{}

func (c *PokedexCommand) Name() string        { return "pokedex" }
func (c *PokedexCommand) Description() string { return "Search for various info about a Pokémon" }
func (c *PokedexCommand) Group() string       { return "pokedex" }
func (c *PokedexCommand) Category() string    { return "📖 Pokédex" }
func (c *PokedexCommand) UserPermissions() []int64 {
	return []int64{}
}

func (c *PokedexCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "pokemon",
				Description: "Name or National Pokédex number",
				Required:    true,
			},
		},
	}
}

func (c *PokedexCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	session := slash.Session
	event := slash.Event
	poke := slash.Poke

	if err := bot.RespondDeferred(session, event); err != nil {
		return err
	}

	query := command.Option(event, "pokemon")
	data, err := poke.Pokemon(context.Background(), query)
	if err != nil {
		return respondLookupError(session, event, err)
	}

	embed := buildPokedexEmbed(poke, data)
	_, err = bot.FollowupEmbed(session, event, embed)
	return err
}

func buildPokedexEmbed(poke *pokeapi.Client, data *pokeapi.Pokemon) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Color: bot.EmbedColor,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: poke.ArtworkURL(data.ID),
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Powered by Poke API"},
	}

	addField := func(name, value string, inline bool) {
		if value == "" {
			return
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: name, Value: value, Inline: inline,
		})
	}

	addField("Introduced In", introducedIn(game.GenerationOf(data.ID)), true)
	addField("Height", humanizeHeight(data.Height), true)
	addField("Weight", humanizeWeight(data.Weight), true)

	var types []string
	for _, t := range data.Types {
		types = append(types, titleWords(t.Type.Name))
	}
	addField("Types", strings.Join(types, "/"), true)

	displayName := titleWords(data.Name)
	species, err := poke.Species(context.Background(), data.ID)
	if err != nil {
		log.Printf("[WARN] No species data for %s: %v", data.Name, err)
	} else {
		if en := pokeapi.EnglishName(species.Names); en != "" {
			displayName = en
		}
		addField("Gender Rate", genderRate(species.GenderRate), true)
		addField("Base Happiness", fmt.Sprintf("%d / 255", species.BaseHappiness), true)
		addField("Capture Rate", fmt.Sprintf("%d / 255", species.CaptureRate), true)
		embed.Description = speciesBlurb(species)
	}

	addField("Held Items", heldItems(data), true)
	addField("Abilities", abilityLinks(data), true)
	addField("Base Stats (Base Form)", prettyBaseStats(data), false)

	if species != nil && species.EvolutionChain.URL != "" {
		if chain := evolutionLine(poke, species.EvolutionChain.URL); chain != "" {
			addField("Evolution Chain", chain, false)
		}
	}

	embed.Author = &discordgo.MessageEmbedAuthor{
		Name: fmt.Sprintf("#%s - %s", padID(data.ID), displayName),
		URL:  "https://www.pokemon.com/us/pokedex/" + data.Name,
	}
	addField("Weakness/Resistance",
		fmt.Sprintf("[See it on Bulbapedia](%s)",
			bulbapediaURL(strings.ReplaceAll(displayName, " ", "_")+"_%28Pokémon%29#Type_effectiveness")),
		true)

	return embed
}

// genderRate converts PokeAPI's female-eighths encoding into ratios.
func genderRate(rate int) string {
	if rate == -1 {
		return "Genderless"
	}
	female := float64(rate) / 8 * 100
	male := 100 - female
	var sb strings.Builder
	if male != 0 {
		fmt.Fprintf(&sb, "♂️ %s%%\n", trimFloat(male))
	}
	if female != 0 {
		fmt.Fprintf(&sb, "♀️ %s%%", trimFloat(female))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// speciesBlurb pairs the genus with one random flavor text entry.
func speciesBlurb(species *pokeapi.Species) string {
	var genus string
	for _, g := range species.Genera {
		if g.Language.Name == "en" {
			genus = "The " + g.Genus
			break
		}
	}

	var flavors []string
	for _, f := range species.FlavorTextEntries {
		if f.Language.Name == "en" {
			flavors = append(flavors, cleanFlavor(f.FlavorText))
		}
	}
	if len(flavors) == 0 {
		return genus
	}
	return fmt.Sprintf("**%s**\n\n%s", genus, flavors[rand.Intn(len(flavors))])
}

func heldItems(data *pokeapi.Pokemon) string {
	if len(data.HeldItems) == 0 {
		return "None"
	}
	var sb strings.Builder
	for _, item := range data.HeldItems {
		rarity := 0
		if len(item.VersionDetails) > 0 {
			rarity = item.VersionDetails[0].Rarity
		}
		fmt.Fprintf(&sb, "%s (%d%%)\n", titleWords(item.Item.Name), rarity)
	}
	return sb.String()
}

func abilityLinks(data *pokeapi.Pokemon) string {
	var sb strings.Builder
	for _, a := range data.Abilities {
		suffix := ""
		if a.IsHidden {
			suffix = " (Hidden Ability)"
		}
		fmt.Fprintf(&sb, "[%s](%s)%s\n",
			titleWords(a.Ability.Name),
			bulbapediaURL(strings.ReplaceAll(titleWords(a.Ability.Name), " ", "_")+"_%28Ability%29"),
			suffix)
	}
	return sb.String()
}

func prettyBaseStats(data *pokeapi.Pokemon) string {
	stats := make(map[string]int)
	total := 0
	for _, s := range data.Stats {
		stats[s.Stat.Name] = s.BaseStat
		total += s.BaseStat
	}

	row := func(label, key string) string {
		return fmt.Sprintf("**`%-12s:`**  %s **%d**\n", label, statBar(stats[key]), stats[key])
	}
	return row("HP", "hp") +
		row("Attack", "attack") +
		row("Defense", "defense") +
		row("Sp. Attack", "special-attack") +
		row("Sp. Defense", "special-defense") +
		row("Speed", "speed") +
		fmt.Sprintf("**`%-12s:`**  `|--------------------|` **%d**", "Total", total)
}

// evolutionLine renders the first two evolution steps as "A -> B -> C".
func evolutionLine(poke *pokeapi.Client, url string) string {
	evo, err := poke.EvolutionChain(context.Background(), url)
	if err != nil {
		log.Printf("[WARN] No evolution chain at %s: %v", url, err)
		return ""
	}

	names := func(links []pokeapi.ChainLink) string {
		var parts []string
		for _, l := range links {
			parts = append(parts, titleWords(l.Species.Name))
		}
		return strings.Join(parts, "/")
	}

	chain := evo.Chain
	if len(chain.EvolvesTo) == 0 {
		return ""
	}
	line := titleWords(chain.Species.Name) + " -> " + names(chain.EvolvesTo)
	if len(chain.EvolvesTo[0].EvolvesTo) > 0 {
		line += " -> " + names(chain.EvolvesTo[0].EvolvesTo)
	}
	return line
}

// respondLookupError maps client failures to user-facing followups.
func respondLookupError(session *discordgo.Session, event *discordgo.InteractionCreate, err error) error {
	if code := pokeapi.StatusCode(err); code == 404 {
		_, ferr := bot.Followup(session, event, "No results.")
		return ferr
	}
	log.Println("[ERR] PokeAPI lookup failed:", err)
	_, ferr := bot.Followup(session, event, "The Pokédex is not responding. Try again later.")
	return ferr
}

func init() {
	command.RegisterCommand(
		&PokedexCommand{},
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
	)
}
