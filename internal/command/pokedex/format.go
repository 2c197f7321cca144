// Package pokedex implements the lookup commands backed by PokeAPI:
// pokémon summaries, abilities, moves, items and encounter locations.
package pokedex

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	titler  = cases.Title(language.English)
	printer = message.NewPrinter(language.English)
)

// titleWords turns an API slug like "special-attack" into "Special Attack".
func titleWords(slug string) string {
	return titler.String(strings.ReplaceAll(slug, "-", " "))
}

// padID renders a national index the way the Pokédex prints it: #025.
func padID(id int) string {
	return fmt.Sprintf("%03d", id)
}

// humanizeNumber groups thousands: 12000 -> "12,000".
func humanizeNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// humanizeHeight renders decimeters as feet/inches with meters below.
func humanizeHeight(dm int) string {
	inches := float64(dm) * 3.94
	return fmt.Sprintf("%d ft. %d in.\n(%s m.)",
		int(math.Floor(inches/12)),
		int(math.Floor(math.Mod(inches, 12))),
		trimFloat(float64(dm)/10))
}

// humanizeWeight renders hectograms as pounds with kilograms below.
func humanizeWeight(hg int) string {
	lbs := math.Round(float64(hg)*0.2205*100) / 100
	return fmt.Sprintf("%s lbs.\n(%s kgs.)", trimFloat(lbs), trimFloat(float64(hg)/10))
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// statBar draws a 20-cell monospace gauge for a base stat (0..255).
func statBar(value int) string {
	fill := int(math.Round(float64(value)/255*10)) * 2
	if fill > 20 {
		fill = 20
	}
	return "`|" + strings.Repeat("█", fill) + strings.Repeat(" ", 20-fill) + "|`"
}

// introGames maps a generation number to the games that introduced it.
var introGames = map[int]string{
	1: "Red/Blue\n(Gen. 1)",
	2: "Gold/Silver\n(Gen. 2)",
	3: "Ruby/Sapphire\n(Gen. 3)",
	4: "Diamond/Pearl\n(Gen. 4)",
	5: "Black/White\n(Gen. 5)",
	6: "X/Y\n(Gen. 6)",
	7: "Sun/Moon\n(Gen. 7)",
	8: "Sword/Shield\n(Gen. 8)",
}

func introducedIn(gen int) string {
	if games, ok := introGames[gen]; ok {
		return games
	}
	return "Unknown"
}

// bulbapediaURL builds a wiki link for a titled subject such as
// "Pikachu_%28Pokémon%29".
func bulbapediaURL(subject string) string {
	return "https://bulbapedia.bulbagarden.net/wiki/" + subject
}

// chunkLines splits text into pages of at most limit runes, breaking on
// newlines only.
func chunkLines(text string, limit int) []string {
	var pages []string
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if sb.Len() > 0 && sb.Len()+len(line)+1 > limit {
			pages = append(pages, sb.String())
			sb.Reset()
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
	}
	if sb.Len() > 0 {
		pages = append(pages, sb.String())
	}
	return pages
}

// cleanFlavor strips the page-control characters PokeAPI keeps from the
// original game text.
func cleanFlavor(s string) string {
	r := strings.NewReplacer("\n", " ", "\f", " ", "\r", " ")
	return r.Replace(s)
}

// truncate cuts s to at most n bytes, appending a continuation mark.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "... and more."
}
