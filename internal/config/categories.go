package config

var CategoryWeights = map[string]int{
	"🕯️ Information": 0,
	"📖 Pokédex":     10,
	"🎲 Gameplay":     20,
	"🛠️ Maintenance": 60,
}
