package gen

// Biome IDs matching Minecraft 1.8 protocol.
const (
	BiomeOcean      byte = 0
	BiomePlains     byte = 1
	BiomeDesert     byte = 2
	BiomeForest     byte = 4
	BiomeTaiga      byte = 5
	BiomeBeach      byte = 16
	BiomeJungle     byte = 21
	BiomeDarkForest byte = 29
	BiomeSavanna    byte = 35
)

// BiomeByName maps configuration names to biome IDs.
var BiomeByName = map[string]byte{
	"ocean":       BiomeOcean,
	"plains":      BiomePlains,
	"desert":      BiomeDesert,
	"forest":      BiomeForest,
	"taiga":       BiomeTaiga,
	"beach":       BiomeBeach,
	"jungle":      BiomeJungle,
	"dark_forest": BiomeDarkForest,
	"savanna":     BiomeSavanna,
}
