package chesscore

import "github.com/BurntSushi/toml"

// EngineConfig controls non-functional tuning: default search depth and
// optional per-kind overrides of material value and piece-square table.
// Nothing about legality or move generation is configurable here.
type EngineConfig struct {
	SearchDepth int `toml:"search_depth"`

	// MaterialOverrides maps a piece kind to its centipawn value. In the
	// TOML file the keys are lowercase kind names (pawn, knight, bishop,
	// rook, queen, king); any kind not present keeps the built-in value.
	MaterialOverrides map[PieceKind]int `toml:"-"`

	// PSTOverrides maps a piece kind to a full 64-entry, White-perspective
	// piece-square table. Any kind not present keeps the built-in table.
	PSTOverrides map[PieceKind][64]int `toml:"-"`

	raw rawEngineConfig
}

// rawEngineConfig mirrors the on-disk TOML shape; it uses plain string
// keys since TOML has no notion of PieceKind, and 64-entry int arrays for
// the piece-square tables.
type rawEngineConfig struct {
	SearchDepth int                `toml:"search_depth"`
	Material    map[string]int     `toml:"material"`
	PST         map[string][64]int `toml:"pst"`
}

// DefaultConfig returns the engine's built-in tuning: search depth 4, no
// material or PST overrides.
func DefaultConfig() EngineConfig {
	return EngineConfig{SearchDepth: 4}
}

// LoadConfig reads and parses a TOML configuration file, falling back to
// DefaultConfig's search depth for any field the file omits.
func LoadConfig(path string) (EngineConfig, error) {
	raw := rawEngineConfig{SearchDepth: DefaultConfig().SearchDepth}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return EngineConfig{}, err
	}

	cfg := EngineConfig{
		SearchDepth:       raw.SearchDepth,
		MaterialOverrides: make(map[PieceKind]int, len(raw.Material)),
		PSTOverrides:      make(map[PieceKind][64]int, len(raw.PST)),
		raw:               raw,
	}
	for name, value := range raw.Material {
		if kind, ok := kindByName[name]; ok {
			cfg.MaterialOverrides[kind] = value
		}
	}
	for name, table := range raw.PST {
		if kind, ok := kindByName[name]; ok {
			cfg.PSTOverrides[kind] = table
		}
	}
	return cfg, nil
}

var kindByName = map[string]PieceKind{
	"pawn":   Pawn,
	"knight": Knight,
	"bishop": Bishop,
	"rook":   Rook,
	"queen":  Queen,
	"king":   King,
}
