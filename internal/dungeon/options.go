package dungeon

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/mapgen"
	"github.com/samdwyer/dungeongen/internal/postprocess"
)

// MapType selects the grid synthesis algorithm.
type MapType string

const (
	MapMaze    MapType = "maze"
	MapRooms   MapType = "rooms"
	MapCave    MapType = "cave"
	MapOpen    MapType = "open"
	MapModular MapType = "modular"
)

// MapTypes lists every supported map type.
func MapTypes() []MapType {
	return []MapType{MapMaze, MapRooms, MapCave, MapOpen, MapModular}
}

// ParseMapType converts a name such as "cave" into a MapType.
func ParseMapType(s string) (MapType, error) {
	mt := MapType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range MapTypes() {
		if mt == known {
			return mt, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownMapType)
}

// Options configures a Generator.
type Options struct {
	Width  int
	Height int
	// Seed 0 draws a seed from the clock.
	Seed        int64
	DungeonType string
	MapType     MapType

	RoomDensity     float64
	CorridorWidth   int
	WaterPools      float64 // percent of floor cells seeded with water
	TreasureDensity float64
	MonsterDensity  float64
	RoomSizeMin     int
	RoomSizeMax     int
	CaveRoundness   float64
	OpenSpaceAmount float64
	ModuleSize      int

	SmoothIterations int
	DungeonLevel     int
	LockRatio        float64
	SecretPassages   int
	TrapDensity      float64
	TreasureVault    bool
	Decorate         bool
	ColumnFrequency  float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Width:           50,
		Height:          50,
		DungeonType:     gamedata.DefaultThemeID,
		MapType:         MapMaze,
		RoomDensity:     0.5,
		CorridorWidth:   1,
		TreasureDensity: 1.0,
		MonsterDensity:  1.0,
		RoomSizeMin:     4,
		RoomSizeMax:     10,
		CaveRoundness:   0.5,
		OpenSpaceAmount: 0.8,
		ModuleSize:      10,
		DungeonLevel:    1,
		Decorate:        true,
		ColumnFrequency: postprocess.DefaultColumnFrequency,
	}
}

// normalized fills unset structural options from the defaults and resolves
// a zero seed. Densities are left alone so zero disables a feature.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()%1_000_000 + 1
	}
	if o.DungeonType == "" {
		o.DungeonType = def.DungeonType
	}
	if o.MapType == "" {
		o.MapType = def.MapType
	}
	if o.RoomDensity <= 0 {
		o.RoomDensity = def.RoomDensity
	}
	if o.CorridorWidth <= 0 {
		o.CorridorWidth = def.CorridorWidth
	}
	if o.RoomSizeMin <= 0 {
		o.RoomSizeMin = def.RoomSizeMin
	}
	if o.RoomSizeMax <= 0 {
		o.RoomSizeMax = def.RoomSizeMax
	}
	if o.CaveRoundness <= 0 {
		o.CaveRoundness = def.CaveRoundness
	}
	if o.OpenSpaceAmount <= 0 {
		o.OpenSpaceAmount = def.OpenSpaceAmount
	}
	if o.ModuleSize <= 0 {
		o.ModuleSize = def.ModuleSize
	}
	o.DungeonLevel = max(o.DungeonLevel, 1)
	return o
}

// referenceArea is the grid area the room counts are tuned for. Smaller
// grids require proportionally fewer rooms.
const referenceArea = 50 * 50

// roomOptions derives the rooms-and-corridors settings. The minimum room
// count scales down with grid area and room sides are capped at a quarter of
// the shorter grid side (at least 3), so every grid of 10x10 or more fits.
func (o Options) roomOptions() mapgen.RoomOptions {
	scale := min(1, float64(o.Width*o.Height)/referenceArea)
	minRooms := max(1, int(math.Floor(10*o.RoomDensity*scale)))
	maxRooms := max(minRooms, int(math.Floor(20*o.RoomDensity)))
	maxSize := min(o.RoomSizeMax, max(3, min(o.Width, o.Height)/4))
	return mapgen.RoomOptions{
		MinRooms:       minRooms,
		MaxRooms:       maxRooms,
		MinRoomSize:    min(o.RoomSizeMin, maxSize),
		MaxRoomSize:    maxSize,
		CorridorWidth:  o.CorridorWidth,
		RoomSpacing:    1,
		RemoveDeadEnds: true,
	}
}

// caveOptions scales the smoothing passes with roundness; 0.5 gives 4.
func (o Options) caveOptions() mapgen.CaveOptions {
	opts := mapgen.DefaultCaveOptions()
	iterations := int(math.Round(4 * o.CaveRoundness / 0.5))
	opts.Iterations = min(max(iterations, 1), 8)
	return opts
}

// pillarFrequency maps openness to pillar density; 0.8 gives 0.1.
func (o Options) pillarFrequency() float64 {
	f := mapgen.DefaultPillarFrequency * (1 - o.OpenSpaceAmount) / 0.2
	return min(max(f, 0), 0.5)
}

// modularOptions derives module sides from ModuleSize; 10 gives 5 to 10.
func (o Options) modularOptions() mapgen.ModularOptions {
	opts := mapgen.DefaultModularOptions()
	opts.MinModuleSize = max(3, o.ModuleSize/2)
	opts.ModuleSpread = max(1, o.ModuleSize-opts.MinModuleSize+1)
	return opts
}
