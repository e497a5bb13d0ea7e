package config

// LevelConfig contains level geometry and grid values
type LevelConfig struct {
	// Tile dimensions in world units
	SpotWidth  float64
	SpotLength float64
	Height     float64 // Distance from floor to ceiling

	// Texture atlas layout (regions per row/column)
	AtlasCols int
	AtlasRows int

	// Broadphase
	SpaceCellSize int // resolv units per tile

	UseRadius float64 // Distance within which doors and exits respond to "use"
	MinSize   int     // Smallest bitmap edge that still has an interior

	LevelsDir string
}

// DoorConfig contains door and secret wall values
type DoorConfig struct {
	Thickness  float64 // Door depth across the passage
	OpenOffset float64 // Slide distance into the adjacent wall
	TimeToOpen float64 // Seconds for a full slide
	CloseDelay float64 // Seconds an open door waits before closing
}

// CollisionConfig contains resolver and intersection switches
type CollisionConfig struct {
	// ActorsBlockActors lets living actors block each other's movement.
	ActorsBlockActors bool
	// Broadphase narrows candidates through the resolv space. Results are
	// identical with it disabled.
	Broadphase bool
}

// CombatConfig contains hitscan and melee values
type CombatConfig struct {
	MeleeRange  float64
	BulletRange float64 // Full damage within this distance, falling off beyond
	ShellRange  float64
	RayLength   float64 // Length of "infinite" rays (hitscan, line of sight)

	MeleeDamage  int
	BulletDamage int
	ShellDamage  int
}

// ActorConfig contains footprint and health for one actor kind
type ActorConfig struct {
	Name       string
	HalfWidth  float64
	HalfLength float64
	Health     int
	Speed      float64 // tiles per second
}

// PropConfig contains footprint and behaviour for one prop kind
type PropConfig struct {
	Name       string
	Width      float64
	Length     float64
	Blocking   bool
	Damageable bool
	Health     int
}

// DebugConfig contains viewer and logging values
type DebugConfig struct {
	LogLevel   string
	Scale      float64 // Screen pixels per tile in the viewer
	ShowRays   bool
	ShowSpace  bool
	StatsApp   string // gdata application name
	RayColumns int    // Rays cast by the viewer's visibility fan
}

// TelemetryConfig contains tracing switches
type TelemetryConfig struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
}

var Level LevelConfig
var Door DoorConfig
var Collision CollisionConfig
var Combat CombatConfig
var Actors map[string]ActorConfig
var Props map[string]PropConfig
var Debug DebugConfig
var Telemetry TelemetryConfig

func init() {
	Level = LevelConfig{
		SpotWidth:     1,
		SpotLength:    1,
		Height:        1,
		AtlasCols:     4,
		AtlasRows:     4,
		SpaceCellSize: 16,
		UseRadius:     1,
		MinSize:       3,
		LevelsDir:     "levels",
	}

	Door = DoorConfig{
		Thickness:  0.125,
		OpenOffset: 0.9,
		TimeToOpen: 0.5,
		CloseDelay: 3,
	}

	Collision = CollisionConfig{
		ActorsBlockActors: false,
		Broadphase:        true,
	}

	Combat = CombatConfig{
		MeleeRange:   0.55,
		BulletRange:  2,
		ShellRange:   3,
		RayLength:    1000,
		MeleeDamage:  25,
		BulletDamage: 20,
		ShellDamage:  60,
	}

	Actors = map[string]ActorConfig{
		"player":   {Name: "player", HalfWidth: 0.2, HalfLength: 0.2, Health: 100, Speed: 3},
		"soldier":  {Name: "soldier", HalfWidth: 0.4, HalfLength: 0.4, Health: 100, Speed: 1.5},
		"ss":       {Name: "ss", HalfWidth: 0.4, HalfLength: 0.4, Health: 150, Speed: 1.5},
		"sergeant": {Name: "sergeant", HalfWidth: 0.4, HalfLength: 0.4, Health: 200, Speed: 1.5},
		"dog":      {Name: "dog", HalfWidth: 0.3, HalfLength: 0.3, Health: 60, Speed: 2.5},
	}

	Props = map[string]PropConfig{
		"lantern":     {Name: "lantern", Width: 0.2, Length: 0.2},
		"deadsoldier": {Name: "deadsoldier", Width: 0.5, Length: 0.5},
		"lamp":        {Name: "lamp", Width: 0.25, Length: 0.25, Blocking: true},
		"bones":       {Name: "bones", Width: 0.3, Length: 0.3, Blocking: true},
		"corpse":      {Name: "corpse", Width: 0.5, Length: 0.5, Blocking: true},
		"tree":        {Name: "tree", Width: 0.4, Length: 0.4, Blocking: true},
		"table":       {Name: "table", Width: 0.6, Length: 0.6, Blocking: true},
		"furnace":     {Name: "furnace", Width: 0.6, Length: 0.6, Blocking: true},
		"kitchen":     {Name: "kitchen", Width: 0.6, Length: 0.6, Blocking: true},
		"clock":       {Name: "clock", Width: 0.3, Length: 0.3, Blocking: true},
		"pipe":        {Name: "pipe", Width: 0.2, Length: 0.2, Blocking: true},
		"pendulum":    {Name: "pendulum", Width: 0.2, Length: 0.2, Blocking: true},
		"hanged":      {Name: "hanged", Width: 0.25, Length: 0.25, Blocking: true},
		"pillar":      {Name: "pillar", Width: 0.4, Length: 0.4, Blocking: true},
		"barrel": {
			Name:       "barrel",
			Width:      0.35,
			Length:     0.35,
			Blocking:   true,
			Damageable: true,
			Health:     40,
		},
	}

	Debug = DebugConfig{
		LogLevel:   "info",
		Scale:      24,
		ShowRays:   true,
		ShowSpace:  false,
		StatsApp:   "doomgrid",
		RayColumns: 64,
	}

	Telemetry = TelemetryConfig{
		Enabled:        false,
		ServiceName:    "doomgrid",
		ServiceVersion: "0.1.0",
	}
}

// Actor returns the configuration for an actor kind, falling back to the
// player footprint for unknown kinds.
func Actor(name string) ActorConfig {
	if a, ok := Actors[name]; ok {
		return a
	}
	return Actors["player"]
}

// Prop returns the configuration for a prop kind and whether it is known.
func Prop(name string) (PropConfig, bool) {
	p, ok := Props[name]
	return p, ok
}
