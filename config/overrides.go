package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Overrides mirrors the tunable parts of the configuration. Nil fields keep
// the current value.
type Overrides struct {
	Door struct {
		Thickness  *float64 `yaml:"thickness"`
		OpenOffset *float64 `yaml:"open_offset"`
		TimeToOpen *float64 `yaml:"time_to_open"`
		CloseDelay *float64 `yaml:"close_delay"`
	} `yaml:"door"`
	Collision struct {
		ActorsBlockActors *bool `yaml:"actors_block_actors"`
		Broadphase        *bool `yaml:"broadphase"`
	} `yaml:"collision"`
	Combat struct {
		MeleeRange  *float64 `yaml:"melee_range"`
		BulletRange *float64 `yaml:"bullet_range"`
		ShellRange  *float64 `yaml:"shell_range"`
		RayLength   *float64 `yaml:"ray_length"`
	} `yaml:"combat"`
	Level struct {
		UseRadius *float64 `yaml:"use_radius"`
		LevelsDir *string  `yaml:"levels_dir"`
	} `yaml:"level"`
	Actors map[string]ActorOverrides `yaml:"actors"`
	Props  map[string]PropOverrides  `yaml:"props"`
	Debug  struct {
		LogLevel *string  `yaml:"log_level"`
		Scale    *float64 `yaml:"scale"`
	} `yaml:"debug"`
}

// ActorOverrides holds the per-kind actor fields a YAML file may set.
type ActorOverrides struct {
	HalfWidth  *float64 `yaml:"half_width"`
	HalfLength *float64 `yaml:"half_length"`
	Health     *int     `yaml:"health"`
	Speed      *float64 `yaml:"speed"`
}

// PropOverrides holds the per-kind prop fields a YAML file may set.
type PropOverrides struct {
	Width      *float64 `yaml:"width"`
	Length     *float64 `yaml:"length"`
	Blocking   *bool    `yaml:"blocking"`
	Damageable *bool    `yaml:"damageable"`
	Health     *int     `yaml:"health"`
}

// LoadOverrides reads a YAML override file and applies it.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := ApplyOverrides(data); err != nil {
		return fmt.Errorf("apply config %s: %w", path, err)
	}
	return nil
}

// ApplyOverrides decodes YAML overrides and applies every field present.
func ApplyOverrides(data []byte) error {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return err
	}

	setFloat(&Door.Thickness, o.Door.Thickness)
	setFloat(&Door.OpenOffset, o.Door.OpenOffset)
	setFloat(&Door.TimeToOpen, o.Door.TimeToOpen)
	setFloat(&Door.CloseDelay, o.Door.CloseDelay)

	setBool(&Collision.ActorsBlockActors, o.Collision.ActorsBlockActors)
	setBool(&Collision.Broadphase, o.Collision.Broadphase)

	setFloat(&Combat.MeleeRange, o.Combat.MeleeRange)
	setFloat(&Combat.BulletRange, o.Combat.BulletRange)
	setFloat(&Combat.ShellRange, o.Combat.ShellRange)
	setFloat(&Combat.RayLength, o.Combat.RayLength)

	setFloat(&Level.UseRadius, o.Level.UseRadius)
	if o.Level.LevelsDir != nil {
		Level.LevelsDir = *o.Level.LevelsDir
	}

	for name, ao := range o.Actors {
		a := Actors[name]
		a.Name = name
		setFloat(&a.HalfWidth, ao.HalfWidth)
		setFloat(&a.HalfLength, ao.HalfLength)
		setInt(&a.Health, ao.Health)
		setFloat(&a.Speed, ao.Speed)
		Actors[name] = a
	}
	for name, po := range o.Props {
		p := Props[name]
		p.Name = name
		setFloat(&p.Width, po.Width)
		setFloat(&p.Length, po.Length)
		setBool(&p.Blocking, po.Blocking)
		setBool(&p.Damageable, po.Damageable)
		setInt(&p.Health, po.Health)
		Props[name] = p
	}

	if o.Debug.LogLevel != nil {
		Debug.LogLevel = *o.Debug.LogLevel
	}
	setFloat(&Debug.Scale, o.Debug.Scale)
	return nil
}

// ApplyEnv applies DOOMGRID_* environment variables. Unparseable values are
// reported and leave the setting unchanged.
func ApplyEnv() error {
	if v := os.Getenv("DOOMGRID_LOG_LEVEL"); v != "" {
		Debug.LogLevel = v
	}
	if v := os.Getenv("DOOMGRID_LEVELS_DIR"); v != "" {
		Level.LevelsDir = v
	}
	if v := os.Getenv("DOOMGRID_ACTORS_BLOCK_ACTORS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DOOMGRID_ACTORS_BLOCK_ACTORS: %w", err)
		}
		Collision.ActorsBlockActors = b
	}
	if v := os.Getenv("DOOMGRID_TELEMETRY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DOOMGRID_TELEMETRY: %w", err)
		}
		Telemetry.Enabled = b
	}
	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
