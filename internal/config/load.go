package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/utils"

	"github.com/spf13/viper"
)

// PlayerConfig — движение, камера и оружейные тайминги игрока.
type PlayerConfig struct {
	MaxHealth       int           `mapstructure:"maxHealth"`
	WalkSpeed       float64       `mapstructure:"walkSpeed"`
	RunSpeed        float64       `mapstructure:"runSpeed"`
	JumpSpeed       float64       `mapstructure:"jumpSpeed"`
	GroundedEpsilon float64       `mapstructure:"groundedEpsilon"`
	DeathPlaneY     float64       `mapstructure:"deathPlaneY"`
	SpawnPosition   utils.Vec3    `mapstructure:"spawnPosition"`
	Radius          float64       `mapstructure:"radius"`
	Height          float64       `mapstructure:"height"`
	LookSensitivity float64       `mapstructure:"lookSensitivity"`
	PitchLimit      float64       `mapstructure:"pitchLimit"`
	EyeHeight       float64       `mapstructure:"eyeHeight"`
	PivotHeight     float64       `mapstructure:"pivotHeight"`
	CameraOffset    utils.Vec3    `mapstructure:"cameraOffset"`
	AimCameraOffset utils.Vec3    `mapstructure:"aimCameraOffset"`
	CameraLerpRate  float64       `mapstructure:"cameraLerpRate"`
	BaseFOV         float64       `mapstructure:"baseFov"`
	FOVLerpRate     float64       `mapstructure:"fovLerpRate"`
	RecoilHip       float64       `mapstructure:"recoilHip"`
	RecoilAim       float64       `mapstructure:"recoilAim"`
	AimSpreadFactor float64       `mapstructure:"aimSpreadFactor"`
	SwitchDuration  time.Duration `mapstructure:"switchDuration"`
	PickupRadius    float64       `mapstructure:"pickupRadius"`
	StartingWeapon  string        `mapstructure:"startingWeapon"`
	CameraMode      string        `mapstructure:"cameraMode"`
}

// WaveConfig — параметры режиссёра волн.
type WaveConfig struct {
	BaseCount     int           `mapstructure:"baseCount"`
	CountExpr     string        `mapstructure:"countExpr"`
	MaxWaves      int           `mapstructure:"maxWaves"`
	Cooldown      time.Duration `mapstructure:"cooldown"`
	SpawnMode     string        `mapstructure:"spawnMode"`
	SpawnJitter   float64       `mapstructure:"spawnJitter"`
	DropHeight    float64       `mapstructure:"dropHeight"`
	RingMinRadius float64       `mapstructure:"ringMinRadius"`
	RingMaxRadius float64       `mapstructure:"ringMaxRadius"`
	PickupsMin    int           `mapstructure:"pickupsMin"`
	PickupsMax    int           `mapstructure:"pickupsMax"`
	PickupArea    float64       `mapstructure:"pickupArea"`
	PickupHeight  float64       `mapstructure:"pickupHeight"`
	HealAmount    int           `mapstructure:"healAmount"`
	KillReward    int           `mapstructure:"killReward"`
}

// PhysicsConfig — параметры эталонного физического мира.
type PhysicsConfig struct {
	Gravity       float64 `mapstructure:"gravity"`
	LinearDamping float64 `mapstructure:"linearDamping"`
	LevelFile     string  `mapstructure:"levelFile"`
}

// SimConfig — часы симуляции и длительности эффектов.
type SimConfig struct {
	MaxDelta             time.Duration `mapstructure:"maxDelta"`
	HitSparkDuration     time.Duration `mapstructure:"hitSparkDuration"`
	SurfaceSparkDuration time.Duration `mapstructure:"surfaceSparkDuration"`
	MuzzleFlashDuration  time.Duration `mapstructure:"muzzleFlashDuration"`
	EnemyFlashDuration   time.Duration `mapstructure:"enemyFlashDuration"`
}

// AudioConfig — синтезированный звук.
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// Config — полная конфигурация игры.
type Config struct {
	LogLevel string        `mapstructure:"logLevel"`
	Seed     int64         `mapstructure:"seed"`
	Profile  string        `mapstructure:"profile"`
	Player   PlayerConfig  `mapstructure:"player"`
	Waves    WaveConfig    `mapstructure:"waves"`
	Physics  PhysicsConfig `mapstructure:"physics"`
	Sim      SimConfig     `mapstructure:"sim"`
	Audio    AudioConfig   `mapstructure:"audio"`

	// Enemy — выбранный профиль с применёнными переопределениями из profiles.<name>.
	Enemy defs.EnemyProfile `mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("seed", 0)
	v.SetDefault("profile", "classic")

	v.SetDefault("player.maxHealth", 100)
	v.SetDefault("player.walkSpeed", 12.0)
	v.SetDefault("player.runSpeed", 20.0)
	v.SetDefault("player.jumpSpeed", 15.0)
	v.SetDefault("player.groundedEpsilon", 0.1)
	v.SetDefault("player.deathPlaneY", -30.0)
	v.SetDefault("player.spawnPosition", map[string]any{"x": 0.0, "y": 1.0, "z": 0.0})
	v.SetDefault("player.radius", 0.5)
	v.SetDefault("player.height", 2.0)
	v.SetDefault("player.lookSensitivity", 0.002)
	v.SetDefault("player.pitchLimit", 1.4)
	v.SetDefault("player.eyeHeight", 1.6)
	v.SetDefault("player.pivotHeight", 1.5)
	v.SetDefault("player.cameraOffset", map[string]any{"x": 0.0, "y": 0.5, "z": 3.5})
	v.SetDefault("player.aimCameraOffset", map[string]any{"x": 0.6, "y": 0.0, "z": 1.5})
	v.SetDefault("player.cameraLerpRate", 12.0)
	v.SetDefault("player.baseFov", 75.0)
	v.SetDefault("player.fovLerpRate", 12.0)
	v.SetDefault("player.recoilHip", 0.02)
	v.SetDefault("player.recoilAim", 0.005)
	v.SetDefault("player.aimSpreadFactor", 0.25)
	v.SetDefault("player.switchDuration", "500ms")
	v.SetDefault("player.pickupRadius", 1.5)
	v.SetDefault("player.startingWeapon", "rifle")
	v.SetDefault("player.cameraMode", string(component.CameraThirdPerson))

	v.SetDefault("waves.baseCount", 5)
	v.SetDefault("waves.countExpr", defs.DefaultWaveCurve)
	v.SetDefault("waves.maxWaves", 10)
	v.SetDefault("waves.cooldown", "3s")
	v.SetDefault("waves.spawnMode", string(defs.SpawnTable))
	v.SetDefault("waves.spawnJitter", 8.0)
	v.SetDefault("waves.dropHeight", 2.0)
	v.SetDefault("waves.ringMinRadius", 30.0)
	v.SetDefault("waves.ringMaxRadius", 45.0)
	v.SetDefault("waves.pickupsMin", 2)
	v.SetDefault("waves.pickupsMax", 3)
	v.SetDefault("waves.pickupArea", 60.0)
	v.SetDefault("waves.pickupHeight", 1.5)
	v.SetDefault("waves.healAmount", 30)
	v.SetDefault("waves.killReward", 100)

	v.SetDefault("physics.gravity", -25.0)
	v.SetDefault("physics.linearDamping", 0.5)
	v.SetDefault("physics.levelFile", "")

	v.SetDefault("sim.maxDelta", "100ms")
	v.SetDefault("sim.hitSparkDuration", "200ms")
	v.SetDefault("sim.surfaceSparkDuration", "100ms")
	v.SetDefault("sim.muzzleFlashDuration", "40ms")
	v.SetDefault("sim.enemyFlashDuration", "50ms")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)
}

// Load читает конфигурацию: значения по умолчанию, затем файл (JSON/YAML/TOML по расширению),
// затем переменные окружения SHOOTER_*. Пустой путь означает "только умолчания и окружение".
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SHOOTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v)
}

// Default возвращает конфигурацию по умолчанию без файла и окружения.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		panic(fmt.Sprintf("config: defaults do not decode: %v", err))
	}
	return cfg
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	profile, ok := defs.EnemyProfiles[cfg.Profile]
	if !ok {
		return nil, fmt.Errorf("unknown enemy profile %q (known: %s)", cfg.Profile, strings.Join(defs.ProfileNames(), ", "))
	}
	if sub := v.Sub("profiles." + cfg.Profile); sub != nil {
		if err := sub.Unmarshal(&profile); err != nil {
			return nil, fmt.Errorf("error decoding overrides for profile %q: %w", cfg.Profile, err)
		}
	}
	profile.Name = cfg.Profile
	cfg.Enemy = profile

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ErrInvalidConfig оборачивает все ошибки валидации.
var ErrInvalidConfig = errors.New("invalid config")

// Validate отклоняет настройки, при которых симуляция не имеет смысла.
// Кривая волн проверяется отдельно при её компиляции.
func (c *Config) Validate() error {
	var errs []error
	p := c.Enemy

	if p.AccuracyFloor > p.AccuracyCeiling {
		errs = append(errs, fmt.Errorf("enemy accuracy floor %.2f above ceiling %.2f", p.AccuracyFloor, p.AccuracyCeiling))
	}
	if p.AccuracyFloor < 0 || p.AccuracyCeiling > 1 {
		errs = append(errs, fmt.Errorf("enemy accuracy bounds must lie in [0,1]"))
	}
	if p.NearRange > p.FarRange {
		errs = append(errs, fmt.Errorf("enemy near range %.1f above far range %.1f", p.NearRange, p.FarRange))
	}
	if p.FarBehavior != defs.FarHold && p.FarBehavior != defs.FarChase {
		errs = append(errs, fmt.Errorf("enemy far behavior %q is neither hold nor chase", p.FarBehavior))
	}
	if p.MinFireInterval <= 0 {
		errs = append(errs, fmt.Errorf("enemy min fire interval must be positive"))
	}
	if p.StuckSampleInterval <= 0 || p.StuckSamples < 1 {
		errs = append(errs, fmt.Errorf("enemy stuck sampling needs a positive interval and at least one sample"))
	}
	if p.MaxHealth <= 0 || p.Mass <= 0 {
		errs = append(errs, fmt.Errorf("enemy max health and mass must be positive"))
	}
	if p.SpawnShoutDelayMax < p.SpawnShoutDelayMin {
		errs = append(errs, fmt.Errorf("enemy spawn shout delay max below min"))
	}

	if c.Waves.MaxWaves < 1 {
		errs = append(errs, fmt.Errorf("max waves must be at least 1"))
	}
	if c.Waves.BaseCount < 1 {
		errs = append(errs, fmt.Errorf("base enemy count must be at least 1"))
	}
	if c.Waves.Cooldown <= 0 || c.Waves.Cooldown > 10*time.Second {
		errs = append(errs, fmt.Errorf("wave cooldown %s outside (0, 10s]", c.Waves.Cooldown))
	}
	if c.Waves.SpawnMode != string(defs.SpawnTable) && c.Waves.SpawnMode != string(defs.SpawnRing) {
		errs = append(errs, fmt.Errorf("unknown spawn mode %q", c.Waves.SpawnMode))
	}
	if c.Waves.RingMinRadius > c.Waves.RingMaxRadius {
		errs = append(errs, fmt.Errorf("ring min radius above max radius"))
	}
	if c.Waves.PickupsMin < 0 || c.Waves.PickupsMax < c.Waves.PickupsMin {
		errs = append(errs, fmt.Errorf("pickup count range [%d, %d] is invalid", c.Waves.PickupsMin, c.Waves.PickupsMax))
	}

	if c.Player.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("player max health must be positive"))
	}
	if c.Player.WalkSpeed <= 0 || c.Player.RunSpeed < c.Player.WalkSpeed {
		errs = append(errs, fmt.Errorf("player run speed must be at least walk speed"))
	}
	if c.Player.SwitchDuration <= 0 {
		errs = append(errs, fmt.Errorf("weapon switch duration must be positive"))
	}
	if _, err := ParseWeapon(c.Player.StartingWeapon); err != nil {
		errs = append(errs, err)
	}
	if c.Player.CameraMode != string(component.CameraFirstPerson) && c.Player.CameraMode != string(component.CameraThirdPerson) {
		errs = append(errs, fmt.Errorf("unknown camera mode %q", c.Player.CameraMode))
	}

	for _, kind := range []defs.WeaponKind{defs.Rifle, defs.Sniper} {
		s := kind.Stats()
		if s.MagazineSize <= 0 || s.ReloadDuration <= 0 || s.FireInterval <= 0 {
			errs = append(errs, fmt.Errorf("weapon %s has non-positive magazine or timings", s.Name))
		}
	}

	if c.Sim.MaxDelta <= 0 {
		errs = append(errs, fmt.Errorf("sim max delta must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// ParseWeapon переводит имя оружия из конфигурации в вариант.
func ParseWeapon(name string) (defs.WeaponKind, error) {
	switch strings.ToLower(name) {
	case "rifle":
		return defs.Rifle, nil
	case "sniper":
		return defs.Sniper, nil
	}
	return defs.Rifle, fmt.Errorf("unknown weapon %q", name)
}
