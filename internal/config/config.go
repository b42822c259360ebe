package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/depeter/isoview/internal/camera"
)

type Config struct {
	UI       UIConfig      `toml:"ui"`
	Camera   CameraConfig  `toml:"camera"`
	List     ListConfig    `toml:"list"`
	Keybinds KeybindConfig `toml:"keybinds"`
	Scene    SceneConfig   `toml:"scene"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

// CameraConfig is the user-facing form of camera.Options. The follow speed is
// given as "close all but 1/FollowBase of the gap every FollowSteps steps".
type CameraConfig struct {
	Zoom             float64 `toml:"zoom"`
	YFactor          float64 `toml:"y_factor"`
	ZFactor          float64 `toml:"z_factor"`
	FollowBase       float64 `toml:"follow_base"`
	FollowSteps      float64 `toml:"follow_steps"`
	AngleShift       float64 `toml:"angle_shift"`
	RotationDuration int     `toml:"rotation_duration"`
}

type ListConfig struct {
	Gap             int `toml:"gap"`
	Margin          int `toml:"margin"`
	FocusAnimLength int `toml:"focus_anim_length"`
}

type KeybindConfig struct {
	RotateLeft  string `toml:"rotate_left"`
	RotateRight string `toml:"rotate_right"`
	ToggleList  string `toml:"toggle_list"`
	Select      string `toml:"select"`
	Back        string `toml:"back"`
	Fullscreen  string `toml:"fullscreen"`
}

type SceneConfig struct {
	// File is an optional YAML stage description. Empty uses the built-in one.
	File string `toml:"file"`
	// PlayerSpeed is in world units per second.
	PlayerSpeed float64 `toml:"player_speed"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     720,
		},
		Camera: CameraConfig{
			Zoom:             50,
			YFactor:          0.5,
			ZFactor:          1,
			FollowBase:       5,
			FollowSteps:      60,
			AngleShift:       camera.DefaultAngleShift,
			RotationDuration: camera.DefaultRotationDuration,
		},
		List: ListConfig{
			Gap:             20,
			Margin:          100,
			FocusAnimLength: 500,
		},
		Keybinds: KeybindConfig{
			RotateLeft:  "Q",
			RotateRight: "E",
			ToggleList:  "Tab",
			Select:      "Enter",
			Back:        "Escape",
			Fullscreen:  "F",
		},
		Scene: SceneConfig{
			PlayerSpeed: 4,
		},
	}
}

// Options converts the camera section into camera tuning.
func (c CameraConfig) Options() camera.Options {
	return camera.Options{
		Zoom:             c.Zoom,
		YFactor:          c.YFactor,
		ZFactor:          c.ZFactor,
		FollowSpeed:      math.Pow(c.FollowBase, 1/c.FollowSteps),
		Shift:            c.AngleShift,
		RotationDuration: c.RotationDuration,
	}
}

// Validate reports every setting that would break the camera or list.
func (c *Config) Validate() error {
	var errs []error
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		errs = append(errs, fmt.Errorf("ui: window size %dx%d", c.UI.Width, c.UI.Height))
	}
	if c.Camera.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("camera.zoom must be positive, got %v", c.Camera.Zoom))
	}
	if c.Camera.YFactor <= 0 || c.Camera.YFactor > 1 {
		errs = append(errs, fmt.Errorf("camera.y_factor must be in (0, 1], got %v", c.Camera.YFactor))
	}
	if c.Camera.ZFactor < 0 {
		errs = append(errs, fmt.Errorf("camera.z_factor must not be negative, got %v", c.Camera.ZFactor))
	}
	if c.Camera.FollowBase <= 1 || c.Camera.FollowSteps <= 0 {
		errs = append(errs, errors.New("camera: follow_base must exceed 1 and follow_steps be positive"))
	}
	if c.Camera.RotationDuration <= 0 {
		errs = append(errs, fmt.Errorf("camera.rotation_duration must be positive, got %d", c.Camera.RotationDuration))
	}
	if c.List.Gap < 0 || c.List.Margin < 0 {
		errs = append(errs, errors.New("list: gap and margin must not be negative"))
	}
	if c.List.FocusAnimLength <= 0 {
		errs = append(errs, fmt.Errorf("list.focus_anim_length must be positive, got %d", c.List.FocusAnimLength))
	}
	if c.Scene.PlayerSpeed <= 0 {
		errs = append(errs, fmt.Errorf("scene.player_speed must be positive, got %v", c.Scene.PlayerSpeed))
	}
	return errors.Join(errs...)
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "isoview"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the user config, falling back to defaults when there is none.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads path over the defaults. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
