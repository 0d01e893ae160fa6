package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/ivlev/rpp2object/internal/config"
)

// ErrNotFound is returned for an unknown preset name.
var ErrNotFound = errors.New("preset not found")

// Preset is a named CompileConfig.
type Preset struct {
	ID        uint           `gorm:"primarykey" json:"-"`
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`
	Config    datatypes.JSON `json:"config"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// CompileConfig decodes the stored config.
func (p Preset) CompileConfig() (config.CompileConfig, error) {
	var cfg config.CompileConfig
	if err := json.Unmarshal(p.Config, &cfg); err != nil {
		return config.CompileConfig{}, fmt.Errorf("decode preset %q: %w", p.Name, err)
	}
	return cfg, nil
}

// Store keeps presets in a SQLite file.
type Store struct {
	db *gorm.DB
}

// Open opens or creates the preset database at path. An empty path opens a
// private in-memory database.
func Open(path string) (*Store, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open preset db: %w", err)
	}

	if path == "" {
		// every connection to :memory: is a separate database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("open preset db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&Preset{}); err != nil {
		return nil, fmt.Errorf("migrate preset db: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save stores cfg under name, replacing an existing preset of that name.
// The track selection is not part of a preset.
func (s *Store) Save(name string, cfg config.CompileConfig) error {
	if name == "" {
		return errors.New("preset name is empty")
	}

	cfg.ActiveTracks = nil
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode preset %q: %w", name, err)
	}

	p := Preset{Name: name, Config: datatypes.JSON(data), UpdatedAt: time.Now().UTC()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"config", "updated_at"}),
	}).Create(&p).Error
	if err != nil {
		return fmt.Errorf("save preset %q: %w", name, err)
	}

	return nil
}

func (s *Store) Get(name string) (Preset, error) {
	var p Preset
	err := s.db.Where("name = ?", name).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Preset{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return Preset{}, fmt.Errorf("load preset %q: %w", name, err)
	}
	return p, nil
}

// Load returns the config stored under name.
func (s *Store) Load(name string) (config.CompileConfig, error) {
	p, err := s.Get(name)
	if err != nil {
		return config.CompileConfig{}, err
	}
	return p.CompileConfig()
}

// List returns all presets ordered by name.
func (s *Store) List() ([]Preset, error) {
	var presets []Preset
	if err := s.db.Order("name").Find(&presets).Error; err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	return presets, nil
}

func (s *Store) Delete(name string) error {
	res := s.db.Where("name = ?", name).Delete(&Preset{})
	if res.Error != nil {
		return fmt.Errorf("delete preset %q: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}
