// Package gamedata loads the static game tables the planners run on.
//
// The copy embedded in the binary is a development fixture: the curves have
// the game's shape but the values and gift names are placeholders, so the
// planners only give real answers when DATA_DIR points at a directory of
// exported game tables with the same file names. See data/README.md.
package gamedata

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
	"github.com/osse101/SchalePlanner_Go/internal/leveling"
	"github.com/osse101/SchalePlanner_Go/internal/relationship"
	"github.com/osse101/SchalePlanner_Go/internal/sensei"
	"github.com/osse101/SchalePlanner_Go/internal/student"
	"github.com/osse101/SchalePlanner_Go/internal/validation"
)

// Data file names
const (
	GameDataFile         = "game_data.json"
	StudentExpFile       = "student_exp.json"
	RelationshipDataFile = "relationship_data.json"
	GiftFile             = "gift.json"
)

// Table names used in logs and integrity errors
const (
	AccountTableName      = "account_exp"
	StudentTableName      = "student_exp"
	RelationshipTableName = "relationship_exp"
)

//go:embed data/*.json
var embeddedData embed.FS

//go:embed schemas/*.schema.json
var embeddedSchemas embed.FS

// SourceEmbedded is the Source of tables read from the built-in fixtures.
const SourceEmbedded = "embedded fixtures"

// Set is the full collection of immutable game tables.
type Set struct {
	// Source is the directory the tables came from, or SourceEmbedded
	Source string

	AccountExp      *leveling.Table
	CafeAP          *leveling.BonusTable
	StudentExp      *leveling.Table
	RelationshipExp *leveling.Table
	Gifts           *relationship.Catalog
}

// Embedded returns the data files compiled into the binary.
func Embedded() fs.FS {
	// fs.Sub only fails on an invalid path name
	sub, _ := fs.Sub(embeddedData, "data")
	return sub
}

// Load reads the tables from dataDir, or from the embedded fixtures when
// dataDir is empty.
func Load(dataDir string) (*Set, error) {
	fsys, source := Embedded(), SourceEmbedded
	if dataDir != "" {
		fsys, source = os.DirFS(dataDir), dataDir
	}

	set, err := LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	set.Source = source
	return set, nil
}

// IsFixture reports whether the tables are the embedded placeholders.
func (s *Set) IsFixture() bool {
	return s.Source == SourceEmbedded
}

// LoadFS reads, schema-checks and decodes every table in fsys. Any malformed
// file fails the whole load with an error wrapping domain.ErrDataIntegrity.
func LoadFS(fsys fs.FS) (*Set, error) {
	l := &loader{
		fsys:     fsys,
		schemas:  validation.NewSchemaValidator(embeddedSchemas),
		validate: validator.New(),
	}

	var set Set
	var g errgroup.Group
	g.Go(func() error {
		var err error
		set.AccountExp, set.CafeAP, err = l.loadGameData()
		return err
	})
	g.Go(func() error {
		var err error
		set.StudentExp, err = l.loadStudentExp()
		return err
	})
	g.Go(func() error {
		var err error
		set.RelationshipExp, err = l.loadRelationshipExp()
		return err
	})
	g.Go(func() error {
		var err error
		set.Gifts, err = l.loadGifts()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &set, nil
}

// Verify reports levels missing from any leveling table. The calculators
// tolerate gaps, so this is a data check rather than a load failure.
func (s *Set) Verify() error {
	var errs []error
	for _, t := range []*leveling.Table{s.AccountExp, s.StudentExp, s.RelationshipExp} {
		if gaps := t.Missing(); len(gaps) > 0 {
			errs = append(errs, fmt.Errorf("%w: %s missing levels %v", domain.ErrDataIntegrity, t.Name(), gaps))
		}
	}
	if s.Gifts.Len() == 0 {
		errs = append(errs, fmt.Errorf("%w: gift catalog is empty", domain.ErrDataIntegrity))
	}
	return errors.Join(errs...)
}

type loader struct {
	fsys     fs.FS
	schemas  validation.SchemaValidator
	validate *validator.Validate
}

type levelRecord struct {
	Level      int `json:"level" validate:"min=1"`
	Experience int `json:"experience" validate:"min=1"`
}

type rankRecord struct {
	Level   int `json:"level" validate:"min=1"`
	ExpNext int `json:"exp_next" validate:"min=1"`
}

type gameDataFile struct {
	ExpTable map[string]int `json:"exp_table"`
	CafeAP   map[string]int `json:"cafe_ap"`
}

type giftFile struct {
	Items []domain.Gift `json:"items" validate:"dive"`
}

func (l *loader) loadGameData() (*leveling.Table, *leveling.BonusTable, error) {
	var file gameDataFile
	if err := l.decode(GameDataFile, &file); err != nil {
		return nil, nil, err
	}

	entries := make(map[int]int, len(file.ExpTable))
	for key, exp := range file.ExpTable {
		lv, err := strconv.Atoi(key)
		if err != nil {
			return nil, nil, integrityError(GameDataFile, fmt.Errorf("level key %q: %w", key, err))
		}
		entries[lv] = exp
	}

	return leveling.NewTable(AccountTableName, sensei.MaxLevel, entries), leveling.NewBonusTable(file.CafeAP), nil
}

func (l *loader) loadStudentExp() (*leveling.Table, error) {
	var records []levelRecord
	if err := l.decode(StudentExpFile, &records); err != nil {
		return nil, err
	}

	entries := make(map[int]int, len(records))
	for _, r := range records {
		if err := l.validate.Struct(r); err != nil {
			return nil, integrityError(StudentExpFile, err)
		}
		if _, dup := entries[r.Level]; dup {
			return nil, integrityError(StudentExpFile, fmt.Errorf("duplicate level %d", r.Level))
		}
		entries[r.Level] = r.Experience
	}

	return leveling.NewTable(StudentTableName, student.MaxLevel, entries), nil
}

func (l *loader) loadRelationshipExp() (*leveling.Table, error) {
	var records []rankRecord
	if err := l.decode(RelationshipDataFile, &records); err != nil {
		return nil, err
	}

	entries := make(map[int]int, len(records))
	for _, r := range records {
		if err := l.validate.Struct(r); err != nil {
			return nil, integrityError(RelationshipDataFile, err)
		}
		if _, dup := entries[r.Level]; dup {
			return nil, integrityError(RelationshipDataFile, fmt.Errorf("duplicate rank %d", r.Level))
		}
		entries[r.Level] = r.ExpNext
	}

	return leveling.NewTable(RelationshipTableName, relationship.MaxRank, entries), nil
}

func (l *loader) loadGifts() (*relationship.Catalog, error) {
	var file giftFile
	if err := l.decode(GiftFile, &file); err != nil {
		return nil, err
	}
	if err := l.validate.Struct(file); err != nil {
		return nil, integrityError(GiftFile, err)
	}

	ids := make(map[int]bool, len(file.Items))
	for _, g := range file.Items {
		if ids[g.ID] {
			return nil, integrityError(GiftFile, fmt.Errorf("duplicate gift id %d", g.ID))
		}
		ids[g.ID] = true
	}

	return relationship.NewCatalog(file.Items), nil
}

// decode reads name, checks it against its schema and unmarshals it into v.
func (l *loader) decode(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := l.schemas.ValidateBytes(data, schemaName(name)); err != nil {
		return integrityError(name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return integrityError(name, err)
	}
	return nil
}

func schemaName(dataFile string) string {
	return "schemas/" + dataFile[:len(dataFile)-len(".json")] + ".schema.json"
}

func integrityError(file string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrDataIntegrity, file, err)
}
