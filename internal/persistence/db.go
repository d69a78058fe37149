// Package persistence provides SQLite-based world state storage.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hexforge/internal/actor"
	"github.com/talgya/hexforge/internal/environment"
	"github.com/talgya/hexforge/internal/game"
	"github.com/talgya/hexforge/internal/hexgrid"
)

// DB wraps a SQLite connection for world state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS obstacles (
		uid TEXT PRIMARY KEY,
		element INTEGER NOT NULL,
		cells_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS resources (
		uid TEXT PRIMARY KEY,
		element INTEGER NOT NULL,
		state INTEGER NOT NULL,
		origin_x INTEGER NOT NULL,
		origin_y INTEGER NOT NULL,
		origin_z INTEGER NOT NULL,
		radius INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS actors (
		uid TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		pos_x INTEGER NOT NULL,
		pos_y INTEGER NOT NULL,
		pos_z INTEGER NOT NULL,
		fatigue INTEGER NOT NULL,
		abilities_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS world_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// cellJSON is the stored form of a cube-coordinate triple.
type cellJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// abilityJSON is the stored form of an actor ability.
type abilityJSON struct {
	UID        string `json:"uid"`
	Name       string `json:"name"`
	Potency    int    `json:"potency"`
	Aesthetics uint8  `json:"aesthetics"`
	Element    uint8  `json:"element"`
	Method     uint8  `json:"method"`
	Morality   uint8  `json:"morality"`
	School     uint8  `json:"school"`
}

// SaveObstacles writes all obstacles to the database (full replace).
func (db *DB) SaveObstacles(obstacles []*environment.Obstacle) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM obstacles"); err != nil {
		return err
	}

	for _, o := range obstacles {
		cells := make([]cellJSON, 0, len(o.Cells()))
		for _, c := range o.Cells() {
			cells = append(cells, cellJSON{X: c.X(), Y: c.Y(), Z: c.Z()})
		}
		blob, err := json.Marshal(cells)
		if err != nil {
			return fmt.Errorf("marshal obstacle cells: %w", err)
		}

		_, err = tx.Exec(
			"INSERT INTO obstacles (uid, element, cells_json) VALUES (?, ?, ?)",
			o.UID().String(), int(o.Element()), string(blob),
		)
		if err != nil {
			return fmt.Errorf("insert obstacle %s: %w", o.UID(), err)
		}
	}

	return tx.Commit()
}

// LoadObstacles reads back all obstacles, re-validating every chain against
// the given context.
func (db *DB) LoadObstacles(ctx game.Context) ([]*environment.Obstacle, error) {
	type row struct {
		UID     string `db:"uid"`
		Element int    `db:"element"`
		Cells   string `db:"cells_json"`
	}

	var rows []row
	if err := db.conn.Select(&rows, "SELECT uid, element, cells_json FROM obstacles"); err != nil {
		return nil, fmt.Errorf("select obstacles: %w", err)
	}

	obstacles := make([]*environment.Obstacle, 0, len(rows))
	for _, r := range rows {
		uid, err := uuid.Parse(r.UID)
		if err != nil {
			return nil, fmt.Errorf("parse obstacle uid %q: %w", r.UID, err)
		}
		element, err := game.ElementFromInt(r.Element)
		if err != nil {
			return nil, err
		}

		var raw []cellJSON
		if err := json.Unmarshal([]byte(r.Cells), &raw); err != nil {
			return nil, fmt.Errorf("unmarshal obstacle cells: %w", err)
		}
		cells := make([]hexgrid.Position, 0, len(raw))
		for _, c := range raw {
			pos, err := hexgrid.NewPosition(c.X, c.Y, c.Z, ctx)
			if err != nil {
				return nil, fmt.Errorf("obstacle %s cell: %w", r.UID, err)
			}
			cells = append(cells, pos)
		}

		o, err := environment.RestoreObstacle(uid, cells, element)
		if err != nil {
			return nil, err
		}
		obstacles = append(obstacles, o)
	}

	return obstacles, nil
}

// SaveResources writes all resources to the database (full replace).
func (db *DB) SaveResources(resources []*environment.Resource) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM resources"); err != nil {
		return err
	}

	for _, r := range resources {
		origin := r.Origin()
		_, err = tx.Exec(
			`INSERT INTO resources (uid, element, state, origin_x, origin_y, origin_z, radius)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.UID().String(), int(r.Element()), int(r.State()),
			origin.X(), origin.Y(), origin.Z(), r.Radius(),
		)
		if err != nil {
			return fmt.Errorf("insert resource %s: %w", r.UID(), err)
		}
	}

	return tx.Commit()
}

// LoadResources reads back all resources.
func (db *DB) LoadResources(ctx game.Context) ([]*environment.Resource, error) {
	type row struct {
		UID     string `db:"uid"`
		Element int    `db:"element"`
		State   int    `db:"state"`
		OriginX int    `db:"origin_x"`
		OriginY int    `db:"origin_y"`
		OriginZ int    `db:"origin_z"`
		Radius  int    `db:"radius"`
	}

	var rows []row
	err := db.conn.Select(&rows,
		"SELECT uid, element, state, origin_x, origin_y, origin_z, radius FROM resources")
	if err != nil {
		return nil, fmt.Errorf("select resources: %w", err)
	}

	resources := make([]*environment.Resource, 0, len(rows))
	for _, r := range rows {
		uid, err := uuid.Parse(r.UID)
		if err != nil {
			return nil, fmt.Errorf("parse resource uid %q: %w", r.UID, err)
		}
		element, err := game.ElementFromInt(r.Element)
		if err != nil {
			return nil, err
		}
		origin, err := hexgrid.NewPosition(r.OriginX, r.OriginY, r.OriginZ, ctx)
		if err != nil {
			return nil, fmt.Errorf("resource %s origin: %w", r.UID, err)
		}

		resources = append(resources,
			environment.RestoreResource(uid, element, environment.ResourceState(r.State), origin, r.Radius))
	}

	return resources, nil
}

// SaveActors writes all actors to the database (full replace).
func (db *DB) SaveActors(actors []*actor.Actor) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM actors"); err != nil {
		return err
	}

	for _, a := range actors {
		abilities := make([]abilityJSON, 0, len(a.Abilities()))
		for _, ab := range a.Abilities() {
			asp := ab.Aspects()
			abilities = append(abilities, abilityJSON{
				UID:        ab.UID().String(),
				Name:       ab.Name(),
				Potency:    ab.Potency(),
				Aesthetics: uint8(asp.Aesthetics),
				Element:    uint8(asp.Element),
				Method:     uint8(asp.Method),
				Morality:   uint8(asp.Morality),
				School:     uint8(asp.School),
			})
		}
		blob, err := json.Marshal(abilities)
		if err != nil {
			return fmt.Errorf("marshal abilities: %w", err)
		}

		pos := a.Position()
		_, err = tx.Exec(
			`INSERT INTO actors (uid, name, pos_x, pos_y, pos_z, fatigue, abilities_json)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.UID().String(), a.Name(), pos.X(), pos.Y(), pos.Z(), a.CurFatigue(), string(blob),
		)
		if err != nil {
			return fmt.Errorf("insert actor %s: %w", a.UID(), err)
		}
	}

	return tx.Commit()
}

// LoadActors reads back all actors and their abilities.
func (db *DB) LoadActors(ctx game.Context) ([]*actor.Actor, error) {
	type row struct {
		UID       string `db:"uid"`
		Name      string `db:"name"`
		PosX      int    `db:"pos_x"`
		PosY      int    `db:"pos_y"`
		PosZ      int    `db:"pos_z"`
		Fatigue   int    `db:"fatigue"`
		Abilities string `db:"abilities_json"`
	}

	var rows []row
	err := db.conn.Select(&rows,
		"SELECT uid, name, pos_x, pos_y, pos_z, fatigue, abilities_json FROM actors")
	if err != nil {
		return nil, fmt.Errorf("select actors: %w", err)
	}

	actors := make([]*actor.Actor, 0, len(rows))
	for _, r := range rows {
		uid, err := uuid.Parse(r.UID)
		if err != nil {
			return nil, fmt.Errorf("parse actor uid %q: %w", r.UID, err)
		}
		pos, err := hexgrid.NewPosition(r.PosX, r.PosY, r.PosZ, ctx)
		if err != nil {
			return nil, fmt.Errorf("actor %s position: %w", r.UID, err)
		}

		var raw []abilityJSON
		if err := json.Unmarshal([]byte(r.Abilities), &raw); err != nil {
			return nil, fmt.Errorf("unmarshal abilities: %w", err)
		}
		abilities := make([]*actor.Ability, 0, len(raw))
		for _, ab := range raw {
			abUID, err := uuid.Parse(ab.UID)
			if err != nil {
				return nil, fmt.Errorf("parse ability uid %q: %w", ab.UID, err)
			}
			abilities = append(abilities, actor.RestoreAbility(abUID, ab.Name, ab.Potency, actor.Aspects{
				Aesthetics: actor.Aesthetics(ab.Aesthetics),
				Element:    game.Element(ab.Element),
				Method:     actor.Method(ab.Method),
				Morality:   actor.Morality(ab.Morality),
				School:     actor.School(ab.School),
			}))
		}

		actors = append(actors, actor.Restore(uid, r.Name, pos, r.Fatigue, abilities))
	}

	return actors, nil
}

// SaveMeta stores a world metadata key/value pair.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT INTO world_meta (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

// LoadMeta retrieves a world metadata value. The second return is false if
// the key has never been stored.
func (db *DB) LoadMeta(key string) (string, bool, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM world_meta WHERE key = ?", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// HasWorldState reports whether a previously saved world exists.
func (db *DB) HasWorldState() (bool, error) {
	var count int
	if err := db.conn.Get(&count, "SELECT COUNT(*) FROM world_meta"); err != nil {
		return false, err
	}
	return count > 0, nil
}
