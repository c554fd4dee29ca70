package palette

import (
	"bytes"
	"crypto/sha1"
	"database/sql"
	"fmt"
	"image/color"

	"github.com/bodgit/palette/act"
	_ "github.com/mattn/go-sqlite3"
)

// DB is a library of named palettes backed by an SQLite database. Each
// palette is stored as its Adobe Color Table encoding along with a
// content hash.
type DB struct {
	db *sql.DB
}

func NewDB(file string) (*DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS palette (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, sha1 TEXT NOT NULL, act BLOB NOT NULL)"); err != nil {
		return nil, err
	}

	return &DB{
		db: db,
	}, nil
}

func (db *DB) Close() error {
	return db.db.Close()
}

// Store saves the palette under the given name, replacing any previous
// palette with that name.
func (db *DB) Store(name string, p color.Palette) error {
	b := new(bytes.Buffer)
	if err := act.Encode(b, p); err != nil {
		return err
	}
	sha := fmt.Sprintf("%X", sha1.Sum(b.Bytes()))

	if _, err := db.db.Exec("INSERT OR REPLACE INTO palette (name, sha1, act) VALUES (?, ?, ?)", name, sha, b.Bytes()); err != nil {
		return err
	}

	return nil
}

// Load returns the palette stored under the given name, or nil if there
// is no such palette.
func (db *DB) Load(name string) (color.Palette, error) {
	var b []byte
	switch err := db.db.QueryRow("SELECT act FROM palette WHERE name = ?", name).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return act.Decode(bytes.NewReader(b))
	default:
		return nil, err
	}
}

// Names returns the names of every stored palette in sorted order.
func (db *DB) Names() ([]string, error) {
	rows, err := db.db.Query("SELECT name FROM palette ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}
