package kv

const Schema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	rev TEXT NOT NULL,
	updated_at DATETIME NOT NULL
);
`
