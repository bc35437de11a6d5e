package cache

// ResponsesSchema defines the SQLite table holding cached response bodies.
const ResponsesSchema = `
CREATE TABLE IF NOT EXISTS responses (
	key TEXT PRIMARY KEY NOT NULL,
	payload TEXT NOT NULL,
	expires TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_responses_expires ON responses(expires);
`

// PostgresSchema is the PostgreSQL equivalent of ResponsesSchema.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS marvel_responses (
	key TEXT PRIMARY KEY,
	payload TEXT NOT NULL,
	expires TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_marvel_responses_expires ON marvel_responses(expires);
`
