package sqlite

// schema is applied on every open; all statements are idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS quotes (
    id            TEXT PRIMARY KEY,
    text          TEXT NOT NULL,
    author        TEXT NOT NULL,
    source        TEXT NOT NULL DEFAULT '',
    personal_note TEXT NOT NULL DEFAULT '',
    categories    TEXT NOT NULL DEFAULT '[]',  -- JSON array of tags
    date_added    TEXT NOT NULL,
    date_modified TEXT,
    last_shown    TEXT,
    times_shown   INTEGER NOT NULL DEFAULT 0,
    ai_metadata   TEXT NOT NULL DEFAULT '{}'   -- JSON object
);

CREATE TABLE IF NOT EXISTS display_history (
    seq      INTEGER PRIMARY KEY AUTOINCREMENT,
    quote_id TEXT NOT NULL,
    shown_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS meta (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_quotes_author ON quotes(author);
CREATE INDEX IF NOT EXISTS idx_display_history_quote ON display_history(quote_id);
`
