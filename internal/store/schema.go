package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS sessions (
    session_id   TEXT PRIMARY KEY,
    started_at   TEXT NOT NULL,
    ended_at     TEXT NOT NULL,
    total        REAL NOT NULL,
    remaining    REAL NOT NULL,
    tier         TEXT NOT NULL,
    locked       INTEGER NOT NULL DEFAULT 0,
    expense_count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS expenses (
    session_id   TEXT NOT NULL REFERENCES sessions(session_id) ON DELETE CASCADE,
    position     INTEGER NOT NULL,
    expense_id   TEXT NOT NULL,
    name         TEXT NOT NULL,
    amount       REAL NOT NULL,
    created_at   TEXT NOT NULL,
    PRIMARY KEY (session_id, position)
);

CREATE INDEX IF NOT EXISTS idx_sessions_ended ON sessions(ended_at);
`
