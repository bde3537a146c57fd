// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for exercises, logs, goals, and check-ins.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS exercises (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		category TEXT NOT NULL,
		score_type TEXT NOT NULL,
		metric_kind TEXT NOT NULL DEFAULT 'none',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS logs (
		id TEXT PRIMARY KEY,
		exercise_id TEXT NOT NULL,
		score REAL NOT NULL,
		display_score TEXT NOT NULL,
		variant TEXT NOT NULL DEFAULT '',
		reps INTEGER,
		distance_meters REAL,
		calories REAL,
		recorded_at DATETIME NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		exercise_id TEXT NOT NULL,
		target_score REAL NOT NULL,
		target_date DATETIME NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		achieved_at DATETIME,
		variant TEXT NOT NULL DEFAULT '',
		reps INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS checkins (
		date TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		energy INTEGER,
		soreness INTEGER,
		sleep_hours REAL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_logs_exercise ON logs(exercise_id, recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_logs_recorded ON logs(recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_goals_exercise ON goals(exercise_id, status);
	CREATE INDEX IF NOT EXISTS idx_checkins_date ON checkins(date DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
