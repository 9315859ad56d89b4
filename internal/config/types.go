package config

// Config holds all configuration for the application.
type Config struct {
	DBName string
	Port   string
	Turso  TursoConfig
	Match  MatchConfig
}

// TursoConfig points the snapshot store at a remote replica. Empty values
// mean a plain local SQLite file.
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// MatchConfig seeds the engine's match configuration on first run. Once a
// snapshot exists, the persisted config wins.
type MatchConfig struct {
	MaxOnField              int
	RotationIntervalMinutes int
	MatchTimeMinutes        int
}
